package report

// EventType enumerates all observable conversion events.
type EventType int

const (
	EventCardCompiled EventType = iota
	EventCardSkipped
	EventBlocksDropped
	EventFileWritten
	EventRunSummary
)

func (e EventType) String() string {
	switch e {
	case EventCardCompiled:
		return "CardCompiled"
	case EventCardSkipped:
		return "CardSkipped"
	case EventBlocksDropped:
		return "BlocksDropped"
	case EventFileWritten:
		return "FileWritten"
	case EventRunSummary:
		return "RunSummary"
	default:
		return "Unknown"
	}
}

// Event represents a single observable event in a conversion run.
type Event struct {
	Seq     int       // monotonic sequence number
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
