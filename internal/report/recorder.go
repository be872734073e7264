// Package report records the observable events of a conversion run. Tests
// assert against the in-memory record; the CLI prints the text form.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Recorder is the interface for recording conversion events.
type Recorder interface {
	Record(event Event)
	Events() []Event
}

// --- MemoryRecorder: stores events in memory for test assertions ---

type MemoryRecorder struct {
	events []Event
	seq    int
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Record(event Event) {
	r.seq++
	event.Seq = r.seq
	r.events = append(r.events, event)
}

func (r *MemoryRecorder) Events() []Event {
	return r.events
}

// EventsOfType returns all events matching the given type.
func (r *MemoryRecorder) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range r.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (r *MemoryRecorder) LastEvent() Event {
	if len(r.events) == 0 {
		return Event{}
	}
	return r.events[len(r.events)-1]
}

// --- TextRecorder: writes human-readable lines to an io.Writer ---

type TextRecorder struct {
	MemoryRecorder
	w io.Writer
}

func NewTextRecorder(w io.Writer) *TextRecorder {
	return &TextRecorder{w: w}
}

func (r *TextRecorder) Record(event Event) {
	r.MemoryRecorder.Record(event)
	fmt.Fprintln(r.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	label := e.Type.String()
	// Pad label to 14 chars for alignment
	for len(label) < 14 {
		label += " "
	}
	if e.Card == "" {
		return fmt.Sprintf("%s| %s", label, e.Details)
	}
	return fmt.Sprintf("%s| %-30s %s", label, e.Card, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCardCompiledEvent(name string, abilities, svars int) Event {
	return Event{
		Type:    EventCardCompiled,
		Card:    name,
		Details: fmt.Sprintf("%d ability line(s), %d SVar(s)", abilities, svars),
	}
}

func NewCardSkippedEvent(reason string) Event {
	return Event{
		Type:    EventCardSkipped,
		Details: reason,
	}
}

func NewBlocksDroppedEvent(name string, dropped int) Event {
	return Event{
		Type:    EventBlocksDropped,
		Card:    name,
		Details: fmt.Sprintf("%d unrecognized block(s) omitted", dropped),
	}
}

func NewFileWrittenEvent(name, path string) Event {
	return Event{
		Type:    EventFileWritten,
		Card:    name,
		Details: path,
	}
}

func NewRunSummaryEvent(found, converted, skipped int) Event {
	return Event{
		Type:    EventRunSummary,
		Details: fmt.Sprintf("found %d, converted %d, skipped %d", found, converted, skipped),
	}
}
