package compiler

import "strings"

// TriggerMode identifies the event class a trigger fires on.
type TriggerMode int

const (
	ModeChangesZone TriggerMode = iota
	ModeAttacks
	ModeDamageDone
	ModeDiscard
	ModeSpellCast
	ModeTaps
	ModePhase
)

func (m TriggerMode) String() string {
	switch m {
	case ModeChangesZone:
		return "ChangesZone"
	case ModeAttacks:
		return "Attacks"
	case ModeDamageDone:
		return "DamageDone"
	case ModeDiscard:
		return "Discard"
	case ModeSpellCast:
		return "SpellCast"
	case ModeTaps:
		return "Taps"
	case ModePhase:
		return "Phase"
	default:
		return "Unknown"
	}
}

// Param is one key/value pair on a trigger or effect line. Parameters are
// ordered; rendering is deterministic.
type Param struct {
	Key, Value string
}

// Trigger is a structured "when/whenever X happens" condition.
type Trigger struct {
	Mode  TriggerMode
	Attrs []Param
}

// Render formats the trigger in Forge script notation, mode first.
func (t Trigger) Render() string {
	var sb strings.Builder
	sb.WriteString("Mode$ ")
	sb.WriteString(t.Mode.String())
	for _, p := range t.Attrs {
		sb.WriteString(" | ")
		sb.WriteString(p.Key)
		sb.WriteString("$ ")
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// triggerRules maps condition phrasing to trigger descriptors. Ordered,
// most specific phrase first; the first match wins.
var triggerRules = []struct {
	match func(string) bool
	build func() Trigger
}{
	{
		match: func(t string) bool { return strings.Contains(t, "enters the battlefield") },
		build: func() Trigger {
			return Trigger{Mode: ModeChangesZone, Attrs: []Param{
				{"Destination", "Battlefield"},
				{"ValidCard", "Card.Self"},
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "dies") || strings.Contains(t, "put into a graveyard") },
		build: func() Trigger {
			return Trigger{Mode: ModeChangesZone, Attrs: []Param{
				{"Origin", "Battlefield"},
				{"Destination", "Graveyard"},
				{"ValidCard", "Card.Self"},
				{"TriggerZones", "Graveyard"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "attacks") },
		build: func() Trigger {
			return Trigger{Mode: ModeAttacks, Attrs: []Param{
				{"ValidCard", "Card.Self"},
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "deals damage") },
		build: func() Trigger {
			return Trigger{Mode: ModeDamageDone, Attrs: []Param{
				{"ValidSource", "Creature.YouCtrl"},
				{"ValidTarget", "Opponent"},
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool {
			return strings.Contains(t, "discards") &&
				(strings.Contains(t, "you") || strings.Contains(t, "opponent"))
		},
		build: func() Trigger {
			return Trigger{Mode: ModeDiscard, Attrs: []Param{
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "creature") && strings.Contains(t, "enters") },
		build: func() Trigger {
			return Trigger{Mode: ModeChangesZone, Attrs: []Param{
				{"Destination", "Battlefield"},
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "cast") },
		build: func() Trigger {
			return Trigger{Mode: ModeSpellCast, Attrs: []Param{
				{"ValidCard", "Card.YouOwn"},
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "taps") || strings.Contains(t, "tapped") },
		build: func() Trigger {
			return Trigger{Mode: ModeTaps, Attrs: []Param{
				{"TriggerZones", "Battlefield"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "sacrifice") },
		build: func() Trigger {
			return Trigger{Mode: ModeChangesZone, Attrs: []Param{
				{"Destination", "Graveyard"},
				{"TriggerZones", "Graveyard"},
			}}
		},
	},
}

// phaseTable maps periodic timing phrasing to a phase tag. Unmapped timing
// phrases fail extraction and the block is dropped.
var phaseTable = []struct {
	cue, phase string
}{
	{"upkeep", "Upkeep"},
	{"combat", "BeginCombat"},
	{"end step", "EndOfTurn"},
	{"end of turn", "EndOfTurn"},
}

func phaseFor(timing string) (string, bool) {
	for _, e := range phaseTable {
		if strings.Contains(timing, e.cue) {
			return e.phase, true
		}
	}
	return "", false
}

// PhaseTrigger builds a periodic trigger for a phase tag from phaseTable.
func PhaseTrigger(phase string) Trigger {
	return Trigger{Mode: ModePhase, Attrs: []Param{{"Phase", phase}}}
}

// ExtractTrigger derives a trigger descriptor from a condition clause.
// The clause is matched lower-cased, with any when/whenever prefix removed.
// It reports false when no rule matches; the caller drops the block.
func ExtractTrigger(clause string) (Trigger, bool) {
	lower := strings.ToLower(strings.TrimSpace(clause))
	lower = strings.TrimPrefix(lower, "whenever ")
	lower = strings.TrimPrefix(lower, "when ")

	for _, r := range triggerRules {
		if r.match(lower) {
			return r.build(), true
		}
	}
	if phase, ok := phaseFor(lower); ok {
		return PhaseTrigger(phase), true
	}
	return Trigger{}, false
}
