package compiler

import (
	"regexp"
	"strings"
)

// EffectKind identifies the game action an effect clause resolves to.
// EffectUnknown is never emitted to output.
type EffectKind int

const (
	EffectUnknown EffectKind = iota
	EffectGainLife
	EffectLoseLife
	EffectDraw
	EffectDealDamage
	EffectCreateToken
	EffectDiscard
	EffectMill
	EffectCounter
	EffectTap
	EffectUntap
	EffectScry
	EffectSurveil
	EffectPutCounter
	EffectSacrifice
	EffectSearchLibrary
	EffectReturnFromGraveyard
)

// Script returns the Forge ability-factory name for the kind. Zone-change
// effects share the ChangeZone factory; token creation uses Token.
func (k EffectKind) Script() string {
	switch k {
	case EffectGainLife:
		return "GainLife"
	case EffectLoseLife:
		return "LoseLife"
	case EffectDraw:
		return "Draw"
	case EffectDealDamage:
		return "DealDamage"
	case EffectCreateToken:
		return "Token"
	case EffectDiscard:
		return "Discard"
	case EffectMill:
		return "Mill"
	case EffectCounter:
		return "Counter"
	case EffectTap:
		return "Tap"
	case EffectUntap:
		return "Untap"
	case EffectScry:
		return "Scry"
	case EffectSurveil:
		return "Surveil"
	case EffectPutCounter:
		return "PutCounter"
	case EffectSacrifice:
		return "Sacrifice"
	case EffectSearchLibrary, EffectReturnFromGraveyard:
		return "ChangeZone"
	default:
		return "Unknown"
	}
}

// Effect is a structured game action with extracted parameters.
type Effect struct {
	Kind   EffectKind
	Params []Param
}

// Render formats the effect in Forge script notation, factory name first.
func (e Effect) Render() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Script())
	for _, p := range e.Params {
		sb.WriteString(" | ")
		sb.WriteString(p.Key)
		sb.WriteString("$ ")
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// CounterAlias maps counter-name phrasing to a Forge counter type.
type CounterAlias struct {
	Cue, Name string
}

// defaultCounterTypes is the fixed counter-name table; lookups fall back to
// GENERIC. Config may append set-specific entries.
var defaultCounterTypes = []CounterAlias{
	{"+1/+1", "P1P1"},
	{"-1/-1", "M1M1"},
	{"drunken", "DRUNKEN"},
	{"stun", "STUN"},
	{"obsession", "OBSESSION"},
	{"charge", "CHARGE"},
	{"loyalty", "LOYALTY"},
	{"haze", "HAZE"},
	{"lost family", "LOST_FAMILY"},
}

// defaultTokenScripts are the known token script names; unmatched token
// effects fall back to the generic script.
var defaultTokenScripts = []string{"food", "treasure", "beer", "gnome", "goblin"}

// effectRule pairs a keyword predicate with an effect builder. The clause
// has already been lower-cased.
type effectRule struct {
	match func(string) bool
	build func(c *Compiler, clause string) Effect
}

// has reports whether s contains every sub.
func has(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// effectRules is the ordered resolution table. Order is precedence and must
// be preserved: fuller phrases disambiguate overlapping keywords ("lose" +
// "life" + "opponent" before the plain life loss, "counter" + "spell"
// before "put" + "counter" would otherwise collide).
var effectRules = []effectRule{
	{
		match: func(t string) bool { return has(t, "you gain", "life") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectGainLife, []Param{
				{"Defined", "You"},
				{"LifeAmount", amount(t, "life")},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "lose", "life", "opponent") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectLoseLife, []Param{
				{"Defined", "EachOpponent"},
				{"LifeAmount", amount(t, "life")},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "lose", "life") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectLoseLife, []Param{
				{"Defined", "You"},
				{"LifeAmount", amount(t, "life")},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "draw") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectDraw, []Param{
				{"Defined", "You"},
				{"NumCards", amount(t, "card")},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "deals", "damage") },
		build: func(c *Compiler, t string) Effect {
			n := amount(t, "damage")
			if strings.Contains(t, "target") {
				return Effect{EffectDealDamage, []Param{
					{"NumDmg", n},
					{"ValidTgts", "Creature.Other,Player"},
					{"TgtPrompt", "Select target"},
				}}
			}
			return Effect{EffectDealDamage, []Param{
				{"NumDmg", n},
				{"Defined", "TriggeredPlayer"},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "create", "token") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectCreateToken, []Param{
				{"TokenScript", c.tokenScript(t)},
				{"TokenAmount", amount(t, "token")},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "discard") },
		build: func(c *Compiler, t string) Effect {
			params := []Param{
				{"Mode", "TgtChoose"},
				{"NumCards", "1"},
			}
			if strings.Contains(t, "target opponent") {
				params = append(params, Param{"ValidTgts", "Player.Opponent"})
			}
			return Effect{EffectDiscard, params}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "mill") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectMill, []Param{
				{"NumCards", amount(t, "card")},
				{"Defined", "You"},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "counter", "spell") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectCounter, []Param{{"Destination", "Hand"}}}
		},
	},
	{
		// "untap" contains "tap"; require the bare form here so untap
		// effects reach their own rule below.
		match: func(t string) bool { return has(t, "tap", "target") && !strings.Contains(t, "untap") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectTap, []Param{
				{"ValidTgts", "Creature"},
				{"TgtPrompt", "Select target creature"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "untap") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectUntap, []Param{
				{"ValidTgts", "Permanent"},
				{"TgtPrompt", "Select target permanent"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "scry") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectScry, []Param{{"ScryNum", amount(t, "")}}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "surveil") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectSurveil, []Param{{"NumCards", amount(t, "")}}}
		},
	},
	{
		match: func(t string) bool { return has(t, "put", "counter") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectPutCounter, []Param{
				{"CounterType", c.counterType(t)},
				{"CounterNum", amount(t, "counter")},
				{"Defined", "Targeted"},
			}}
		},
	},
	{
		match: func(t string) bool { return strings.Contains(t, "sacrifice") },
		build: func(c *Compiler, t string) Effect {
			valid := "Card"
			if strings.Contains(t, "creature") {
				valid = "Creature"
			}
			return Effect{EffectSacrifice, []Param{{"SacValid", valid}}}
		},
	},
	{
		match: func(t string) bool { return has(t, "search", "library") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectSearchLibrary, []Param{
				{"Origin", "Library"},
				{"Destination", "Hand"},
				{"ChangeType", "Card"},
				{"ChangeNum", "1"},
				{"Mandatory", "False"},
			}}
		},
	},
	{
		match: func(t string) bool { return has(t, "return", "graveyard", "battlefield") },
		build: func(c *Compiler, t string) Effect {
			return Effect{EffectReturnFromGraveyard, []Param{
				{"Origin", "Graveyard"},
				{"Destination", "Battlefield"},
				{"ChangeType", "Creature"},
			}}
		},
	},
}

// ResolveEffect maps a free-text effect clause to a structured effect.
// It reports false when no rule matches; the caller drops the block.
func (c *Compiler) ResolveEffect(clause string) (Effect, bool) {
	lower := strings.ToLower(strings.TrimSpace(clause))
	if lower == "" {
		return Effect{}, false
	}
	for _, r := range effectRules {
		if r.match(lower) {
			return r.build(c, lower), true
		}
	}
	return Effect{}, false
}

func (c *Compiler) tokenScript(clause string) string {
	for _, name := range c.tokens {
		if strings.Contains(clause, name) {
			return name
		}
	}
	return "generic"
}

func (c *Compiler) counterType(clause string) string {
	for _, a := range c.counters {
		if strings.Contains(clause, a.Cue) {
			return a.Name
		}
	}
	return "GENERIC"
}

var digitRe = regexp.MustCompile(`\d+`)

// amount extracts an effect magnitude: the first integer adjacent to
// keyword when one is given, then word numbers, then 1.
func amount(clause, keyword string) string {
	if keyword == "" {
		if m := digitRe.FindString(clause); m != "" {
			return m
		}
	} else {
		for _, loc := range digitRe.FindAllStringIndex(clause, -1) {
			rest := strings.TrimLeft(clause[loc[1]:], " \t")
			if rest != clause[loc[1]:] && strings.HasPrefix(rest, keyword) {
				return clause[loc[0]:loc[1]]
			}
		}
	}
	switch {
	case strings.Contains(clause, "a ") || strings.Contains(clause, "one "):
		return "1"
	case strings.Contains(clause, "two "):
		return "2"
	case strings.Contains(clause, "three "):
		return "3"
	}
	return "1"
}

// duration reports the Forge duration for a clause: effects bounded by
// "until end of turn" expire, everything else is permanent.
func duration(clause string) string {
	if strings.Contains(strings.ToLower(clause), "until end of turn") {
		return "EndOfTurn"
	}
	return "Permanent"
}
