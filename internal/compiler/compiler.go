// Package compiler turns free-form card rules text into Forge ability
// script lines. Compilation is best-effort: blocks with no recognized
// structure are silently dropped and the card keeps its verbatim Oracle
// text as the record of intent.
package compiler

import (
	"regexp"
	"strconv"
	"strings"
)

// Description truncation limits, in runes.
const (
	triggerDescLimit = 80
	spellDescLimit   = 100
)

// Compiler holds the resolution tables shared by every compilation pass.
// A zero-config Compiler uses the built-in tables; options append
// set-specific token scripts and counter types.
type Compiler struct {
	tokens   []string
	counters []CounterAlias
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithTokenScripts prepends set-specific token script names. Earlier names
// win when a clause mentions several.
func WithTokenScripts(names ...string) Option {
	return func(c *Compiler) {
		c.tokens = append(lowerAll(names), c.tokens...)
	}
}

// WithCounterTypes prepends set-specific counter-name aliases.
func WithCounterTypes(aliases ...CounterAlias) Option {
	return func(c *Compiler) {
		c.counters = append(aliases, c.counters...)
	}
}

// New returns a Compiler with the default resolution tables.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		tokens:   defaultTokenScripts,
		counters: defaultCounterTypes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Script is the compiled form of one card's rules text: ability lines in
// source-block order, support-variable definitions in allocation order,
// and the count of blocks that produced no output.
type Script struct {
	Abilities []string
	SVars     []SVar
	Dropped   int
}

// Lines renders ability lines followed by SVar lines.
func (s Script) Lines() []string {
	lines := make([]string, 0, len(s.Abilities)+len(s.SVars))
	lines = append(lines, s.Abilities...)
	for _, v := range s.SVars {
		lines = append(lines, v.Line())
	}
	return lines
}

// Compile segments, classifies, and compiles one card's rules text. Each
// call is an independent pass with a fresh allocator, so output is
// deterministic and support-variable names never leak across cards.
func (c *Compiler) Compile(text string) Script {
	p := &pass{c: c}
	sc := NewBlockScanner(strings.TrimSpace(text))
	for sc.Scan() {
		block := strings.TrimSpace(sc.Block().Text)
		if block == "" {
			continue
		}
		if !p.compileBlock(block) {
			p.dropped++
		}
	}
	return Script{Abilities: p.abilities, SVars: p.svars, Dropped: p.dropped}
}

// pass is the mutable state of one card's compilation.
type pass struct {
	c         *Compiler
	alloc     Allocator
	abilities []string
	svars     []SVar
	dropped   int
}

// compileBlock dispatches one block by category. It reports false when the
// block degrades to unrecognized; nothing partial is ever emitted.
func (p *pass) compileBlock(text string) bool {
	switch Classify(text) {
	case CategoryModal:
		return p.modal(text)
	case CategoryTriggered:
		return p.triggered(text)
	case CategoryPeriodic:
		return p.periodic(text)
	case CategoryUpkeepCost:
		return p.upkeepCost(text)
	case CategoryActivated:
		return p.activated(text)
	case CategoryStatic:
		p.abilities = append(p.abilities, staticAbility(text))
		return true
	default:
		return p.spell(text)
	}
}

func (p *pass) defineSVar(base, definition string) string {
	name := p.alloc.Allocate(base)
	p.svars = append(p.svars, SVar{Name: name, Definition: definition})
	return name
}

var (
	triggeredRe = regexp.MustCompile(`(?s)^(?:Whenever|When)\s+(.+?),\s+(.+?)(?:\.|$)`)
	periodicRe  = regexp.MustCompile(`(?s)^At the beginning of (.+?),\s+(.+?)(?:\.|$)`)
	upkeepRe    = regexp.MustCompile(`Upkeep[\x{2014}:]\s*(.+?)(?:\.|$)`)
	costRe      = regexp.MustCompile(`(?s)^(\{.+?\}):\s*(.+?)(?:\.|$)`)
)

// triggered compiles when/whenever abilities. The trigger and effect must
// both resolve before anything is allocated: a trigger line must never
// reference a support variable that was not produced.
func (p *pass) triggered(text string) bool {
	m := triggeredRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	trig, ok := ExtractTrigger(m[1])
	if !ok {
		return false
	}
	eff, ok := p.c.ResolveEffect(m[2])
	if !ok {
		return false
	}
	name := p.defineSVar("Effect", eff.Render())
	p.abilities = append(p.abilities, triggerLine(trig.Render(), name, text))
	return true
}

// periodic compiles beginning-of-phase abilities via the phase table.
func (p *pass) periodic(text string) bool {
	m := periodicRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	phase, ok := phaseFor(strings.ToLower(m[1]))
	if !ok {
		return false
	}
	eff, ok := p.c.ResolveEffect(m[2])
	if !ok {
		return false
	}
	name := p.defineSVar("Effect", eff.Render())
	p.abilities = append(p.abilities, triggerLine(PhaseTrigger(phase).Render(), name, text))
	return true
}

// upkeepCost compiles "Upkeep—<cost>" markers as upkeep-phase triggers.
func (p *pass) upkeepCost(text string) bool {
	m := upkeepRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	cost := strings.TrimSpace(m[1])
	eff, ok := p.c.ResolveEffect(cost)
	if !ok {
		return false
	}
	name := p.defineSVar("UpkeepEffect", eff.Render())
	p.abilities = append(p.abilities,
		"T:Mode$ Phase | Phase$ Upkeep | TriggerZones$ Battlefield | Execute$ "+name+
			" | TriggerDescription$ Upkeep— "+flatten(cost))
	return true
}

// activated compiles "{cost}: effect" abilities.
func (p *pass) activated(text string) bool {
	m := costRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	cost := parseCost(m[1])
	if cost == "" {
		return false
	}
	eff, ok := p.c.ResolveEffect(m[2])
	if !ok {
		return false
	}
	p.abilities = append(p.abilities,
		"A:AB$ "+eff.Render()+" | Cost$ "+cost+" | SpellDescription$ "+desc(text, spellDescLimit))
	return true
}

// spell compiles a plain spell effect over the whole block.
func (p *pass) spell(text string) bool {
	eff, ok := p.c.ResolveEffect(text)
	if !ok {
		return false
	}
	p.abilities = append(p.abilities,
		"A:SP$ "+eff.Render()+" | SpellDescription$ "+desc(text, spellDescLimit))
	return true
}

// modal compiles "Choose one/two" blocks into a charm over per-choice
// support variables. All extracted choices must resolve; a partially
// resolvable choice list drops the whole block. Zero extracted choices
// fall back to the plain effect resolver.
func (p *pass) modal(text string) bool {
	prefix, choicesText := splitModalPrefix(text)
	choices := modalChoices(choicesText)
	if len(choices) == 0 {
		return p.spell(text)
	}

	effects := make([]Effect, 0, len(choices))
	for _, choice := range choices {
		eff, ok := p.c.ResolveEffect(choice)
		if !ok {
			return false
		}
		effects = append(effects, eff)
	}

	triggered := prefix != "" &&
		(strings.Contains(prefix, "Whenever") || strings.Contains(prefix, "When") ||
			strings.Contains(prefix, "At the beginning"))
	var trig Trigger
	if triggered {
		var ok bool
		trig, ok = ExtractTrigger(strings.TrimSuffix(strings.TrimSpace(prefix), ","))
		if !ok {
			return false
		}
	}

	names := make([]string, len(effects))
	for i, eff := range effects {
		names[i] = p.defineSVar("Choice", eff.Render())
	}
	aggregate := p.defineSVar("Choices", strings.Join(names, ","))
	charm := "Charm | CharmNum$ " + strconv.Itoa(len(effects)) + " | Choices$ " + aggregate

	if triggered {
		exec := p.defineSVar("CharmEffect", "AB$ "+charm)
		p.abilities = append(p.abilities, triggerLine(trig.Render(), exec, text))
		return true
	}
	p.abilities = append(p.abilities,
		"A:SP$ "+charm+" | SpellDescription$ "+desc(text, spellDescLimit))
	return true
}

func triggerLine(trigger, execute, text string) string {
	return "T:" + trigger + " | Execute$ " + execute +
		" | TriggerDescription$ " + desc(text, triggerDescLimit)
}

// parseCost strips mana braces and collapses whitespace: "{1}{U}" → "1 U".
func parseCost(cost string) string {
	cost = strings.ReplaceAll(cost, "{", "")
	cost = strings.ReplaceAll(cost, "}", " ")
	return flatten(cost)
}

// flatten collapses all whitespace runs (including line breaks) to single
// spaces so rendered script lines stay single-line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// desc flattens and truncates description text to limit runes.
func desc(text string, limit int) string {
	r := []rune(flatten(text))
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r)
}
