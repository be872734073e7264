package compiler

import "strconv"

// SVar is a named support-variable definition referenced by ability lines.
type SVar struct {
	Name       string
	Definition string
}

// Line renders the definition in Forge script notation.
func (v SVar) Line() string {
	return "SVar:" + v.Name + ":" + v.Definition
}

// Allocator issues unique support-variable names within one compilation
// pass. The counter starts at 1 and is never shared across cards: each
// Compile call creates a fresh allocator, so recompiling the same text
// yields identical names.
type Allocator struct {
	n int
}

// Allocate returns base with the next counter value appended.
func (a *Allocator) Allocate(base string) string {
	a.n++
	return base + strconv.Itoa(a.n)
}
