// Package forge renders compiled cards in the Forge card script format:
// one directive per line, header first, then ability lines, support
// variables, and the verbatim Oracle text.
package forge

import (
	"strings"

	"github.com/peterkuimelis/forgec/internal/card"
	"github.com/peterkuimelis/forgec/internal/compiler"
)

// NoCost is the ManaCost sentinel for cards without a mana cost.
const NoCost = "no cost"

// Render assembles the full script for one card. The rules text in c.Text
// must already be entity-decoded; script holds its compiled abilities.
// Directive order is fixed: Name, ManaCost, Types, PT, Loyalty, ability
// lines, SVar lines, Oracle.
func Render(c card.Card, script compiler.Script) string {
	var lines []string

	lines = append(lines, "Name:"+c.Name)

	if cost := card.TokenizeManaCost(c.ManaCost); cost != "" {
		lines = append(lines, "ManaCost:"+cost)
	} else {
		lines = append(lines, "ManaCost:"+NoCost)
	}

	if t := card.ReformatTypeLine(c.Type); t != "" {
		lines = append(lines, "Types:"+t)
	}
	if pt := strings.TrimSpace(c.PT); pt != "" {
		lines = append(lines, "PT:"+pt)
	}
	if loyalty := strings.TrimSpace(c.Loyalty); loyalty != "" {
		lines = append(lines, "Loyalty:"+loyalty)
	}

	lines = append(lines, script.Lines()...)
	lines = append(lines, "Oracle:"+card.EscapeOracle(strings.TrimSpace(c.Text)))

	return strings.Join(lines, "\n")
}
