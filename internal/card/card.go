// Package card models one card record and the deterministic string
// transforms between Cockatrice and Forge conventions.
package card

import "strings"

// Card is one card record as supplied by the document reader. All fields
// are raw Cockatrice-side strings; the transforms in this package produce
// the Forge-side forms.
type Card struct {
	Name     string
	ManaCost string
	Type     string
	PT       string
	Loyalty  string
	Text     string
	IsToken  bool
}

var entityReplacer = strings.NewReplacer(
	"&apos;", "'",
	"&quot;", `"`,
	"&amp;", "&",
)

// DecodeEntities resolves the HTML entity encoding some exports leave in
// rules text. Must run before compilation.
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

var oracleReplacer = strings.NewReplacer(
	"\n", `\n`,
	"—", "-",
)

// EscapeOracle renders rules text as a single Oracle line: embedded line
// breaks become the literal two-character sequence \n, em dashes become
// hyphens.
func EscapeOracle(text string) string {
	return oracleReplacer.Replace(text)
}
