package card

import (
	"regexp"
	"strings"
)

var (
	filenameStripRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Filename derives the script filename stem for a card name: lowercase,
// apostrophes dropped, ampersands spelled out, remaining punctuation
// stripped, whitespace collapsed to underscores.
func Filename(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, "&", "and")
	name = filenameStripRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	return whitespaceRe.ReplaceAllString(name, "_")
}

// Subdir is the per-letter output directory for a filename stem. Stems not
// starting with a letter or digit land in "z".
func Subdir(stem string) string {
	if stem == "" || !(stem[0] >= 'a' && stem[0] <= 'z' || isDigit(stem[0])) {
		return "z"
	}
	return stem[:1]
}

// ReformatTypeLine converts a Cockatrice type string to Forge form: the
// " - " separating main type from subtypes becomes a plain space.
func ReformatTypeLine(typeLine string) string {
	typeLine = whitespaceRe.ReplaceAllString(strings.TrimSpace(typeLine), " ")
	if !strings.Contains(typeLine, " - ") {
		return typeLine
	}
	parts := strings.Split(typeLine, " - ")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " ")
}
