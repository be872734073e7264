package compiler

import (
	"regexp"
	"strings"
)

var choosePrefixRe = regexp.MustCompile(`(?s)^(.*?)(Choose (?:one|two|up to \w+).*)$`)

// bulletMarkers introduce a modal choice line: bullet, em dash, or hyphen.
var bulletMarkers = []string{"•", "—", "-"}

// splitModalPrefix separates an optional trigger prefix from the
// "Choose …" sentence and its choice list.
func splitModalPrefix(text string) (prefix, choices string) {
	if m := choosePrefixRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return "", text
}

// modalChoices extracts the ordered choice clauses from a "Choose …" block.
// Choices are bullet-marked lines; continuation lines attach to the
// preceding choice. When no bullets are present, line breaks split the
// choices, excluding the leading "Choose" sentence itself.
func modalChoices(text string) []string {
	var choices []string
	bulleted := false
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if clause, ok := cutBullet(ln); ok {
			bulleted = true
			if clause != "" {
				choices = append(choices, clause)
			}
			continue
		}
		if bulleted && len(choices) > 0 {
			choices[len(choices)-1] += " " + ln
		}
	}
	if bulleted {
		return choices
	}

	// No bullet markers: fall back to plain line splits.
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" && !strings.HasPrefix(ln, "Choose") {
			choices = append(choices, ln)
		}
	}
	return choices
}

func cutBullet(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
