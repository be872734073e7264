package compiler

import (
	"regexp"
	"strings"
)

var pumpRe = regexp.MustCompile(`gets?\s+([+\-]\d+)/([+\-]\d+)`)

// grantKeywords are the evergreen keywords a static ability can grant.
var grantKeywords = []string{
	"vigilance", "flying", "trample", "haste", "first strike", "double strike",
	"indestructible", "hexproof", "shroud", "reach", "lifelink", "menace",
}

// staticAbility renders a continuous-effect line. It always succeeds: text
// with no recognized pump or keyword grant becomes a description-only line.
func staticAbility(text string) string {
	lower := strings.ToLower(text)

	if m := pumpRe.FindStringSubmatch(text); m != nil {
		return "S:Mode$ Continuous | Affected$ " + affected(lower) +
			" | AddPower$ " + m[1] + " | AddToughness$ " + m[2] +
			" | Duration$ " + duration(lower) +
			" | Description$ " + flatten(text)
	}

	if strings.Contains(lower, "can't") || strings.Contains(lower, "cannot") {
		return "S:Mode$ Continuous | Description$ " + flatten(text)
	}

	if strings.Contains(lower, "has ") || strings.Contains(lower, "have ") {
		if kws := grantedKeywords(lower); len(kws) > 0 {
			return "S:Mode$ Continuous | Affected$ " + affected(lower) +
				" | AddKeyword$ " + strings.Join(kws, " & ") +
				" | Duration$ " + duration(lower) +
				" | Description$ " + flatten(text)
		}
	}

	return "S:Mode$ Continuous | Description$ " + flatten(text)
}

func grantedKeywords(lower string) []string {
	var found []string
	for _, kw := range grantKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// affected derives the affected-set filter from controller phrasing.
func affected(lower string) string {
	if strings.Contains(lower, "creatures you control") ||
		(strings.Contains(lower, "creature") && strings.Contains(lower, "you control")) {
		return "Creature.YouCtrl"
	}
	return "Card"
}
