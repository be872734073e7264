package compiler

import (
	"regexp"
	"strings"
)

// Category is the ability class assigned to a block. Exactly one category
// per block; CategoryUnrecognized yields no output.
type Category int

const (
	CategoryUnrecognized Category = iota
	CategoryModal
	CategoryTriggered
	CategoryPeriodic
	CategoryUpkeepCost
	CategoryActivated
	CategoryStatic
	CategorySpell
)

func (c Category) String() string {
	switch c {
	case CategoryModal:
		return "Modal"
	case CategoryTriggered:
		return "Triggered"
	case CategoryPeriodic:
		return "Periodic"
	case CategoryUpkeepCost:
		return "UpkeepCost"
	case CategoryActivated:
		return "Activated"
	case CategoryStatic:
		return "Static"
	case CategorySpell:
		return "Spell"
	default:
		return "Unrecognized"
	}
}

var activatedCostRe = regexp.MustCompile(`^\{.+?\}:`)

// staticCues mark continuous-effect phrasing.
var staticCues = []string{"gets ", "have ", "has ", "can't", "doesn't", "is ", "are "}

// classifyRules is an ordered decision list; the first matching rule wins.
// Order matters: the later rules are broader and would over-match earlier
// blocks (a modal trigger starts with "Whenever", a triggered ability can
// contain "is ").
var classifyRules = []struct {
	category Category
	match    func(string) bool
}{
	{CategoryModal, func(t string) bool {
		return strings.Contains(t, "Choose") &&
			(strings.Contains(t, "—") || strings.Contains(t, "-"))
	}},
	{CategoryTriggered, func(t string) bool { return strings.HasPrefix(t, "Whenever ") }},
	{CategoryTriggered, func(t string) bool { return strings.HasPrefix(t, "When ") }},
	{CategoryPeriodic, func(t string) bool { return strings.HasPrefix(t, "At the beginning of ") }},
	{CategoryUpkeepCost, func(t string) bool {
		return strings.Contains(t, "Upkeep—") || strings.Contains(t, "Upkeep:")
	}},
	{CategoryActivated, activatedCostRe.MatchString},
	{CategoryStatic, func(t string) bool { return containsAny(t, staticCues) }},
	{CategorySpell, func(string) bool { return true }},
}

// Classify assigns exactly one category to a trimmed ability block.
func Classify(text string) Category {
	for _, r := range classifyRules {
		if r.match(text) {
			return r.category
		}
	}
	return CategoryUnrecognized
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
