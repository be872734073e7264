package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticAbility_Pump(t *testing.T) {
	got := staticAbility("Creatures you control get +1/+1 until end of turn.")
	assert.Equal(t,
		"S:Mode$ Continuous | Affected$ Creature.YouCtrl | AddPower$ +1 | AddToughness$ +1"+
			" | Duration$ EndOfTurn | Description$ Creatures you control get +1/+1 until end of turn.",
		got)
}

func TestStaticAbility_NegativePump(t *testing.T) {
	got := staticAbility("This creature gets -2/-1.")
	assert.Contains(t, got, "AddPower$ -2")
	assert.Contains(t, got, "AddToughness$ -1")
	assert.Contains(t, got, "Duration$ Permanent")
	assert.Contains(t, got, "Affected$ Card")
}

func TestStaticAbility_KeywordGrant(t *testing.T) {
	got := staticAbility("Creatures you control have flying and vigilance.")
	assert.Contains(t, got, "AddKeyword$ vigilance & flying")
	assert.Contains(t, got, "Affected$ Creature.YouCtrl")
}

func TestStaticAbility_Restriction(t *testing.T) {
	got := staticAbility("This creature can't block.")
	assert.Equal(t, "S:Mode$ Continuous | Description$ This creature can't block.", got)
}

func TestStaticAbility_FallbackDescriptionOnly(t *testing.T) {
	got := staticAbility("Each player's maximum hand size is reduced by one.")
	assert.Equal(t,
		"S:Mode$ Continuous | Description$ Each player's maximum hand size is reduced by one.",
		got)
}

func TestStaticAbility_FlattensLineBreaks(t *testing.T) {
	got := staticAbility("Creatures you control\nhave haste.")
	assert.Contains(t, got, "Description$ Creatures you control have haste.")
}
