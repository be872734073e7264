package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompile_TriggeredAbility(t *testing.T) {
	c := New()
	script := c.Compile("Whenever this creature attacks, you gain 1 life.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"T:Mode$ Attacks | ValidCard$ Card.Self | TriggerZones$ Battlefield | Execute$ Effect1"+
			" | TriggerDescription$ Whenever this creature attacks, you gain 1 life.",
		script.Abilities[0])
	require.Len(t, script.SVars, 1)
	assert.Equal(t, "SVar:Effect1:GainLife | Defined$ You | LifeAmount$ 1", script.SVars[0].Line())
	assert.Zero(t, script.Dropped)
}

func TestCompile_ActivatedAbility(t *testing.T) {
	c := New()
	script := c.Compile("{T}: Draw a card.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"A:AB$ Draw | Defined$ You | NumCards$ 1 | Cost$ T | SpellDescription$ {T}: Draw a card.",
		script.Abilities[0])
	assert.Empty(t, script.SVars)
}

func TestCompile_ActivatedManaCost(t *testing.T) {
	c := New()
	script := c.Compile("{1}{U}: Untap target permanent.")

	require.Len(t, script.Abilities, 1)
	assert.Contains(t, script.Abilities[0], "Cost$ 1 U")
	assert.Contains(t, script.Abilities[0], "AB$ Untap")
}

func TestCompile_PeriodicAbility(t *testing.T) {
	c := New()
	script := c.Compile("At the beginning of your upkeep, you lose 2 life.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"T:Mode$ Phase | Phase$ Upkeep | Execute$ Effect1"+
			" | TriggerDescription$ At the beginning of your upkeep, you lose 2 life.",
		script.Abilities[0])
	require.Len(t, script.SVars, 1)
	assert.Equal(t, "SVar:Effect1:LoseLife | Defined$ You | LifeAmount$ 2", script.SVars[0].Line())
}

func TestCompile_UpkeepCost(t *testing.T) {
	c := New()
	script := c.Compile("Upkeep— Sacrifice a creature.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"T:Mode$ Phase | Phase$ Upkeep | TriggerZones$ Battlefield | Execute$ UpkeepEffect1"+
			" | TriggerDescription$ Upkeep— Sacrifice a creature",
		script.Abilities[0])
	require.Len(t, script.SVars, 1)
	assert.Equal(t, "SVar:UpkeepEffect1:Sacrifice | SacValid$ Creature", script.SVars[0].Line())
}

func TestCompile_SpellEffect(t *testing.T) {
	c := New()
	script := c.Compile("Draw two cards.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"A:SP$ Draw | Defined$ You | NumCards$ 2 | SpellDescription$ Draw two cards.",
		script.Abilities[0])
}

func TestCompile_StaticAbility(t *testing.T) {
	c := New()
	script := c.Compile("Creatures you control get +1/+1.")

	require.Len(t, script.Abilities, 1)
	assert.True(t, strings.HasPrefix(script.Abilities[0], "S:Mode$ Continuous"))
}

func TestCompile_ModalSpell(t *testing.T) {
	c := New()
	script := c.Compile("Choose one —\n• Draw a card.\n• You gain 2 life.")

	require.Len(t, script.Abilities, 1)
	assert.Equal(t,
		"A:SP$ Charm | CharmNum$ 2 | Choices$ Choices3"+
			" | SpellDescription$ Choose one — • Draw a card. • You gain 2 life.",
		script.Abilities[0])

	require.Len(t, script.SVars, 3)
	assert.Equal(t, "SVar:Choice1:Draw | Defined$ You | NumCards$ 1", script.SVars[0].Line())
	assert.Equal(t, "SVar:Choice2:GainLife | Defined$ You | LifeAmount$ 2", script.SVars[1].Line())
	assert.Equal(t, "SVar:Choices3:Choice1,Choice2", script.SVars[2].Line())
}

func TestCompile_ModalTriggered(t *testing.T) {
	c := New()
	script := c.Compile("Whenever this creature attacks, Choose one —\n• Draw a card.\n• You gain 2 life.")

	require.Len(t, script.Abilities, 1)
	assert.True(t, strings.HasPrefix(script.Abilities[0], "T:Mode$ Attacks"))
	assert.Contains(t, script.Abilities[0], "Execute$ CharmEffect4")
	require.Len(t, script.SVars, 4)
	assert.Equal(t, "SVar:CharmEffect4:AB$ Charm | CharmNum$ 2 | Choices$ Choices3",
		script.SVars[3].Line())
}

// A modal block with one unresolvable choice yields nothing at all.
func TestCompile_ModalAllOrNothing(t *testing.T) {
	c := New()
	script := c.Compile("Choose one —\n• Draw a card.\n• Exile the top card of your library.")

	assert.Empty(t, script.Abilities)
	assert.Empty(t, script.SVars)
	assert.Equal(t, 1, script.Dropped)
}

func TestCompile_UnrecognizedBlockDropped(t *testing.T) {
	c := New()
	script := c.Compile("This creature likes pie.")

	assert.Empty(t, script.Abilities)
	assert.Empty(t, script.SVars)
	assert.Equal(t, 1, script.Dropped)
}

// A failed trigger or effect extraction drops the whole block: no ability
// line without its SVar, no SVar without its ability line.
func TestCompile_ReferentialIntegrity(t *testing.T) {
	c := New()
	texts := []string{
		"Whenever the moon is full, you gain 1 life.",     // trigger fails
		"Whenever this creature attacks, recite a poem.",  // effect fails
		"At the beginning of your nap, you gain 1 life.",  // phase fails
		"At the beginning of your upkeep, recite a poem.", // effect fails
		"{T}: Recite a poem.",                             // effect fails
	}
	for _, text := range texts {
		script := c.Compile(text)
		assert.Empty(t, script.Abilities, "text: %q", text)
		assert.Empty(t, script.SVars, "text: %q", text)
		assert.Equal(t, 1, script.Dropped, "text: %q", text)
	}
}

func TestCompile_MixedBlocks(t *testing.T) {
	c := New()
	script := c.Compile("Flying. Whenever this creature attacks, you gain 1 life. This creature likes pie.")

	// Bare keyword lines and nonsense both drop; the trigger still compiles.
	require.Len(t, script.Abilities, 1)
	assert.Contains(t, script.Abilities[0], "Execute$ Effect1")
	require.Len(t, script.SVars, 1)
	assert.Equal(t, 2, script.Dropped)
}

func TestCompile_SVarNamesPerBlock(t *testing.T) {
	c := New()
	script := c.Compile("Whenever this creature attacks, you gain 1 life. Whenever this creature dies, draw a card.")

	require.Len(t, script.SVars, 2)
	assert.Equal(t, "Effect1", script.SVars[0].Name)
	assert.Equal(t, "Effect2", script.SVars[1].Name)
	assert.Contains(t, script.Abilities[0], "Execute$ Effect1")
	assert.Contains(t, script.Abilities[1], "Execute$ Effect2")
}

func TestCompile_EmptyInput(t *testing.T) {
	c := New()
	for _, text := range []string{"", "   ", "\n\n"} {
		script := c.Compile(text)
		assert.Empty(t, script.Abilities)
		assert.Empty(t, script.SVars)
		assert.Zero(t, script.Dropped)
	}
}

func TestCompile_LongDescriptionTruncated(t *testing.T) {
	c := New()
	long := "Whenever this creature attacks, you gain 1 life" + strings.Repeat(" and more", 20) + "."
	script := c.Compile(long)

	require.Len(t, script.Abilities, 1)
	_, d, ok := strings.Cut(script.Abilities[0], "TriggerDescription$ ")
	require.True(t, ok)
	assert.LessOrEqual(t, len([]rune(d)), 80)
}

// Compiling the same text twice, or on separate Compiler values, yields
// byte-identical scripts.
func TestCompile_Deterministic(t *testing.T) {
	text := "Whenever this creature attacks, you gain 1 life. {T}: Draw a card. Choose one —\n• Draw a card.\n• You gain 2 life."

	a := New().Compile(text)
	b := New().Compile(text)
	assert.Equal(t, a, b)

	c := New()
	assert.Equal(t, c.Compile(text), c.Compile(text))
}

func TestCompile_Property_NeverPanicsAndSVarsReferenced(t *testing.T) {
	c := New()
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOfN(rapid.RuneFrom([]rune("Wheneverthiscreatureattacks,yougain1life.{T}:Drawcard •—\n")), 0, 120, -1).Draw(t, "text")
		script := c.Compile(text)
		joined := strings.Join(script.Abilities, "\n")
		for _, v := range script.SVars {
			if v.Name == "" {
				t.Fatalf("empty SVar name")
			}
			// Aggregate choice SVars are referenced by other SVars instead.
			if !strings.Contains(joined, v.Name) {
				found := false
				for _, w := range script.SVars {
					if w.Name != v.Name && strings.Contains(w.Definition, v.Name) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("orphan SVar %q", v.Name)
				}
			}
		}
	})
}
