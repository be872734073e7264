package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func scanAll(text string) []Block {
	var blocks []Block
	sc := NewBlockScanner(text)
	for sc.Scan() {
		blocks = append(blocks, sc.Block())
	}
	return blocks
}

func TestBlockScanner_SplitsOnSentenceBoundaries(t *testing.T) {
	blocks := scanAll("Flying. Whenever this creature attacks, you gain 1 life.")
	require.Len(t, blocks, 2)
	assert.Equal(t, "Flying. ", blocks[0].Text)
	assert.Equal(t, "Whenever this creature attacks, you gain 1 life.", blocks[1].Text)
	assert.Equal(t, 0, blocks[0].Offset)
	assert.Equal(t, len("Flying. "), blocks[1].Offset)
}

func TestBlockScanner_BraceStartsBlock(t *testing.T) {
	blocks := scanAll("Haste. {T}: Draw a card.")
	require.Len(t, blocks, 2)
	assert.Equal(t, "{T}: Draw a card.", blocks[1].Text)
}

func TestBlockScanner_LowercaseDoesNotSplit(t *testing.T) {
	blocks := scanAll("Sacrifice a creature. then draw a card.")
	require.Len(t, blocks, 1)
}

func TestBlockScanner_LineBreakNeverSplits(t *testing.T) {
	// Keyword lists use embedded line breaks; they belong to one block.
	blocks := scanAll("Flying.\nWhenever this creature dies, you gain 1 life.")
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Text, "\n")
}

func TestBlockScanner_EmptyInput(t *testing.T) {
	assert.Empty(t, scanAll(""))
	assert.Empty(t, scanAll("   \n\t  "))
}

func TestBlockScanner_NoTrailingPunctuation(t *testing.T) {
	blocks := scanAll("Draw a card")
	require.Len(t, blocks, 1)
	assert.Equal(t, "Draw a card", blocks[0].Text)
}

// Blocks must partition the input: concatenating them reconstructs the
// original rules text, whatever shape it has.
func TestBlockScanner_Property_CoverageExact(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringOfN(
			rapid.RuneFrom([]rune("ABa bz.!?{}—\n 123")), 1, 200, -1,
		).Draw(rt, "text")
		if strings.TrimSpace(text) == "" {
			return
		}

		var sb strings.Builder
		prevEnd := 0
		sc := NewBlockScanner(text)
		for sc.Scan() {
			b := sc.Block()
			if b.Offset != prevEnd {
				rt.Fatalf("block at offset %d, previous ended at %d", b.Offset, prevEnd)
			}
			prevEnd = b.Offset + len(b.Text)
			sb.WriteString(b.Text)
		}
		if sb.String() != text {
			rt.Fatalf("blocks do not reconstruct input:\n got %q\nwant %q", sb.String(), text)
		}
	})
}
