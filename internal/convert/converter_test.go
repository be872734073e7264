package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/report"
)

const testDB = `<?xml version="1.0" encoding="UTF-8"?>
<cockatrice_carddatabase version="4">
  <cards>
    <card>
      <name>Loyal Pegasus</name>
      <text>Whenever this creature attacks, you gain 1 life.</text>
      <prop><manacost>1WW</manacost><type>Creature - Pegasus</type><pt>2/1</pt></prop>
    </card>
    <card>
      <name></name>
      <text>Nameless.</text>
    </card>
    <card>
      <name>Pie Golem</name>
      <text>This creature likes pie.</text>
      <prop><manacost>3</manacost><type>Artifact Creature - Golem</type><pt>3/3</pt></prop>
    </card>
  </cards>
</cockatrice_carddatabase>`

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.xml")
	require.NoError(t, os.WriteFile(path, []byte(testDB), 0o644))
	return path
}

func TestConverter_Run(t *testing.T) {
	outDir := t.TempDir()
	rec := report.NewMemoryRecorder()
	cv := New(outDir, compiler.New(), nil, rec)

	sum, err := cv.Run(context.Background(), writeTestDB(t))
	require.NoError(t, err)

	assert.Equal(t, Summary{Found: 3, Converted: 2, Skipped: 1}, sum)

	// One file per named card, under the per-letter subdirectory.
	data, err := os.ReadFile(filepath.Join(outDir, "l", "loyal_pegasus.txt"))
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Name:Loyal Pegasus\n"))
	assert.Contains(t, text, "ManaCost:1 W W")
	assert.Contains(t, text, "T:Mode$ Attacks")
	assert.Contains(t, text, "SVar:Effect1:GainLife | Defined$ You | LifeAmount$ 1")

	// Unrecognized text still converts; the Oracle line preserves it.
	data, err = os.ReadFile(filepath.Join(outDir, "p", "pie_golem.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Oracle:This creature likes pie.")
}

func TestConverter_Run_Events(t *testing.T) {
	rec := report.NewMemoryRecorder()
	cv := New(t.TempDir(), compiler.New(), nil, rec)

	_, err := cv.Run(context.Background(), writeTestDB(t))
	require.NoError(t, err)

	assert.Len(t, rec.EventsOfType(report.EventCardCompiled), 2)
	assert.Len(t, rec.EventsOfType(report.EventCardSkipped), 1)
	assert.Len(t, rec.EventsOfType(report.EventFileWritten), 2)
	assert.Len(t, rec.EventsOfType(report.EventBlocksDropped), 1)

	assert.Equal(t, report.EventRunSummary, rec.LastEvent().Type)
}

func TestConverter_Run_MissingDatabase(t *testing.T) {
	cv := New(t.TempDir(), compiler.New(), nil, nil)
	_, err := cv.Run(context.Background(), filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestConverter_Run_CanceledContext(t *testing.T) {
	cv := New(t.TempDir(), compiler.New(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cv.Run(ctx, writeTestDB(t))
	assert.ErrorIs(t, err, context.Canceled)
}
