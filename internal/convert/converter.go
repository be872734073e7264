// Package convert orchestrates a whole conversion run: read the card
// database, compile each card, and place the script files.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/peterkuimelis/forgec/internal/card"
	"github.com/peterkuimelis/forgec/internal/cockatrice"
	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/forge"
	"github.com/peterkuimelis/forgec/internal/report"
)

// Summary counts the outcome of one run. Skipped covers records missing a
// name; unrecognized ability text is not a skip, the card still converts.
type Summary struct {
	Found     int
	Converted int
	Skipped   int
}

// Converter compiles every card of a database into per-card script files
// under OutputDir, one subdirectory per leading letter.
type Converter struct {
	OutputDir string
	Compiler  *compiler.Compiler
	Logger    *zap.Logger
	Recorder  report.Recorder
}

// New returns a Converter. logger and recorder may be nil.
func New(outputDir string, c *compiler.Compiler, logger *zap.Logger, rec report.Recorder) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = report.NewMemoryRecorder()
	}
	return &Converter{OutputDir: outputDir, Compiler: c, Logger: logger, Recorder: rec}
}

// Run converts the database at xmlPath. A document that fails to parse
// aborts the whole run; per-card problems only affect that card.
func (cv *Converter) Run(ctx context.Context, xmlPath string) (Summary, error) {
	cards, err := cockatrice.ReadFile(xmlPath)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	sum.Found = len(cards)
	cv.Logger.Info("card database loaded", zap.String("path", xmlPath), zap.Int("cards", sum.Found))

	for _, c := range cards {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if c.Name == "" {
			sum.Skipped++
			cv.Recorder.Record(report.NewCardSkippedEvent("record has no name"))
			cv.Logger.Warn("skipping unnamed card record")
			continue
		}

		path, err := cv.convertCard(c)
		if err != nil {
			return sum, fmt.Errorf("card %q: %w", c.Name, err)
		}
		sum.Converted++
		cv.Recorder.Record(report.NewFileWrittenEvent(c.Name, path))
	}

	cv.Recorder.Record(report.NewRunSummaryEvent(sum.Found, sum.Converted, sum.Skipped))
	cv.Logger.Info("conversion complete",
		zap.Int("found", sum.Found),
		zap.Int("converted", sum.Converted),
		zap.Int("skipped", sum.Skipped))
	return sum, nil
}

// convertCard compiles one card and writes its script file, returning the
// written path.
func (cv *Converter) convertCard(c card.Card) (string, error) {
	c.Text = card.DecodeEntities(c.Text)
	script := cv.Compiler.Compile(c.Text)

	cv.Recorder.Record(report.NewCardCompiledEvent(c.Name, len(script.Abilities), len(script.SVars)))
	if script.Dropped > 0 {
		cv.Recorder.Record(report.NewBlocksDroppedEvent(c.Name, script.Dropped))
		cv.Logger.Debug("blocks dropped",
			zap.String("card", c.Name), zap.Int("dropped", script.Dropped))
	}

	stem := card.Filename(c.Name)
	dir := filepath.Join(cv.OutputDir, card.Subdir(stem))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, stem+".txt")
	if err := os.WriteFile(path, []byte(forge.Render(c, script)), 0o644); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}

	cv.Logger.Debug("card converted", zap.String("card", c.Name), zap.String("path", path))
	return path, nil
}
