package cheatsheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/output"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/roster"
)

// Report summarises a completed generation run.
type Report struct {
	*Result
	// Rows are the exported rows after deduplication.
	Rows []models.Row
	// Output is the path of the written spreadsheet.
	Output string
}

// Generate reads the roster at path, builds and deduplicates the cheatsheet
// and writes it to opts.Output. Nothing is written when any step fails.
func Generate(path string, opts Options) (*Report, error) {
	log := opts.logger()
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Sheet == "" {
		opts.Sheet = DefaultSheet
	}

	doc, err := roster.Load(path)
	if err != nil {
		return nil, err
	}

	res, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}

	rows := res.Cheatsheet.Dedupe().Rows()
	log.Info("cheatsheet built",
		zap.String("roster", path),
		zap.Int("selections", res.Selections),
		zap.Int("abilities", res.Abilities),
		zap.Int("unmatched", res.Unmatched),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("rows", len(rows)))

	if err := output.WriteXLSX(opts.Output, rows, output.Options{Sheet: opts.Sheet}); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}

	return &Report{Result: res, Rows: rows, Output: opts.Output}, nil
}
