// Package cheatsheet builds phase-bucketed ability cheatsheets from roster exports.
package cheatsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutput is the spreadsheet written when no output path is given.
	DefaultOutput = "army_cheatsheet.xlsx"
	// DefaultSheet is the name of the single exported sheet.
	DefaultSheet = "Cheatsheet"
)

// Options configures cheatsheet generation.
type Options struct {
	// Output is the path of the spreadsheet to write.
	Output string `yaml:"output"`
	// Sheet is the name of the exported sheet.
	Sheet string `yaml:"sheet"`
	// Strict makes a malformed Abilities profile fail the whole run.
	// When false the profile is skipped and reported in Result.Skipped.
	Strict bool `yaml:"strict"`
	// Verbose enables debug logging in the CLI.
	Verbose bool `yaml:"verbose"`
	// Logger receives progress and skip warnings. Nil disables logging.
	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Output: DefaultOutput,
		Sheet:  DefaultSheet,
	}
}

// LoadOptions reads options from a YAML file on top of DefaultOptions.
// A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Sheet == "" {
		opts.Sheet = DefaultSheet
	}

	return opts, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
