package jsonfmt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Stdin is the file argument that selects standard input.
const Stdin = "-"

// Options configures a formatter run.
type Options struct {
	// File is a path, or Stdin.
	File string
	// Key is an optional dotted path to extract.
	Key string
	// Indent is the pretty-print width; 0 selects compact output.
	Indent int
}

// Run reads the input named by opts and writes the formatted value.
// Pretty output of a file replaces the file contents; everything else goes
// to stdout. Returned errors carry the message shown to the user.
func Run(opts Options, stdin io.Reader, stdout io.Writer) error {
	if opts.File == "" {
		opts.File = Stdin
	}

	var (
		data []byte
		err  error
	)
	if opts.File == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.File) // #nosec G304 -- CLI tool accepts user-provided paths
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("File not found: %s", opts.File)
		}
		return err
	}

	out, err := Format(data, opts.Key, opts.Indent)
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("Invalid JSON: %v", syntaxErr.Err)
		}
		return err
	}

	if opts.Indent != 0 && opts.File != Stdin {
		return os.WriteFile(opts.File, out, 0644)
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
