// Package roster reads roster exports and walks their selection trees.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
)

// Load reads and decodes the roster file at path.
func Load(path string) (*models.Document, error) {
	f, err := os.Open(path) // #nosec G304 -- CLI tool accepts user-provided paths
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes a roster document and checks the keys the walk depends on.
func Decode(r io.Reader) (*models.Document, error) {
	var doc models.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidRoster)
		}
		return nil, fmt.Errorf("%w: trailing data after document: %v", ErrInvalidRoster, err)
	}

	if doc.Roster == nil {
		return nil, fmt.Errorf("%w: missing \"roster\"", ErrInvalidRoster)
	}
	if doc.Roster.Forces == nil {
		return nil, fmt.Errorf("%w: missing \"roster.forces\"", ErrInvalidRoster)
	}
	for i, force := range doc.Roster.Forces {
		if force.Selections == nil {
			return nil, fmt.Errorf("%w: missing \"selections\" in force %d", ErrInvalidRoster, i)
		}
	}

	return &doc, nil
}
