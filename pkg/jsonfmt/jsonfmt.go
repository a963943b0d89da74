// Package jsonfmt pretty-prints JSON documents and extracts dotted sub-keys.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultIndent is the pretty-print indent width.
const DefaultIndent = 2

// ErrInvalidJSON indicates input that is not a single JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")

// SyntaxError wraps a JSON decoding failure.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidJSON, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidJSON
}

// ErrKeyNotFound indicates a dotted key with a missing segment.
var ErrKeyNotFound = errors.New("key not found")

// Lookup returns the raw JSON value at key, a dot-separated path of object
// keys (array elements are addressed by index). An empty key returns the
// whole document.
func Lookup(data []byte, key string) ([]byte, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	if key == "" {
		return bytes.TrimSpace(data), nil
	}

	segments := strings.Split(key, ".")
	for i, seg := range segments {
		segments[i] = gjson.Escape(seg)
	}

	res := gjson.GetBytes(data, strings.Join(segments, "."))
	if !res.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return []byte(res.Raw), nil
}

// Format looks up key and renders the value. A zero indent produces the
// compact form without spaces; otherwise nested values are indented by
// indent spaces per level.
func Format(data []byte, key string, indent int) ([]byte, error) {
	raw, err := Lookup(data, key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if indent == 0 {
		err = json.Compact(&buf, raw)
	} else {
		err = json.Indent(&buf, raw, "", strings.Repeat(" ", max(indent, 0)))
	}
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return buf.Bytes(), nil
}

func validate(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return &SyntaxError{Err: err}
	}
	return nil
}
