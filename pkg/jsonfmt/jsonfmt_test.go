package jsonfmt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		key      string
		indent   int
		expected string
	}{
		{"nested key compact", `{"a": {"b": 5}}`, "a.b", 0, `5`},
		{"compact document", `{ "a" : [1, 2, {"b": "c"}] }`, "", 0, `{"a":[1,2,{"b":"c"}]}`},
		{"pretty document", `{"a":{"b":5}}`, "", 2, "{\n  \"a\": {\n    \"b\": 5\n  }\n}"},
		{"pretty sub-object", `{"a":{"b":[1]}}`, "a", 4, "{\n    \"b\": [\n        1\n    ]\n}"},
		{"keeps key order", `{"z":1,"a":2}`, "", 0, `{"z":1,"a":2}`},
		{"keeps non-ascii", `{"name":"Kâhl"}`, "name", 0, `"Kâhl"`},
		{"array index", `{"a":[{"b":1},{"b":2}]}`, "a.1.b", 0, `2`},
		{"wildcard characters are literal", `{"a*":1,"ab":2}`, "a*", 0, `1`},
		{"negative indent breaks lines only", `{"a":1}`, "", -1, "{\n\"a\": 1\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format([]byte(tt.input), tt.key, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := Format([]byte(`{"a": }`), "", 2)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = Format([]byte(`{"a": 1} trailing`), "", 2)
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = Format([]byte(`{"a": {"b": 5}}`), "a.c", 2)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.EqualError(t, err, "key not found: a.c")
}

func TestRunStdin(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{File: Stdin, Key: "a.b", Indent: 0}, strings.NewReader(`{"a": {"b": 5}}`), &out)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out.String())

	out.Reset()
	err = Run(Options{Indent: 2}, strings.NewReader(`[1,2]`), &out)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]\n", out.String())
}

func TestRunRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":{"b":[1,2]}}`), 0644))

	var out bytes.Buffer
	require.NoError(t, Run(Options{File: path, Indent: 2}, nil, &out))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  }\n}", string(data))
}

func TestRunCompactFilePrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	original := `{"a": {"b": 5}}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	var out bytes.Buffer
	require.NoError(t, Run(Options{File: path, Key: "a", Indent: 0}, nil, &out))
	assert.Equal(t, "{\"b\":5}\n", out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestRunErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	err := Run(Options{File: missing, Indent: 2}, nil, &bytes.Buffer{})
	assert.EqualError(t, err, "File not found: "+missing)

	err = Run(Options{File: Stdin}, strings.NewReader(`{`), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid JSON: "), err.Error())

	err = Run(Options{File: Stdin, Key: "x"}, strings.NewReader(`{}`), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
