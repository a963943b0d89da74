package roster

import "errors"

// ErrFileNotFound indicates the roster file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidRoster indicates the roster is not JSON of the expected shape.
var ErrInvalidRoster = errors.New("invalid roster")
