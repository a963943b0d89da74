// Package models defines data structures for roster extraction and cheatsheet export.
package models

// UnknownSource is the source name used for selections without a name.
const UnknownSource = "Unknown"

// AbilitiesType is the profile type name that marks ability text.
const AbilitiesType = "Abilities"

// Document is the top-level roster export.
type Document struct {
	// Roster is nil when the "roster" key is absent.
	Roster *Roster `json:"roster"`
}

// Roster holds the forces of an army list.
type Roster struct {
	// Forces is nil when the "forces" key is absent.
	Forces []Force `json:"forces"`
}

// Force is one detachment within a roster.
type Force struct {
	// Selections is nil when the "selections" key is absent.
	Selections []Selection `json:"selections"`
}
