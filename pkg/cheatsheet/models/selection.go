package models

// Selection is a unit, model or wargear entry in the roster tree.
type Selection struct {
	// Name is nil when the "name" key is absent.
	Name *string `json:"name"`
	// Profiles holds the characteristic blocks attached to the selection.
	Profiles []Profile `json:"profiles"`
	// Selections holds child entries. A nil slice marks a leaf.
	Selections []Selection `json:"selections"`
}

// DisplayName returns the selection name, or UnknownSource when absent.
func (s *Selection) DisplayName() string {
	if s.Name == nil {
		return UnknownSource
	}
	return *s.Name
}

// Profile is a named characteristic block such as weapon stats or ability text.
type Profile struct {
	// TypeName is the category tag, e.g. "Abilities".
	TypeName string `json:"typeName"`
	// Name is nil when the "name" key is absent.
	Name *string `json:"name"`
	// Characteristics holds the profile values; element 0 carries ability text.
	Characteristics []Characteristic `json:"characteristics"`
}

// IsAbility reports whether the profile carries ability text.
func (p *Profile) IsAbility() bool {
	return p.TypeName == AbilitiesType
}

// Characteristic is a single named value of a profile.
type Characteristic struct {
	Name string `json:"name"`
	// Text is nil when the "$text" key is absent.
	Text *string `json:"$text"`
}
