package models

// Ability is an ability attributed to the selection it was found on.
// The struct is comparable; two abilities are duplicates when all fields match.
type Ability struct {
	Source      string `json:"source"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Row is one exported cheatsheet line.
type Row struct {
	Phase       string `json:"phase"`
	Source      string `json:"source"`
	AbilityName string `json:"ability_name"`
	Description string `json:"description"`
}

// Header is the fixed column order of the exported sheet.
var Header = []string{"Phase", "Source", "Ability Name", "Description"}

// Values returns the row cells in Header order.
func (r Row) Values() []interface{} {
	return []interface{}{r.Phase, r.Source, r.AbilityName, r.Description}
}
