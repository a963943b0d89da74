package cheatsheet

import (
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/phase"
)

// Cheatsheet maps phases to abilities. Phases keep the order in which they
// were first added; abilities keep insertion order within a phase.
type Cheatsheet struct {
	order   []phase.Phase
	buckets map[phase.Phase][]models.Ability
}

// New returns an empty cheatsheet.
func New() *Cheatsheet {
	return &Cheatsheet{buckets: make(map[phase.Phase][]models.Ability)}
}

// Add appends a to the bucket of p.
func (c *Cheatsheet) Add(p phase.Phase, a models.Ability) {
	if _, ok := c.buckets[p]; !ok {
		c.order = append(c.order, p)
	}
	c.buckets[p] = append(c.buckets[p], a)
}

// Phases returns the phases in first-added order.
func (c *Cheatsheet) Phases() []phase.Phase {
	return append([]phase.Phase(nil), c.order...)
}

// Abilities returns the abilities recorded under p.
func (c *Cheatsheet) Abilities(p phase.Phase) []models.Ability {
	return append([]models.Ability(nil), c.buckets[p]...)
}

// Len returns the number of (phase, ability) entries.
func (c *Cheatsheet) Len() int {
	n := 0
	for _, abilities := range c.buckets {
		n += len(abilities)
	}
	return n
}

// Dedupe returns a copy of c in which each phase keeps only the first
// occurrence of every ability. The same ability under two phases is kept
// once in each.
func (c *Cheatsheet) Dedupe() *Cheatsheet {
	out := New()
	for _, p := range c.order {
		seen := make(map[models.Ability]struct{}, len(c.buckets[p]))
		for _, a := range c.buckets[p] {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			out.Add(p, a)
		}
	}
	return out
}

// Rows flattens c into export rows, phase by phase.
func (c *Cheatsheet) Rows() []models.Row {
	rows := make([]models.Row, 0, c.Len())
	for _, p := range c.order {
		for _, a := range c.buckets[p] {
			rows = append(rows, models.Row{
				Phase:       p.String(),
				Source:      a.Source,
				AbilityName: a.Name,
				Description: a.Description,
			})
		}
	}
	return rows
}
