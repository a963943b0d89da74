package cheatsheet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/phase"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/roster"
)

// Result is the outcome of building a cheatsheet from a roster.
type Result struct {
	// Cheatsheet holds the classified abilities before deduplication.
	Cheatsheet *Cheatsheet
	// Skipped lists malformed Abilities profiles ignored in non-strict mode.
	Skipped []*ProfileError
	// Selections is the number of selections visited.
	Selections int
	// Abilities is the number of Abilities profiles read.
	Abilities int
	// Unmatched is the number of abilities that matched no phase.
	Unmatched int
}

// Build walks every force of doc and files each ability under the phases
// its description matches. Abilities matching no phase are dropped.
func Build(doc *models.Document, opts Options) (*Result, error) {
	if doc == nil || doc.Roster == nil {
		return nil, fmt.Errorf("%w: missing \"roster\"", ErrInvalidRoster)
	}

	log := opts.logger()
	res := &Result{Cheatsheet: New()}

	for _, force := range doc.Roster.Forces {
		for sel := range roster.Walk(force.Selections) {
			res.Selections++
			source := sel.DisplayName()

			for i := range sel.Profiles {
				profile := &sel.Profiles[i]
				if !profile.IsAbility() {
					continue
				}

				ability, err := readAbility(source, profile)
				if err != nil {
					if opts.Strict {
						return nil, err
					}
					log.Warn("skipping malformed ability", zap.Error(err))
					res.Skipped = append(res.Skipped, err)
					continue
				}
				res.Abilities++

				phases := phase.Detect(ability.Description)
				if len(phases) == 0 {
					res.Unmatched++
					log.Debug("ability matched no phase",
						zap.String("source", ability.Source),
						zap.String("ability", ability.Name))
					continue
				}
				for _, p := range phases {
					res.Cheatsheet.Add(p, ability)
				}
			}
		}
	}

	return res, nil
}

// readAbility extracts the ability from an Abilities profile. The
// description is the $text of the first characteristic.
func readAbility(source string, p *models.Profile) (models.Ability, *ProfileError) {
	var name string
	if p.Name != nil {
		name = *p.Name
	}

	switch {
	case len(p.Characteristics) == 0:
		return models.Ability{}, NewProfileError(source, name, "no characteristics")
	case p.Characteristics[0].Text == nil:
		return models.Ability{}, NewProfileError(source, name, "no $text")
	case p.Name == nil:
		return models.Ability{}, NewProfileError(source, name, "no name")
	}

	return models.Ability{
		Source:      source,
		Name:        name,
		Description: *p.Characteristics[0].Text,
	}, nil
}
