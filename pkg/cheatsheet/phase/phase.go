// Package phase classifies ability text into game-turn phases.
//
// Matching is case-insensitive: text is lower-cased and every pattern is
// compiled with (?i), so capitalised table entries such as "Hit roll" and
// "At the start of the battle" match as well.
package phase

import (
	"regexp"
	"strings"
)

// Phase is a game-turn segment used as a classification label.
type Phase string

const (
	StartOfBattle    Phase = "Start of the Battle"
	Command          Phase = "Your Command Phase"
	BattleShock      Phase = "Your Battle-shock Phase"
	Movement         Phase = "Your Movement Phase"
	Shooting         Phase = "Your Shooting Phase"
	Charge           Phase = "Your Charge Phase"
	Fight            Phase = "Your Fight Phase"
	OpponentShooting Phase = "Opponent's Shooting Phase"
)

// String returns the phase label.
func (p Phase) String() string {
	return string(p)
}

type rule struct {
	phase    Phase
	sources  []string
	patterns []*regexp.Regexp
}

// rules is the fixed phase table. Patterns overlap on purpose: roll
// modifiers are listed under both Shooting and Fight.
var rules = compile([]struct {
	phase    Phase
	patterns []string
}{
	{StartOfBattle, []string{
		`At the start of the battle`,
	}},
	{Command, []string{
		`your command phase`,
		`command phase`,
	}},
	{BattleShock, []string{
		`battle-shock`,
		`leadership`,
	}},
	{Movement, []string{
		`your movement phase`,
		`normal, advance or fall back move`,
		`advance move`,
		`fall back move`,
		`normal move`,
		`fell back`,
	}},
	{Shooting, []string{
		`your shooting phase`,
		`\bshoot\b`,
		`wound roll`,
		`hit roll`,
		`damage roll`,
		`ballistic skill`,
		`selected to shoot`,
	}},
	{Charge, []string{
		`your charge phase`,
		`declare a charge`,
	}},
	{Fight, []string{
		`your fight phase`,
		`selected to fight`,
		`pile-in`,
		`consolidation`,
		`Wound roll`,
		`Hit roll`,
		`damage roll`,
		`weapon Skill`,
	}},
	{OpponentShooting, []string{
		`opponent's shooting phase`,
	}},
})

func compile(table []struct {
	phase    Phase
	patterns []string
}) []rule {
	out := make([]rule, 0, len(table))
	for _, entry := range table {
		r := rule{phase: entry.phase, sources: entry.patterns}
		for _, src := range entry.patterns {
			// Text is lower-cased before matching, so capitalised
			// table entries need the case-insensitive flag to match.
			r.patterns = append(r.patterns, regexp.MustCompile(`(?i)`+src))
		}
		out = append(out, r)
	}
	return out
}

// Detect returns every phase with at least one pattern matching text.
// The result is duplicate-free and follows table order. An empty result
// means the text belongs to no phase.
func Detect(text string) []Phase {
	lower := strings.ToLower(text)

	var phases []Phase
	for _, r := range rules {
		for _, re := range r.patterns {
			if re.MatchString(lower) {
				phases = append(phases, r.phase)
				break
			}
		}
	}
	return phases
}

// All returns the phases in table order.
func All() []Phase {
	out := make([]Phase, len(rules))
	for i, r := range rules {
		out[i] = r.phase
	}
	return out
}

// Patterns returns the pattern sources of p, or nil for an unknown phase.
func Patterns(p Phase) []string {
	for _, r := range rules {
		if r.phase == p {
			return append([]string(nil), r.sources...)
		}
	}
	return nil
}
