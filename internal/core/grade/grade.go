// Package grade turns activity counts into an ordinal letter grade
package grade

import (
	"encoding/json"
	"fmt"
)

// Grade is an ordinal rating, higher is better
type Grade uint8

// Grades from lowest to highest
const (
	C Grade = iota
	B
	BPlus
	A
	APlus
	S
	SPlus
)

// Tier groups grades by the metal used on the card
type Tier uint8

// Tiers
const (
	TierNone Tier = iota
	TierBronze
	TierSilver
	TierGold
)

// threshold pairs a minimum score with the grade it earns, highest first
type threshold struct {
	min   float64
	grade Grade
}

var thresholds = []threshold{
	{500, SPlus},
	{300, S},
	{150, APlus},
	{100, A},
	{50, BPlus},
	{25, B},
}

var labels = [...]string{
	C:     "C",
	B:     "B",
	BPlus: "B+",
	A:     "A",
	APlus: "A+",
	S:     "S",
	SPlus: "S+",
}

// Score is the weighted activity score
func Score(repos, followers, commits int) float64 {
	return 2*float64(repos) + 1.5*float64(followers) + 0.5*float64(commits)
}

// Of maps a score to a grade; first matching threshold wins
func Of(score float64) Grade {
	for _, t := range thresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return C
}

// Calculate is Of(Score(repos, followers, commits))
func Calculate(repos, followers, commits int) Grade {
	return Of(Score(repos, followers, commits))
}

// Parse returns the grade for a label like "A+"
func Parse(s string) (Grade, error) {
	for g, l := range labels {
		if l == s {
			return Grade(g), nil
		}
	}
	return C, fmt.Errorf("grade: unknown label %q", s)
}

// String returns the letter label
func (g Grade) String() string {
	if int(g) < len(labels) {
		return labels[g]
	}
	return "?"
}

// Tier returns the metal tier for the grade
func (g Grade) Tier() Tier {
	switch g {
	case S, SPlus:
		return TierGold
	case A, APlus:
		return TierSilver
	case B, BPlus:
		return TierBronze
	default:
		return TierNone
	}
}

// MarshalJSON encodes the grade as its label
func (g Grade) MarshalJSON() ([]byte, error) { return json.Marshal(g.String()) }

// UnmarshalJSON decodes a label
func (g *Grade) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}
