package card

import (
	"golang.org/x/text/cases"

	"statcard/internal/core/grade"
)

// FallbackLanguageColor is used for languages without a known color
const FallbackLanguageColor = "#858585"

// Accent colors shared across sections
const (
	ColorBackground = "#1a202c"
	ColorPanel      = "#2d3748"
	ColorText       = "#ffffff"
	ColorMuted      = "#a0aec0"
	ColorAccent     = "#4299e1"
	ColorTrack      = "#4a5568"
)

// GradeColors is the fill and glow pair for a grade badge
type GradeColors struct {
	Fill string
	Glow string
}

var tierColors = map[grade.Tier]GradeColors{
	grade.TierGold:   {Fill: "#FFD700", Glow: "#FFA500"},
	grade.TierSilver: {Fill: "#C0C0C0", Glow: "#A8A8A8"},
	grade.TierBronze: {Fill: "#CD7F32", Glow: "#B87333"},
	grade.TierNone:   {Fill: "#718096", Glow: "#4A5568"},
}

// ColorsFor returns the badge colors for g
func ColorsFor(g grade.Grade) GradeColors {
	if c, ok := tierColors[g.Tier()]; ok {
		return c
	}
	return tierColors[grade.TierNone]
}

// keyed by case folded language name
var languageColors = map[string]string{}

func init() {
	for name, color := range map[string]string{
		"Python":     "#3572A5",
		"JavaScript": "#f1e05a",
		"TypeScript": "#2b7489",
		"Java":       "#b07219",
		"C++":        "#f34b7d",
		"C":          "#555555",
		"C#":         "#178600",
		"Go":         "#00ADD8",
		"Rust":       "#dea584",
		"Ruby":       "#701516",
		"PHP":        "#4F5D95",
		"HTML":       "#e34c26",
		"CSS":        "#563d7c",
		"Shell":      "#89e051",
		"Dart":       "#00B4AB",
		"Kotlin":     "#A97BFF",
		"Swift":      "#ffac45",
	} {
		languageColors[fold(name)] = color
	}
}

// a Caser is stateful, build one per call
func fold(s string) string { return cases.Fold().String(s) }

// LanguageColor returns the display color for a language name, matched case insensitively
func LanguageColor(name string) string {
	if c, ok := languageColors[fold(name)]; ok {
		return c
	}
	return FallbackLanguageColor
}
