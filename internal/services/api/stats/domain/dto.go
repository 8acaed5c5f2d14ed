// Package domain holds DTOs for stats http and service contracts
package domain

import (
	"statcard/internal/core/langshare"
	"statcard/internal/core/stats"
)

type (
	// StatsRecord is the assembled payload served as JSON and rendered as a card
	StatsRecord = stats.Record
	// Profile is the subset of a GitHub user the card needs
	Profile = stats.Profile
	// Contributions is the daily window plus year to date total
	Contributions = stats.Contributions
	// ContributionDay is one calendar day
	ContributionDay = stats.ContributionDay
	// LanguageShare is one language's percentage
	LanguageShare = langshare.Share
)

// StatsQuery is the query string accepted by /stats and /stats/svg
type StatsQuery struct {
	Username string `query:"username" json:"username" validate:"required" example:"octocat"`
}

// NotFoundBody is the plain text body for unknown or unreachable users
const NotFoundBody = "User not found"

// Synthesize merges the three partial results into one record
func Synthesize(p Profile, c Contributions, langs []LanguageShare) StatsRecord {
	return stats.Synthesize(p, c, langs)
}
