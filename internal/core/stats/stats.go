// Package stats assembles a user's stats record from profile, contribution and language data
package stats

import (
	"time"

	"statcard/internal/core/grade"
	"statcard/internal/core/langshare"
	"statcard/internal/core/streak"
	pstrings "statcard/internal/platform/strings"
	ptime "statcard/internal/platform/time"
)

// Profile is the subset of a GitHub user the card needs
type Profile struct {
	Login       string
	Name        string
	Bio         string
	Location    string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// ContributionDay is one calendar day and its contribution count
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Contributions holds the daily window used for streaks and the graph
// plus the year to date total used for grading
type Contributions struct {
	Days      []ContributionDay
	YearTotal int
}

// Counts returns the daily counts in window order
func (c Contributions) Counts() []int {
	out := make([]int, len(c.Days))
	for i, d := range c.Days {
		out[i] = d.Count
	}
	return out
}

// DateLayout is the calendar day format
const DateLayout = "2006-01-02"

// WindowStart returns midnight UTC of the first day of an n day window ending on now's day
func WindowStart(now time.Time, n int) time.Time {
	y, m, d := now.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if n <= 1 {
		return day
	}
	return day.AddDate(0, 0, -(n - 1))
}

// Dense lays counts onto n contiguous days starting at from
// days missing from counts are zero, negative counts clamp to zero
func Dense(from time.Time, n int, counts map[string]int) []ContributionDay {
	if n <= 0 {
		return []ContributionDay{}
	}
	out := make([]ContributionDay, n)
	day := from.UTC()
	for i := range out {
		date := day.Format(DateLayout)
		c := counts[date]
		if c < 0 {
			c = 0
		}
		out[i] = ContributionDay{Date: date, Count: c}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// Record is the assembled stats payload; treat as read only once built
type Record struct {
	Username        string            `json:"username"`
	Name            *string           `json:"name"`
	PublicRepos     int               `json:"public_repos"`
	Followers       int               `json:"followers"`
	Following       int               `json:"following"`
	Bio             *string           `json:"bio"`
	Location        *string           `json:"location"`
	CreatedAt       *time.Time        `json:"created_at"`
	CommitsThisYear int               `json:"commits_this_year"`
	Grade           grade.Grade       `json:"grade"`
	AvatarURL       string            `json:"avatar_url"`
	Languages       []langshare.Share `json:"languages"`
	LongestStreak   int               `json:"longest_streak"`
	CurrentStreak   int               `json:"current_streak"`
	Contributions   []ContributionDay `json:"contributions"`
}

// DisplayName returns the name when set, otherwise the login
func (r Record) DisplayName() string {
	if n := pstrings.Deref(r.Name); n != "" {
		return n
	}
	return r.Username
}

// Synthesize combines the three inputs into a Record
// input slices are copied so the record never aliases caller memory
func Synthesize(p Profile, c Contributions, langs []langshare.Share) Record {
	counts := c.Counts()

	days := make([]ContributionDay, len(c.Days))
	copy(days, c.Days)

	shares := make([]langshare.Share, len(langs))
	copy(shares, langs)

	return Record{
		Username:        p.Login,
		Name:            pstrings.Ptr(p.Name),
		PublicRepos:     p.PublicRepos,
		Followers:       p.Followers,
		Following:       p.Following,
		Bio:             pstrings.Ptr(p.Bio),
		Location:        pstrings.Ptr(p.Location),
		CreatedAt:       ptime.UTCPtr(p.CreatedAt),
		CommitsThisYear: c.YearTotal,
		Grade:           grade.Calculate(p.PublicRepos, p.Followers, c.YearTotal),
		AvatarURL:       p.AvatarURL,
		Languages:       shares,
		LongestStreak:   streak.Longest(counts),
		CurrentStreak:   streak.Current(counts),
		Contributions:   days,
	}
}
