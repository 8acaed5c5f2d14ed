package github

import "time"

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	FullName     string    `json:"full_name"`
	Fork         bool      `json:"fork"`
	Language     string    `json:"language"`
	LanguagesURL string    `json:"languages_url"`
	Stargazers   int       `json:"stargazers_count"`
	PushedAt     time.Time `json:"pushed_at"`
	HTMLURL      string    `json:"html_url"`
}

// Language is one entry of a repository's languages object
type Language struct {
	Name  string
	Bytes int64
}

// User is a partial GitHub user document
// nullable strings decode to empty
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	HTMLURL     string    `json:"html_url"`
}

// ContributionDay is one day of the contribution calendar
type ContributionDay struct {
	Date  string
	Count int
}

// ContributionRange selects the calendar window and the year to date total
type ContributionRange struct {
	Login    string
	From     time.Time
	To       time.Time
	YearFrom time.Time
}

// ContributionSummary is the flattened calendar for a window plus the year total
type ContributionSummary struct {
	Days      []ContributionDay
	YearTotal int
}
