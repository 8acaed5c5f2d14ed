package domain

import (
	"context"

	gh "statcard/internal/adapters/github"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Stats(ctx context.Context, username string) (StatsRecord, error)
	Card(ctx context.Context, username string) ([]byte, error)
}

// Upstream is the slice of the GitHub client the service reads from
type Upstream interface {
	UserByLogin(ctx context.Context, login string) (gh.User, error)
	ListUserRepos(ctx context.Context, login string, perPage int) ([]gh.Repo, error)
	LanguagesByURL(ctx context.Context, languagesURL string) ([]gh.Language, error)
	Contributions(ctx context.Context, r gh.ContributionRange) (gh.ContributionSummary, error)
	HasToken() bool
}
