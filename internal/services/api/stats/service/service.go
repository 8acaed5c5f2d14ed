// Package service contains stats workflows
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	gh "statcard/internal/adapters/github"
	"statcard/internal/core/card"
	"statcard/internal/core/langshare"
	"statcard/internal/core/stats"
	perr "statcard/internal/platform/errors"
	"statcard/internal/platform/logger"
	"statcard/internal/services/api/stats/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Options control fetch limits and per call timeouts
type Options struct {
	RepoLimit       int
	IncludeForks    bool
	TopLanguages    int
	LangConcurrency int
	ContribDays     int

	UserTimeout    time.Duration
	ReposTimeout   time.Duration
	LangTimeout    time.Duration
	GraphQLTimeout time.Duration
}

// DefaultOptions mirrors the documented defaults
func DefaultOptions() Options {
	return Options{
		RepoLimit:       gh.MaxPerPage,
		TopLanguages:    5,
		LangConcurrency: 8,
		ContribDays:     90,
		UserTimeout:     10 * time.Second,
		ReposTimeout:    10 * time.Second,
		LangTimeout:     5 * time.Second,
		GraphQLTimeout:  10 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RepoLimit <= 0 || o.RepoLimit > gh.MaxPerPage {
		o.RepoLimit = d.RepoLimit
	}
	if o.TopLanguages <= 0 {
		o.TopLanguages = d.TopLanguages
	}
	if o.LangConcurrency <= 0 {
		o.LangConcurrency = d.LangConcurrency
	}
	if o.ContribDays <= 0 {
		o.ContribDays = d.ContribDays
	}
	if o.UserTimeout <= 0 {
		o.UserTimeout = d.UserTimeout
	}
	if o.ReposTimeout <= 0 {
		o.ReposTimeout = d.ReposTimeout
	}
	if o.LangTimeout <= 0 {
		o.LangTimeout = d.LangTimeout
	}
	if o.GraphQLTimeout <= 0 {
		o.GraphQLTimeout = d.GraphQLTimeout
	}
	return o
}

// Svc implements the stats service
type Svc struct {
	gh  domain.Upstream
	opt Options
	now func() time.Time
}

// New constructs a stats service
func New(up domain.Upstream, opt Options) *Svc {
	if up == nil {
		panic("stats.Service requires a non nil Upstream")
	}
	return &Svc{gh: up, opt: opt.withDefaults(), now: time.Now}
}

// Stats fetches the profile then contributions and languages side by side
// only a missing or unreachable profile is an error; the other sections degrade to empty
func (s *Svc) Stats(ctx context.Context, username string) (domain.StatsRecord, error) {
	ctx = logger.WithRequest(ctx, "", username)
	p, err := s.fetchProfile(ctx, username)
	if err != nil {
		return domain.StatsRecord{}, err
	}
	login := p.Login
	if login == "" {
		login = username
		p.Login = username
	}

	var (
		contrib domain.Contributions
		langs   []domain.LanguageShare
	)
	var g errgroup.Group
	g.Go(func() error {
		contrib = s.fetchContributions(ctx, login)
		return nil
	})
	g.Go(func() error {
		langs = s.fetchLanguages(ctx, login)
		return nil
	})
	_ = g.Wait()

	return domain.Synthesize(p, contrib, langs), nil
}

// Card renders the stats for username as SVG
func (s *Svc) Card(ctx context.Context, username string) ([]byte, error) {
	rec, err := s.Stats(ctx, username)
	if err != nil {
		return nil, err
	}
	return card.Render(rec)
}

func (s *Svc) fetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	log := logger.C(ctx)
	cctx, cancel := context.WithTimeout(ctx, s.opt.UserTimeout)
	defer cancel()

	u, err := s.gh.UserByLogin(cctx, username)
	if err != nil {
		if gh.IsNotFound(err) {
			log.Debug().Msg("stats user not found")
			return domain.Profile{}, perr.WithOp(perr.NotFoundf("user %s not found", username), "stats.fetchProfile")
		}
		log.Warn().Err(err).Bool("transient", gh.IsTransient(err)).Msg("stats profile lookup failed")
		return domain.Profile{}, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "profile lookup for %s failed", username), "stats.fetchProfile")
	}

	return domain.Profile{
		Login:       u.Login,
		Name:        u.Name,
		Bio:         u.Bio,
		Location:    u.Location,
		AvatarURL:   u.AvatarURL,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		CreatedAt:   u.CreatedAt,
	}, nil
}

func (s *Svc) fetchContributions(ctx context.Context, login string) domain.Contributions {
	log := logger.C(ctx)
	if !s.gh.HasToken() {
		log.Debug().Msg("stats contributions skipped without token")
		return domain.Contributions{}
	}

	now := s.now().UTC()
	from := stats.WindowStart(now, s.opt.ContribDays)
	yearFrom := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	cctx, cancel := context.WithTimeout(ctx, s.opt.GraphQLTimeout)
	defer cancel()

	sum, err := s.gh.Contributions(cctx, gh.ContributionRange{
		Login:    login,
		From:     from,
		To:       now,
		YearFrom: yearFrom,
	})
	if err != nil {
		log.Warn().Err(err).Bool("transient", gh.IsTransient(err)).Msg("stats contributions unavailable")
		return domain.Contributions{}
	}

	counts := make(map[string]int, len(sum.Days))
	for _, d := range sum.Days {
		counts[d.Date] = d.Count
	}
	return domain.Contributions{
		Days:      stats.Dense(from, s.opt.ContribDays, counts),
		YearTotal: sum.YearTotal,
	}
}

func (s *Svc) fetchLanguages(ctx context.Context, login string) []domain.LanguageShare {
	log := logger.C(ctx)

	lctx, cancel := context.WithTimeout(ctx, s.opt.ReposTimeout)
	repos, err := s.gh.ListUserRepos(lctx, login, s.opt.RepoLimit)
	cancel()
	if err != nil {
		log.Warn().Err(err).Bool("transient", gh.IsTransient(err)).Msg("stats repo list unavailable")
		return []domain.LanguageShare{}
	}

	picked := make([]gh.Repo, 0, len(repos))
	for _, r := range repos {
		if r.Fork && !s.opt.IncludeForks {
			continue
		}
		picked = append(picked, r)
	}

	// each goroutine owns results[i]
	results := make([]langshare.Result, len(picked))
	var g errgroup.Group
	g.SetLimit(s.opt.LangConcurrency)
	for i, r := range picked {
		g.Go(func() error {
			rctx, cancel := context.WithTimeout(ctx, s.opt.LangTimeout)
			defer cancel()
			ls, err := s.gh.LanguagesByURL(rctx, r.LanguagesURL)
			res := langshare.Result{Repo: r.FullName, Err: err}
			for _, l := range ls {
				res.Langs = append(res.Langs, langshare.Lang{Name: l.Name, Bytes: l.Bytes})
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if skipped := langshare.Skipped(results); skipped > 0 {
		log.Debug().
			Int("repos", len(results)).
			Int("skipped", skipped).
			Msg("stats language fetch partially failed")
	}
	return langshare.Top(langshare.Accumulate(results), s.opt.TopLanguages)
}
