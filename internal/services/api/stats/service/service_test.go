package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	gh "statcard/internal/adapters/github"
	"statcard/internal/core/grade"
	perr "statcard/internal/platform/errors"
	kit "statcard/internal/platform/testkit"
)

type fakeUpstream struct {
	token    bool
	user     gh.User
	userErr  error
	repos    []gh.Repo
	reposErr error
	langs    map[string][]gh.Language
	langErr  map[string]error
	contrib  gh.ContributionSummary
	cErr     error

	mu       sync.Mutex
	gotRange gh.ContributionRange
	inflight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func (f *fakeUpstream) UserByLogin(_ context.Context, login string) (gh.User, error) {
	if f.userErr != nil {
		return gh.User{}, f.userErr
	}
	u := f.user
	if u.Login == "" {
		u.Login = login
	}
	return u, nil
}

func (f *fakeUpstream) ListUserRepos(context.Context, string, int) ([]gh.Repo, error) {
	return f.repos, f.reposErr
}

func (f *fakeUpstream) LanguagesByURL(ctx context.Context, url string) ([]gh.Language, error) {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.langErr[url]; err != nil {
		return nil, err
	}
	return f.langs[url], nil
}

func (f *fakeUpstream) Contributions(_ context.Context, r gh.ContributionRange) (gh.ContributionSummary, error) {
	f.mu.Lock()
	f.gotRange = r
	f.mu.Unlock()
	return f.contrib, f.cErr
}

func (f *fakeUpstream) HasToken() bool { return f.token }

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func newSvc(up *fakeUpstream, opt Options) *Svc {
	s := New(up, opt)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestNew_NilUpstreamPanics(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, Options{}) })
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{RepoLimit: 500}.withDefaults()
	if o.RepoLimit != 100 || o.TopLanguages != 5 || o.LangConcurrency != 8 || o.ContribDays != 90 {
		t.Fatalf("unexpected defaults %+v", o)
	}
	if o.LangTimeout != 5*time.Second || o.UserTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %+v", o)
	}
}

func TestStats_FullRecord(t *testing.T) {
	up := &fakeUpstream{
		token: true,
		user:  gh.User{Login: "octocat", Name: "The Octocat", PublicRepos: 10, Followers: 20},
		repos: []gh.Repo{
			{FullName: "o/a", LanguagesURL: "a"},
			{FullName: "o/b", LanguagesURL: "b"},
			{FullName: "o/fork", LanguagesURL: "f", Fork: true},
		},
		langs: map[string][]gh.Language{
			"a": {{Name: "Go", Bytes: 300}, {Name: "C", Bytes: 100}},
			"b": {{Name: "Python", Bytes: 100}},
			"f": {{Name: "Haskell", Bytes: 10000}},
		},
		contrib: gh.ContributionSummary{
			YearTotal: 100,
			Days: []gh.ContributionDay{
				{Date: "2024-03-08", Count: 2},
				{Date: "2024-03-09", Count: 1},
			},
		},
	}
	rec, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}

	if rec.Grade != grade.A {
		t.Fatalf("grade = %s", rec.Grade)
	}
	if rec.CommitsThisYear != 100 {
		t.Fatalf("commits = %d", rec.CommitsThisYear)
	}
	if len(rec.Contributions) != 90 {
		t.Fatalf("window = %d days", len(rec.Contributions))
	}
	if last := rec.Contributions[89]; last.Date != "2024-03-10" || last.Count != 0 {
		t.Fatalf("last day = %+v", last)
	}
	if rec.LongestStreak != 2 || rec.CurrentStreak != 2 {
		t.Fatalf("streaks = %d/%d", rec.LongestStreak, rec.CurrentStreak)
	}
	if len(rec.Languages) != 3 || rec.Languages[0].Name != "Go" || rec.Languages[0].Percentage != 60 {
		t.Fatalf("languages = %+v", rec.Languages)
	}
	for _, l := range rec.Languages {
		if l.Name == "Haskell" {
			t.Fatal("forks should be excluded by default")
		}
	}

	r := up.gotRange
	if !r.From.Equal(time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC)) || !r.To.Equal(fixedNow) {
		t.Fatalf("window = %v..%v", r.From, r.To)
	}
	if !r.YearFrom.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("year from = %v", r.YearFrom)
	}
}

func TestStats_IncludeForks(t *testing.T) {
	up := &fakeUpstream{
		repos: []gh.Repo{{FullName: "o/fork", LanguagesURL: "f", Fork: true}},
		langs: map[string][]gh.Language{"f": {{Name: "Haskell", Bytes: 1}}},
	}
	rec, err := newSvc(up, Options{IncludeForks: true}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Languages) != 1 || rec.Languages[0].Name != "Haskell" {
		t.Fatalf("languages = %+v", rec.Languages)
	}
}

func TestStats_NotFound(t *testing.T) {
	up := &fakeUpstream{userErr: perr.Wrapf(&gh.StatusError{Status: 404}, perr.ErrorCodeNotFound, "nf")}
	_, err := newSvc(up, Options{}).Stats(context.Background(), "ghost")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStats_ProfileUpstreamFailure(t *testing.T) {
	up := &fakeUpstream{userErr: perr.Newf(perr.ErrorCodeUnavailable, "boom")}
	_, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Op() != "stats.fetchProfile" {
		t.Fatalf("op = %q", e.Op())
	}
}

func TestStats_DegradesWithoutToken(t *testing.T) {
	up := &fakeUpstream{user: gh.User{PublicRepos: 1}, cErr: errors.New("must not be called")}
	rec, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if rec.CommitsThisYear != 0 || rec.LongestStreak != 0 || len(rec.Contributions) != 0 {
		t.Fatalf("expected empty contribution section, got %+v", rec)
	}
	if !up.gotRange.From.IsZero() {
		t.Fatal("contributions should not be queried without a token")
	}
}

func TestStats_DegradesOnPartialFailures(t *testing.T) {
	up := &fakeUpstream{
		token:    true,
		cErr:     perr.Newf(perr.ErrorCodeUnavailable, "graphql down"),
		reposErr: perr.Newf(perr.ErrorCodeUnavailable, "repos down"),
	}
	rec, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if rec.CommitsThisYear != 0 || len(rec.Contributions) != 0 || len(rec.Languages) != 0 {
		t.Fatalf("expected defaults, got %+v", rec)
	}
	if rec.Languages == nil {
		t.Fatal("languages should be an empty list")
	}
}

func TestStats_SkipsFailedRepos(t *testing.T) {
	up := &fakeUpstream{
		repos: []gh.Repo{
			{FullName: "o/a", LanguagesURL: "a"},
			{FullName: "o/b", LanguagesURL: "b"},
			{FullName: "o/c", LanguagesURL: ""},
		},
		langs:   map[string][]gh.Language{"a": {{Name: "Go", Bytes: 100}}, "b": {{Name: "Rust", Bytes: 900}}},
		langErr: map[string]error{"b": errors.New("timeout"), "": errors.New("no url")},
	}
	rec, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Languages) != 1 || rec.Languages[0].Name != "Go" || rec.Languages[0].Percentage != 100 {
		t.Fatalf("languages = %+v", rec.Languages)
	}
}

func TestStats_LanguageTieKeepsListedOrder(t *testing.T) {
	up := &fakeUpstream{
		repos: []gh.Repo{{FullName: "o/a", LanguagesURL: "a"}},
		langs: map[string][]gh.Language{"a": {{Name: "Shell", Bytes: 100}, {Name: "Go", Bytes: 100}}},
	}
	rec, err := newSvc(up, Options{}).Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Languages) != 2 || rec.Languages[0].Name != "Shell" || rec.Languages[1].Name != "Go" {
		t.Fatalf("languages = %+v", rec.Languages)
	}
}

func TestStats_BoundedConcurrency(t *testing.T) {
	up := &fakeUpstream{delay: 5 * time.Millisecond, langs: map[string][]gh.Language{}}
	for i := 0; i < 20; i++ {
		url := string(rune('a' + i))
		up.repos = append(up.repos, gh.Repo{FullName: "o/" + url, LanguagesURL: url})
		up.langs[url] = []gh.Language{{Name: "Go", Bytes: 1}}
	}
	if _, err := newSvc(up, Options{LangConcurrency: 3}).Stats(context.Background(), "octocat"); err != nil {
		t.Fatal(err)
	}
	if p := up.peak.Load(); p > 3 || p < 1 {
		t.Fatalf("peak concurrency = %d, want 1..3", p)
	}
}

func TestStats_Idempotent(t *testing.T) {
	up := &fakeUpstream{
		token: true,
		repos: []gh.Repo{{FullName: "o/a", LanguagesURL: "a"}, {FullName: "o/b", LanguagesURL: "b"}},
		langs: map[string][]gh.Language{"a": {{Name: "Go", Bytes: 10}, {Name: "C", Bytes: 10}}, "b": {{Name: "Zig", Bytes: 10}}},
	}
	s := newSvc(up, Options{})
	a, err := s.Card(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Card(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same upstream data should render identical cards")
	}
	kit.MustContain(t, string(a), "<svg")
}

func TestCard_NotFound(t *testing.T) {
	up := &fakeUpstream{userErr: perr.NotFoundf("nf")}
	if _, err := newSvc(up, Options{}).Card(context.Background(), "ghost"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
