// Package github provides the GitHub REST v3 and GraphQL v4 clients used to build stat cards
package github

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	perr "statcard/internal/platform/errors"
	"statcard/internal/platform/logger"
)

const (
	baseURLDefault    = "https://api.github.com"
	graphQLURLDefault = "https://api.github.com/graphql"
	defaultTimeout    = 30 * time.Second
	defaultUA         = "statcard"
)

// Options configures the Client
type Options struct {
	BaseURL    string
	GraphQLURL string
	UserAgent  string

	// Timeout is the transport ceiling; per call deadlines come from ctx
	Timeout time.Duration

	// Token is optional; without it REST calls are anonymous and
	// contribution lookups are unavailable
	Token string

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

// Client is a minimal GitHub client; it never retries
type Client struct {
	http *http.Client
	gql  *githubv4.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.GraphQLURL == "" {
		o.GraphQLURL = graphQLURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.Token = strings.TrimSpace(o.Token)

	base := o.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: o.Timeout}
	}

	c := &Client{
		http: base,
		opts: o,
		log:  *logger.Named("github"),
		now:  time.Now,
	}
	if o.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.Token})
		c.gql = githubv4.NewEnterpriseClient(o.GraphQLURL, oauth2.NewClient(ctx, src))
	}
	return c
}

// HasToken reports whether the client is authenticated
func (c *Client) HasToken() bool { return c.opts.Token != "" }

// Do issues a GET style request with auth headers and maps failures to project errors
// path may be relative to BaseURL or an absolute URL returned by the API
// the token is only attached when the target is under BaseURL
func (c *Client) Do(ctx context.Context, method, path string) (*http.Response, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = c.opts.BaseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.opts.Token != "" && strings.HasPrefix(url, c.opts.BaseURL+"/") {
		req.Header.Set("Authorization", "token "+c.opts.Token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}

	q := quotaFrom(resp.Header)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", q.remaining).
		Time("rate_reset", q.reset).
		Msg("github http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	se := newStatusError(resp)
	if IsRateLimited(se) {
		c.log.Warn().
			Int("status", se.Status).
			Time("rate_reset", q.reset).
			Dur("retry_after", q.retryAfter).
			Msg("github rate limited")
	}
	return nil, perr.FromUpstreamf(se, "github %s %s", method, path)
}
