package github

import (
	"context"
	"strings"

	"github.com/shurcooL/githubv4"

	perr "statcard/internal/platform/errors"
)

type calendar struct {
	TotalContributions githubv4.Int
	Weeks              []struct {
		ContributionDays []struct {
			Date              githubv4.String
			ContributionCount githubv4.Int
		}
	}
}

// one round trip: the window calendar and the year to date total as aliases
type contributionsQuery struct {
	User *struct {
		Window struct {
			ContributionCalendar calendar
		} `graphql:"window: contributionsCollection(from: $from, to: $to)"`
		Year struct {
			ContributionCalendar struct {
				TotalContributions githubv4.Int
			}
		} `graphql:"year: contributionsCollection(from: $yearFrom, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// Contributions fetches the daily calendar for r.From..r.To and the total since r.YearFrom
// days outside the window are dropped, order follows the calendar (ascending)
func (c *Client) Contributions(ctx context.Context, r ContributionRange) (ContributionSummary, error) {
	if c.gql == nil {
		return ContributionSummary{}, perr.Unauthorizedf("github graphql requires a token")
	}

	var q contributionsQuery
	vars := map[string]any{
		"login":    githubv4.String(r.Login),
		"from":     githubv4.DateTime{Time: r.From},
		"to":       githubv4.DateTime{Time: r.To},
		"yearFrom": githubv4.DateTime{Time: r.YearFrom},
	}

	start := c.now()
	err := c.gql.Query(ctx, &q, vars)
	c.log.Debug().
		Str("login", r.Login).
		Time("from", r.From).
		Time("to", r.To).
		Dur("latency", c.now().Sub(start)).
		Err(err).
		Msg("github graphql contributions")
	if err != nil {
		if strings.Contains(err.Error(), "Could not resolve to a User") {
			return ContributionSummary{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "github graphql user %s not found", r.Login)
		}
		return ContributionSummary{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github graphql query failed")
	}
	if q.User == nil {
		return ContributionSummary{}, perr.NotFoundf("github graphql user %s not found", r.Login)
	}

	lo := r.From.UTC().Format("2006-01-02")
	hi := r.To.UTC().Format("2006-01-02")

	out := ContributionSummary{YearTotal: int(q.User.Year.ContributionCalendar.TotalContributions)}
	for _, w := range q.User.Window.ContributionCalendar.Weeks {
		for _, d := range w.ContributionDays {
			date := string(d.Date)
			if date < lo || date > hi {
				continue
			}
			out.Days = append(out.Days, ContributionDay{Date: date, Count: int(d.ContributionCount)})
		}
	}
	return out, nil
}
