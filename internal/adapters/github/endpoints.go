package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	perr "statcard/internal/platform/errors"
)

// MaxPerPage is the largest page GitHub serves
const MaxPerPage = 100

// UserByLogin fetches a user by login; a 404 surfaces as ErrorCodeNotFound
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	path := "/users/" + url.PathEscape(login)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return User{}, err
	}
	var out User
	if err := c.decode(resp, path, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// ListUserRepos returns a single page of a user's public repositories, most recently updated first
func (c *Client) ListUserRepos(ctx context.Context, login string, perPage int) ([]Repo, error) {
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	path := fmt.Sprintf("/users/%s/repos?per_page=%d&sort=updated", url.PathEscape(login), perPage)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	var out []Repo
	if err := c.decode(resp, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LanguagesByURL fetches the language byte breakdown at a repo's languages_url
// entries keep the order GitHub sent them in
func (c *Client) LanguagesByURL(ctx context.Context, languagesURL string) ([]Language, error) {
	if languagesURL == "" {
		return nil, perr.InvalidArgf("github languages url is empty")
	}
	resp, err := c.Do(ctx, http.MethodGet, languagesURL)
	if err != nil {
		return nil, err
	}
	var out []Language
	err = c.decodeWith(resp, languagesURL, func(dec *json.Decoder) (derr error) {
		out, derr = decodeLanguages(dec)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// decodeLanguages walks a {"name": bytes} object token by token so key order survives
func decodeLanguages(dec *json.Decoder) ([]Language, error) {
	out := []Language{}
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("languages: unexpected key %v", tok)
		}
		var n int64
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("languages: %s: %w", name, err)
		}
		out = append(out, Language{Name: name, Bytes: n})
	}
	return out, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("languages: expected %v, got %v", want, tok)
	}
	return nil
}

// RateLimit is the core REST quota as reported by /rate_limit
type RateLimit struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
	Reset     int `json:"reset"`
}

// Ping checks GitHub reachability; /rate_limit does not count against the quota
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.RateLimit(ctx)
	return err
}

// RateLimit reports the core REST quota for the configured credentials
func (c *Client) RateLimit(ctx context.Context) (RateLimit, error) {
	const path = "/rate_limit"
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return RateLimit{}, err
	}
	var out struct {
		Resources struct {
			Core RateLimit `json:"core"`
		} `json:"resources"`
	}
	if err := c.decode(resp, path, &out); err != nil {
		return RateLimit{}, err
	}
	return out.Resources.Core, nil
}
