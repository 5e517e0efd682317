package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mwrona/gitprofile/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches github profile, repository and contribution data.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer           HTTPDoer
	apiAddress     string
	graphQLAddress string

	// authToken is the process-wide fallback credential. Optional - an
	// absent credential is a legal, expected state, not an error.
	authToken string

	profileResponseMaxSize  int
	reposResponseMaxSize    int
	calendarResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, apiAddress string, graphQLAddress string, authToken string) *Client {
	c := Client{
		doer:           doer,
		apiAddress:     apiAddress,
		graphQLAddress: graphQLAddress,
		authToken:      authToken,

		profileResponseMaxSize:  1024 * 64,
		reposResponseMaxSize:    1024 * 1024 * 10,
		calendarResponseMaxSize: 1024 * 1024,
	}

	return &c
}

// Profile returns a subject's public profile.
func (c *Client) Profile(ctx context.Context, login string) (app.Profile, error) {
	if login == "" {
		return app.Profile{}, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.apiAddress + "/users/" + url.PathEscape(login))
	if err != nil {
		return app.Profile{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.Profile{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, "", c.profileResponseMaxSize)
	if err != nil {
		return app.Profile{}, fmt.Errorf("making http request: %w", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, app.TransientError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToProfile(), nil
}

// RepositoriesPage returns one page of a subject's repositories, ordered
// most recently pushed first.
func (c *Client) RepositoriesPage(ctx context.Context, login string, page int, perPage int) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if page < 1 {
		return nil, app.InvalidRequestError("page must be greater than zero")
	}
	if perPage < 1 || perPage > 100 {
		return nil, app.InvalidRequestError("perPage must be in range <1..100>")
	}

	u, err := url.Parse(c.apiAddress + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(perPage))
	v.Set("sort", "pushed")
	v.Set("page", strconv.Itoa(page))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, "", c.reposResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.TransientError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepositories(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, token string, maxBytes int) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if token == "" {
		token = c.authToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, app.TransientError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, app.NotFoundError("subject not found")
	}
	if resp.StatusCode/100 > 2 {
		if rateLimitExhausted(resp) {
			return nil, app.RateLimitedError("rate limit exceeded")
		}
		return nil, app.TransientError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, app.TransientError(fmt.Sprintf("reading http response body: %v", err))
	}

	return b, nil
}

// rateLimitExhausted distinguishes an exhausted quota from a generic
// client error: github signals it with a zeroed remaining-quota header on
// 403/429 responses.
func rateLimitExhausted(resp *http.Response) bool {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return false
	}
	if s := resp.Header.Get("X-RateLimit-Remaining"); s != "" {
		if remaining, err := strconv.Atoi(s); err == nil && remaining == 0 {
			return true
		}
	}
	return false
}
