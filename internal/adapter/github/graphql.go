package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mwrona/gitprofile/internal/app"
)

// contributionsQuery requests a subject's contribution calendar. This is
// the only operation served by the query protocol; github declares it as
// requiring an authenticated caller.
const contributionsQuery = `
	query contributions($login: String!) {
		user(login: $login) {
			contributionsCollection {
				contributionCalendar {
					totalContributions
					weeks {
						contributionDays {
							contributionCount
							date
						}
					}
				}
			}
		}
	}
`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// ContributionCalendar returns a subject's contribution calendar via the
// graphql api.
//
// token is the session credential; when empty the client's fallback token
// applies. Without any credential the operation fails closed: it returns
// (nil, nil) without issuing the call, since absence of contribution data
// is a recognized degraded state, not an error.
func (c *Client) ContributionCalendar(ctx context.Context, login string, token string) (*app.ContributionCalendar, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	if token == "" {
		token = c.authToken
	}
	if token == "" {
		return nil, nil
	}

	reqBody, err := json.Marshal(graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]interface{}{"login": login},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.graphQLAddress, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.makeGraphQLRequest(ctx, httpReq, token, c.calendarResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making graphql request: %w", err)
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.TransientError(fmt.Sprintf("unmarshalling response: %v", err))
	}
	// Server-reported query errors arrive with a 200 status.
	if len(resp.Errors) > 0 {
		return nil, app.TransientError(resp.Errors[0].Message)
	}

	var data calendarResponse
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, app.TransientError(fmt.Sprintf("unmarshalling response data: %v", err))
	}

	return data.ToCalendar()
}

func (c *Client) makeGraphQLRequest(ctx context.Context, req *http.Request, token string, maxBytes int) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, app.TransientError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	// The query protocol reports permission and quota problems with
	// forbidden/too-many-requests statuses.
	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, app.RateLimitedError("rate limit exceeded")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, app.TransientError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, app.TransientError(fmt.Sprintf("reading http response body: %v", err))
	}

	return b, nil
}
