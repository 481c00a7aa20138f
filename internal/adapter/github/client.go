package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghroast/internal/app"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
      }
    }
  }
}`

// Client returns github profile details.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer    HTTPDoer
	address string
	tokens  oauth2.TokenSource

	profileResponseMaxSize int64
	reposResponseMaxSize   int64
	readmeResponseMaxSize  int64
	graphqlResponseMaxSize int64
	reposPerPage           int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional, requests are anonymous without it.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:    doer,
		address: strings.TrimSuffix(address, "/"),

		profileResponseMaxSize: 1024 * 1024,
		reposResponseMaxSize:   1024 * 1024 * 10,
		readmeResponseMaxSize:  1024 * 1024 * 10,
		graphqlResponseMaxSize: 1024 * 1024,
		reposPerPage:           100,
	}
	if authToken != "" {
		c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: authToken})
	}

	return &c
}

// Profile returns public profile of the given user.
func (c *Client) Profile(ctx context.Context, login string) (*app.Profile, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	httpReq, err := http.NewRequest(http.MethodGet, c.address+"/users/"+url.PathEscape(login), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, "profile", c.profileResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToProfile(), nil
}

// Repositories returns first page of users repositories, in order returned by github.
func (c *Client) Repositories(ctx context.Context, login string) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.reposPerPage))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, "repos", c.reposResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToRepositories(), nil
}

// Readme returns decoded README.md of the users profile repository (login/login).
//
// Any non-success status is treated as missing readme and app.NoReadme is returned.
func (c *Client) Readme(ctx context.Context, login string) (string, error) {
	if login == "" {
		return "", app.InvalidRequestError("login cannot be empty")
	}

	escaped := url.PathEscape(login)
	httpReq, err := http.NewRequest(
		http.MethodGet,
		c.address+fmt.Sprintf("/repos/%s/%s/contents/README.md", escaped, escaped),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, "readme", c.readmeResponseMaxSize)
	if app.IsUpstreamFetchError(err) {
		return app.NoReadme, nil
	}
	if err != nil {
		return "", err
	}

	var resp readmeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.Decode()
}

// TotalContributions returns number of contributions in the users contribution calendar (last year).
// Returns 0 when github doesn't know the user.
func (c *Client) TotalContributions(ctx context.Context, login string) (int, error) {
	if login == "" {
		return 0, app.InvalidRequestError("login cannot be empty")
	}

	reqBody, err := json.Marshal(graphqlRequest{
		Query:     contributionsQuery,
		Variables: map[string]interface{}{"login": login},
	})
	if err != nil {
		return 0, fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.address+"/graphql", bytes.NewReader(reqBody))
	if err != nil {
		return 0, fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := c.makeRequest(ctx, httpReq, "graphql", c.graphqlResponseMaxSize)
	if err != nil {
		return 0, err
	}

	var resp contributionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("unmarshalling response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return 0, resp.ToError()
	}

	return resp.TotalContributions(), nil
}

// makeRequest executes request and returns response body.
// Returns *app.UpstreamFetchError for non-success statuses.
func (c *Client) makeRequest(ctx context.Context, req *http.Request, resource string, maxBytes int64) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("getting auth token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &app.UpstreamFetchError{
			Resource:    resource,
			StatusCode:  resp.StatusCode,
			RateLimited: c.checkRateLimitExceeded(&resp.Header),
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

// decodeContent decodes base64 content as returned by github contents api.
// Github wraps encoded content with newlines.
func decodeContent(content string) (string, error) {
	content = strings.NewReplacer("\n", "", "\r", "").Replace(content)
	b, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", fmt.Errorf("decoding base64 content: %w", err)
	}

	return string(b), nil
}
