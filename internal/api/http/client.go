package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// ResponseError is returned by Client when server responds with non-success status.
// Error returns servers message as is.
type ResponseError struct {
	StatusCode int
	Message    string
}

// Error implements error interface
func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	}
	return e.Message
}

// Client calls roast server http api.
type Client struct {
	doer    HTTPDoer
	address string
}

// NewClient creates new Client for server at address (with protocol).
func NewClient(doer HTTPDoer, address string) *Client {
	return &Client{
		doer:    doer,
		address: strings.TrimSuffix(address, "/"),
	}
}

// Roast asks the server to roast github user with given login.
func (c *Client) Roast(ctx context.Context, login string) (*RoastResponse, error) {
	body, err := jsoniter.ConfigFastest.Marshal(RoastRequest{Username: login})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+"/roast", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp RoastResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Stats returns global roast stats.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	u, err := url.Parse(c.address + "/stats")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	var resp StatsResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return fmt.Errorf("reading http response body: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return &ResponseError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(b)),
		}
	}

	if err := jsoniter.ConfigFastest.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}
