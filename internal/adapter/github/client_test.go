package github

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/m-zajac/ghroast/internal/app"
	"github.com/m-zajac/ghroast/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Profile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doer       *mock.HTTPDoer
		login      string
		want       *app.Profile
		wantErr    bool
		wantStatus int
	}{
		{
			name:    "empty login",
			login:   "",
			wantErr: true,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"login": "alice", "name": "Alice", "public_repos": 3, "followers": 1, "avatar_url": "https://a/1"}`),
				},
			},
			login: "alice",
			want: &app.Profile{
				Login:       "alice",
				Name:        "Alice",
				PublicRepos: 3,
				Followers:   1,
				AvatarURL:   "https://a/1",
			},
		},
		{
			name: "not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			login:      "ghost",
			wantErr:    true,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "rate limited",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			login:      "alice",
			wantErr:    true,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "status ok, invalid body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"login":`)},
			},
			login:   "alice",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.Profile(context.Background(), tt.login)
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)

			if tt.wantStatus != 0 {
				var ufe *app.UpstreamFetchError
				require.ErrorAs(t, err, &ufe)
				assert.Equal(t, tt.wantStatus, ufe.StatusCode)
				assert.Equal(t, "profile", ufe.Resource)
				assert.Equal(t, tt.name == "rate limited", ufe.RateLimited)
			}

			if tt.doer == nil {
				return
			}

			reqs := tt.doer.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodGet, reqs[0].Method)
			assert.Equal(t, "/users/"+tt.login, reqs[0].URL.Path)
			checkAPIHeaders(reqs[0], t)
		})
	}
}

func TestClient_Repositories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		want    []app.Repository
		wantErr bool
	}{
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`[
						{"name": "a", "language": "Go", "stargazers_count": 3},
						{"name": "b", "language": "Go", "stargazers_count": 1},
						{"name": "c", "language": null, "stargazers_count": 5}
					]`),
				},
			},
			want: []app.Repository{
				{Name: "a", Language: "Go", Stars: 3},
				{Name: "b", Language: "Go", Stars: 1},
				{Name: "c", Stars: 5},
			},
		},
		{
			name: "status not ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake/", "token")
			got, err := c.Repositories(context.Background(), "alice")
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.True(t, app.IsUpstreamFetchError(err))
			}

			reqs := tt.doer.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, "/users/alice/repos", reqs[0].URL.Path)
			assert.Equal(t, "100", reqs[0].URL.Query().Get("per_page"))
			checkAPIHeaders(reqs[0], t)
		})
	}
}

func TestClient_Readme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doer    *mock.HTTPDoer
		want    string
		wantErr bool
	}{
		{
			name: "found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies: [][]byte{
					[]byte(`{"encoding": "base64", "content": "IyBIZWxs\nbyB3b3Js\nZAo=\n"}`),
				},
			},
			want: "# Hello world\n",
		},
		{
			name: "not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			want: app.NoReadme,
		},
		{
			name: "server error is treated as missing readme",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusBadGateway},
			},
			want: app.NoReadme,
		},
		{
			name: "broken content",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{"encoding": "base64", "content": "@@@"}`)},
			},
			wantErr: true,
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, io.ErrUnexpectedEOF
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.Readme(context.Background(), "alice")
			require.Equal(t, tt.wantErr, err != nil, "err: %v", err)
			assert.Equal(t, tt.want, got)

			for _, req := range tt.doer.Requests() {
				assert.Equal(t, "/repos/alice/alice/contents/README.md", req.URL.Path)
			}
		})
	}
}

func TestClient_TotalContributions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		doer        *mock.HTTPDoer
		want        int
		wantErrKind func(error) bool
	}{
		{
			name: "user found",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{
					[]byte(`{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"totalContributions":871}}}}}`),
				},
			},
			want: 871,
		},
		{
			name: "null user means zero",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"data":{"user":null}}`)},
			},
			want: 0,
		},
		{
			name: "graphql errors",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{
					[]byte(`{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User"}]}`),
				},
			},
			wantErrKind: app.IsGraphQLError,
		},
		{
			name: "status not ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusUnauthorized},
			},
			wantErrKind: app.IsUpstreamFetchError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "token")
			got, err := c.TotalContributions(context.Background(), "alice")
			if tt.wantErrKind != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErrKind(err), "unexpected error kind: %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			reqs := tt.doer.Requests()
			require.Len(t, reqs, 1)
			req := reqs[0]
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/graphql", req.URL.Path)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			checkAPIHeaders(req, t)

			var sent graphqlRequest
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &sent))
			assert.Equal(t, contributionsQuery, sent.Query)
			assert.Equal(t, "alice", sent.Variables["login"])
		})
	}
}

func TestClientWithoutToken(t *testing.T) {
	doer := &mock.HTTPDoer{Bodies: [][]byte{[]byte(`{"login":"alice"}`)}}
	c := NewClient(doer, "https://fake", "")

	_, err := c.Profile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, doer.Requests()[0].Header.Get("Authorization"))
}

func checkAPIHeaders(r *http.Request, t *testing.T) {
	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
}
