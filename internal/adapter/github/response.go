package github

import (
	"fmt"

	"github.com/m-zajac/ghroast/internal/app"
)

type profileResponse struct {
	Login             string  `json:"login"`
	Name              *string `json:"name"`
	Bio               *string `json:"bio"`
	PublicRepos       int     `json:"public_repos"`
	TotalPrivateRepos int     `json:"total_private_repos"`
	Followers         int     `json:"followers"`
	Following         int     `json:"following"`
	Company           *string `json:"company"`
	Location          *string `json:"location"`
	Blog              *string `json:"blog"`
	TwitterUsername   *string `json:"twitter_username"`
	HTMLURL           string  `json:"html_url"`
	AvatarURL         string  `json:"avatar_url"`
}

func (p profileResponse) ToProfile() *app.Profile {
	return &app.Profile{
		Login:           p.Login,
		Name:            deref(p.Name),
		Bio:             deref(p.Bio),
		PublicRepos:     p.PublicRepos,
		PrivateRepos:    p.TotalPrivateRepos,
		Followers:       p.Followers,
		Following:       p.Following,
		Company:         deref(p.Company),
		Location:        deref(p.Location),
		Blog:            deref(p.Blog),
		TwitterUsername: deref(p.TwitterUsername),
		HTMLURL:         p.HTMLURL,
		AvatarURL:       p.AvatarURL,
	}
}

type reposResponse []struct {
	Name            string  `json:"name"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, el := range r {
		repos = append(repos, app.Repository{
			Name:     el.Name,
			Language: deref(el.Language),
			Stars:    el.StargazersCount,
		})
	}

	return repos
}

type readmeResponse struct {
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

func (r readmeResponse) Decode() (string, error) {
	if r.Encoding != "" && r.Encoding != "base64" {
		return "", fmt.Errorf("unsupported readme encoding %q", r.Encoding)
	}

	return decodeContent(r.Content)
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (r contributionsResponse) TotalContributions() int {
	if r.Data.User == nil {
		return 0
	}

	return r.Data.User.ContributionsCollection.ContributionCalendar.TotalContributions
}

func (r contributionsResponse) ToError() *app.GraphQLError {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}

	return &app.GraphQLError{Messages: msgs}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
