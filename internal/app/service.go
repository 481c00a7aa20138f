package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CounterKey is the key of the global roast counter document.
const CounterKey = "stats/totalRoasts"

// GithubClient returns github profile data.
//go:generate mockgen -destination mock/github.go -package mock github.com/m-zajac/ghroast/internal/app GithubClient
type GithubClient interface {
	Profile(ctx context.Context, login string) (*Profile, error)
	Repositories(ctx context.Context, login string) ([]Repository, error)
	TotalContributions(ctx context.Context, login string) (int, error)
	Readme(ctx context.Context, login string) (string, error)
}

// Generator turns a prompt into model generated text.
//go:generate mockgen -destination mock/generator.go -package mock github.com/m-zajac/ghroast/internal/app Generator
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CounterStore keeps named counters.
//go:generate mockgen -destination mock/counter.go -package mock github.com/m-zajac/ghroast/internal/app CounterStore
type CounterStore interface {
	// Increment atomically adds 1 to the counter, creating it with value 1 if absent.
	// Returns the counter value after increment.
	Increment(ctx context.Context, key string) (int64, error)
	// Count returns current counter value, 0 if absent.
	Count(ctx context.Context, key string) (int64, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	generator    Generator
	counter      CounterStore
	timeout      time.Duration
	l            logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(
	githubClient GithubClient,
	generator Generator,
	counter CounterStore,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		generator:    generator,
		counter:      counter,
		timeout:      timeout,
		l:            l,
	}
}

// Roast fetches github data for login, asks the model for a roast and counts it.
//
// Steps run one after another, the first failing step aborts the whole roast.
// Whole sequence is bounded by service timeout, exceeding it returns TimeoutError.
func (s *Service) Roast(ctx context.Context, login string) (*Roast, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, InvalidRequestError("please enter a github username")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	roast, err := s.roast(ctx, login)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, TimeoutError(fmt.Sprintf("roasting %s: no response within %s", login, s.timeout))
		}
		s.l.Errorf("roasting %s: %v", login, err)
		return nil, err
	}

	return roast, nil
}

func (s *Service) roast(ctx context.Context, login string) (*Roast, error) {
	l := s.l.WithField("login", login)

	l.Debug("fetching profile")
	profile, err := s.githubClient.Profile(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	l.Debug("fetching total contributions")
	contributions, err := s.githubClient.TotalContributions(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetching contributions: %w", err)
	}

	l.Debug("fetching readme")
	readme, err := s.githubClient.Readme(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetching readme: %w", err)
	}

	l.Debug("fetching repositories")
	repos, err := s.githubClient.Repositories(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("fetching repositories: %w", err)
	}
	language, hasLanguage := MostUsedLanguage(repos)
	stars := TotalStars(repos)
	l.WithFields(logrus.Fields{
		"repos":         len(repos),
		"language":      language,
		"stars":         stars,
		"contributions": contributions,
	}).Debug("profile aggregated")

	prompt := ComposePrompt(PromptInput{
		Profile:            *profile,
		TotalContributions: contributions,
		TotalStars:         stars,
		MostUsedLanguage:   language,
		Readme:             readme,
	})

	l.Debug("generating roast")
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	total, err := s.counter.Increment(ctx, CounterKey)
	if err != nil {
		return nil, fmt.Errorf("updating roast counter: %w", err)
	}
	l.WithField("totalRoasts", total).Info("roast generated")

	return &Roast{
		Profile:            *profile,
		TotalContributions: contributions,
		TotalStars:         stars,
		MostUsedLanguage:   language,
		HasLanguage:        hasLanguage,
		Readme:             readme,
		Text:               text,
		TotalRoasts:        total,
	}, nil
}

// TotalRoasts returns the number of roasts generated so far.
func (s *Service) TotalRoasts(ctx context.Context) (int64, error) {
	n, err := s.counter.Count(ctx, CounterKey)
	if err != nil {
		return 0, fmt.Errorf("reading roast counter: %w", err)
	}

	return n, nil
}
