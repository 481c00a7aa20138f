package app_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghroast/internal/app"
	"github.com/m-zajac/ghroast/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	github    *mock.MockGithubClient
	generator *mock.MockGenerator
	counter   *mock.MockCounterStore
}

func TestServiceRoast(t *testing.T) {
	t.Parallel()

	profile := &app.Profile{
		Login:     "alice",
		Name:      "Alice",
		AvatarURL: "https://avatars/alice",
	}
	repos := []app.Repository{
		{Name: "one", Language: "Go", Stars: 3},
		{Name: "two", Language: "Go", Stars: 1},
		{Name: "three", Stars: 5},
	}

	tests := []struct {
		name      string
		login     string
		setupMock func(m mocks)
		want      *app.Roast
		wantErr   func(error) bool
	}{
		{
			name:      "empty login",
			login:     "   ",
			setupMock: func(m mocks) {},
			wantErr:   app.IsInvalidRequestError,
		},
		{
			name:  "profile not found",
			login: "ghost",
			setupMock: func(m mocks) {
				m.github.EXPECT().
					Profile(gomock.Any(), "ghost").
					Return(nil, &app.UpstreamFetchError{Resource: "profile", StatusCode: http.StatusNotFound})
			},
			wantErr: app.IsUpstreamFetchError,
		},
		{
			name:  "graphql error aborts before readme",
			login: "alice",
			setupMock: func(m mocks) {
				m.github.EXPECT().Profile(gomock.Any(), "alice").Return(profile, nil)
				m.github.EXPECT().
					TotalContributions(gomock.Any(), "alice").
					Return(0, &app.GraphQLError{Messages: []string{"boom"}})
			},
			wantErr: app.IsGraphQLError,
		},
		{
			name:  "repositories error aborts before generation",
			login: "alice",
			setupMock: func(m mocks) {
				m.github.EXPECT().Profile(gomock.Any(), "alice").Return(profile, nil)
				m.github.EXPECT().TotalContributions(gomock.Any(), "alice").Return(7, nil)
				m.github.EXPECT().Readme(gomock.Any(), "alice").Return(app.NoReadme, nil)
				m.github.EXPECT().
					Repositories(gomock.Any(), "alice").
					Return(nil, &app.UpstreamFetchError{Resource: "repos", StatusCode: http.StatusInternalServerError})
			},
			wantErr: app.IsUpstreamFetchError,
		},
		{
			name:  "generation error is not counted",
			login: "alice",
			setupMock: func(m mocks) {
				m.github.EXPECT().Profile(gomock.Any(), "alice").Return(profile, nil)
				m.github.EXPECT().TotalContributions(gomock.Any(), "alice").Return(7, nil)
				m.github.EXPECT().Readme(gomock.Any(), "alice").Return(app.NoReadme, nil)
				m.github.EXPECT().Repositories(gomock.Any(), "alice").Return(repos, nil)
				m.generator.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return("", &app.GenerationError{})
			},
			wantErr: app.IsGenerationError,
		},
		{
			name:  "counter error",
			login: "alice",
			setupMock: func(m mocks) {
				m.github.EXPECT().Profile(gomock.Any(), "alice").Return(profile, nil)
				m.github.EXPECT().TotalContributions(gomock.Any(), "alice").Return(7, nil)
				m.github.EXPECT().Readme(gomock.Any(), "alice").Return(app.NoReadme, nil)
				m.github.EXPECT().Repositories(gomock.Any(), "alice").Return(repos, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("roasted", nil)
				m.counter.EXPECT().
					Increment(gomock.Any(), app.CounterKey).
					Return(int64(0), errors.New("disk full"))
			},
			wantErr: func(err error) bool { return err != nil },
		},
		{
			name:  "full roast, steps in order",
			login: "  alice ",
			setupMock: func(m mocks) {
				gomock.InOrder(
					m.github.EXPECT().Profile(gomock.Any(), "alice").Return(profile, nil),
					m.github.EXPECT().TotalContributions(gomock.Any(), "alice").Return(321, nil),
					m.github.EXPECT().Readme(gomock.Any(), "alice").Return("hello readme", nil),
					m.github.EXPECT().Repositories(gomock.Any(), "alice").Return(repos, nil),
					m.generator.EXPECT().
						Generate(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, prompt string) (string, error) {
							assert.Contains(t, prompt, "Username: alice\n")
							assert.Contains(t, prompt, "Total Contributions: 321\n")
							assert.Contains(t, prompt, "Total Stars: 9\n")
							assert.Contains(t, prompt, "Most Used Language: Go\n")
							assert.Contains(t, prompt, "README: hello readme\n")
							return "you write Go like it's Java", nil
						}),
					m.counter.EXPECT().Increment(gomock.Any(), app.CounterKey).Return(int64(12), nil),
				)
			},
			want: &app.Roast{
				Profile:            *profile,
				TotalContributions: 321,
				TotalStars:         9,
				MostUsedLanguage:   "Go",
				HasLanguage:        true,
				Readme:             "hello readme",
				Text:               "you write Go like it's Java",
				TotalRoasts:        12,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				github:    mock.NewMockGithubClient(ctrl),
				generator: mock.NewMockGenerator(ctrl),
				counter:   mock.NewMockCounterStore(ctrl),
			}
			tt.setupMock(m)

			s := app.NewService(m.github, m.generator, m.counter, time.Minute, testLogger())
			got, err := s.Roast(context.Background(), tt.login)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceRoastTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		Profile(gomock.Any(), "slowpoke").
		DoAndReturn(func(ctx context.Context, _ string) (*app.Profile, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	s := app.NewService(
		githubCli,
		mock.NewMockGenerator(ctrl),
		mock.NewMockCounterStore(ctrl),
		10*time.Millisecond,
		testLogger(),
	)
	_, err := s.Roast(context.Background(), "slowpoke")
	require.Error(t, err)
	assert.True(t, app.IsTimeoutError(err))
}

func TestServiceTotalRoasts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := mock.NewMockCounterStore(ctrl)
	counter.EXPECT().Count(gomock.Any(), app.CounterKey).Return(int64(5), nil)
	counter.EXPECT().Count(gomock.Any(), app.CounterKey).Return(int64(0), errors.New("closed"))

	s := app.NewService(mock.NewMockGithubClient(ctrl), mock.NewMockGenerator(ctrl), counter, time.Minute, testLogger())

	n, err := s.TotalRoasts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	_, err = s.TotalRoasts(context.Background())
	assert.Error(t, err)
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
