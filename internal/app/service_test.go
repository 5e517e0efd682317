package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mwrona/gitprofile/internal/app"
	"github.com/mwrona/gitprofile/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceAggregate(t *testing.T) {
	t.Parallel()

	profile := app.Profile{
		Login:       "octocat",
		Name:        "The Octocat",
		Followers:   120,
		PublicRepos: 120,
	}
	firstPage := makeRepos(100)
	calendar := &app.ContributionCalendar{
		Total: 1234,
		Weeks: []app.ContributionWeek{
			{Days: []app.ContributionDay{{Date: mustDate("2026-01-05"), Count: 3}}},
		},
	}

	tests := []struct {
		name      string
		login     string
		token     string
		setupMock func(*mock.MockGithubClient)
		check     func(*testing.T, *app.ViewModel)
		checkErr  func(*testing.T, error)
	}{
		{
			name:  "empty login",
			login: "",
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsInvalidRequestError(err))
			},
		},
		{
			name:  "profile not found wins over other outcomes",
			login: "ghost",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Profile(gomock.Any(), "ghost").
					Return(app.Profile{}, app.NotFoundError("subject not found"))
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "ghost", 1, 100).
					Return(makeRepos(3), nil)
				m.EXPECT().
					ContributionCalendar(gomock.Any(), "ghost", "").
					Return(nil, app.RateLimitedError("rate limit exceeded"))
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsNotFoundError(err))
			},
		},
		{
			name:  "any rate limited fetch fails the aggregation as rate limited",
			login: "octocat",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Profile(gomock.Any(), "octocat").
					Return(profile, nil)
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 1, 100).
					Return(nil, app.RateLimitedError("rate limit exceeded"))
				m.EXPECT().
					ContributionCalendar(gomock.Any(), "octocat", "").
					Return(calendar, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsRateLimitedError(err))
			},
		},
		{
			name:  "single transient failure is all-or-nothing",
			login: "octocat",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Profile(gomock.Any(), "octocat").
					Return(profile, nil)
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 1, 100).
					Return(firstPage, nil)
				m.EXPECT().
					ContributionCalendar(gomock.Any(), "octocat", "").
					Return(nil, app.TransientError("got invalid http status code: 502"))
			},
			checkErr: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.False(t, app.IsNotFoundError(err))
				assert.False(t, app.IsRateLimitedError(err))
				assert.True(t, app.IsTransientError(err))
			},
		},
		{
			name:  "full success with calendar",
			login: "octocat",
			token: "session-token",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Profile(gomock.Any(), "octocat").
					Return(profile, nil)
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 1, 100).
					Return(firstPage, nil)
				m.EXPECT().
					ContributionCalendar(gomock.Any(), "octocat", "session-token").
					Return(calendar, nil)
			},
			check: func(t *testing.T, vm *app.ViewModel) {
				assert.Equal(t, profile, vm.Profile)
				assert.Equal(t, calendar, vm.Calendar)
				assert.Equal(t, 100, vm.Repos.Fetched())
				assert.Equal(t, 20, vm.Repos.Displayed)
				assert.Equal(t, 2, vm.Repos.NextPage)
				assert.Equal(t, 120, vm.Repos.Total)
			},
		},
		{
			name:  "absent calendar is not an error",
			login: "octocat",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Profile(gomock.Any(), "octocat").
					Return(profile, nil)
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 1, 100).
					Return(makeRepos(5), nil)
				m.EXPECT().
					ContributionCalendar(gomock.Any(), "octocat", "").
					Return(nil, nil)
			},
			check: func(t *testing.T, vm *app.ViewModel) {
				assert.Nil(t, vm.Calendar)
				assert.Equal(t, 5, vm.Repos.Fetched())
				assert.Equal(t, 5, vm.Repos.Displayed)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := mock.NewMockGithubClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(githubCli)
			}

			s := app.NewService(githubCli, time.Minute)
			vm, err := s.Aggregate(context.Background(), tt.login, tt.token)
			if tt.checkErr != nil {
				require.Error(t, err)
				assert.Nil(t, vm)
				tt.checkErr(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, vm)
			tt.check(t, vm)
		})
	}
}

func TestServiceMoreRepositories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		login     string
		page      int
		setupMock func(*mock.MockGithubClient)
		wantCount int
		wantErr   bool
	}{
		{
			name:    "empty login",
			login:   "",
			page:    2,
			wantErr: true,
		},
		{
			name:    "invalid page",
			login:   "octocat",
			page:    0,
			wantErr: true,
		},
		{
			name:  "valid page fetch",
			login: "octocat",
			page:  2,
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 2, 100).
					Return(makeRepos(20), nil)
			},
			wantCount: 20,
		},
		{
			name:  "client error",
			login: "octocat",
			page:  2,
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					RepositoriesPage(gomock.Any(), "octocat", 2, 100).
					Return(nil, errors.New("error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := mock.NewMockGithubClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(githubCli)
			}

			s := app.NewService(githubCli, time.Minute)
			repos, err := s.MoreRepositories(context.Background(), tt.login, tt.page)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Len(t, repos, tt.wantCount)
		})
	}
}

func makeRepos(n int) []app.Repository {
	repos := make([]app.Repository, 0, n)
	for i := 0; i < n; i++ {
		repos = append(repos, app.Repository{
			ID:   int64(i + 1),
			Name: "repo",
		})
	}
	return repos
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
