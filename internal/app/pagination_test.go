package app_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mwrona/gitprofile/internal/app"
	"github.com/mwrona/gitprofile/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the documented 120-repository scenario: four visibility bumps with
// no network, one page fetch for the remaining 20, then a no-op.
func TestPaginatorRequestMoreFullWalk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		RepositoriesPage(gomock.Any(), "octocat", 2, 100).
		Return(makeRepos(20), nil).
		Times(1)

	p := app.NewPaginator(githubCli, "octocat")
	state := app.NewCollectionState(makeRepos(100), 120)
	require.Equal(t, 20, state.Displayed)
	require.Equal(t, 2, state.NextPage)

	wantDisplayed := []int{40, 60, 80, 100}
	for _, want := range wantDisplayed {
		var err error
		state, err = p.RequestMore(context.Background(), state)
		require.NoError(t, err)
		assert.Equal(t, want, state.Displayed)
		assert.Equal(t, 100, state.Fetched())
		assert.Equal(t, 2, state.NextPage)
		assert.True(t, state.HasMore())
	}

	// Fifth call crosses into the network phase.
	state, err := p.RequestMore(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, 120, state.Fetched())
	assert.Equal(t, 120, state.Displayed)
	assert.Equal(t, 3, state.NextPage)
	assert.False(t, state.HasMore())

	// Sixth call is a no-op.
	next, err := p.RequestMore(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, state.Repos, next.Repos)
	assert.Equal(t, state.Displayed, next.Displayed)
	assert.Equal(t, state.NextPage, next.NextPage)
}

func TestPaginatorRequestMoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	gomock.InOrder(
		githubCli.EXPECT().
			RepositoriesPage(gomock.Any(), "octocat", 2, 100).
			Return(nil, app.RateLimitedError("rate limit exceeded")),
		githubCli.EXPECT().
			RepositoriesPage(gomock.Any(), "octocat", 2, 100).
			Return(makeRepos(20), nil),
	)

	p := app.NewPaginator(githubCli, "octocat")
	state := app.NewCollectionState(makeRepos(100), 120)
	state.Displayed = 100

	// A failed extension keeps fetched and displayed untouched and only
	// attaches the error message.
	failed, err := p.RequestMore(context.Background(), state)
	require.Error(t, err)
	assert.True(t, app.IsRateLimitedError(err))
	assert.Equal(t, state.Repos, failed.Repos)
	assert.Equal(t, 100, failed.Fetched())
	assert.Equal(t, 100, failed.Displayed)
	assert.Equal(t, 2, failed.NextPage)
	assert.Equal(t, "rate limit exceeded", failed.LastError)
	assert.True(t, failed.HasMore())

	// The next successful attempt clears the error.
	recovered, err := p.RequestMore(context.Background(), failed)
	require.NoError(t, err)
	assert.Empty(t, recovered.LastError)
	assert.Equal(t, 120, recovered.Fetched())
}

// An empty page while the declared total still promises more means the
// source undercounts or hides items: the total is clamped, no error raised.
func TestPaginatorRequestMoreEmptyPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		RepositoriesPage(gomock.Any(), "octocat", 2, 100).
		Return([]app.Repository{}, nil)

	p := app.NewPaginator(githubCli, "octocat")
	state := app.NewCollectionState(makeRepos(100), 120)
	state.Displayed = 100

	state, err := p.RequestMore(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, 100, state.Fetched())
	assert.Equal(t, 100, state.Displayed)
	assert.Equal(t, 100, state.Total)
	assert.Equal(t, 2, state.NextPage)
	assert.False(t, state.HasMore())
	assert.Empty(t, state.LastError)
}

// Appending a page must never write into an array shared with a previous
// state value.
func TestPaginatorRequestMoreDoesNotAliasPreviousState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extra := makeRepos(10)
	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		RepositoriesPage(gomock.Any(), "octocat", 2, 100).
		Return(extra, nil)

	first := makeRepos(100)
	p := app.NewPaginator(githubCli, "octocat")
	state := app.NewCollectionState(first, 110)
	state.Displayed = 100

	before := make([]app.Repository, len(state.Repos))
	copy(before, state.Repos)

	next, err := p.RequestMore(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, 110, next.Fetched())
	assert.Equal(t, before, state.Repos)
}

func TestCollectionStateInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		firstPage     int
		declaredTotal int
		wantDisplayed int
		wantHasMore   bool
	}{
		{
			name:          "large collection",
			firstPage:     100,
			declaredTotal: 250,
			wantDisplayed: 20,
			wantHasMore:   true,
		},
		{
			name:          "small collection",
			firstPage:     7,
			declaredTotal: 7,
			wantDisplayed: 7,
			wantHasMore:   false,
		},
		{
			name:          "empty collection",
			firstPage:     0,
			declaredTotal: 0,
			wantDisplayed: 0,
			wantHasMore:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := app.NewCollectionState(makeRepos(tt.firstPage), tt.declaredTotal)
			assert.Equal(t, tt.wantDisplayed, s.Displayed)
			assert.Equal(t, tt.wantHasMore, s.HasMore())
			assert.LessOrEqual(t, s.Displayed, s.Fetched())
			assert.Len(t, s.Visible(), s.Displayed)
		})
	}
}
