package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// GithubClient returns profile, repository and contribution data for a subject.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/mwrona/gitprofile/internal/app GithubClient
type GithubClient interface {
	Profile(ctx context.Context, login string) (Profile, error)
	RepositoriesPage(ctx context.Context, login string, page int, perPage int) ([]Repository, error)
	ContributionCalendar(ctx context.Context, login string, token string) (*ContributionCalendar, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// Aggregate builds the initial dashboard view model for one subject.
//
// The three fetches run concurrently and are all awaited. Failures collapse
// to the single most severe classification: a missing subject invalidates
// everything, then an exhausted quota, then the first remaining failure.
// No partial view model is ever returned.
//
// token is the session credential for contribution data; empty means the
// client's process-wide fallback applies.
func (s *Service) Aggregate(ctx context.Context, login string, token string) (*ViewModel, error) {
	if login == "" {
		return nil, InvalidRequestError("login cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type profileResult struct {
		profile Profile
		err     error
	}
	type reposResult struct {
		repos []Repository
		err   error
	}
	type calendarResult struct {
		calendar *ContributionCalendar
		err      error
	}

	profileCh := make(chan profileResult, 1)
	reposCh := make(chan reposResult, 1)
	calendarCh := make(chan calendarResult, 1)

	go func() {
		p, err := s.githubClient.Profile(ctx, login)
		profileCh <- profileResult{profile: p, err: err}
	}()
	go func() {
		r, err := s.githubClient.RepositoriesPage(ctx, login, 1, repoPageSize)
		reposCh <- reposResult{repos: r, err: err}
	}()
	go func() {
		c, err := s.githubClient.ContributionCalendar(ctx, login, token)
		calendarCh <- calendarResult{calendar: c, err: err}
	}()

	profileRes := <-profileCh
	reposRes := <-reposCh
	calendarRes := <-calendarCh

	if profileRes.err != nil && IsNotFoundError(profileRes.err) {
		return nil, profileRes.err
	}
	for _, err := range []error{profileRes.err, reposRes.err, calendarRes.err} {
		if err != nil && IsRateLimitedError(err) {
			return nil, err
		}
	}
	if profileRes.err != nil {
		return nil, errors.Wrap(profileRes.err, "retrieving profile")
	}
	if reposRes.err != nil {
		return nil, errors.Wrap(reposRes.err, "retrieving repositories")
	}
	if calendarRes.err != nil {
		return nil, errors.Wrap(calendarRes.err, "retrieving contribution calendar")
	}

	return &ViewModel{
		Profile:  profileRes.profile,
		Repos:    NewCollectionState(reposRes.repos, profileRes.profile.PublicRepos),
		Calendar: calendarRes.calendar,
	}, nil
}

// MoreRepositories fetches a single repository page for a subject.
// Stateless counterpart of Paginator.RequestMore for remote consumers
// that keep collection state on their side.
func (s *Service) MoreRepositories(ctx context.Context, login string, page int) ([]Repository, error) {
	if login == "" {
		return nil, InvalidRequestError("login cannot be empty")
	}
	if page < 1 {
		return nil, InvalidRequestError("page must be greater than zero")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	repos, err := s.githubClient.RepositoriesPage(ctx, login, page, repoPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving repositories")
	}

	return repos, nil
}
