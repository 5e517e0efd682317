package app

import "context"

const (
	// repoPageSize is the fixed size of repository pages fetched from the api.
	repoPageSize = 100

	// displayIncrement is how many more repositories become visible per
	// "show more" request.
	displayIncrement = 20
)

// CollectionState tracks how much of a subject's repository collection the
// session has fetched and how much of it is visible. It is a value replaced
// wholesale on every successful mutation, so a failed extension attempt can
// never corrupt previously loaded pages.
type CollectionState struct {
	// Repos holds every repository fetched so far, in source order.
	// Grows monotonically within a session.
	Repos []Repository

	// Displayed is the number of repositories currently visible.
	// Always <= len(Repos).
	Displayed int

	// NextPage is the page number of the next fetch. Advances only after
	// a non-empty successful page fetch.
	NextPage int

	// Total is the repository count declared by the profile. It is an
	// upper bound estimate: visibility rules may hide items from
	// pagination, in which case Total is clamped down.
	Total int

	// LastError carries the message of the latest failed extension
	// attempt. Cleared on the next attempt.
	LastError string
}

// NewCollectionState initializes collection state from the first fetched page.
func NewCollectionState(firstPage []Repository, declaredTotal int) CollectionState {
	displayed := displayIncrement
	if len(firstPage) < displayed {
		displayed = len(firstPage)
	}

	return CollectionState{
		Repos:     firstPage,
		Displayed: displayed,
		NextPage:  2,
		Total:     declaredTotal,
	}
}

// Fetched returns how many repositories have been fetched so far.
func (s CollectionState) Fetched() int {
	return len(s.Repos)
}

// Visible returns the currently displayed slice of the collection.
func (s CollectionState) Visible() []Repository {
	return s.Repos[:s.Displayed]
}

// HasMore tells whether another RequestMore call can make progress.
func (s CollectionState) HasMore() bool {
	return s.Displayed < s.Total || s.Displayed < len(s.Repos)
}

// Paginator extends a subject's repository collection page by page on
// demand. It never issues a network call while already-fetched items
// remain hidden.
//
// The caller is the single logical consumer and must not issue a new
// RequestMore while a previous one is outstanding.
type Paginator struct {
	client GithubClient
	login  string
}

// NewPaginator creates a Paginator for one subject's collection.
func NewPaginator(client GithubClient, login string) *Paginator {
	return &Paginator{
		client: client,
		login:  login,
	}
}

// RequestMore returns the next collection state.
//
// If hidden fetched items remain, it only bumps the displayed count.
// Otherwise it fetches one more page: an empty page clamps Total to what
// pagination actually returned (the source may undercount or hide items)
// and a failed fetch returns the prior state untouched except for
// LastError, alongside the error itself.
func (p *Paginator) RequestMore(ctx context.Context, s CollectionState) (CollectionState, error) {
	s.LastError = ""

	switch {
	case s.Displayed < len(s.Repos):
		s.Displayed = capAt(s.Displayed+displayIncrement, len(s.Repos))
		return s, nil

	case len(s.Repos) < s.Total:
		page, err := p.client.RepositoriesPage(ctx, p.login, s.NextPage, repoPageSize)
		if err != nil {
			s.LastError = err.Error()
			return s, err
		}
		if len(page) == 0 {
			s.Total = len(s.Repos)
			s.Displayed = len(s.Repos)
			return s, nil
		}

		// Full slice expression prevents the append from writing into an
		// array shared with a previous state value.
		s.Repos = append(s.Repos[:len(s.Repos):len(s.Repos)], page...)
		s.NextPage++
		s.Displayed = capAt(s.Displayed+displayIncrement, len(s.Repos))
		return s, nil

	default:
		return s, nil
	}
}

func capAt(v, max int) int {
	if v > max {
		return max
	}
	return v
}
