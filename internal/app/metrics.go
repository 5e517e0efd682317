package app

import (
	"sort"
	"time"
)

// Derived metrics are pure functions over already-aggregated data.
// They hold no state and do no I/O; consumers recompute them whenever
// the active repository collection or time window changes.

const (
	// DefaultLanguageBuckets is how many named languages the distribution
	// keeps before collapsing the long tail into "Other".
	DefaultLanguageBuckets = 5

	// DefaultTopRepositories limits the popularity ranking.
	DefaultTopRepositories = 5
)

// TimeWindow restricts metrics to repositories pushed recently.
type TimeWindow string

// Supported time windows.
const (
	WindowAll      TimeWindow = "all"
	WindowYear     TimeWindow = "1y"
	WindowHalfYear TimeWindow = "6m"
	WindowMonth    TimeWindow = "30d"
)

// ParseTimeWindow validates a window tag coming from a consumer.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch TimeWindow(s) {
	case WindowAll, WindowYear, WindowHalfYear, WindowMonth:
		return TimeWindow(s), nil
	case "":
		return WindowAll, nil
	}

	return "", InvalidRequestError("unknown time window: " + s)
}

// Duration returns the window length. ok is false for WindowAll.
func (w TimeWindow) Duration() (d time.Duration, ok bool) {
	switch w {
	case WindowYear:
		return 365 * 24 * time.Hour, true
	case WindowHalfYear:
		return 180 * 24 * time.Hour, true
	case WindowMonth:
		return 30 * 24 * time.Hour, true
	}

	return 0, false
}

// FilterByWindow retains repositories pushed within the window measured
// back from now. WindowAll is the identity filter.
func FilterByWindow(repos []Repository, w TimeWindow, now time.Time) []Repository {
	limit, ok := w.Duration()
	if !ok {
		return repos
	}

	filtered := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if now.Sub(r.PushedAt) < limit {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// ActivityScore rates a subject's activity in [0, 100].
//
// Recent activity weighs most heavily (5 points per repository pushed
// within the last year), then popularity and breadth, capped to keep the
// scale meaningful.
func ActivityScore(repos []Repository, followers int, now time.Time) float64 {
	recentThreshold := now.Add(-365 * 24 * time.Hour)
	var recent int
	for _, r := range repos {
		if r.PushedAt.After(recentThreshold) {
			recent++
		}
	}

	base := float64(followers)*0.1 + float64(len(repos))
	if base > 80 {
		base = 80
	}

	score := float64(recent*5) + base
	if score > 100 {
		score = 100
	}

	return score
}

// LanguageShare is one bucket of the language distribution.
type LanguageShare struct {
	Language string
	Size     int
}

// LanguageDistribution accumulates repository sizes per primary language,
// skipping forks and untagged repositories. Size is a proxy for amount of
// code, not commit count. The result is sorted by size descending, keeps
// the maxBuckets largest languages and collapses the rest into a trailing
// "Other" bucket (omitted when empty).
func LanguageDistribution(repos []Repository, maxBuckets int) []LanguageShare {
	sizes := make(map[string]int)
	for _, r := range repos {
		if r.Fork || r.Language == "" {
			continue
		}
		sizes[r.Language] += r.Size
	}

	shares := make([]LanguageShare, 0, len(sizes))
	for lang, size := range sizes {
		shares = append(shares, LanguageShare{Language: lang, Size: size})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Size != shares[j].Size {
			return shares[i].Size > shares[j].Size
		}
		return shares[i].Language < shares[j].Language
	})

	if len(shares) <= maxBuckets {
		return shares
	}

	other := LanguageShare{Language: "Other"}
	for _, s := range shares[maxBuckets:] {
		other.Size += s.Size
	}

	return append(shares[:maxBuckets:maxBuckets], other)
}

// RepositoryRank is a projection for comparative popularity display.
type RepositoryRank struct {
	Name  string
	Stars int
	Forks int
}

// TopRepositories ranks non-fork repositories by star count descending
// and returns at most n of them.
func TopRepositories(repos []Repository, n int) []RepositoryRank {
	own := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			own = append(own, r)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Stars > own[j].Stars
	})

	if len(own) > n {
		own = own[:n]
	}

	ranks := make([]RepositoryRank, 0, len(own))
	for _, r := range own {
		ranks = append(ranks, RepositoryRank{
			Name:  r.Name,
			Stars: r.Stars,
			Forks: r.Forks,
		})
	}

	return ranks
}

// WeekActivity is one week's summed contribution count, labeled by the
// week's first day.
type WeekActivity struct {
	WeekStart time.Time
	Commits   int
}

// WeeklyCommits sums each calendar week's daily counts into one scalar.
//
// The underlying data is week-granular, so windowed display truncates to
// the most recent weeks instead of filtering by day: ~26 weeks for six
// months, ~5 weeks for thirty days. A nil calendar yields nil.
func WeeklyCommits(cal *ContributionCalendar, w TimeWindow) []WeekActivity {
	if cal == nil {
		return nil
	}

	weeks := make([]WeekActivity, 0, len(cal.Weeks))
	for _, week := range cal.Weeks {
		var wa WeekActivity
		if len(week.Days) > 0 {
			wa.WeekStart = week.Days[0].Date
		}
		for _, day := range week.Days {
			wa.Commits += day.Count
		}
		weeks = append(weeks, wa)
	}

	var keep int
	switch w {
	case WindowHalfYear:
		keep = 26
	case WindowMonth:
		keep = 5
	default:
		return weeks
	}
	if len(weeks) > keep {
		weeks = weeks[len(weeks)-keep:]
	}

	return weeks
}

// HeatLevel buckets a daily contribution count into a 0..4 intensity
// scale for heatmap rendering.
func HeatLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count < 5:
		return 1
	case count < 10:
		return 2
	case count < 20:
		return 3
	}

	return 4
}
