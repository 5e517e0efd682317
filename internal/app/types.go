package app

import "time"

// Profile is a snapshot of a github user's public profile.
// It is fetched once per analysis session and never mutated.
type Profile struct {
	Login       string
	Name        string
	AvatarURL   string
	Bio         string
	Company     string
	Location    string
	Blog        string
	CreatedAt   time.Time
	Followers   int
	Following   int
	PublicRepos int
}

// Repository entity.
type Repository struct {
	ID          int64
	Name        string
	Description string
	Language    string
	Homepage    string
	Fork        bool
	Stars       int
	Forks       int
	Size        int
	PushedAt    time.Time
	HTMLURL     string
}

// ContributionCalendar holds a year of contribution counts.
// It is either wholly present or absent (nil) - absence is a normal,
// supported state when no credential is available.
type ContributionCalendar struct {
	Total int
	Weeks []ContributionWeek
}

// ContributionWeek is an ordered run of contribution days.
type ContributionWeek struct {
	Days []ContributionDay
}

// ContributionDay carries one day's contribution count.
type ContributionDay struct {
	Date  time.Time
	Count int
}

// ViewModel is the aggregate handed to consumers after a successful
// aggregation. Calendar is nil when contribution data is unavailable.
type ViewModel struct {
	Profile  Profile
	Repos    CollectionState
	Calendar *ContributionCalendar
}
