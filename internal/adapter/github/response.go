package github

import (
	"time"

	"github.com/mwrona/gitprofile/internal/app"
)

type profileResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	CreatedAt   time.Time `json:"created_at"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
}

func (r profileResponse) ToProfile() app.Profile {
	return app.Profile{
		Login:       r.Login,
		Name:        r.Name,
		AvatarURL:   r.AvatarURL,
		Bio:         r.Bio,
		Company:     r.Company,
		Location:    r.Location,
		Blog:        r.Blog,
		CreatedAt:   r.CreatedAt,
		Followers:   r.Followers,
		Following:   r.Following,
		PublicRepos: r.PublicRepos,
	}
}

type reposResponse []repoResponseItem

type repoResponseItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	Homepage        string    `json:"homepage"`
	Fork            bool      `json:"fork"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Size            int       `json:"size"`
	PushedAt        time.Time `json:"pushed_at"`
	HTMLURL         string    `json:"html_url"`
}

func (r reposResponse) ToRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, i := range r {
		repos = append(repos, app.Repository{
			ID:          i.ID,
			Name:        i.Name,
			Description: i.Description,
			Language:    i.Language,
			Homepage:    i.Homepage,
			Fork:        i.Fork,
			Stars:       i.StargazersCount,
			Forks:       i.ForksCount,
			Size:        i.Size,
			PushedAt:    i.PushedAt,
			HTMLURL:     i.HTMLURL,
		})
	}

	return repos
}

type calendarResponse struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int `json:"totalContributions"`
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount int    `json:"contributionCount"`
						Date              string `json:"date"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

func (r calendarResponse) ToCalendar() (*app.ContributionCalendar, error) {
	src := r.User.ContributionsCollection.ContributionCalendar

	cal := app.ContributionCalendar{
		Total: src.TotalContributions,
		Weeks: make([]app.ContributionWeek, 0, len(src.Weeks)),
	}
	for _, w := range src.Weeks {
		week := app.ContributionWeek{
			Days: make([]app.ContributionDay, 0, len(w.ContributionDays)),
		}
		for _, d := range w.ContributionDays {
			date, err := time.Parse("2006-01-02", d.Date)
			if err != nil {
				return nil, app.TransientError("invalid contribution day date: " + d.Date)
			}
			week.Days = append(week.Days, app.ContributionDay{
				Date:  date,
				Count: d.ContributionCount,
			})
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return &cal, nil
}
