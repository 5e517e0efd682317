package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/mwrona/gitprofile/internal/app"
)

// Service provides profile aggregation and repository pagination.
//go:generate mockgen -destination mock/service.go -package mock github.com/mwrona/gitprofile/internal/api/http Service
type Service interface {
	Aggregate(ctx context.Context, login string, token string) (*app.ViewModel, error)
	MoreRepositories(ctx context.Context, login string, page int) ([]app.Repository, error)
}

// sessionTokenHeader optionally carries a caller-supplied credential for
// contribution data. Absence is a normal, supported state.
const sessionTokenHeader = "X-Github-Token"

type profileView struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	Bio         string `json:"bio,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Blog        string `json:"blog,omitempty"`
	CreatedAt   string `json:"createdAt"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"publicRepos"`
}

type repositoryView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Fork        bool   `json:"fork"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	PushedAt    string `json:"pushedAt"`
	URL         string `json:"url"`
}

type collectionView struct {
	Total     int              `json:"total"`
	Fetched   int              `json:"fetched"`
	Displayed int              `json:"displayed"`
	NextPage  int              `json:"nextPage"`
	HasMore   bool             `json:"hasMore"`
	Items     []repositoryView `json:"items"`
}

type languageShareView struct {
	Language string `json:"language"`
	Size     int    `json:"size"`
}

type repositoryRankView struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
	Forks int    `json:"forks"`
}

type weekView struct {
	WeekStart string `json:"weekStart"`
	Commits   int    `json:"commits"`
}

type metricsView struct {
	ActivityScore   float64              `json:"activityScore"`
	CalendarPresent bool                 `json:"calendarPresent"`
	Contributions   int                  `json:"contributions"`
	Languages       []languageShareView  `json:"languages"`
	TopRepositories []repositoryRankView `json:"topRepositories"`
	WeeklyCommits   []weekView           `json:"weeklyCommits"`
	Heatmap         [][]int              `json:"heatmap,omitempty"`
}

type dashboardResponse struct {
	Window       string         `json:"window"`
	Profile      profileView    `json:"profile"`
	Repositories collectionView `json:"repositories"`
	Metrics      metricsView    `json:"metrics"`
}

func newDashboardResponse(vm *app.ViewModel, window app.TimeWindow, now time.Time) dashboardResponse {
	filtered := app.FilterByWindow(vm.Repos.Repos, window, now)

	visible := len(filtered)
	if vm.Repos.Displayed < visible {
		visible = vm.Repos.Displayed
	}
	items := make([]repositoryView, 0, visible)
	for _, r := range filtered[:visible] {
		items = append(items, repositoryView{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Homepage:    r.Homepage,
			Fork:        r.Fork,
			Stars:       r.Stars,
			Forks:       r.Forks,
			PushedAt:    r.PushedAt.Format(time.RFC3339),
			URL:         r.HTMLURL,
		})
	}

	metrics := metricsView{
		ActivityScore:   app.ActivityScore(filtered, vm.Profile.Followers, now),
		Languages:       newLanguageShareViews(app.LanguageDistribution(filtered, app.DefaultLanguageBuckets)),
		TopRepositories: newRepositoryRankViews(app.TopRepositories(filtered, app.DefaultTopRepositories)),
	}
	if vm.Calendar != nil {
		metrics.CalendarPresent = true
		metrics.Contributions = vm.Calendar.Total
		for _, w := range app.WeeklyCommits(vm.Calendar, window) {
			metrics.WeeklyCommits = append(metrics.WeeklyCommits, weekView{
				WeekStart: w.WeekStart.Format("2006-01-02"),
				Commits:   w.Commits,
			})
		}
		metrics.Heatmap = newHeatmapView(vm.Calendar)
	}

	return dashboardResponse{
		Window: string(window),
		Profile: profileView{
			Login:       vm.Profile.Login,
			Name:        vm.Profile.Name,
			AvatarURL:   vm.Profile.AvatarURL,
			Bio:         vm.Profile.Bio,
			Company:     vm.Profile.Company,
			Location:    vm.Profile.Location,
			Blog:        vm.Profile.Blog,
			CreatedAt:   vm.Profile.CreatedAt.Format(time.RFC3339),
			Followers:   vm.Profile.Followers,
			Following:   vm.Profile.Following,
			PublicRepos: vm.Profile.PublicRepos,
		},
		Repositories: collectionView{
			Total:     vm.Repos.Total,
			Fetched:   vm.Repos.Fetched(),
			Displayed: vm.Repos.Displayed,
			NextPage:  vm.Repos.NextPage,
			HasMore:   vm.Repos.HasMore(),
			Items:     items,
		},
		Metrics: metrics,
	}
}

func newLanguageShareViews(shares []app.LanguageShare) []languageShareView {
	views := make([]languageShareView, 0, len(shares))
	for _, s := range shares {
		views = append(views, languageShareView{Language: s.Language, Size: s.Size})
	}
	return views
}

func newRepositoryRankViews(ranks []app.RepositoryRank) []repositoryRankView {
	views := make([]repositoryRankView, 0, len(ranks))
	for _, r := range ranks {
		views = append(views, repositoryRankView{Name: r.Name, Stars: r.Stars, Forks: r.Forks})
	}
	return views
}

func newHeatmapView(cal *app.ContributionCalendar) [][]int {
	rows := make([][]int, 0, len(cal.Weeks))
	for _, w := range cal.Weeks {
		row := make([]int, 0, len(w.Days))
		for _, d := range w.Days {
			row = append(row, app.HeatLevel(d.Count))
		}
		rows = append(rows, row)
	}
	return rows
}

// NewDashboardHandler creates handlerfunc returning the full analytics
// dashboard for one subject.
func NewDashboardHandler(
	getLogin func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login := getLogin(r)
		window, err := app.ParseTimeWindow(r.URL.Query().Get("window"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		vm, err := service.Aggregate(r.Context(), login, r.Header.Get(sessionTokenHeader))
		if err != nil {
			writeServiceError(w, err, l)
			return
		}

		response := newDashboardResponse(vm, window, time.Now())

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
	}
}

type moreReposResponse struct {
	Login        string           `json:"login"`
	Page         int              `json:"page"`
	Repositories []repositoryView `json:"repositories"`
}

// NewMoreReposHandler creates handlerfunc returning one repository page for
// consumers extending their collection beyond the initial snapshot.
func NewMoreReposHandler(
	getLogin func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login := getLogin(r)
		page := getIntParam(r, "page", 2)

		repos, err := service.MoreRepositories(r.Context(), login, page)
		if err != nil {
			writeServiceError(w, err, l)
			return
		}

		views := make([]repositoryView, 0, len(repos))
		for _, repo := range repos {
			views = append(views, repositoryView{
				ID:          repo.ID,
				Name:        repo.Name,
				Description: repo.Description,
				Language:    repo.Language,
				Homepage:    repo.Homepage,
				Fork:        repo.Fork,
				Stars:       repo.Stars,
				Forks:       repo.Forks,
				PushedAt:    repo.PushedAt.Format(time.RFC3339),
				URL:         repo.HTMLURL,
			})
		}

		response := moreReposResponse{
			Login:        login,
			Page:         page,
			Repositories: views,
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
	}
}

// writeServiceError maps the error taxonomy to http statuses. These three
// kinds plus invalid input are the entire vocabulary consumers branch on.
func writeServiceError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsRateLimitedError(err):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	default:
		l.Errorf("service error: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}

func getIntParam(r *http.Request, name string, defaultValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil && v > 0 {
			value = v
		}
	}

	return value
}
