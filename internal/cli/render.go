package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/mwrona/gitprofile/internal/app"
)

const langBarWidth = 30

// heatShades maps heat levels to terminal shades, darkest last.
var heatShades = []string{"·", "░", "▒", "▓", "█"}

// Renderer writes the dashboard to a terminal.
type Renderer struct {
	w io.Writer

	header  *color.Color
	accent  *color.Color
	muted   *color.Color
	warning *color.Color
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:       w,
		header:  color.New(color.FgHiWhite, color.Bold),
		accent:  color.New(color.FgCyan),
		muted:   color.New(color.FgHiBlack),
		warning: color.New(color.FgYellow),
	}
}

// Render writes the full dashboard: profile header, metrics for the chosen
// time window and the visible slice of the repository collection.
func (r *Renderer) Render(vm *app.ViewModel, window app.TimeWindow, now time.Time) {
	r.renderProfile(vm.Profile)

	filtered := app.FilterByWindow(vm.Repos.Repos, window, now)
	r.renderMetrics(vm, filtered, window, now)
	r.renderRepositories(vm.Repos)
}

func (r *Renderer) renderProfile(p app.Profile) {
	r.header.Fprintf(r.w, "%s", p.Name)
	r.accent.Fprintf(r.w, "  @%s\n", p.Login)
	if p.Bio != "" {
		fmt.Fprintf(r.w, "%s\n", p.Bio)
	}
	var details []string
	if p.Company != "" {
		details = append(details, p.Company)
	}
	if p.Location != "" {
		details = append(details, p.Location)
	}
	if p.Blog != "" {
		details = append(details, p.Blog)
	}
	if len(details) > 0 {
		r.muted.Fprintf(r.w, "%s\n", strings.Join(details, " · "))
	}
	fmt.Fprintf(r.w, "%d followers · %d following · %d public repos · joined %s\n\n",
		p.Followers, p.Following, p.PublicRepos, p.CreatedAt.Format("Jan 2006"))
}

func (r *Renderer) renderMetrics(vm *app.ViewModel, filtered []app.Repository, window app.TimeWindow, now time.Time) {
	score := app.ActivityScore(filtered, vm.Profile.Followers, now)
	r.header.Fprintf(r.w, "Activity score")
	fmt.Fprintf(r.w, "  %.0f/100\n\n", score)

	shares := app.LanguageDistribution(filtered, app.DefaultLanguageBuckets)
	total := 0
	for _, s := range shares {
		total += s.Size
	}
	if total > 0 {
		r.header.Fprintf(r.w, "Languages\n")
		for _, s := range shares {
			fmt.Fprintf(r.w, "  %-12s ", s.Language)
			r.accent.Fprintf(r.w, "%s", strings.Repeat("█", s.Size*langBarWidth/total))
			r.muted.Fprintf(r.w, " %d%%\n", s.Size*100/total)
		}
		fmt.Fprintln(r.w)
	}

	if top := app.TopRepositories(filtered, app.DefaultTopRepositories); len(top) > 0 {
		r.header.Fprintf(r.w, "Top repositories\n")
		for _, t := range top {
			fmt.Fprintf(r.w, "  %-24s", t.Name)
			r.accent.Fprintf(r.w, " ★ %-6d", t.Stars)
			r.muted.Fprintf(r.w, " forks %d\n", t.Forks)
		}
		fmt.Fprintln(r.w)
	}

	if vm.Calendar == nil {
		r.muted.Fprintf(r.w, "Contribution data unavailable, pass --token to enable it.\n\n")
		return
	}

	if weeks := app.WeeklyCommits(vm.Calendar, window); len(weeks) > 0 {
		r.header.Fprintf(r.w, "Weekly commits")
		fmt.Fprintf(r.w, "  (%d contributions in the last year)\n", vm.Calendar.Total)
		max := 0
		for _, w := range weeks {
			if w.Commits > max {
				max = w.Commits
			}
		}
		for _, w := range weeks {
			width := 0
			if max > 0 {
				width = w.Commits * langBarWidth / max
			}
			r.muted.Fprintf(r.w, "  %s ", w.WeekStart.Format("Jan 02"))
			r.accent.Fprintf(r.w, "%s", strings.Repeat("▇", width))
			fmt.Fprintf(r.w, " %d\n", w.Commits)
		}
		fmt.Fprintln(r.w)
	}

	r.renderHeatmap(vm.Calendar)
}

// renderHeatmap draws the contribution calendar with weeks as columns and
// weekdays as rows, the way the github profile page lays it out.
func (r *Renderer) renderHeatmap(cal *app.ContributionCalendar) {
	if len(cal.Weeks) == 0 {
		return
	}

	r.header.Fprintf(r.w, "Contributions\n")
	for day := 0; day < 7; day++ {
		fmt.Fprint(r.w, "  ")
		for _, week := range cal.Weeks {
			if day >= len(week.Days) {
				fmt.Fprint(r.w, " ")
				continue
			}
			level := app.HeatLevel(week.Days[day].Count)
			if level == 0 {
				r.muted.Fprintf(r.w, "%s", heatShades[level])
			} else {
				r.accent.Fprintf(r.w, "%s", heatShades[level])
			}
		}
		fmt.Fprintln(r.w)
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) renderRepositories(s app.CollectionState) {
	r.header.Fprintf(r.w, "Repositories")
	fmt.Fprintf(r.w, "  (%d of %d)\n", s.Displayed, s.Total)

	for _, repo := range s.Visible() {
		fmt.Fprintf(r.w, "  %-28s", repo.Name)
		if repo.Language != "" {
			r.accent.Fprintf(r.w, " %-12s", repo.Language)
		} else {
			fmt.Fprintf(r.w, " %-12s", "")
		}
		fmt.Fprintf(r.w, " ★ %-6d", repo.Stars)
		r.muted.Fprintf(r.w, " pushed %s\n", repo.PushedAt.Format("2006-01-02"))
	}

	if s.LastError != "" {
		r.warning.Fprintf(r.w, "\ncouldn't load more repositories: %s\n", s.LastError)
	}
}
