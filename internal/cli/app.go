package cli

import (
	"fmt"
	netHttp "net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mwrona/gitprofile/internal/adapter/github"
	"github.com/mwrona/gitprofile/internal/api/http/limiter"
	"github.com/mwrona/gitprofile/internal/app"
)

// NewApp builds the terminal dashboard command.
func NewApp() *cli.App {
	return &cli.App{
		Name:      "gitprofile",
		Usage:     "renders a github profile analytics dashboard in the terminal",
		ArgsUsage: "<login>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "github access token (contribution data is unavailable without one)",
				EnvVars: []string{"GITPROFILE_GITHUB_TOKEN", "GITHUB_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "window",
				Aliases: []string{"w"},
				Usage:   "time window for metrics: all, 1y, 6m or 30d",
				Value:   "all",
			},
			&cli.IntFlag{
				Name:    "repos",
				Aliases: []string{"n"},
				Usage:   "number of repositories to list",
				Value:   20,
			},
			&cli.StringFlag{
				Name:  "api-address",
				Usage: "github rest api address",
				Value: "https://api.github.com",
			},
			&cli.StringFlag{
				Name:  "graphql-address",
				Usage: "github graphql api address",
				Value: "https://api.github.com/graphql",
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Usage: "max github api calls per second",
				Value: 2,
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowAppHelp(c)
	}
	login := c.Args().First()

	window, err := app.ParseTimeWindow(c.String("window"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	doer := limiter.NewHTTPDoer(httpClient, c.Float64("rate-limit"))
	client := github.NewClient(
		doer,
		c.String("api-address"),
		c.String("graphql-address"),
		c.String("token"),
	)
	service := app.NewService(client, 60*time.Second)

	ctx := c.Context
	vm, err := service.Aggregate(ctx, login, "")
	if err != nil {
		return describeError(err)
	}

	// Extend the collection until enough repositories are visible. A failed
	// extension keeps what was already loaded, so render it with a warning
	// instead of aborting.
	paginator := app.NewPaginator(client, login)
	state := vm.Repos
	for state.Displayed < c.Int("repos") && state.HasMore() {
		next, err := paginator.RequestMore(ctx, state)
		state = next
		if err != nil {
			break
		}
	}
	vm.Repos = state

	NewRenderer(c.App.Writer).Render(vm, window, time.Now())
	return nil
}

func describeError(err error) error {
	switch {
	case app.IsNotFoundError(err):
		return cli.Exit("user not found", 1)
	case app.IsRateLimitedError(err):
		return cli.Exit("github rate limit exceeded, try again later or pass --token", 1)
	default:
		return cli.Exit(fmt.Sprintf("couldn't load profile: %v", err), 1)
	}
}
