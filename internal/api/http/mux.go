package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	loginFromPath := func(r *http.Request) string {
		return r.PathValue("login")
	}

	dashboardHandler := NewDashboardHandler(loginFromPath, service, l)
	dashboardHandler = timeoutMiddleware(dashboardHandler)

	moreReposHandler := NewMoreReposHandler(loginFromPath, service, l)
	moreReposHandler = timeoutMiddleware(moreReposHandler)

	m := http.NewServeMux()
	m.HandleFunc("GET /api/users/{login}", dashboardHandler)
	m.HandleFunc("GET /api/users/{login}/repos", moreReposHandler)

	return m
}
