package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwrona/gitprofile/internal/api/http/mock"
	"github.com/mwrona/gitprofile/internal/app"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := time.Millisecond

	tests := []struct {
		name           string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "valid dashboard request",
			path:           "/api/users/octocat",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "valid repos page request",
			path:           "/api/users/octocat/repos?page=2",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service exceeding handler timeout",
			path:           "/api/users/octocat",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "invalid path",
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				Aggregate(gomock.Any(), "octocat", gomock.Any()).
				DoAndReturn(func(ctx context.Context, login string, token string) (*app.ViewModel, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return nil, errors.New("context timeout")
					default:
						return &app.ViewModel{
							Profile: app.Profile{Login: login},
							Repos:   app.NewCollectionState(nil, 0),
						}, nil
					}
				}).
				MaxTimes(1)
			service.EXPECT().
				MoreRepositories(gomock.Any(), "octocat", 2).
				Return(nil, nil).
				MaxTimes(1)

			l := logrus.New()
			mux := NewMux(service, tt.muxTimeout, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			url := server.URL + tt.path
			resp, err := http.Get(url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
