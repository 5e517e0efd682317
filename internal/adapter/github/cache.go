package github

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/mwrona/gitprofile/internal/app"
)

// CachedClient wraps github client with a freshness-window caching layer.
//
// Within the window a repeated identical request is served from the cache
// instead of re-issued. This is an optimization hint only: entries are
// replaced wholesale and concurrent identical writes are benign since
// responses for the same key are idempotent.
type CachedClient struct {
	client         app.GithubClient
	profilesCache  *lru.Cache
	reposCache     *lru.Cache
	calendarsCache *lru.Cache
	ttl            time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
// ttl is the freshness window.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	profilesCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}
	calendarsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for calendars: %w", err)
	}

	return &CachedClient{
		client:         client,
		profilesCache:  profilesCache,
		reposCache:     reposCache,
		calendarsCache: calendarsCache,
		ttl:            ttl,
	}, nil
}

// Profile returns a subject's public profile.
func (c *CachedClient) Profile(ctx context.Context, login string) (app.Profile, error) {
	key := login
	if val, ok := c.profilesCache.Get(key); ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	profile, err := c.client.Profile(ctx, login)
	if err != nil {
		return profile, err
	}

	c.profilesCache.Add(key, profileCacheEntry{
		created: time.Now(),
		data:    profile,
	})

	return profile, nil
}

// RepositoriesPage returns one page of a subject's repositories.
func (c *CachedClient) RepositoriesPage(ctx context.Context, login string, page int, perPage int) ([]app.Repository, error) {
	key := login + "?page=" + strconv.Itoa(page) + "&per_page=" + strconv.Itoa(perPage)
	if val, ok := c.reposCache.Get(key); ok {
		entry := val.(reposCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	repos, err := c.client.RepositoriesPage(ctx, login, page, perPage)
	if err != nil {
		return repos, err
	}

	c.reposCache.Add(key, reposCacheEntry{
		created: time.Now(),
		data:    repos,
	})

	return repos, nil
}

// ContributionCalendar returns a subject's contribution calendar.
// The session credential is part of the cache key: requests with
// different credentials are not identical requests.
func (c *CachedClient) ContributionCalendar(ctx context.Context, login string, token string) (*app.ContributionCalendar, error) {
	key := login + "\x00" + token
	if val, ok := c.calendarsCache.Get(key); ok {
		entry := val.(calendarCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	calendar, err := c.client.ContributionCalendar(ctx, login, token)
	if err != nil {
		return calendar, err
	}

	c.calendarsCache.Add(key, calendarCacheEntry{
		created: time.Now(),
		data:    calendar,
	})

	return calendar, nil
}

type profileCacheEntry struct {
	created time.Time
	data    app.Profile
}

type reposCacheEntry struct {
	created time.Time
	data    []app.Repository
}

type calendarCacheEntry struct {
	created time.Time
	data    *app.ContributionCalendar
}
