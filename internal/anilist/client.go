package anilist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"aniboard/internal/providers"
	"aniboard/internal/structures"
)

// ErrRateLimited signals the upstream returned HTTP 429. Callers can
// surface it as a retryable condition instead of a generic failure.
var ErrRateLimited = errors.New("anilist: rate limit exceeded")

type ClientInterface interface {
	UserProfile(ctx context.Context, userName string) (*UserProfile, error)
	AnimeList(ctx context.Context, userName string) ([]ListGroup, error)
	ActivityCount(ctx context.Context, userID int) (int, error)
}

// Client talks GraphQL to the AniList API. Responses are cached
// compressed, keyed by query document plus variables, and outbound
// requests are paced by a limiter so the public API's per-minute quota
// is never tripped by a burst of dashboard loads.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
	limiter    *rate.Limiter
	cache      providers.CacheProviderInterface
	compressor CompressorInterface
	metrics    providers.MetricsProviderInterface
	logger     providers.Logger
}

func NewClient(
	conf *structures.Config,
	cache providers.CacheProviderInterface,
	compressor CompressorInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) ClientInterface {
	interval := conf.AniList.MinRequestInterval
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	if interval <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &Client{
		httpClient: &http.Client{Timeout: conf.AniList.Timeout},
		baseURL:    conf.AniList.BaseURL,
		token:      conf.AniList.Token,
		pageSize:   conf.AniList.ActivityPageSize,
		limiter:    limiter,
		cache:      cache,
		compressor: compressor,
		metrics:    metrics,
		logger:     logger,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

func cacheKey(query string, variables map[string]any) string {
	vars, _ := json.Marshal(variables)
	return query + "-" + string(vars)
}

// request resolves one GraphQL operation, serving from cache when the
// same document and variables were fetched within the TTL.
func (c *Client) request(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	key := cacheKey(query, variables)

	if compressed, ok := c.cache.Get(key); ok {
		raw, err := c.compressor.Decompress(compressed)
		if err == nil && json.Unmarshal(raw, out) == nil {
			c.metrics.IncCacheHits()
			c.logger.Debugf(providers.TypeApp, "anilist: cache hit for %s", operation)
			return nil
		}
		c.logger.Warnf(providers.TypeApp, "anilist: dropping unreadable cache entry for %s", operation)
	}
	c.metrics.IncCacheMisses()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("anilist: %s: %w", operation, err)
	}

	raw, err := c.post(ctx, operation, query, variables)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("anilist: %s: decode response: %w", operation, err)
	}

	if compressed, err := c.compressor.Compress(raw); err == nil {
		c.cache.Set(key, compressed)
	}
	return nil
}

func (c *Client) post(ctx context.Context, operation, query string, variables map[string]any) ([]byte, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("anilist: %s: encode request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("anilist: %s: build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveUpstreamDuration(operation, time.Since(started))
	if err != nil {
		c.metrics.IncUpstreamRequests(operation, "error")
		return nil, fmt.Errorf("anilist: %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.metrics.IncUpstreamRequests(operation, "rate_limited")
		c.logger.Warnf(providers.TypeApp, "anilist: %s hit upstream rate limit", operation)
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		c.metrics.IncUpstreamRequests(operation, "error")
		return nil, fmt.Errorf("anilist: %s: unexpected status %d", operation, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncUpstreamRequests(operation, "error")
		return nil, fmt.Errorf("anilist: %s: read response: %w", operation, err)
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		c.metrics.IncUpstreamRequests(operation, "error")
		return nil, fmt.Errorf("anilist: %s: decode envelope: %w", operation, err)
	}
	if len(envelope.Errors) > 0 {
		c.metrics.IncUpstreamRequests(operation, "error")
		return nil, fmt.Errorf("anilist: %s: %s", operation, envelope.Errors[0].Message)
	}

	c.metrics.IncUpstreamRequests(operation, "ok")
	return envelope.Data, nil
}

func (c *Client) UserProfile(ctx context.Context, userName string) (*UserProfile, error) {
	var data struct {
		User struct {
			ID         int    `json:"id"`
			Name       string `json:"name"`
			Favourites struct {
				Anime struct {
					Nodes []struct {
						ID int `json:"id"`
					} `json:"nodes"`
				} `json:"anime"`
			} `json:"favourites"`
		} `json:"User"`
	}

	vars := map[string]any{"userName": userName}
	if err := c.request(ctx, "user_profile", queryUserProfile, vars, &data); err != nil {
		return nil, err
	}

	return &UserProfile{
		ID:             data.User.ID,
		Name:           data.User.Name,
		FavoritesCount: len(data.User.Favourites.Anime.Nodes),
	}, nil
}

func (c *Client) AnimeList(ctx context.Context, userName string) ([]ListGroup, error) {
	var data struct {
		MediaListCollection struct {
			Lists []ListGroup `json:"lists"`
		} `json:"MediaListCollection"`
	}

	vars := map[string]any{"userName": userName}
	if err := c.request(ctx, "anime_list", queryAnimeList, vars, &data); err != nil {
		return nil, err
	}
	return data.MediaListCollection.Lists, nil
}

func (c *Client) ActivityCount(ctx context.Context, userID int) (int, error) {
	var data struct {
		Page struct {
			PageInfo struct {
				Total int `json:"total"`
			} `json:"pageInfo"`
		} `json:"Page"`
	}

	pageSize := c.pageSize
	if pageSize <= 0 {
		pageSize = 50
	}
	vars := map[string]any{"userId": userID, "perPage": pageSize}
	if err := c.request(ctx, "activity_count", queryActivityCount, vars, &data); err != nil {
		return 0, err
	}
	return data.Page.PageInfo.Total, nil
}
