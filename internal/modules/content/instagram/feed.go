package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hjstudio/core/internal/config"
	"github.com/hjstudio/core/internal/pkg/redis"
	"go.uber.org/zap"
)

const (
	feedCacheKey = "hj:instagram:feed"
	feedFields   = "id,media_url,media_type,caption,permalink,timestamp"
)

// ErrTokenNotConfigured means no access token is set, so the live feed
// cannot be fetched at all.
var ErrTokenNotConfigured = errors.New("instagram access token not configured")

// FeedItem is one entry of the live Graph API feed, passed through verbatim.
type FeedItem struct {
	ID        string `json:"id"`
	MediaURL  string `json:"media_url"`
	MediaType string `json:"media_type"`
	Caption   string `json:"caption,omitempty"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

type feedEnvelope struct {
	Data []FeedItem `json:"data"`
}

// FeedService proxies the Instagram Basic Display API so the access token
// never reaches the browser. Responses are cached in Redis.
type FeedService struct {
	cfg    config.InstagramConfig
	cache  *redis.Client
	http   *http.Client
	logger *zap.Logger
}

func NewFeedService(cfg config.InstagramConfig, cache *redis.Client, logger *zap.Logger) *FeedService {
	return &FeedService{
		cfg:    cfg,
		cache:  cache,
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Fetch returns the live feed, serving from cache when fresh.
func (s *FeedService) Fetch(ctx context.Context) ([]FeedItem, error) {
	if s.cfg.AccessToken == "" {
		return nil, ErrTokenNotConfigured
	}

	if s.cache != nil {
		var cached []FeedItem
		hit, err := s.cache.GetJSON(ctx, feedCacheKey, &cached)
		if err != nil {
			s.logger.Warn("instagram feed cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	items, err := s.fetchUpstream(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		ttl := time.Duration(s.cfg.CacheTTLMin) * time.Minute
		if err := s.cache.SetJSON(ctx, feedCacheKey, items, ttl); err != nil {
			s.logger.Warn("instagram feed cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// Refresh bypasses the cache and repopulates it. Used by the sync job.
func (s *FeedService) Refresh(ctx context.Context) error {
	if s.cfg.AccessToken == "" {
		return ErrTokenNotConfigured
	}
	items, err := s.fetchUpstream(ctx)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	ttl := time.Duration(s.cfg.CacheTTLMin) * time.Minute
	return s.cache.SetJSON(ctx, feedCacheKey, items, ttl)
}

func (s *FeedService) fetchUpstream(ctx context.Context) ([]FeedItem, error) {
	q := url.Values{}
	q.Set("fields", feedFields)
	q.Set("access_token", s.cfg.AccessToken)
	endpoint := fmt.Sprintf("%s/me/media?%s", s.cfg.APIBase, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("instagram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("instagram responded %d: %s", resp.StatusCode, body)
	}

	var env feedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode instagram response: %w", err)
	}
	if env.Data == nil {
		env.Data = []FeedItem{}
	}
	return env.Data, nil
}
