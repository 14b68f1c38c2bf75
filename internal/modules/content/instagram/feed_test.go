package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/config"
	"github.com/hjstudio/core/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFeedService_MissingToken(t *testing.T) {
	svc := NewFeedService(config.InstagramConfig{}, nil, zap.NewNop())

	_, err := svc.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTokenNotConfigured)
	assert.ErrorIs(t, svc.Refresh(context.Background()), ErrTokenNotConfigured)
}

func TestFeedService_FetchUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/media", r.URL.Path)
		assert.Equal(t, "secret-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, feedFields, r.URL.Query().Get("fields"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{
				{
					"id":         "17890",
					"media_url":  "https://cdn.example/1.jpg",
					"media_type": "IMAGE",
					"caption":    "site visit",
					"permalink":  "https://instagram.com/p/abc",
					"timestamp":  "2024-03-01T10:00:00Z",
				},
			},
		})
	}))
	defer upstream.Close()

	svc := NewFeedService(config.InstagramConfig{
		AccessToken: "secret-token",
		APIBase:     upstream.URL,
		CacheTTLMin: 30,
	}, nil, zap.NewNop())

	items, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "17890", items[0].ID)
	assert.Equal(t, "IMAGE", items[0].MediaType)
	assert.Equal(t, "site visit", items[0].Caption)
}

func TestFeedService_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad token"}`, http.StatusBadRequest)
	}))
	defer upstream.Close()

	svc := NewFeedService(config.InstagramConfig{
		AccessToken: "expired",
		APIBase:     upstream.URL,
	}, nil, zap.NewNop())

	_, err := svc.Fetch(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenNotConfigured)
}

func TestHandler_LiveFeedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(feed *FeedService) *gin.Engine {
		db := newTestDB(t)
		r := gin.New()
		api := r.Group("/api/v1")
		noGate := func(c *gin.Context) { c.Next() }
		NewHandler(NewService(db, zap.NewNop()), feed).RegisterRoutes(api, noGate)
		return r
	}

	t.Run("missing token is a fixed 500", func(t *testing.T) {
		r := newRouter(NewFeedService(config.InstagramConfig{}, nil, zap.NewNop()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/instagram/feed", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Instagram access token not configured")
	})

	t.Run("upstream failure is a fixed 500", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer upstream.Close()

		r := newRouter(NewFeedService(config.InstagramConfig{
			AccessToken: "x",
			APIBase:     upstream.URL,
		}, nil, zap.NewNop()))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/instagram/feed", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch Instagram posts")
	})
}

func TestService_ListPublicFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())

	t.Run("empty store serves fallback set", func(t *testing.T) {
		items := svc.ListPublic()
		assert.Len(t, items, 6)
	})

	t.Run("curated rows win", func(t *testing.T) {
		_, err := svc.Create(&PostDTO{
			Image:    "/images/real.jpg",
			PostDate: "2024-05-01T00:00:00Z",
		})
		require.NoError(t, err)

		items := svc.ListPublic()
		require.Len(t, items, 1)
		assert.Equal(t, "/images/real.jpg", items[0].Image)
	})
}
