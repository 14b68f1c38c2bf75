package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hjstudio/core/internal/middleware"
	"github.com/hjstudio/core/internal/modules/aggregate"
	"github.com/hjstudio/core/internal/modules/content/achievement"
	"github.com/hjstudio/core/internal/modules/content/designboard"
	"github.com/hjstudio/core/internal/modules/content/instagram"
	"github.com/hjstudio/core/internal/modules/content/project"
	"github.com/hjstudio/core/internal/modules/content/publication"
	"github.com/hjstudio/core/internal/modules/content/testimonial"
	"github.com/hjstudio/core/internal/modules/crontask"
	"github.com/hjstudio/core/internal/modules/gate"
	"github.com/hjstudio/core/internal/modules/inquiry"
	"github.com/hjstudio/core/internal/modules/settings"
	"github.com/hjstudio/core/internal/pkg/bark"
	pkgredis "github.com/hjstudio/core/internal/pkg/redis"
	"github.com/hjstudio/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	gateMW := middleware.Gate(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "hj-studio-core",
		"version":  "1.0.0",
		"homepage": "https://hariomjangid.com",
	}

	barkSvc := bark.New(func() (key, serverURL, siteTitle string) {
		return a.cfg.Bark.Key, a.cfg.Bark.ServerURL, a.cfg.Bark.SiteTitle
	})

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalGate(db))
	api.Use(middleware.RateLimit(rc.Raw(), barkSvc))
	api.Use(middleware.Idempotence(rc.Raw()))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       30 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	api.GET("/clean_cache", gateMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})

	// Gate
	gate.NewHandler(gate.NewService(db, a.cfg.AdminPassword)).RegisterRoutes(api, gateMW)

	// Content
	project.NewHandler(project.NewService(db)).RegisterRoutes(api, gateMW)
	designboard.NewHandler(designboard.NewService(db)).RegisterRoutes(api, gateMW)
	instagram.NewHandler(instagram.NewService(db, a.logger.Named("Instagram")), a.feedSvc).RegisterRoutes(api, gateMW)
	testimonial.NewHandler(testimonial.NewService(db)).RegisterRoutes(api, gateMW)
	achievement.NewHandler(achievement.NewService(db)).RegisterRoutes(api, gateMW)
	publication.NewHandler(publication.NewService(db, a.logger.Named("Publications"))).RegisterRoutes(api, gateMW)

	// Contact form + admin inbox
	inquiry.NewHandler(inquiry.NewService(db, barkSvc, a.logger.Named("Inquiry"))).RegisterRoutes(api, gateMW)

	// Site settings (key-value store)
	settings.NewHandler(settings.NewService(db)).RegisterRoutes(api, gateMW)

	// Combined reads + admin snapshot
	aggregate.RegisterRoutes(api, db, gateMW)

	// Cron job management (admin)
	crontask.NewHandler(a.sched).RegisterRoutes(api, gateMW)
}

func httpCacheSkipPaths(prefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	return []string{
		p + "/uptime",
		p + "/ping",
		p + "/clean_cache",
		p + "/gate/*",
		p + "/instagram/feed",
	}
}
