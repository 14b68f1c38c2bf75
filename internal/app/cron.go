package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hjstudio/core/internal/config"
	"github.com/hjstudio/core/internal/modules/content/instagram"
	pkgcron "github.com/hjstudio/core/internal/pkg/cron"
	"github.com/hjstudio/core/internal/pkg/gatesession"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, cfg *config.AppConfig, feedSvc *instagram.FeedService, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "instagram_feed_sync",
		Description: "refresh the cached Instagram feed from the Graph API",
		Interval:    time.Duration(cfg.Instagram.SyncMin) * time.Minute,
		Fn: func(ctx context.Context) error {
			err := feedSvc.Refresh(ctx)
			if errors.Is(err, instagram.ErrTokenNotConfigured) {
				// No token, nothing to sync.
				return nil
			}
			if err != nil {
				cronLogger.Warn("instagram feed sync failed", zap.Error(err))
				return err
			}
			cronLogger.Info("instagram feed synced")
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "purge_gate_sessions",
		Description: "delete expired and revoked admin gate sessions",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := gatesession.PurgeExpired(db, time.Now())
			if err != nil {
				cronLogger.Warn("gate session purge failed", zap.Error(err))
				return err
			}
			if n > 0 {
				cronLogger.Info(fmt.Sprintf("purged %d stale gate sessions", n))
			}
			return nil
		},
	})
}
