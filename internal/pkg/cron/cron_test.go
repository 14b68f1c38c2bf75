package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunSync(t *testing.T) {
	t.Run("successful run updates state", func(t *testing.T) {
		s := New()
		ran := false
		s.Register(Job{
			Name:     "ok_job",
			Interval: time.Hour,
			Fn: func(ctx context.Context) error {
				ran = true
				return nil
			},
		})

		require.NoError(t, s.RunSync(context.Background(), "ok_job"))
		assert.True(t, ran)

		items := s.List()
		require.Len(t, items, 1)
		assert.Equal(t, StatusFulfill, items[0].Status)
		assert.Empty(t, items[0].Message)
		assert.NotNil(t, items[0].LastRunAt)
	})

	t.Run("failing run records the error", func(t *testing.T) {
		s := New()
		s.Register(Job{
			Name:     "bad_job",
			Interval: time.Hour,
			Fn: func(ctx context.Context) error {
				return errors.New("upstream down")
			},
		})

		err := s.RunSync(context.Background(), "bad_job")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")

		items := s.List()
		require.Len(t, items, 1)
		assert.Equal(t, StatusReject, items[0].Status)
		assert.Equal(t, "upstream down", items[0].Message)
	})

	t.Run("unknown job", func(t *testing.T) {
		s := New()
		assert.Error(t, s.RunSync(context.Background(), "nope"))
		assert.Error(t, s.Run(context.Background(), "nope"))
	})
}
