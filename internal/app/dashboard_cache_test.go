package app

import (
	"context"
	"testing"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/stretchr/testify/require"
)

func TestDashboardCache(t *testing.T) {
	now := testNow
	cache := NewDashboardCache(10 * time.Minute)
	cache.now = func() time.Time { return now }

	key := DashboardCacheKey(util.StringPointer("AG1"), nil)
	dashboard := &domain.Dashboard{DashboardPayload: *validPayload()}

	_, ok := cache.Get(key)
	require.False(t, ok)

	cache.Set(key, dashboard)
	got, ok := cache.Get(key)
	require.True(t, ok)
	require.Same(t, dashboard, got)

	_, ok = cache.Get(DashboardCacheKey(nil, util.StringPointer("AG1")))
	require.False(t, ok)

	now = now.Add(10 * time.Minute)
	_, ok = cache.Get(key)
	require.False(t, ok)

	t.Run("fallback dashboards are not cached", func(t *testing.T) {
		fallback := &domain.Dashboard{
			DashboardPayload: domain.FallbackDashboardPayload(),
			Metadata:         domain.DashboardMetadata{UsedFallback: true},
		}
		cache.Set("fallback", fallback)
		_, ok := cache.Get("fallback")
		require.False(t, ok)
	})
}

func TestStartDashboardRefresher(t *testing.T) {
	_, err := StartDashboardRefresher(context.Background(), DashboardHandler{}, "not a schedule", []string{"AG1"})
	require.Error(t, err)

	c, err := StartDashboardRefresher(context.Background(), DashboardHandler{}, "@every 1h", []string{"AG1"})
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)
	c.Stop()
}
