package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/logger"

	"github.com/robfig/cron/v3"
)

// DashboardCache keeps the last summarized dashboard per agent scope.
// Fallback dashboards are never stored.
type DashboardCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]dashboardCacheEntry
	now     func() time.Time
}

type dashboardCacheEntry struct {
	dashboard *domain.Dashboard
	expiresAt time.Time
}

func NewDashboardCache(ttl time.Duration) *DashboardCache {
	return &DashboardCache{
		ttl:     ttl,
		entries: map[string]dashboardCacheEntry{},
		now:     time.Now,
	}
}

func DashboardCacheKey(agentExternalID, agentID *string) string {
	key := "ext:"
	if agentExternalID != nil {
		key += *agentExternalID
	}
	key += "|id:"
	if agentID != nil {
		key += *agentID
	}
	return key
}

func (c *DashboardCache) Get(key string) (*domain.Dashboard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.dashboard, true
}

func (c *DashboardCache) Set(key string, dashboard *domain.Dashboard) {
	if dashboard == nil || dashboard.Metadata.UsedFallback {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = dashboardCacheEntry{
		dashboard: dashboard,
		expiresAt: c.now().Add(c.ttl),
	}
}

// StartDashboardRefresher rebuilds the dashboards of the given agents on
// the cron schedule so advisors are served warm results. The caller owns
// the returned scheduler and should Stop it on shutdown.
func StartDashboardRefresher(ctx context.Context, handler DashboardHandler, schedule string, agentExternalIDs []string) (*cron.Cron, error) {
	lg := logger.FromContext(ctx)
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		for _, id := range agentExternalIDs {
			agent := id
			start := time.Now()
			_, err := handler.GetDashboard(ctx, GetDashboardInput{
				AgentExternalID: &agent,
				Refresh:         true,
				Now:             time.Now().UTC(),
			})
			if err != nil {
				lg.Errorw("failed to refresh dashboard", "agentExternalID", agent, "error", err)
				continue
			}
			lg.Infow("refreshed dashboard", "agentExternalID", agent, "elapsed", time.Since(start).String())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule dashboard refresh %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
