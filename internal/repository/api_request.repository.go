package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// ApiRequestRepository keeps an audit row per HTTP request.
type ApiRequestRepository interface {
	Add(ctx context.Context, tx Queryer, ar model.APIRequest) error
	Update(ctx context.Context, tx Queryer, ar model.APIRequest) error
	GetUsageStats(ctx context.Context, tx Queryer, since time.Time) (*UsageStats, error)
}

type UsageStats struct {
	Requests          int      `json:"requests"`
	UniqueCallers     int      `json:"uniqueCallers"`
	DashboardRequests int      `json:"dashboardRequests"`
	FailedRequests    int      `json:"failedRequests"`
	AvgDurationMs     *float64 `json:"avgDurationMs"`
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{Db: db}
}

func (h apiRequestRepositoryHandler) Add(ctx context.Context, tx Queryer, ar model.APIRequest) error {
	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(ar)

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to insert API request: %w", err)
	}

	return nil
}

func (h apiRequestRepositoryHandler) Update(ctx context.Context, tx Queryer, ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to update API request %s: %w", ar.RequestID, err)
	}

	return nil
}

func (h apiRequestRepositoryHandler) GetUsageStats(ctx context.Context, tx Queryer, since time.Time) (*UsageStats, error) {
	query := postgres.RawStatement(`
	select
		count(*) as "usage_stats.requests",
		count(distinct ip_address) as "usage_stats.unique_callers",
		count(*) filter (where route = '/api/ai/dashboard-insights') as "usage_stats.dashboard_requests",
		count(*) filter (where status_code >= 500) as "usage_stats.failed_requests",
		avg(duration_ms)::float8 as "usage_stats.avg_duration_ms"
	from api_request
	where start_ts >= #since;`,
		postgres.RawArgs{"#since": since},
	)

	out := UsageStats{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
