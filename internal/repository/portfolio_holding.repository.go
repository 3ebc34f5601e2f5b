package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/db/models/postgres/public/table"
	"wealthdesk/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type PortfolioHoldingRepository interface {
	List(ctx context.Context, tx Queryer, filter PortfolioHoldingListFilter) ([]domain.PortfolioHolding, error)
	AddMany(ctx context.Context, tx Queryer, holdings []model.PortfolioHoldings) error
}

type PortfolioHoldingListFilter struct {
	ClientID *string
	// AgentExternalID restricts holdings to clients of the agent
	AgentExternalID *string
	MinCurrentValue *float64
	// XirrOnly keeps holdings with both live and benchmark XIRR present
	XirrOnly bool
}

type portfolioHoldingRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioHoldingRepository(db *sql.DB) PortfolioHoldingRepository {
	return portfolioHoldingRepositoryHandler{Db: db}
}

func (h portfolioHoldingRepositoryHandler) List(ctx context.Context, tx Queryer, filter PortfolioHoldingListFilter) ([]domain.PortfolioHolding, error) {
	t := table.PortfolioHoldings

	whereClauses := []postgres.BoolExpression{postgres.Bool(true)}
	if filter.ClientID != nil {
		whereClauses = append(whereClauses, t.UserID.EQ(postgres.String(*filter.ClientID)))
	}
	if filter.AgentExternalID != nil {
		agentClients := table.Users.
			SELECT(table.Users.UserID).
			WHERE(table.Users.AgentExternalID.EQ(postgres.String(*filter.AgentExternalID)))
		whereClauses = append(whereClauses, t.UserID.IN(agentClients))
	}
	if filter.MinCurrentValue != nil {
		whereClauses = append(whereClauses, t.CurrentValue.GT_EQ(postgres.Float(*filter.MinCurrentValue)))
	}
	if filter.XirrOnly {
		whereClauses = append(whereClauses,
			t.LiveXirr.IS_NOT_NULL(),
			t.BenchmarkXirr.IS_NOT_NULL(),
		)
	}

	query := t.
		SELECT(t.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(t.UserID.ASC(), t.Wpc.ASC())

	rows := []model.PortfolioHoldings{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio holdings: %w", err)
	}

	out := make([]domain.PortfolioHolding, 0, len(rows))
	for _, r := range rows {
		out = append(out, portfolioHoldingToDomain(r))
	}
	return out, nil
}

func (h portfolioHoldingRepositoryHandler) AddMany(ctx context.Context, tx Queryer, holdings []model.PortfolioHoldings) error {
	if len(holdings) == 0 {
		return nil
	}
	t := table.PortfolioHoldings

	query := t.
		INSERT(t.MutableColumns).
		MODELS(holdings).
		ON_CONFLICT(t.UserID, t.Wpc).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to insert portfolio holdings: %w", err)
	}

	return nil
}
