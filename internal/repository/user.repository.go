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

type UserRepository interface {
	List(ctx context.Context, tx Queryer, filter UserListFilter) ([]domain.Client, error)
	GetMany(ctx context.Context, tx Queryer, ids []string) (map[string]domain.Client, error)
	AddMany(ctx context.Context, tx Queryer, users []model.Users) error
}

type UserListFilter struct {
	AgentID         *string
	AgentExternalID *string
	// MinMfValue is exclusive
	MinMfValue *float64
}

type userRepositoryHandler struct {
	Db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return userRepositoryHandler{Db: db}
}

func (h userRepositoryHandler) List(ctx context.Context, tx Queryer, filter UserListFilter) ([]domain.Client, error) {
	t := table.Users

	whereClauses := []postgres.BoolExpression{postgres.Bool(true)}
	if filter.AgentID != nil {
		whereClauses = append(whereClauses, t.AgentID.EQ(postgres.String(*filter.AgentID)))
	}
	if filter.AgentExternalID != nil {
		whereClauses = append(whereClauses, t.AgentExternalID.EQ(postgres.String(*filter.AgentExternalID)))
	}
	if filter.MinMfValue != nil {
		whereClauses = append(whereClauses, t.MfCurrentValue.GT(postgres.Float(*filter.MinMfValue)))
	}

	query := t.
		SELECT(t.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(t.UserID.ASC())

	rows := []model.Users{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]domain.Client, 0, len(rows))
	for _, r := range rows {
		out = append(out, userToDomain(r))
	}
	return out, nil
}

func (h userRepositoryHandler) GetMany(ctx context.Context, tx Queryer, ids []string) (map[string]domain.Client, error) {
	out := map[string]domain.Client{}
	if len(ids) == 0 {
		return out, nil
	}
	t := table.Users

	query := t.
		SELECT(t.AllColumns).
		WHERE(t.UserID.IN(stringExpressions(ids)...))

	rows := []model.Users{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	for _, r := range rows {
		out[r.UserID] = userToDomain(r)
	}
	return out, nil
}

// AddMany upserts client profiles so re-imports refresh valuations.
func (h userRepositoryHandler) AddMany(ctx context.Context, tx Queryer, users []model.Users) error {
	if len(users) == 0 {
		return nil
	}
	t := table.Users

	query := t.
		INSERT(t.AllColumns).
		MODELS(users).
		ON_CONFLICT(t.UserID).
		DO_UPDATE(postgres.SET(
			t.Name.SET(t.EXCLUDED.Name),
			t.AgentID.SET(t.EXCLUDED.AgentID),
			t.AgentExternalID.SET(t.EXCLUDED.AgentExternalID),
			t.AgentName.SET(t.EXCLUDED.AgentName),
			t.DateOfBirth.SET(t.EXCLUDED.DateOfBirth),
			t.TotalCurrentValue.SET(t.EXCLUDED.TotalCurrentValue),
			t.MfCurrentValue.SET(t.EXCLUDED.MfCurrentValue),
			t.MfInvestedValue.SET(t.EXCLUDED.MfInvestedValue),
			t.InsuranceCurrentValue.SET(t.EXCLUDED.InsuranceCurrentValue),
		))

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to upsert users: %w", err)
	}

	return nil
}
