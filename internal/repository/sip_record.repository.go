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

type SipRecordRepository interface {
	List(ctx context.Context, tx Queryer, filter SipRecordListFilter) ([]domain.SipRecord, error)
	ListAgents(ctx context.Context, tx Queryer) ([]domain.Agent, error)
	AddMany(ctx context.Context, tx Queryer, records []model.SipRecords) error
}

type SipRecordListFilter struct {
	AgentID          *string
	AgentExternalID  *string
	ClientID         *string
	ActiveOnly       bool
	IncludeDeleted   bool
	MinFailedAmount  *float64
	MinSuccessAmount *float64
}

type sipRecordRepositoryHandler struct {
	Db *sql.DB
}

func NewSipRecordRepository(db *sql.DB) SipRecordRepository {
	return sipRecordRepositoryHandler{Db: db}
}

type sipRecordRow struct {
	model.SipRecords
	Users *model.Users
}

func (h sipRecordRepositoryHandler) List(ctx context.Context, tx Queryer, filter SipRecordListFilter) ([]domain.SipRecord, error) {
	t := table.SipRecords
	u := table.Users

	whereClauses := []postgres.BoolExpression{postgres.Bool(true)}
	if !filter.IncludeDeleted {
		whereClauses = append(whereClauses, notDeleted(t.Deleted))
	}
	if filter.AgentID != nil {
		whereClauses = append(whereClauses, t.AgentID.EQ(postgres.String(*filter.AgentID)))
	}
	if filter.AgentExternalID != nil {
		whereClauses = append(whereClauses, t.AgentExternalID.EQ(postgres.String(*filter.AgentExternalID)))
	}
	if filter.ClientID != nil {
		whereClauses = append(whereClauses, t.UserID.EQ(postgres.String(*filter.ClientID)))
	}
	if filter.ActiveOnly {
		whereClauses = append(whereClauses, isTrue(t.IsActive))
	}
	if filter.MinFailedAmount != nil {
		whereClauses = append(whereClauses, t.FailedAmount.GT_EQ(postgres.Float(*filter.MinFailedAmount)))
	}
	if filter.MinSuccessAmount != nil {
		whereClauses = append(whereClauses, t.SuccessAmount.GT_EQ(postgres.Float(*filter.MinSuccessAmount)))
	}

	query := t.
		LEFT_JOIN(u, u.UserID.EQ(t.UserID)).
		SELECT(t.AllColumns, u.UserID, u.Name, u.AgentName).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(t.ID.ASC())

	rows := []sipRecordRow{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list sip records: %w", err)
	}

	out := make([]domain.SipRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, sipRecordToDomain(r.SipRecords, r.Users))
	}
	return out, nil
}

// ListAgents returns every agent with a SIP book, largest AUM first.
func (h sipRecordRepositoryHandler) ListAgents(ctx context.Context, tx Queryer) ([]domain.Agent, error) {
	t := table.SipRecords
	aum := postgres.COALESCE(postgres.SUMf(t.SuccessAmount), postgres.Float(0))

	query := t.
		SELECT(t.AgentID, t.AgentExternalID, postgres.COUNT(postgres.STAR), aum).
		WHERE(notDeleted(t.Deleted)).
		GROUP_BY(t.AgentID, t.AgentExternalID).
		ORDER_BY(aum.DESC())

	q, args := query.Sql()
	rows, err := pick(h.Db, tx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	out := []domain.Agent{}
	for rows.Next() {
		var agentID, agentExternalID sql.NullString
		agent := domain.Agent{}
		if err := rows.Scan(&agentID, &agentExternalID, &agent.TotalSips, &agent.TotalAum); err != nil {
			return nil, fmt.Errorf("failed to scan agent row: %w", err)
		}
		if agentID.Valid {
			agent.AgentID = &agentID.String
		}
		if agentExternalID.Valid {
			agent.AgentExternalID = &agentExternalID.String
		}
		out = append(out, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read agent rows: %w", err)
	}

	return out, nil
}

// AddMany inserts records, skipping any whose sip_meta_id already exists.
func (h sipRecordRepositoryHandler) AddMany(ctx context.Context, tx Queryer, records []model.SipRecords) error {
	if len(records) == 0 {
		return nil
	}
	t := table.SipRecords

	query := t.
		INSERT(t.MutableColumns).
		MODELS(records).
		ON_CONFLICT(t.SipMetaID).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to insert sip records: %w", err)
	}

	return nil
}
