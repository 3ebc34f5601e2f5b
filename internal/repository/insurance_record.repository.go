package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/db/models/postgres/public/table"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/go-jet/jet/v2/postgres"
)

type InsuranceRecordRepository interface {
	List(ctx context.Context, tx Queryer, filter InsuranceRecordListFilter) ([]domain.InsuranceRecord, error)
	ListInsuredClientIDs(ctx context.Context, tx Queryer) (map[string]bool, error)
	Stats(ctx context.Context, tx Queryer, agentID *string) (*domain.InsuranceStats, error)
	AddMany(ctx context.Context, tx Queryer, records []model.InsuranceRecords) error
}

type InsuranceRecordListFilter struct {
	AgentID         *string
	AgentExternalID *string
	ClientID        *string
	ClientIDs       []string
	IncludeDeleted  bool
	MinPremiumGap   *float64
	MinScore        *int
}

type insuranceRecordRepositoryHandler struct {
	Db *sql.DB
}

func NewInsuranceRecordRepository(db *sql.DB) InsuranceRecordRepository {
	return insuranceRecordRepositoryHandler{Db: db}
}

func (h insuranceRecordRepositoryHandler) List(ctx context.Context, tx Queryer, filter InsuranceRecordListFilter) ([]domain.InsuranceRecord, error) {
	t := table.InsuranceRecords

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
	if filter.ClientIDs != nil {
		if len(filter.ClientIDs) == 0 {
			return []domain.InsuranceRecord{}, nil
		}
		whereClauses = append(whereClauses, t.UserID.IN(stringExpressions(filter.ClientIDs)...))
	}
	if filter.MinPremiumGap != nil {
		whereClauses = append(whereClauses, t.PremiumGap.GT_EQ(postgres.Float(*filter.MinPremiumGap)))
	}
	if filter.MinScore != nil {
		whereClauses = append(whereClauses, t.OpportunityScore.GT_EQ(postgres.Int(int64(*filter.MinScore))))
	}

	query := t.
		SELECT(t.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(t.ID.ASC())

	rows := []model.InsuranceRecords{}
	err := query.QueryContext(ctx, pick(h.Db, tx), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance records: %w", err)
	}

	out := make([]domain.InsuranceRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, insuranceRecordToDomain(r))
	}
	return out, nil
}

// ListInsuredClientIDs returns the set of clients holding at least one
// live policy record.
func (h insuranceRecordRepositoryHandler) ListInsuredClientIDs(ctx context.Context, tx Queryer) (map[string]bool, error) {
	t := table.InsuranceRecords
	query := t.
		SELECT(t.UserID).
		DISTINCT().
		WHERE(notDeleted(t.Deleted))

	q, args := query.Sql()
	rows, err := pick(h.Db, tx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list insured clients: %w", err)
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan insured client: %w", err)
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read insured clients: %w", err)
	}

	return out, nil
}

// Stats aggregates policy counts, premiums and recorded premium gaps by
// insurance type.
func (h insuranceRecordRepositoryHandler) Stats(ctx context.Context, tx Queryer, agentID *string) (*domain.InsuranceStats, error) {
	t := table.InsuranceRecords

	whereClauses := []postgres.BoolExpression{notDeleted(t.Deleted)}
	if agentID != nil {
		whereClauses = append(whereClauses, t.AgentID.EQ(postgres.String(*agentID)))
	}

	query := t.
		SELECT(
			t.InsuranceType,
			postgres.COUNT(postgres.STAR),
			postgres.COALESCE(postgres.SUMf(t.Premium), postgres.Float(0)),
			postgres.COALESCE(postgres.SUMf(t.PremiumGap), postgres.Float(0)),
		).
		WHERE(postgres.AND(whereClauses...)).
		GROUP_BY(t.InsuranceType)

	q, args := query.Sql()
	rows, err := pick(h.Db, tx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance stats: %w", err)
	}
	defer rows.Close()

	out := domain.InsuranceStats{
		BreakdownByType: map[domain.InsuranceType]domain.InsuranceTypeStats{},
	}
	premiums := []float64{}
	gaps := []float64{}
	for rows.Next() {
		var insuranceType sql.NullString
		var count int64
		var premium, gap float64
		if err := rows.Scan(&insuranceType, &count, &premium, &gap); err != nil {
			return nil, fmt.Errorf("failed to scan insurance stats row: %w", err)
		}

		kind := domain.NewInsuranceType(insuranceType.String)
		existing := out.BreakdownByType[kind]
		out.BreakdownByType[kind] = domain.InsuranceTypeStats{
			Count:        existing.Count + count,
			TotalPremium: util.SumMoney(existing.TotalPremium, premium),
		}
		out.TotalPolicies += count
		premiums = append(premiums, premium)
		gaps = append(gaps, gap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read insurance stats: %w", err)
	}

	out.TotalPremiumCollected = util.SumMoney(premiums...)
	out.TotalPremiumGap = util.SumMoney(gaps...)
	out.PotentialAdditionalRevenue = out.TotalPremiumGap

	return &out, nil
}

func (h insuranceRecordRepositoryHandler) AddMany(ctx context.Context, tx Queryer, records []model.InsuranceRecords) error {
	if len(records) == 0 {
		return nil
	}
	t := table.InsuranceRecords

	query := t.
		INSERT(t.MutableColumns).
		MODELS(records).
		ON_CONFLICT(t.SourceID).
		DO_NOTHING()

	_, err := query.ExecContext(ctx, pick(h.Db, tx))
	if err != nil {
		return fmt.Errorf("failed to insert insurance records: %w", err)
	}

	return nil
}

func stringExpressions(values []string) []postgres.Expression {
	out := make([]postgres.Expression, 0, len(values))
	for _, v := range values {
		out = append(out, postgres.String(v))
	}
	return out
}
