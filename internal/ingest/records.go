package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wealthdesk/internal/db/models/postgres/public/model"

	"github.com/gocarina/gocsv"
)

// rows are keyed by the column names of the CRM exports

type sipRow struct {
	SipMetaID              Field `json:"sip_meta_id" csv:"sip_meta_id"`
	UserID                 Field `json:"user_id" csv:"user_id"`
	AgentID                Field `json:"agent_id" csv:"agent_id"`
	AgentExternalID        Field `json:"agent_external_id" csv:"agent_external_id"`
	Amount                 Field `json:"amount" csv:"amount"`
	SchemeName             Field `json:"scheme_name" csv:"scheme_name"`
	CreatedAt              Field `json:"created_at" csv:"created_at"`
	StartDate              Field `json:"start_date" csv:"start_date"`
	IncrementPercentage    Field `json:"increment_percentage" csv:"increment_percentage"`
	IncrementAmount        Field `json:"increment_amount" csv:"increment_amount"`
	IncrementPeriod        Field `json:"increment_period" csv:"increment_period"`
	IsActive               Field `json:"is_active" csv:"is_active"`
	CurrentSipStatus       Field `json:"currentSipStatus" csv:"currentSipStatus"`
	LatestSuccessOrderDate Field `json:"latest_success_order_date" csv:"latest_success_order_date"`
	SuccessAmount          Field `json:"success_amount" csv:"success_amount"`
	PendingAmount          Field `json:"pending_amount" csv:"pending_amount"`
	FailedAmount           Field `json:"failed_amount" csv:"failed_amount"`
	SuccessCount           Field `json:"success_count" csv:"success_count"`
	Deleted                Field `json:"deleted" csv:"deleted"`
}

type insuranceRow struct {
	SourceID                Field `json:"source_id" csv:"source_id"`
	UserID                  Field `json:"itf.user_id" csv:"itf.user_id"`
	Name                    Field `json:"name" csv:"name"`
	AgentID                 Field `json:"agent_id" csv:"agent_id"`
	AgentExternalID         Field `json:"itf.agent_external_id" csv:"itf.agent_external_id"`
	BrokerAgentExternalID   Field `json:"b.agent_external_id" csv:"b.agent_external_id"`
	InsuranceType           Field `json:"insurance_type" csv:"insurance_type"`
	Insurer                 Field `json:"insurer" csv:"insurer"`
	Premium                 Field `json:"premium" csv:"premium"`
	MfCurrentValue          Field `json:"mf_current_value" csv:"mf_current_value"`
	MockAge                 Field `json:"mock_age" csv:"mock_age"`
	WealthBand              Field `json:"wealth_band" csv:"wealth_band"`
	BaselineExpectedPremium Field `json:"baseline_expected_premium" csv:"baseline_expected_premium"`
	PremiumGap              Field `json:"premium_gap" csv:"premium_gap"`
	OpportunityScore        Field `json:"opportunity_score" csv:"opportunity_score"`
	Deleted                 Field `json:"deleted" csv:"deleted"`
}

type holdingRow struct {
	UserID          Field `json:"user_id" csv:"user_id"`
	Wpc             Field `json:"wpc" csv:"wpc"`
	SchemeName      Field `json:"scheme_name" csv:"scheme_name"`
	Category        Field `json:"category" csv:"category"`
	AmcName         Field `json:"amc_name" csv:"amc_name"`
	CurrentValue    Field `json:"current_value" csv:"current_value"`
	PortfolioWeight Field `json:"portfolio_weight" csv:"portfolio_weight"`
	LiveXirr        Field `json:"live_xirr" csv:"live_xirr"`
	BenchmarkXirr   Field `json:"benchmark_xirr" csv:"benchmark_xirr"`
	XirrPerformance Field `json:"xirr_performance" csv:"xirr_performance"`
	ThreeYearAlpha  Field `json:"three_year_alpha" csv:"three_year_alpha"`
	FiveYearAlpha   Field `json:"five_year_alpha" csv:"five_year_alpha"`
	Rating          Field `json:"rating" csv:"rating"`
}

type userRow struct {
	UserID                Field `json:"user_id" csv:"user_id"`
	Name                  Field `json:"name" csv:"name"`
	AgentID               Field `json:"agent_id" csv:"agent_id"`
	AgentExternalID       Field `json:"agent_external_id" csv:"agent_external_id"`
	AgentName             Field `json:"agent_name" csv:"agent_name"`
	DateOfBirth           Field `json:"date_of_birth" csv:"date_of_birth"`
	TotalCurrentValue     Field `json:"total_current_value" csv:"total_current_value"`
	MfCurrentValue        Field `json:"mf_current_value" csv:"mf_current_value"`
	MfInvestedValue       Field `json:"mf_invested_value" csv:"mf_invested_value"`
	InsuranceCurrentValue Field `json:"insurance_current_value" csv:"insurance_current_value"`
}

// Load results carry the rows that could be mapped plus the number of
// rows dropped for missing keys.
type LoadResult[T any] struct {
	Records []T
	Skipped int
}

func LoadSipRecords(path string) (*LoadResult[model.SipRecords], error) {
	rows, err := decodeFile[sipRow](path)
	if err != nil {
		return nil, err
	}

	out := &LoadResult[model.SipRecords]{Records: []model.SipRecords{}}
	for i, r := range rows {
		if r.SipMetaID.blank() || r.UserID.blank() {
			out.Skipped++
			continue
		}
		m, err := sipRowToModel(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sip row %d (%s): %w", i+1, r.SipMetaID, err)
		}
		out.Records = append(out.Records, *m)
	}
	return out, nil
}

func LoadInsuranceRecords(path string) (*LoadResult[model.InsuranceRecords], error) {
	rows, err := decodeFile[insuranceRow](path)
	if err != nil {
		return nil, err
	}

	out := &LoadResult[model.InsuranceRecords]{Records: []model.InsuranceRecords{}}
	for i, r := range rows {
		if r.SourceID.blank() || r.UserID.blank() {
			out.Skipped++
			continue
		}
		m, err := insuranceRowToModel(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse insurance row %d (%s): %w", i+1, r.SourceID, err)
		}
		out.Records = append(out.Records, *m)
	}
	return out, nil
}

func LoadHoldings(path string) (*LoadResult[model.PortfolioHoldings], error) {
	rows, err := decodeFile[holdingRow](path)
	if err != nil {
		return nil, err
	}

	out := &LoadResult[model.PortfolioHoldings]{Records: []model.PortfolioHoldings{}}
	for i, r := range rows {
		if r.UserID.blank() || r.Wpc.blank() {
			out.Skipped++
			continue
		}
		m, err := holdingRowToModel(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse holding row %d (%s/%s): %w", i+1, r.UserID, r.Wpc, err)
		}
		out.Records = append(out.Records, *m)
	}
	return out, nil
}

func LoadUsers(path string) (*LoadResult[model.Users], error) {
	rows, err := decodeFile[userRow](path)
	if err != nil {
		return nil, err
	}

	out := &LoadResult[model.Users]{Records: []model.Users{}}
	for i, r := range rows {
		if r.UserID.blank() {
			out.Skipped++
			continue
		}
		m, err := userRowToModel(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse user row %d (%s): %w", i+1, r.UserID, err)
		}
		out.Records = append(out.Records, *m)
	}
	return out, nil
}

// decodeFile reads a JSON array or a CSV file with a header row,
// depending on the extension.
func decodeFile[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []T{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.NewDecoder(f).Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to decode json from %s: %w", path, err)
		}
	case ".csv":
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode csv from %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file type %q for %s", ext, path)
	}

	return rows, nil
}

func sipRowToModel(r sipRow) (*model.SipRecords, error) {
	p := parser{}
	m := &model.SipRecords{
		SipMetaID:              strings.TrimSpace(string(r.SipMetaID)),
		UserID:                 strings.TrimSpace(string(r.UserID)),
		AgentID:                r.AgentID.Text(),
		AgentExternalID:        r.AgentExternalID.Text(),
		Amount:                 p.amount("amount", r.Amount),
		SchemeName:             r.SchemeName.Text(),
		CreatedAt:              r.CreatedAt.Text(),
		StartDate:              r.StartDate.Text(),
		IncrementPercentage:    p.amount("increment_percentage", r.IncrementPercentage),
		IncrementAmount:        p.amount("increment_amount", r.IncrementAmount),
		IncrementPeriod:        r.IncrementPeriod.Text(),
		IsActive:               r.IsActive.Text(),
		CurrentSipStatus:       r.CurrentSipStatus.Text(),
		LatestSuccessOrderDate: r.LatestSuccessOrderDate.Text(),
		SuccessAmount:          p.amount("success_amount", r.SuccessAmount),
		PendingAmount:          p.amount("pending_amount", r.PendingAmount),
		FailedAmount:           p.amount("failed_amount", r.FailedAmount),
		SuccessCount:           p.count("success_count", r.SuccessCount),
		Deleted:                r.Deleted.Text(),
	}
	if p.err != nil {
		return nil, p.err
	}
	return m, nil
}

func insuranceRowToModel(r insuranceRow) (*model.InsuranceRecords, error) {
	p := parser{}
	agentExternalID := r.AgentExternalID.Text()
	if agentExternalID == nil {
		agentExternalID = r.BrokerAgentExternalID.Text()
	}
	m := &model.InsuranceRecords{
		SourceID:                strings.TrimSpace(string(r.SourceID)),
		UserID:                  strings.TrimSpace(string(r.UserID)),
		Name:                    r.Name.Text(),
		AgentID:                 r.AgentID.Text(),
		AgentExternalID:         agentExternalID,
		InsuranceType:           r.InsuranceType.Text(),
		Insurer:                 r.Insurer.Text(),
		Premium:                 p.amount("premium", r.Premium),
		MfCurrentValue:          p.amount("mf_current_value", r.MfCurrentValue),
		MockAge:                 p.count("mock_age", r.MockAge),
		WealthBand:              r.WealthBand.Text(),
		BaselineExpectedPremium: p.amount("baseline_expected_premium", r.BaselineExpectedPremium),
		PremiumGap:              p.amount("premium_gap", r.PremiumGap),
		OpportunityScore:        p.count("opportunity_score", r.OpportunityScore),
		Deleted:                 r.Deleted.Text(),
	}
	if p.err != nil {
		return nil, p.err
	}
	return m, nil
}

func holdingRowToModel(r holdingRow) (*model.PortfolioHoldings, error) {
	p := parser{}
	m := &model.PortfolioHoldings{
		UserID:          strings.TrimSpace(string(r.UserID)),
		Wpc:             strings.TrimSpace(string(r.Wpc)),
		SchemeName:      strings.TrimSpace(string(r.SchemeName)),
		Category:        r.Category.Text(),
		AmcName:         r.AmcName.Text(),
		CurrentValue:    p.amount("current_value", r.CurrentValue),
		PortfolioWeight: p.amount("portfolio_weight", r.PortfolioWeight),
		// missing performance figures stay null so classifiers skip them
		LiveXirr:        p.float("live_xirr", r.LiveXirr),
		BenchmarkXirr:   p.float("benchmark_xirr", r.BenchmarkXirr),
		XirrPerformance: p.float("xirr_performance", r.XirrPerformance),
		ThreeYearAlpha:  p.float("three_year_alpha", r.ThreeYearAlpha),
		FiveYearAlpha:   p.float("five_year_alpha", r.FiveYearAlpha),
		Rating:          r.Rating.Text(),
	}
	if p.err != nil {
		return nil, p.err
	}
	return m, nil
}

func userRowToModel(r userRow) (*model.Users, error) {
	p := parser{}
	m := &model.Users{
		UserID:                strings.TrimSpace(string(r.UserID)),
		Name:                  r.Name.Text(),
		AgentID:               r.AgentID.Text(),
		AgentExternalID:       r.AgentExternalID.Text(),
		AgentName:             r.AgentName.Text(),
		DateOfBirth:           r.DateOfBirth.Text(),
		TotalCurrentValue:     p.float("total_current_value", r.TotalCurrentValue),
		MfCurrentValue:        p.float("mf_current_value", r.MfCurrentValue),
		MfInvestedValue:       p.float("mf_invested_value", r.MfInvestedValue),
		InsuranceCurrentValue: p.float("insurance_current_value", r.InsuranceCurrentValue),
	}
	if p.err != nil {
		return nil, p.err
	}
	return m, nil
}

// parser keeps the first conversion error so a row can be mapped in one
// struct literal.
type parser struct {
	err error
}

func (p *parser) amount(column string, f Field) *float64 {
	v, err := f.Amount()
	p.record(column, err)
	return v
}

func (p *parser) float(column string, f Field) *float64 {
	v, err := f.Float()
	p.record(column, err)
	return v
}

func (p *parser) count(column string, f Field) *int32 {
	v, err := f.Count()
	p.record(column, err)
	return v
}

func (p *parser) record(column string, err error) {
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", column, err)
	}
}
