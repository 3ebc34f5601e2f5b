package repository

import (
	"strings"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/go-jet/jet/v2/postgres"
)

// Storage keeps flags, dates and enums as text. These helpers convert
// them once on the way out of the database.

// truthyFlags are the lowercase spellings of true. SQL filters and
// parseFlag must agree on them.
var truthyFlags = []string{"true", "t", "1", "yes", "y"}

func parseFlag(s *string) bool {
	if s == nil {
		return false
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	for _, f := range truthyFlags {
		if v == f {
			return true
		}
	}
	return false
}

func normalizedFlag(col postgres.ColumnString) postgres.StringExpression {
	return postgres.LOWER(postgres.BTRIM(col))
}

func truthyFlagValues() []postgres.Expression {
	out := make([]postgres.Expression, 0, len(truthyFlags))
	for _, f := range truthyFlags {
		out = append(out, postgres.String(f))
	}
	return out
}

// isTrue matches rows whose text flag parseFlag reads as true.
func isTrue(col postgres.ColumnString) postgres.BoolExpression {
	return normalizedFlag(col).IN(truthyFlagValues()...)
}

func floatValue(f *float64) float64 {
	return util.FloatOr(f, 0)
}

func intPointer(i *int32) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}

func intValue(i *int32) int {
	if i == nil {
		return 0
	}
	return int(*i)
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// notDeleted matches rows whose text deleted flag is anything but true.
func notDeleted(col postgres.ColumnString) postgres.BoolExpression {
	return postgres.OR(
		col.IS_NULL(),
		normalizedFlag(col).NOT_IN(truthyFlagValues()...),
	)
}

func sipRecordToDomain(m model.SipRecords, u *model.Users) domain.SipRecord {
	rawPeriod := util.StringOr(m.IncrementPeriod, "")
	out := domain.SipRecord{
		SipID:              m.SipMetaID,
		ClientID:           m.UserID,
		AgentID:            nonEmpty(m.AgentID),
		AgentExternalID:    nonEmpty(m.AgentExternalID),
		SchemeName:         nonEmpty(m.SchemeName),
		Amount:             floatValue(m.Amount),
		SuccessTotal:       floatValue(m.SuccessAmount),
		FailedTotal:        floatValue(m.FailedAmount),
		PendingTotal:       floatValue(m.PendingAmount),
		SuccessCount:       intValue(m.SuccessCount),
		IncrementAmount:    util.FinitePointer(m.IncrementAmount),
		IncrementPercent:   util.FinitePointer(m.IncrementPercentage),
		IncrementPeriod:    domain.NewIncrementPeriod(rawPeriod),
		RawIncrementPeriod: rawPeriod,
		IsActive:           parseFlag(m.IsActive),
		CurrentStatus:      domain.NewSipStatus(util.StringOr(m.CurrentSipStatus, "")),
		Deleted:            parseFlag(m.Deleted),
		CreatedAt:          util.ParseDatePtr(m.CreatedAt),
		StartDate:          util.ParseDatePtr(m.StartDate),
		LatestSuccessDate:  util.ParseDatePtr(m.LatestSuccessOrderDate),
	}
	if u != nil {
		out.ClientName = nonEmpty(u.Name)
		out.AgentName = nonEmpty(u.AgentName)
	}
	return out
}

func insuranceRecordToDomain(m model.InsuranceRecords) domain.InsuranceRecord {
	return domain.InsuranceRecord{
		SourceID:                m.SourceID,
		ClientID:                m.UserID,
		ClientName:              nonEmpty(m.Name),
		AgentID:                 nonEmpty(m.AgentID),
		AgentExternalID:         nonEmpty(m.AgentExternalID),
		InsuranceType:           domain.NewInsuranceType(util.StringOr(m.InsuranceType, "")),
		Insurer:                 nonEmpty(m.Insurer),
		Premium:                 floatValue(m.Premium),
		MfCurrentValue:          floatValue(m.MfCurrentValue),
		Age:                     intPointer(m.MockAge),
		WealthBand:              nonEmpty(m.WealthBand),
		BaselineExpectedPremium: floatValue(m.BaselineExpectedPremium),
		PremiumGap:              floatValue(m.PremiumGap),
		OpportunityScore:        intValue(m.OpportunityScore),
		Deleted:                 parseFlag(m.Deleted),
	}
}

func portfolioHoldingToDomain(m model.PortfolioHoldings) domain.PortfolioHolding {
	return domain.PortfolioHolding{
		ClientID:        m.UserID,
		SchemeID:        m.Wpc,
		SchemeName:      m.SchemeName,
		Category:        nonEmpty(m.Category),
		AmcName:         nonEmpty(m.AmcName),
		CurrentValue:    floatValue(m.CurrentValue),
		PortfolioWeight: floatValue(m.PortfolioWeight),
		LiveXirr:        util.FinitePointer(m.LiveXirr),
		BenchmarkXirr:   util.FinitePointer(m.BenchmarkXirr),
		XirrPerformance: util.FinitePointer(m.XirrPerformance),
		ThreeYearAlpha:  util.FinitePointer(m.ThreeYearAlpha),
		FiveYearAlpha:   util.FinitePointer(m.FiveYearAlpha),
		Rating:          nonEmpty(m.Rating),
	}
}

func userToDomain(m model.Users) domain.Client {
	return domain.Client{
		ClientID:              m.UserID,
		Name:                  nonEmpty(m.Name),
		AgentID:               nonEmpty(m.AgentID),
		AgentExternalID:       nonEmpty(m.AgentExternalID),
		AgentName:             nonEmpty(m.AgentName),
		DateOfBirth:           util.ParseDatePtr(m.DateOfBirth),
		TotalCurrentValue:     floatValue(m.TotalCurrentValue),
		MfCurrentValue:        floatValue(m.MfCurrentValue),
		MfInvestedValue:       floatValue(m.MfInvestedValue),
		InsuranceCurrentValue: floatValue(m.InsuranceCurrentValue),
	}
}
