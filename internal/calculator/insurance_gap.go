package calculator

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/montanaflynn/stats"
)

type PremiumGapParams struct {
	MinPremiumGap float64
	MinScore      int
	Limit         int
}

func DefaultPremiumGapParams() PremiumGapParams {
	return PremiumGapParams{MinPremiumGap: 10000, MinScore: 0, Limit: 100}
}

// PremiumGaps groups insured clients whose recorded premium gap clears
// the threshold. The highest scoring record of a client supplies its
// identity and gap figures; types and premiums are combined across all of
// the client's matching records.
func PremiumGaps(records []domain.InsuranceRecord, params PremiumGapParams) []domain.InsuranceOpportunity {
	matching := []domain.InsuranceRecord{}
	for _, r := range records {
		if r.Deleted || r.PremiumGap < params.MinPremiumGap || r.OpportunityScore < params.MinScore {
			continue
		}
		matching = append(matching, r)
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].OpportunityScore > matching[j].OpportunityScore
	})

	type clientGroup struct {
		lead     domain.InsuranceRecord
		types    map[domain.InsuranceType]struct{}
		premiums []float64
	}
	order := []string{}
	groups := map[string]*clientGroup{}
	for _, r := range matching {
		g, ok := groups[r.ClientID]
		if !ok {
			g = &clientGroup{lead: r, types: map[domain.InsuranceType]struct{}{}}
			groups[r.ClientID] = g
			order = append(order, r.ClientID)
		}
		g.types[r.InsuranceType] = struct{}{}
		g.premiums = append(g.premiums, r.Premium)
	}

	out := []domain.InsuranceOpportunity{}
	for _, clientID := range order {
		g := groups[clientID]
		covered := sortedTypes(g.types)
		missing := missingCoreTypes(g.types)

		description := fmt.Sprintf("Client has %s premium gap. Current coverage: %s.",
			util.FormatAmount(g.lead.PremiumGap), joinTypes(covered))
		if len(missing) > 0 {
			description += fmt.Sprintf(" Consider adding: %s.", joinTypes(missing))
		}

		out = append(out, domain.InsuranceOpportunity{
			ClientID:                clientID,
			Name:                    util.StringOr(g.lead.ClientName, "Unknown"),
			AgentID:                 util.StringOr(g.lead.AgentID, "0"),
			AgentExternalID:         util.StringOr(g.lead.AgentExternalID, "unassigned"),
			OpportunityType:         domain.OpportunityInsuranceGap,
			Description:             description,
			WealthBand:              util.StringOr(g.lead.WealthBand, "Unknown"),
			Age:                     g.lead.Age,
			MfCurrentValue:          g.lead.MfCurrentValue,
			TotalPremium:            util.SumMoney(g.premiums...),
			BaselineExpectedPremium: g.lead.BaselineExpectedPremium,
			PremiumGap:              g.lead.PremiumGap,
			OpportunityScore:        g.lead.OpportunityScore,
			CoveredTypes:            covered,
			MissingCoverageTypes:    missing,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OpportunityScore != out[j].OpportunityScore {
			return out[i].OpportunityScore > out[j].OpportunityScore
		}
		return out[i].ClientID < out[j].ClientID
	})
	return capSlice(out, params.Limit)
}

type NoInsuranceParams struct {
	MinMfValue float64
	Limit      int
}

func DefaultNoInsuranceParams() NoInsuranceParams {
	return NoInsuranceParams{MinMfValue: 1000000, Limit: 100}
}

const (
	noInsuranceExpectedPremiumRate = 0.02
	noInsuranceExpectedPremiumCap  = 100000
	noInsuranceTopWealthBand       = 5000000
	maxOpportunityScore            = 100
)

// NoInsurance finds clients whose lifetime SIP investment clears the
// threshold and who hold no insurance policy at all.
func NoInsurance(sips []domain.SipRecord, insured map[string]bool, params NoInsuranceParams) []domain.InsuranceOpportunity {
	invested := map[string][]float64{}
	firstRecord := map[string]domain.SipRecord{}
	for _, r := range sips {
		if r.Deleted {
			continue
		}
		if _, ok := firstRecord[r.ClientID]; !ok {
			firstRecord[r.ClientID] = r
		}
		invested[r.ClientID] = append(invested[r.ClientID], r.SuccessTotal)
	}

	out := []domain.InsuranceOpportunity{}
	for clientID, amounts := range invested {
		total := util.SumMoney(amounts...)
		if total < params.MinMfValue || insured[clientID] {
			continue
		}
		rec := firstRecord[clientID]
		expected := math.Min(noInsuranceExpectedPremiumCap, total*noInsuranceExpectedPremiumRate)
		wealthBand := "1Cr-5Cr"
		if total >= noInsuranceTopWealthBand {
			wealthBand = "5Cr+"
		}

		out = append(out, domain.InsuranceOpportunity{
			ClientID:        clientID,
			Name:            util.StringOr(rec.ClientName, "Unknown"),
			AgentID:         util.StringOr(rec.AgentID, "0"),
			AgentExternalID: util.StringOr(rec.AgentExternalID, "unassigned"),
			OpportunityType: domain.OpportunityNoInsurance,
			Description: fmt.Sprintf(
				"High-value client (%s MF investment) with NO insurance coverage. High-priority cross-sell opportunity.",
				util.FormatAmount(total),
			),
			WealthBand:              wealthBand,
			MfCurrentValue:          total,
			BaselineExpectedPremium: expected,
			PremiumGap:              expected,
			OpportunityScore:        maxOpportunityScore,
			CoveredTypes:            []domain.InsuranceType{},
			MissingCoverageTypes:    append([]domain.InsuranceType{}, domain.CoreInsuranceTypes...),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MfCurrentValue != out[j].MfCurrentValue {
			return out[i].MfCurrentValue > out[j].MfCurrentValue
		}
		return out[i].ClientID < out[j].ClientID
	})
	return capSlice(out, params.Limit)
}

type CoverageGapParams struct {
	MinMfValue float64
	MinAge     int
	Limit      int
}

func DefaultCoverageGapParams() CoverageGapParams {
	return CoverageGapParams{MinMfValue: 500000, MinAge: 30, Limit: 100}
}

// ExpectedPremiumRate is the share of mutual fund value a client of the
// given age is expected to spend on premiums each year.
func ExpectedPremiumRate(age int) float64 {
	switch {
	case age < 30:
		return 0.0005
	case age < 40:
		return 0.001
	case age < 50:
		return 0.002
	}
	return 0.003
}

// CoverageGaps compares each client's premiums with an age tiered
// expectation. Age comes from the date of birth only; clients without one
// are skipped, as are clients who are already adequately covered.
// Aggregates cover every gap, not just the first Limit.
func CoverageGaps(clients []domain.Client, insurance []domain.InsuranceRecord, params CoverageGapParams, now time.Time) domain.CoverageGapsResult {
	type policies struct {
		premiums []float64
		types    map[domain.InsuranceType]struct{}
	}
	byClient := map[string]*policies{}
	for _, r := range insurance {
		if r.Deleted {
			continue
		}
		p, ok := byClient[r.ClientID]
		if !ok {
			p = &policies{types: map[domain.InsuranceType]struct{}{}}
			byClient[r.ClientID] = p
		}
		if r.Premium > 0 {
			p.premiums = append(p.premiums, r.Premium)
			p.types[r.InsuranceType] = struct{}{}
		}
	}

	eligible := []domain.CoverageGapOpportunity{}
	for _, c := range clients {
		if c.MfCurrentValue <= params.MinMfValue {
			continue
		}
		p := byClient[c.ClientID]
		if p == nil {
			p = &policies{types: map[domain.InsuranceType]struct{}{}}
		}
		age := c.AgeAt(now)
		if age == nil {
			continue
		}

		rate := ExpectedPremiumRate(*age)
		expected := c.MfCurrentValue * rate
		totalPremium := util.SumMoney(p.premiums...)

		var status domain.CoverageStatus
		var value float64
		switch {
		case totalPremium == 0 && *age >= params.MinAge:
			status, value = domain.CoverageStatusNoInsurance, expected
		case totalPremium > 0 && totalPremium < expected:
			status, value = domain.CoverageStatusLowCoverage, expected-totalPremium
		default:
			continue
		}

		coverage := 0.0
		if expected > 0 {
			coverage = totalPremium / expected * 100
		}

		eligible = append(eligible, domain.CoverageGapOpportunity{
			ClientID:            c.ClientID,
			ClientName:          c.Name,
			AgentID:             c.AgentID,
			AgentExternalID:     c.AgentExternalID,
			AgentName:           c.AgentName,
			Age:                 *age,
			MfCurrentValue:      c.MfCurrentValue,
			ExpectedPremiumRate: rate,
			ExpectedPremium:     expected,
			TotalPremium:        totalPremium,
			PolicyCount:         len(p.premiums),
			CoveredTypes:        sortedTypes(p.types),
			InsuranceStatus:     status,
			OpportunityValue:    value,
			CoveragePercentage:  coverage,
			Description:         coverageDescription(status, *age, expected, totalPremium, c.MfCurrentValue),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].OpportunityValue != eligible[j].OpportunityValue {
			return eligible[i].OpportunityValue > eligible[j].OpportunityValue
		}
		return eligible[i].ClientID < eligible[j].ClientID
	})
	returned := capSlice(eligible, params.Limit)

	result := domain.CoverageGapsResult{
		TotalOpportunities: len(eligible),
		Opportunities:      returned,
	}
	values := make([]float64, 0, len(eligible))
	mf := make([]float64, 0, len(eligible))
	ages := make([]float64, 0, len(eligible))
	for _, o := range eligible {
		switch o.InsuranceStatus {
		case domain.CoverageStatusNoInsurance:
			result.NoInsuranceCount++
		case domain.CoverageStatusLowCoverage:
			result.LowCoverageCount++
		}
		values = append(values, o.OpportunityValue)
		mf = append(mf, o.MfCurrentValue)
		ages = append(ages, float64(o.Age))
	}
	result.TotalOpportunityValue = util.SumMoney(values...)
	result.TotalMfValueAtRisk = util.SumMoney(mf...)
	if mean, err := stats.Mean(ages); err == nil {
		result.AverageAge = &mean
	}

	return result
}

func coverageDescription(status domain.CoverageStatus, age int, expected, totalPremium, mfValue float64) string {
	if status == domain.CoverageStatusNoInsurance {
		return fmt.Sprintf(
			"Age %d with %s in mutual funds and no active insurance. Expected annual premium around %s.",
			age, util.FormatAmount(mfValue), util.FormatAmount(expected),
		)
	}
	return fmt.Sprintf(
		"Age %d paying %s in premiums against an expected %s.",
		age, util.FormatAmount(totalPremium), util.FormatAmount(expected),
	)
}

func sortedTypes(set map[domain.InsuranceType]struct{}) []domain.InsuranceType {
	out := make([]domain.InsuranceType, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// missingCoreTypes preserves the alphabetical order of CoreInsuranceTypes.
func missingCoreTypes(covered map[domain.InsuranceType]struct{}) []domain.InsuranceType {
	out := []domain.InsuranceType{}
	for _, t := range domain.CoreInsuranceTypes {
		if _, ok := covered[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func joinTypes(types []domain.InsuranceType) string {
	s := make([]string, len(types))
	for i, t := range types {
		s[i] = string(t)
	}
	return strings.Join(s, ", ")
}
