package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/montanaflynn/stats"
)

type FailedParams struct {
	MinFailedAmount float64
	Limit           int
}

func DefaultFailedParams() FailedParams {
	return FailedParams{MinFailedAmount: 5000, Limit: 100}
}

// FailedTransactions flags SIPs carrying a meaningful failed amount. The
// failed amount is treated as recoverable revenue.
func FailedTransactions(records []domain.SipRecord, params FailedParams) []domain.SipOpportunity {
	out := []domain.SipOpportunity{}
	for _, r := range records {
		if r.Deleted || r.FailedTotal < params.MinFailedAmount {
			continue
		}
		failureRate := 0.0
		if denom := r.SuccessTotal + r.FailedTotal; denom > 0 {
			failureRate = r.FailedTotal / denom * 100
		}
		failedAmount := r.FailedTotal

		out = append(out, domain.SipOpportunity{
			ClientID:        r.ClientID,
			SipID:           r.SipID,
			AgentID:         util.StringOr(r.AgentID, "0"),
			AgentExternalID: util.StringOr(r.AgentExternalID, "unassigned"),
			OpportunityType: domain.OpportunityFailedPayments,
			Description: fmt.Sprintf(
				"SIP has %s in failed transactions (%.1f%% failure rate).",
				util.FormatAmount(r.FailedTotal), failureRate,
			),
			CurrentSipAmount:  r.Amount,
			PotentialIncrease: r.FailedTotal,
			LastActivityDate:  r.LatestSuccessDate,
			RiskScore:         math.Min(10, failureRate/10),
			TotalInvested:     r.SuccessTotal,
			FailedAmount:      &failedAmount,
			FailureRate:       &failureRate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if *out[i].FailedAmount != *out[j].FailedAmount {
			return *out[i].FailedAmount > *out[j].FailedAmount
		}
		return out[i].SipID < out[j].SipID
	})
	return capSlice(out, params.Limit)
}

type HighValueParams struct {
	MinInvestedAmount float64
	MinInactiveDays   int
	Limit             int
}

func DefaultHighValueParams() HighValueParams {
	return HighValueParams{MinInvestedAmount: 100000, MinInactiveDays: 60, Limit: 100}
}

// highValueUpsellMultiple is the heuristic re-engagement upsell applied to
// the current SIP amount.
const highValueUpsellMultiple = 1.5

func HighValueInactive(records []domain.SipRecord, params HighValueParams, now time.Time) []domain.SipOpportunity {
	out := []domain.SipOpportunity{}
	for _, r := range records {
		if r.Deleted || r.SuccessTotal < params.MinInvestedAmount || r.LatestSuccessDate == nil {
			continue
		}
		days := util.DaysSince(now, r.LatestSuccessDate)
		if days == nil || *days < params.MinInactiveDays {
			continue
		}

		out = append(out, domain.SipOpportunity{
			ClientID:        r.ClientID,
			SipID:           r.SipID,
			AgentID:         util.StringOr(r.AgentID, "0"),
			AgentExternalID: util.StringOr(r.AgentExternalID, "unassigned"),
			OpportunityType: domain.OpportunityHighValueInactive,
			Description: fmt.Sprintf(
				"High-value client with %s invested has been inactive for %d days.",
				util.FormatAmount(r.SuccessTotal), *days,
			),
			CurrentSipAmount:  r.Amount,
			PotentialIncrease: r.Amount * highValueUpsellMultiple,
			LastActivityDate:  r.LatestSuccessDate,
			DaysSinceActivity: days,
			RiskScore:         math.Min(10, float64(*days)/30),
			TotalInvested:     r.SuccessTotal,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalInvested != out[j].TotalInvested {
			return out[i].TotalInvested > out[j].TotalInvested
		}
		return out[i].SipID < out[j].SipID
	})
	return capSlice(out, params.Limit)
}

// GroupSipsByClient rolls every non-deleted SIP up to its client. Output
// is ordered by client id.
func GroupSipsByClient(records []domain.SipRecord) []domain.ClientSipSummary {
	byClient := map[string]*domain.ClientSipSummary{}
	seenSchemes := map[string]map[string]struct{}{}
	amounts := map[string][]float64{}
	activeAmounts := map[string][]float64{}

	for _, r := range records {
		if r.Deleted {
			continue
		}
		s, ok := byClient[r.ClientID]
		if !ok {
			s = &domain.ClientSipSummary{
				ClientID:        r.ClientID,
				ClientName:      r.ClientName,
				AgentID:         r.AgentID,
				AgentExternalID: r.AgentExternalID,
				AgentName:       r.AgentName,
			}
			byClient[r.ClientID] = s
			seenSchemes[r.ClientID] = map[string]struct{}{}
		}
		if s.ClientName == nil {
			s.ClientName = r.ClientName
		}
		if s.AgentExternalID == nil {
			s.AgentID, s.AgentExternalID, s.AgentName = r.AgentID, r.AgentExternalID, r.AgentName
		}

		s.TotalSips++
		if r.IsActive {
			s.ActiveSips++
			s.HasAnyActive = true
			activeAmounts[r.ClientID] = append(activeAmounts[r.ClientID], r.Amount)
		}
		if r.SuccessCount > s.MaxSuccessCount {
			s.MaxSuccessCount = r.SuccessCount
		}
		if r.LatestSuccessDate != nil && (s.LastSuccessDate == nil || r.LatestSuccessDate.After(*s.LastSuccessDate)) {
			s.LastSuccessDate = r.LatestSuccessDate
		}
		amounts[r.ClientID] = append(amounts[r.ClientID], r.SuccessTotal)

		for _, name := range ParseSchemeNames(r.SchemeName) {
			if _, dup := seenSchemes[r.ClientID][name]; !dup {
				seenSchemes[r.ClientID][name] = struct{}{}
				s.SchemeNames = append(s.SchemeNames, name)
			}
		}
	}

	out := make([]domain.ClientSipSummary, 0, len(byClient))
	for id, s := range byClient {
		s.LifetimeSuccessAmount = util.SumMoney(amounts[id]...)
		s.ActiveMonthlyAmount = util.SumMoney(activeAmounts[id]...)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ClientID < out[j].ClientID
	})
	return out
}

type StoppedParams struct {
	MinSuccessCount   int
	MinInactiveMonths int
	Limit             int
}

func DefaultStoppedParams() StoppedParams {
	return StoppedParams{MinSuccessCount: 3, MinInactiveMonths: 2, Limit: 100}
}

// StoppedPayments finds clients who paid regularly in the past, still
// have an active mandate, and have not had a successful instalment on
// any SIP since the cutoff (MinInactiveMonths * 30 days before now).
func StoppedPayments(summaries []domain.ClientSipSummary, params StoppedParams, now time.Time) domain.StoppedSipsResult {
	cutoff := now.AddDate(0, 0, -30*params.MinInactiveMonths)

	eligible := []domain.StoppedSipOpportunity{}
	for _, s := range summaries {
		if s.MaxSuccessCount < params.MinSuccessCount || !s.HasAnyActive {
			continue
		}
		if s.LastSuccessDate == nil || !s.LastSuccessDate.Before(cutoff) {
			continue
		}
		days := util.DaysSince(now, s.LastSuccessDate)
		months := util.MonthsSince(now, s.LastSuccessDate)

		eligible = append(eligible, domain.StoppedSipOpportunity{
			ClientID:              s.ClientID,
			ClientName:            s.ClientName,
			AgentID:               s.AgentID,
			AgentExternalID:       s.AgentExternalID,
			AgentName:             s.AgentName,
			SchemeNames:           s.SchemeNames,
			TotalSips:             s.TotalSips,
			ActiveSips:            s.ActiveSips,
			MaxSuccessCount:       s.MaxSuccessCount,
			LifetimeSuccessAmount: s.LifetimeSuccessAmount,
			ActiveMonthlyAmount:   s.ActiveMonthlyAmount,
			LastSuccessDate:       *s.LastSuccessDate,
			DaysSinceAnySuccess:   *days,
			MonthsSinceSuccess:    *months,
			Description: fmt.Sprintf(
				"%d active SIP(s) with no successful payment for %d days after %d successful instalments.",
				s.ActiveSips, *days, s.MaxSuccessCount,
			),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].DaysSinceAnySuccess != eligible[j].DaysSinceAnySuccess {
			return eligible[i].DaysSinceAnySuccess > eligible[j].DaysSinceAnySuccess
		}
		return eligible[i].ClientID < eligible[j].ClientID
	})
	returned := capSlice(eligible, params.Limit)

	// counts and sums cover every stopped client; the mean only the
	// returned ones
	result := domain.StoppedSipsResult{
		TotalStoppedClients: len(eligible),
		Opportunities:       returned,
	}
	lifetime := make([]float64, 0, len(eligible))
	for _, o := range eligible {
		result.TotalActiveSipsAffected += o.ActiveSips
		lifetime = append(lifetime, o.LifetimeSuccessAmount)
	}
	days := make([]float64, 0, len(returned))
	for _, o := range returned {
		days = append(days, float64(o.DaysSinceAnySuccess))
	}
	result.TotalLifetimeInvestment = util.SumMoney(lifetime...)
	if mean, err := stats.Mean(days); err == nil {
		result.AverageDaysInactive = &mean
	}

	return result
}

// CombineSipOpportunities merges the per-SIP detectors into a single view.
// Each input is expected to already be capped at limit/3.
func CombineSipOpportunities(limit int, sets ...[]domain.SipOpportunity) []domain.SipOpportunity {
	out := []domain.SipOpportunity{}
	for _, set := range sets {
		out = append(out, set...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedScore() > out[j].CombinedScore()
	})
	return capSlice(out, limit)
}

// SummarizeSipOpportunities counts opportunities and potential revenue
// per detector and overall.
func SummarizeSipOpportunities(sets map[domain.OpportunityType][]domain.SipOpportunity) domain.SipOpportunityStats {
	out := domain.SipOpportunityStats{
		BreakdownByType: map[string]domain.OpportunityCategoryStats{},
	}
	all := []float64{}
	for kind, set := range sets {
		values := make([]float64, 0, len(set))
		for _, o := range set {
			values = append(values, o.PotentialIncrease)
		}
		out.BreakdownByType[string(kind)] = domain.OpportunityCategoryStats{
			Count:            len(set),
			PotentialRevenue: util.SumMoney(values...),
		}
		out.TotalOpportunities += len(set)
		all = append(all, values...)
	}
	out.TotalPotentialRevenue = util.SumMoney(all...)
	return out
}
