package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"
)

type NoIncreaseParams struct {
	MinMonths int
	Limit     int
}

func DefaultNoIncreaseParams() NoIncreaseParams {
	return NoIncreaseParams{MinMonths: 12, Limit: 100}
}

// NoRecentIncrease flags active, successful SIPs that have a step-up
// percentage configured and whose last successful instalment is at least
// MinMonths old.
//
// Historical SIP amounts aren't stored, so this never checks whether an
// increase actually happened: a configured step-up plus elapsed time is
// taken as "no increase". A client who raised the SIP by hand is still
// flagged.
func NoRecentIncrease(records []domain.SipRecord, params NoIncreaseParams, now time.Time) []domain.SipOpportunity {
	out := []domain.SipOpportunity{}
	for _, r := range records {
		if r.Deleted || !r.IsActive || r.CurrentStatus != domain.SipStatusSuccess {
			continue
		}
		if r.LatestSuccessDate == nil || util.FloatOr(r.IncrementPercent, 0) <= 0 {
			continue
		}

		monthsSinceLast := util.MonthsSince(now, r.LatestSuccessDate)
		monthsSinceStart := util.MonthsSince(now, r.StartDate)
		if monthsSinceLast == nil || monthsSinceStart == nil || *monthsSinceLast < params.MinMonths {
			continue
		}

		expected := ExpectedIncrements(r.IncrementPeriod, *monthsSinceStart)
		if expected == 0 {
			continue
		}

		percent := *r.IncrementPercent
		potentialIncrease := r.Amount * percent / 100
		out = append(out, domain.SipOpportunity{
			ClientID:        r.ClientID,
			SipID:           r.SipID,
			AgentID:         util.StringOr(r.AgentID, "0"),
			AgentExternalID: util.StringOr(r.AgentExternalID, "unassigned"),
			OpportunityType: domain.OpportunityNoIncrease,
			Description: fmt.Sprintf(
				"Client hasn't increased SIP for %d months. Expected %d increments based on %s period.",
				*monthsSinceLast, expected, r.RawIncrementPeriod,
			),
			CurrentSipAmount:       r.Amount,
			PotentialIncrease:      potentialIncrease,
			LastActivityDate:       r.LatestSuccessDate,
			DaysSinceActivity:      util.DaysSince(now, r.LatestSuccessDate),
			RiskScore:              math.Min(10, float64(*monthsSinceLast)/6),
			TotalInvested:          r.SuccessTotal,
			MonthsSinceLastSuccess: monthsSinceLast,
			ExpectedIncrements:     &expected,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PotentialIncrease != out[j].PotentialIncrease {
			return out[i].PotentialIncrease > out[j].PotentialIncrease
		}
		return out[i].SipID < out[j].SipID
	})
	return capSlice(out, params.Limit)
}

// ExpectedIncrements is how many step-ups should have happened since the
// SIP started, given its increment period. Zero until a full period has
// elapsed or when the period is unknown.
func ExpectedIncrements(period domain.IncrementPeriod, monthsSinceStart int) int {
	months := period.Months()
	if months == 0 || monthsSinceStart < months {
		return 0
	}
	return monthsSinceStart / months
}

type StagnantStepUpParams struct {
	MinMonths int
	Limit     int
}

func DefaultStagnantStepUpParams() StagnantStepUpParams {
	return StagnantStepUpParams{MinMonths: 6, Limit: 100}
}

// StagnantStepUp finds active SIPs that have no step-up configured at all
// and have been running for at least MinMonths calendar months.
//
// Age is measured with CalendarMonthsBetween (year/month subtraction) and
// not with the 30 day approximation used elsewhere.
func StagnantStepUp(records []domain.SipRecord, params StagnantStepUpParams, now time.Time) domain.StagnantSipsResult {
	eligible := []domain.StagnantSipOpportunity{}
	for _, r := range records {
		if r.Deleted || !r.IsActive || r.StepUpConfigured() || r.CreatedAt == nil {
			continue
		}
		monthsDiff := util.CalendarMonthsBetween(now, *r.CreatedAt)
		if monthsDiff < params.MinMonths {
			continue
		}

		eligible = append(eligible, domain.StagnantSipOpportunity{
			ClientID:         r.ClientID,
			ClientName:       r.ClientName,
			AgentID:          r.AgentID,
			AgentExternalID:  r.AgentExternalID,
			AgentName:        r.AgentName,
			SipID:            r.SipID,
			SchemeNames:      ParseSchemeNames(r.SchemeName),
			CurrentSip:       r.Amount,
			MonthsStagnant:   monthsDiff,
			CreatedAt:        *r.CreatedAt,
			CurrentSipStatus: r.CurrentStatus,
			IncrementAmount:  r.IncrementAmount,
			IncrementPercent: r.IncrementPercent,
			SuccessAmount:    r.SuccessTotal,
			Description: fmt.Sprintf(
				"%s monthly SIP running for %d months without any step-up configured.",
				util.FormatAmount(r.Amount), monthsDiff,
			),
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].MonthsStagnant != eligible[j].MonthsStagnant {
			return eligible[i].MonthsStagnant > eligible[j].MonthsStagnant
		}
		return eligible[i].SipID < eligible[j].SipID
	})

	clients := map[string]struct{}{}
	amounts := make([]float64, 0, len(eligible))
	for _, e := range eligible {
		clients[e.ClientID] = struct{}{}
		amounts = append(amounts, e.CurrentSip)
	}

	return domain.StagnantSipsResult{
		TotalStagnantSips:    len(eligible),
		TotalClientsAffected: len(clients),
		TotalSipValue:        util.SumMoney(amounts...),
		Opportunities:        capSlice(eligible, params.Limit),
	}
}

// ParseSchemeNames normalises the stored scheme name into a list. The
// column holds either a single name, a bracketed list serialised as JSON
// or as a python repr, or nothing at all.
func ParseSchemeNames(raw *string) []string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" || s == "[]" {
		return nil
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return []string{s}
	}

	names := []string{}
	if err := json.Unmarshal([]byte(s), &names); err == nil {
		return nonEmpty(names)
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	for _, part := range strings.Split(inner, ",") {
		names = append(names, strings.Trim(strings.TrimSpace(part), `'"`))
	}
	return nonEmpty(names)
}

func nonEmpty(in []string) []string {
	out := []string{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// capSlice truncates to limit; a non-positive limit means no cap.
func capSlice[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
