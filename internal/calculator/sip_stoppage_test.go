package calculator

import (
	"testing"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFailedTransactions(t *testing.T) {
	partial := newSip("s1", "c1", 5000)
	partial.FailedTotal = 6000
	partial.SuccessTotal = 54000
	allFailed := newSip("s2", "c2", 5000)
	allFailed.FailedTotal = 20000
	small := newSip("s3", "c3", 5000)
	small.FailedTotal = 4000
	deleted := newSip("s4", "c4", 5000)
	deleted.FailedTotal = 50000
	deleted.Deleted = true

	got := FailedTransactions([]domain.SipRecord{partial, allFailed, small, deleted}, DefaultFailedParams())
	require.Len(t, got, 2)

	require.Equal(t, "s2", got[0].SipID)
	require.InDelta(t, 100, *got[0].FailureRate, 1e-9)
	require.Equal(t, 10.0, got[0].RiskScore)
	require.Equal(t, 20000.0, got[0].PotentialIncrease)

	require.Equal(t, "s1", got[1].SipID)
	require.InDelta(t, 10, *got[1].FailureRate, 1e-9)
	require.InDelta(t, 1, got[1].RiskScore, 1e-9)
	require.Equal(t, domain.OpportunityFailedPayments, got[1].OpportunityType)
}

func TestHighValueInactive(t *testing.T) {
	withActivity := func(r domain.SipRecord, invested float64, lastDays *int) domain.SipRecord {
		r.SuccessTotal = invested
		if lastDays != nil {
			r.LatestSuccessDate = daysAgo(*lastDays)
		}
		return r
	}

	ninetyDays := withActivity(newSip("s1", "c1", 5000), 200000, util.IntPointer(90))
	sixtyOneDays := withActivity(newSip("s2", "c2", 8000), 500000, util.IntPointer(61))
	recent := withActivity(newSip("s3", "c3", 8000), 500000, util.IntPointer(30))
	small := withActivity(newSip("s4", "c4", 8000), 50000, util.IntPointer(90))
	noDate := withActivity(newSip("s5", "c5", 8000), 500000, nil)
	deleted := withActivity(newSip("s6", "c6", 8000), 900000, util.IntPointer(90))
	deleted.Deleted = true

	got := HighValueInactive(
		[]domain.SipRecord{ninetyDays, sixtyOneDays, recent, small, noDate, deleted},
		DefaultHighValueParams(),
		testNow,
	)
	require.Len(t, got, 2)

	require.Equal(t, "s2", got[0].SipID)
	require.InDelta(t, 61.0/30, got[0].RiskScore, 1e-9)

	require.Equal(t, "s1", got[1].SipID)
	require.Equal(t, 7500.0, got[1].PotentialIncrease)
	require.Equal(t, 3.0, got[1].RiskScore)
	require.Equal(t, 90, *got[1].DaysSinceActivity)
}

func stoppedFixture() []domain.SipRecord {
	sip := func(sipID, clientID string, amount, successTotal float64, successCount, lastDays int, active bool) domain.SipRecord {
		r := newSip(sipID, clientID, amount)
		r.SuccessTotal = successTotal
		r.SuccessCount = successCount
		r.LatestSuccessDate = daysAgo(lastDays)
		r.IsActive = active
		r.SchemeName = util.StringPointer("Scheme " + sipID)
		return r
	}

	deletedOnly := sip("f1", "F", 10000, 900000, 10, 400, true)
	deletedOnly.Deleted = true

	return []domain.SipRecord{
		sip("a1", "A", 5000, 50000, 5, 100, true),
		sip("a2", "A", 3000, 20000, 2, 90, false),
		sip("b1", "B", 10000, 100000, 10, 200, true),
		// too few instalments
		sip("c1", "C", 10000, 100000, 2, 300, true),
		// nothing active
		sip("d1", "D", 10000, 100000, 6, 300, false),
		// paid recently
		sip("e1", "E", 10000, 100000, 4, 30, true),
		deletedOnly,
		// exactly on the cutoff
		sip("g1", "G", 10000, 100000, 3, 60, true),
	}
}

func TestGroupSipsByClient(t *testing.T) {
	summaries := GroupSipsByClient(stoppedFixture())

	ids := []string{}
	for _, s := range summaries {
		ids = append(ids, s.ClientID)
	}
	require.Equal(t, []string{"A", "B", "C", "D", "E", "G"}, ids)

	a := summaries[0]
	require.Equal(t, 2, a.TotalSips)
	require.Equal(t, 1, a.ActiveSips)
	require.Equal(t, 5, a.MaxSuccessCount)
	require.True(t, a.HasAnyActive)
	require.Equal(t, *daysAgo(90), *a.LastSuccessDate)
	require.Equal(t, 70000.0, a.LifetimeSuccessAmount)
	require.Equal(t, 5000.0, a.ActiveMonthlyAmount)
	require.Equal(t, []string{"Scheme a1", "Scheme a2"}, a.SchemeNames)
}

func TestStoppedPayments(t *testing.T) {
	params := DefaultStoppedParams()
	summaries := GroupSipsByClient(stoppedFixture())

	t.Run("most critical first", func(t *testing.T) {
		got := StoppedPayments(summaries, params, testNow)

		require.Len(t, got.Opportunities, 2)
		require.Equal(t, "B", got.Opportunities[0].ClientID)
		require.Equal(t, 200, got.Opportunities[0].DaysSinceAnySuccess)
		require.Equal(t, 6, got.Opportunities[0].MonthsSinceSuccess)
		require.Equal(t, "A", got.Opportunities[1].ClientID)
		require.Equal(t, 90, got.Opportunities[1].DaysSinceAnySuccess)
		require.Equal(t, 3, got.Opportunities[1].MonthsSinceSuccess)

		require.Equal(t, 2, got.TotalStoppedClients)
		require.Equal(t, 2, got.TotalActiveSipsAffected)
		require.Equal(t, 170000.0, got.TotalLifetimeInvestment)
		require.NotNil(t, got.AverageDaysInactive)
		require.Equal(t, 145.0, *got.AverageDaysInactive)
	})

	t.Run("every result is past the cutoff with enough history", func(t *testing.T) {
		cutoff := testNow.AddDate(0, 0, -30*params.MinInactiveMonths)
		for _, o := range StoppedPayments(summaries, params, testNow).Opportunities {
			require.True(t, o.LastSuccessDate.Before(cutoff))
			require.GreaterOrEqual(t, o.MaxSuccessCount, params.MinSuccessCount)
		}
	})

	t.Run("limit caps opportunities but not totals", func(t *testing.T) {
		limited := params
		limited.Limit = 1
		got := StoppedPayments(summaries, limited, testNow)

		require.Len(t, got.Opportunities, 1)
		require.Equal(t, "B", got.Opportunities[0].ClientID)
		require.Equal(t, 2, got.TotalStoppedClients)
		require.Equal(t, 2, got.TotalActiveSipsAffected)
		require.Equal(t, 170000.0, got.TotalLifetimeInvestment)
		require.Equal(t, 200.0, *got.AverageDaysInactive)
	})

	t.Run("empty result has no average", func(t *testing.T) {
		got := StoppedPayments(nil, params, testNow)
		require.Empty(t, got.Opportunities)
		require.Nil(t, got.AverageDaysInactive)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := StoppedPayments(GroupSipsByClient(stoppedFixture()), params, testNow)
		second := StoppedPayments(GroupSipsByClient(stoppedFixture()), params, testNow)
		require.Empty(t, cmp.Diff(first, second))
	})
}

func TestDeletedSipsNeverSurface(t *testing.T) {
	r := newSip("s1", "c1", 10000)
	r.Deleted = true
	r.SuccessTotal = 5000000
	r.FailedTotal = 100000
	r.SuccessCount = 20
	r.IncrementPercent = util.FloatPointer(10)
	r.IncrementPeriod = domain.IncrementPeriod1Y
	r.StartDate = daysAgo(1000)
	r.LatestSuccessDate = daysAgo(500)
	r.CreatedAt = daysAgo(1000)
	records := []domain.SipRecord{r}

	require.Empty(t, NoRecentIncrease(records, DefaultNoIncreaseParams(), testNow))
	require.Empty(t, StagnantStepUp(records, DefaultStagnantStepUpParams(), testNow).Opportunities)
	require.Empty(t, FailedTransactions(records, DefaultFailedParams()))
	require.Empty(t, HighValueInactive(records, DefaultHighValueParams(), testNow))
	require.Empty(t, StoppedPayments(GroupSipsByClient(records), DefaultStoppedParams(), testNow).Opportunities)
	require.Empty(t, NoInsurance(records, map[string]bool{}, DefaultNoInsuranceParams()))
}

func TestCombineSipOpportunities(t *testing.T) {
	low := domain.SipOpportunity{SipID: "low", RiskScore: 1, PotentialIncrease: 10000}
	high := domain.SipOpportunity{SipID: "high", RiskScore: 9, PotentialIncrease: 0}
	mid := domain.SipOpportunity{SipID: "mid", RiskScore: 2, PotentialIncrease: 50000}

	got := CombineSipOpportunities(2, []domain.SipOpportunity{low}, []domain.SipOpportunity{high}, []domain.SipOpportunity{mid})
	require.Len(t, got, 2)
	require.Equal(t, "high", got[0].SipID)
	require.Equal(t, "mid", got[1].SipID)
}

func TestSummarizeSipOpportunities(t *testing.T) {
	got := SummarizeSipOpportunities(map[domain.OpportunityType][]domain.SipOpportunity{
		domain.OpportunityNoIncrease:        {{PotentialIncrease: 1000}, {PotentialIncrease: 500}},
		domain.OpportunityFailedPayments:    {{PotentialIncrease: 7000}},
		domain.OpportunityHighValueInactive: {},
	})

	require.Equal(t, 3, got.TotalOpportunities)
	require.Equal(t, 8500.0, got.TotalPotentialRevenue)
	require.Equal(t, domain.OpportunityCategoryStats{Count: 2, PotentialRevenue: 1500}, got.BreakdownByType[string(domain.OpportunityNoIncrease)])
	require.Equal(t, domain.OpportunityCategoryStats{Count: 0, PotentialRevenue: 0}, got.BreakdownByType[string(domain.OpportunityHighValueInactive)])
}
