package calculator

import (
	"math"
	"testing"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	return util.TimePointer(testNow.AddDate(0, 0, -n))
}

func monthsAgo(n int) *time.Time {
	return util.TimePointer(testNow.AddDate(0, -n, 0))
}

func newSip(sipID, clientID string, amount float64) domain.SipRecord {
	return domain.SipRecord{
		SipID:           sipID,
		ClientID:        clientID,
		ClientName:      util.StringPointer("client " + clientID),
		AgentID:         util.StringPointer("7"),
		AgentExternalID: util.StringPointer("AGT-7"),
		Amount:          amount,
		IsActive:        true,
		CurrentStatus:   domain.SipStatusSuccess,
	}
}

func TestNoRecentIncrease(t *testing.T) {
	withStepUp := func(r domain.SipRecord, percent float64, period domain.IncrementPeriod, startDays, lastDays int) domain.SipRecord {
		r.IncrementPercent = util.FloatPointer(percent)
		r.IncrementPeriod = period
		r.RawIncrementPeriod = string(period)
		r.StartDate = daysAgo(startDays)
		r.LatestSuccessDate = daysAgo(lastDays)
		r.SuccessTotal = 120000
		return r
	}

	yearly := withStepUp(newSip("s1", "c1", 10000), 10, domain.IncrementPeriod1Y, 800, 400)
	halfYearly := withStepUp(newSip("s2", "c2", 20000), 10, domain.IncrementPeriod6M, 400, 370)
	deleted := withStepUp(newSip("s3", "c3", 50000), 10, domain.IncrementPeriod1Y, 800, 400)
	deleted.Deleted = true
	recent := withStepUp(newSip("s4", "c4", 50000), 10, domain.IncrementPeriod1Y, 800, 100)
	unknownPeriod := withStepUp(newSip("s5", "c5", 50000), 10, domain.IncrementPeriodUnknown, 800, 400)
	tooYoung := withStepUp(newSip("s6", "c6", 50000), 10, domain.IncrementPeriod1Y, 300, 365)
	noPercent := withStepUp(newSip("s7", "c7", 50000), 0, domain.IncrementPeriod1Y, 800, 400)
	failed := withStepUp(newSip("s8", "c8", 50000), 10, domain.IncrementPeriod1Y, 800, 400)
	failed.CurrentStatus = domain.SipStatusFailed

	records := []domain.SipRecord{yearly, halfYearly, deleted, recent, unknownPeriod, tooYoung, noPercent, failed}

	t.Run("flags configured step-ups with no recent activity", func(t *testing.T) {
		got := NoRecentIncrease(records, DefaultNoIncreaseParams(), testNow)
		require.Len(t, got, 2)

		require.Equal(t, "s2", got[0].SipID)
		require.Equal(t, 2000.0, got[0].PotentialIncrease)
		require.Equal(t, 2, *got[0].ExpectedIncrements)
		require.Equal(t, 12, *got[0].MonthsSinceLastSuccess)

		require.Equal(t, "s1", got[1].SipID)
		require.Equal(t, 1000.0, got[1].PotentialIncrease)
		require.Equal(t, 2, *got[1].ExpectedIncrements)
		require.Equal(t, 13, *got[1].MonthsSinceLastSuccess)
		require.Equal(t, 400, *got[1].DaysSinceActivity)
		require.InDelta(t, 13.0/6, got[1].RiskScore, 1e-9)
		require.Equal(t, domain.OpportunityNoIncrease, got[1].OpportunityType)
		require.Equal(t, "AGT-7", got[1].AgentExternalID)
	})

	t.Run("respects limit", func(t *testing.T) {
		got := NoRecentIncrease(records, NoIncreaseParams{MinMonths: 12, Limit: 1}, testNow)
		require.Len(t, got, 1)
		require.Equal(t, "s2", got[0].SipID)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := NoRecentIncrease(records, DefaultNoIncreaseParams(), testNow)
		second := NoRecentIncrease(records, DefaultNoIncreaseParams(), testNow)
		require.Empty(t, cmp.Diff(first, second))
	})
}

func TestExpectedIncrements(t *testing.T) {
	tests := []struct {
		name   string
		period domain.IncrementPeriod
		months int
		want   int
	}{
		{"half yearly before first period", domain.IncrementPeriod6M, 5, 0},
		{"half yearly", domain.IncrementPeriod6M, 13, 2},
		{"yearly before first period", domain.IncrementPeriod1Y, 11, 0},
		{"yearly", domain.IncrementPeriod1Y, 36, 3},
		{"unknown period", domain.IncrementPeriodUnknown, 36, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExpectedIncrements(tt.period, tt.months))
		})
	}
}

func TestStagnantStepUp(t *testing.T) {
	stagnant := func(r domain.SipRecord, months int) domain.SipRecord {
		r.IncrementAmount = util.FloatPointer(0)
		r.IncrementPercent = util.FloatPointer(0)
		r.CreatedAt = monthsAgo(months)
		return r
	}

	eightMonths := stagnant(newSip("s1", "c1", 10000), 8)
	eightMonths.SchemeName = util.StringPointer("['Axis Bluechip', 'HDFC Flexi Cap']")
	tenMonths := stagnant(newSip("s2", "c1", 2000), 10)
	twelveMonths := stagnant(newSip("s3", "c2", 5000), 12)
	twelveMonths.IncrementAmount = nil
	twelveMonths.IncrementPercent = nil

	withPercent := stagnant(newSip("s4", "c3", 9000), 20)
	withPercent.IncrementPercent = util.FloatPointer(5)
	withAmount := stagnant(newSip("s5", "c3", 9000), 20)
	withAmount.IncrementAmount = util.FloatPointer(500)
	inactive := stagnant(newSip("s6", "c4", 9000), 20)
	inactive.IsActive = false
	deleted := stagnant(newSip("s7", "c5", 9000), 20)
	deleted.Deleted = true
	young := stagnant(newSip("s8", "c6", 9000), 3)
	noCreatedAt := stagnant(newSip("s9", "c7", 9000), 20)
	noCreatedAt.CreatedAt = nil

	records := []domain.SipRecord{
		eightMonths, tenMonths, twelveMonths,
		withPercent, withAmount, inactive, deleted, young, noCreatedAt,
	}

	t.Run("SIP created eight months ago is stagnant", func(t *testing.T) {
		got := StagnantStepUp([]domain.SipRecord{eightMonths}, DefaultStagnantStepUpParams(), testNow)
		require.Len(t, got.Opportunities, 1)
		require.GreaterOrEqual(t, got.Opportunities[0].MonthsStagnant, 8)
		require.Equal(t, []string{"Axis Bluechip", "HDFC Flexi Cap"}, got.Opportunities[0].SchemeNames)
	})

	t.Run("sorted by months stagnant with pre-limit aggregates", func(t *testing.T) {
		got := StagnantStepUp(records, DefaultStagnantStepUpParams(), testNow)

		ids := []string{}
		for _, o := range got.Opportunities {
			ids = append(ids, o.SipID)
			require.False(t, o.IncrementAmount != nil && *o.IncrementAmount != 0)
			require.False(t, o.IncrementPercent != nil && *o.IncrementPercent != 0)
			require.GreaterOrEqual(t, o.MonthsStagnant, 6)
		}
		require.Equal(t, []string{"s3", "s2", "s1"}, ids)
		require.Equal(t, []int{12, 10, 8}, []int{
			got.Opportunities[0].MonthsStagnant,
			got.Opportunities[1].MonthsStagnant,
			got.Opportunities[2].MonthsStagnant,
		})
		require.Equal(t, 3, got.TotalStagnantSips)
		require.Equal(t, 2, got.TotalClientsAffected)
		require.Equal(t, 17000.0, got.TotalSipValue)
	})

	t.Run("limit truncates opportunities but not totals", func(t *testing.T) {
		got := StagnantStepUp(records, StagnantStepUpParams{MinMonths: 6, Limit: 2}, testNow)
		require.Len(t, got.Opportunities, 2)
		require.Equal(t, 3, got.TotalStagnantSips)
	})
}

func TestStagnantStepUp_nonFiniteAmount(t *testing.T) {
	r := newSip("s1", "c1", math.NaN())
	r.CreatedAt = monthsAgo(8)
	other := newSip("s2", "c2", 4000)
	other.CreatedAt = monthsAgo(8)

	got := StagnantStepUp([]domain.SipRecord{r, other}, DefaultStagnantStepUpParams(), testNow)
	require.Equal(t, 2, got.TotalStagnantSips)
	require.Equal(t, 4000.0, got.TotalSipValue)

	summaries := GroupSipsByClient([]domain.SipRecord{r, other})
	require.Len(t, summaries, 2)
	require.Equal(t, 0.0, summaries[0].ActiveMonthlyAmount)
}

func TestParseSchemeNames(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{"nil", nil, nil},
		{"empty", util.StringPointer("  "), nil},
		{"empty list", util.StringPointer("[]"), nil},
		{"single", util.StringPointer("Axis Bluechip"), []string{"Axis Bluechip"}},
		{"json list", util.StringPointer(`["A","B"]`), []string{"A", "B"}},
		{"quoted list", util.StringPointer("['A', 'B']"), []string{"A", "B"}},
		{"bare list", util.StringPointer("[A, B]"), []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseSchemeNames(tt.raw))
		})
	}
}
