package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
	mock_repository "wealthdesk/internal/repository/mocks"
	"wealthdesk/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(d int) *time.Time {
	t := testNow.AddDate(0, 0, -d)
	return &t
}

func Test_sipOpportunityServiceHandler_GetStoppedPayments(t *testing.T) {
	t.Run("groups every mandate of the agent's clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
		handler := sipOpportunityServiceHandler{
			SipRecordRepository: sipRecordRepository,
		}
		ctx := context.Background()
		agent := util.StringPointer("AG1")

		sipRecordRepository.EXPECT().
			List(ctx, nil, repository.SipRecordListFilter{AgentExternalID: agent}).
			Return([]domain.SipRecord{
				{SipID: "s1", ClientID: "c1", IsActive: true, Amount: 5000, SuccessCount: 12, SuccessTotal: 60000, LatestSuccessDate: daysAgo(100)},
				{SipID: "s2", ClientID: "c1", IsActive: false, Amount: 2000, SuccessCount: 2, SuccessTotal: 4000, LatestSuccessDate: daysAgo(400)},
				{SipID: "s3", ClientID: "c2", IsActive: true, Amount: 1000, SuccessCount: 10, LatestSuccessDate: daysAgo(10)},
			}, nil)

		result, err := handler.GetStoppedPayments(ctx, nil, GetStoppedPaymentsInput{
			AgentExternalID: agent,
			Params:          calculator.DefaultStoppedParams(),
			Now:             testNow,
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.TotalStoppedClients)
		require.Equal(t, "c1", result.Opportunities[0].ClientID)
		require.Equal(t, 2, result.Opportunities[0].TotalSips)
		require.Equal(t, 5000.0, result.Opportunities[0].ActiveMonthlyAmount)
		require.Equal(t, 64000.0, result.TotalLifetimeInvestment)
		require.Equal(t, 100, result.Opportunities[0].DaysSinceAnySuccess)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
		handler := sipOpportunityServiceHandler{
			SipRecordRepository: sipRecordRepository,
		}

		sipRecordRepository.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := handler.GetStoppedPayments(context.Background(), nil, GetStoppedPaymentsInput{
			Params: calculator.DefaultStoppedParams(),
			Now:    testNow,
		})
		require.ErrorContains(t, err, "connection refused")
	})
}

func Test_sipOpportunityServiceHandler_GetStagnantStepUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
	handler := sipOpportunityServiceHandler{
		SipRecordRepository: sipRecordRepository,
	}

	sipRecordRepository.EXPECT().
		List(gomock.Any(), nil, repository.SipRecordListFilter{ActiveOnly: true}).
		Return([]domain.SipRecord{
			{SipID: "s1", ClientID: "c1", IsActive: true, Amount: 3000, CreatedAt: daysAgo(400)},
			{SipID: "s2", ClientID: "c1", IsActive: true, Amount: 3000, CreatedAt: daysAgo(400), IncrementPercent: util.FloatPointer(10)},
		}, nil)

	result, err := handler.GetStagnantStepUp(context.Background(), nil, GetStagnantStepUpInput{
		Params: calculator.DefaultStagnantStepUpParams(),
		Now:    testNow,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalStagnantSips)
	require.Equal(t, "s1", result.Opportunities[0].SipID)
}

func Test_sipOpportunityServiceHandler_GetAllOpportunities(t *testing.T) {
	ctrl := gomock.NewController(t)
	sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
	handler := sipOpportunityServiceHandler{
		SipRecordRepository: sipRecordRepository,
	}

	records := []domain.SipRecord{}
	// four failing SIPs; with a combined limit of 6 only two may come
	// from the failed detector
	for _, id := range []string{"f1", "f2", "f3", "f4"} {
		records = append(records, domain.SipRecord{SipID: id, ClientID: "c-" + id, FailedTotal: 10000, SuccessTotal: 10000})
	}
	records = append(records, domain.SipRecord{
		SipID: "h1", ClientID: "c-h1", Amount: 10000, SuccessTotal: 500000, LatestSuccessDate: daysAgo(300),
	})

	sipRecordRepository.EXPECT().
		List(gomock.Any(), nil, repository.SipRecordListFilter{}).
		Return(records, nil)

	got, err := handler.GetAllOpportunities(context.Background(), nil, GetAllSipOpportunitiesInput{
		Limit: 6,
		Now:   testNow,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	// high value inactive scores 10 + 1.5 and sorts first
	require.Equal(t, "h1", got[0].SipID)
	require.Equal(t, domain.OpportunityFailedPayments, got[1].OpportunityType)
	require.Equal(t, domain.OpportunityFailedPayments, got[2].OpportunityType)
}

func Test_sipOpportunityServiceHandler_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
	handler := sipOpportunityServiceHandler{
		SipRecordRepository: sipRecordRepository,
	}

	sipRecordRepository.EXPECT().
		List(gomock.Any(), nil, repository.SipRecordListFilter{AgentID: util.StringPointer("a1")}).
		Return([]domain.SipRecord{
			{SipID: "f1", ClientID: "c1", FailedTotal: 6000},
			{SipID: "f2", ClientID: "c2", FailedTotal: 4000},
		}, nil)

	got, err := handler.GetStats(context.Background(), nil, GetSipStatsInput{
		AgentID: util.StringPointer("a1"),
		Now:     testNow,
	})
	require.NoError(t, err)
	require.Equal(t, 1, got.TotalOpportunities)
	require.Equal(t, 6000.0, got.TotalPotentialRevenue)
	require.Equal(t, 0, got.BreakdownByType[string(domain.OpportunityNoIncrease)].Count)
}

func Test_perDetectorLimit(t *testing.T) {
	require.Equal(t, 33, perDetectorLimit(100))
	require.Equal(t, 1, perDetectorLimit(2))
	require.Equal(t, 1, perDetectorLimit(0))
}
