package service

import (
	"context"
	"testing"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
	mock_repository "wealthdesk/internal/repository/mocks"
	"wealthdesk/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_portfolioOpportunityServiceHandler_GetPortfolioReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolioHoldingRepository := mock_repository.NewMockPortfolioHoldingRepository(ctrl)
	userRepository := mock_repository.NewMockUserRepository(ctrl)
	handler := portfolioOpportunityServiceHandler{
		PortfolioHoldingRepository: portfolioHoldingRepository,
		UserRepository:             userRepository,
	}
	ctx := context.Background()
	agent := util.StringPointer("AG1")

	portfolioHoldingRepository.EXPECT().
		List(ctx, nil, repository.PortfolioHoldingListFilter{AgentExternalID: agent, XirrOnly: true}).
		Return([]domain.PortfolioHolding{
			{ClientID: "c1", SchemeID: "F1", CurrentValue: 100000, LiveXirr: util.FloatPointer(8), BenchmarkXirr: util.FloatPointer(12.5)},
			{ClientID: "c1", SchemeID: "F2", CurrentValue: 50000, LiveXirr: util.FloatPointer(14), BenchmarkXirr: util.FloatPointer(12)},
			{ClientID: "c2", SchemeID: "F1", CurrentValue: 70000, LiveXirr: util.FloatPointer(9), BenchmarkXirr: util.FloatPointer(12.5)},
			{ClientID: "c3", SchemeID: "F1", CurrentValue: 90000, LiveXirr: util.FloatPointer(9), BenchmarkXirr: util.FloatPointer(12.5)},
		}, nil)
	// c3 has no client record and is dropped
	userRepository.EXPECT().
		GetMany(ctx, nil, []string{"c1", "c2", "c3"}).
		Return(map[string]domain.Client{
			"c1": {ClientID: "c1", Name: util.StringPointer("Arun")},
			"c2": {ClientID: "c2"},
		}, nil)

	result, err := handler.GetPortfolioReview(ctx, nil, GetPortfolioReviewInput{AgentExternalID: agent})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalClients)
	require.Equal(t, 2, result.TotalUnderperformingSchemes)
	require.Equal(t, 170000.0, result.TotalValueUnderperforming)
	require.Equal(t, "c1", result.Clients[0].ClientID)
	require.Equal(t, 4.5, result.Clients[0].Schemes[0].XirrUnderperformance)
}

func Test_portfolioOpportunityServiceHandler_GetAllOpportunities(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolioHoldingRepository := mock_repository.NewMockPortfolioHoldingRepository(ctrl)
	handler := portfolioOpportunityServiceHandler{
		PortfolioHoldingRepository: portfolioHoldingRepository,
	}

	portfolioHoldingRepository.EXPECT().
		List(gomock.Any(), nil, repository.PortfolioHoldingListFilter{ClientID: util.StringPointer("c1")}).
		Return([]domain.PortfolioHolding{
			{ClientID: "c1", SchemeID: "F1", CurrentValue: 100000, ThreeYearAlpha: util.FloatPointer(-1.5), PortfolioWeight: 40},
			{ClientID: "c1", SchemeID: "F2", CurrentValue: 20000, Rating: util.StringPointer("2"), PortfolioWeight: 10},
			{ClientID: "c1", SchemeID: "F3", CurrentValue: 5000, PortfolioWeight: 5},
		}, nil)

	got, err := handler.GetAllOpportunities(context.Background(), nil, GetAllFundOpportunitiesInput{
		HoldingScope: HoldingScope{ClientID: util.StringPointer("c1")},
		Limit:        30,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, 100000.0, got[0].CurrentValue)
	require.Equal(t, 100000.0, got[1].CurrentValue)
	require.Equal(t, domain.OpportunityLowRatedFund, got[2].OpportunityType)
}
