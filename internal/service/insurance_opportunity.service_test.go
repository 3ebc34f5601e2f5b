package service

import (
	"context"
	"testing"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
	mock_repository "wealthdesk/internal/repository/mocks"
	"wealthdesk/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_insuranceOpportunityServiceHandler_GetCoverageGaps(t *testing.T) {
	t.Run("loads policies only for qualifying clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insuranceRecordRepository := mock_repository.NewMockInsuranceRecordRepository(ctrl)
		userRepository := mock_repository.NewMockUserRepository(ctrl)
		handler := insuranceOpportunityServiceHandler{
			InsuranceRecordRepository: insuranceRecordRepository,
			UserRepository:            userRepository,
		}
		ctx := context.Background()
		params := calculator.DefaultCoverageGapParams()
		dob := util.NewDate(1980, 1, 1)

		userRepository.EXPECT().
			List(ctx, nil, repository.UserListFilter{
				AgentExternalID: util.StringPointer("AG1"),
				MinMfValue:      util.FloatPointer(500000),
			}).
			Return([]domain.Client{
				{ClientID: "c1", MfCurrentValue: 2000000, DateOfBirth: &dob},
				{ClientID: "c2", MfCurrentValue: 1000000, DateOfBirth: &dob},
			}, nil)
		insuranceRecordRepository.EXPECT().
			List(ctx, nil, repository.InsuranceRecordListFilter{ClientIDs: []string{"c1", "c2"}}).
			Return([]domain.InsuranceRecord{
				{ClientID: "c2", InsuranceType: domain.InsuranceTypeHealth, Premium: 500},
			}, nil)

		result, err := handler.GetCoverageGaps(ctx, nil, GetCoverageGapsInput{
			AgentExternalID: util.StringPointer("AG1"),
			Params:          params,
			Now:             testNow,
		})
		require.NoError(t, err)
		require.Equal(t, 2, result.TotalOpportunities)
		require.Equal(t, 1, result.NoInsuranceCount)
		require.Equal(t, 1, result.LowCoverageCount)
		// age 44: 0.2% of 2,000,000 then 0.2% of 1,000,000 less the 500 paid
		require.Equal(t, "c1", result.Opportunities[0].ClientID)
		require.InDelta(t, 4000, result.Opportunities[0].OpportunityValue, 1e-6)
		require.InDelta(t, 1500, result.Opportunities[1].OpportunityValue, 1e-6)
	})
}

func Test_insuranceOpportunityServiceHandler_GetNoInsurance(t *testing.T) {
	ctrl := gomock.NewController(t)
	insuranceRecordRepository := mock_repository.NewMockInsuranceRecordRepository(ctrl)
	sipRecordRepository := mock_repository.NewMockSipRecordRepository(ctrl)
	handler := insuranceOpportunityServiceHandler{
		InsuranceRecordRepository: insuranceRecordRepository,
		SipRecordRepository:       sipRecordRepository,
	}

	sipRecordRepository.EXPECT().
		List(gomock.Any(), nil, repository.SipRecordListFilter{}).
		Return([]domain.SipRecord{
			{SipID: "s1", ClientID: "c1", SuccessTotal: 1500000},
			{SipID: "s2", ClientID: "c2", SuccessTotal: 3000000},
		}, nil)
	insuranceRecordRepository.EXPECT().
		ListInsuredClientIDs(gomock.Any(), nil).
		Return(map[string]bool{"c2": true}, nil)

	got, err := handler.GetNoInsurance(context.Background(), nil, GetNoInsuranceInput{
		Params: calculator.DefaultNoInsuranceParams(),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "c1", got[0].ClientID)
	require.Equal(t, 30000.0, got[0].PremiumGap)
}

func Test_insuranceOpportunityServiceHandler_GetPremiumGaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	insuranceRecordRepository := mock_repository.NewMockInsuranceRecordRepository(ctrl)
	handler := insuranceOpportunityServiceHandler{
		InsuranceRecordRepository: insuranceRecordRepository,
	}

	params := calculator.DefaultPremiumGapParams()
	params.MinScore = 50
	insuranceRecordRepository.EXPECT().
		List(gomock.Any(), nil, repository.InsuranceRecordListFilter{
			AgentID:       util.StringPointer("a1"),
			MinPremiumGap: util.FloatPointer(10000),
			MinScore:      util.IntPointer(50),
		}).
		Return([]domain.InsuranceRecord{
			{ClientID: "c1", InsuranceType: domain.InsuranceTypeHealth, Premium: 10000, PremiumGap: 20000, OpportunityScore: 80},
		}, nil)

	got, err := handler.GetPremiumGaps(context.Background(), nil, GetPremiumGapsInput{
		AgentID: util.StringPointer("a1"),
		Params:  params,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []domain.InsuranceType{domain.InsuranceTypeTerm, domain.InsuranceTypeTraditional, domain.InsuranceTypeULIP}, got[0].MissingCoverageTypes)
}
