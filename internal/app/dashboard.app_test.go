package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
	mock_repository "wealthdesk/internal/repository/mocks"
	"wealthdesk/internal/service"
	"wealthdesk/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type dashboardMocks struct {
	sessions   *mock_repository.MockReadSessionProvider
	sips       *mock_repository.MockSipRecordRepository
	insurance  *mock_repository.MockInsuranceRecordRepository
	holdings   *mock_repository.MockPortfolioHoldingRepository
	users      *mock_repository.MockUserRepository
	summarizer *mock_repository.MockDashboardSummarizerRepository
}

func newTestDashboardHandler(t *testing.T) (DashboardHandler, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		sessions:   mock_repository.NewMockReadSessionProvider(ctrl),
		sips:       mock_repository.NewMockSipRecordRepository(ctrl),
		insurance:  mock_repository.NewMockInsuranceRecordRepository(ctrl),
		holdings:   mock_repository.NewMockPortfolioHoldingRepository(ctrl),
		users:      mock_repository.NewMockUserRepository(ctrl),
		summarizer: mock_repository.NewMockDashboardSummarizerRepository(ctrl),
	}

	session := mock_repository.NewMockReadSession(ctrl)
	session.EXPECT().Rollback().Return(nil).AnyTimes()
	m.sessions.EXPECT().Begin(gomock.Any()).Return(session, nil).AnyTimes()

	handler := DashboardHandler{
		ReadSessionProvider:           m.sessions,
		SipOpportunityService:         service.NewSipOpportunityService(m.sips),
		InsuranceOpportunityService:   service.NewInsuranceOpportunityService(m.insurance, m.sips, m.users),
		PortfolioOpportunityService:   service.NewPortfolioOpportunityService(m.holdings, m.users),
		DashboardSummarizerRepository: m.summarizer,
		SummarizerTimeout:             time.Second,
	}
	return handler, m
}

func daysAgo(d int) *time.Time {
	t := testNow.AddDate(0, 0, -d)
	return &t
}

// expectBundles wires one client (c1) into every bundle plus twenty
// stagnant SIPs, so truncation of the stagnant bundle is observable.
func expectBundles(m dashboardMocks, agent *string) {
	dob := util.NewDate(1980, 1, 1)

	m.holdings.EXPECT().
		List(gomock.Any(), gomock.Any(), repository.PortfolioHoldingListFilter{AgentExternalID: agent, XirrOnly: true}).
		Return([]domain.PortfolioHolding{
			{ClientID: "c1", SchemeID: "F1", SchemeName: "Alpha", CurrentValue: 100000, LiveXirr: util.FloatPointer(8), BenchmarkXirr: util.FloatPointer(12)},
		}, nil).AnyTimes()
	m.users.EXPECT().
		GetMany(gomock.Any(), gomock.Any(), []string{"c1"}).
		Return(map[string]domain.Client{"c1": {ClientID: "c1", Name: util.StringPointer("Arun")}}, nil).AnyTimes()

	stagnant := []domain.SipRecord{}
	for i := 0; i < 20; i++ {
		stagnant = append(stagnant, domain.SipRecord{
			SipID:     fmt.Sprintf("s%02d", i),
			ClientID:  fmt.Sprintf("sc%02d", i),
			IsActive:  true,
			Amount:    float64(1000 * (i + 1)),
			CreatedAt: daysAgo(400),
		})
	}
	m.sips.EXPECT().
		List(gomock.Any(), gomock.Any(), repository.SipRecordListFilter{AgentExternalID: agent, ActiveOnly: true}).
		Return(stagnant, nil).AnyTimes()

	m.sips.EXPECT().
		List(gomock.Any(), gomock.Any(), repository.SipRecordListFilter{AgentExternalID: agent}).
		Return([]domain.SipRecord{
			{SipID: "x1", ClientID: "c1", IsActive: true, Amount: 5000, SuccessCount: 12, SuccessTotal: 60000, LatestSuccessDate: daysAgo(100), IncrementPercent: util.FloatPointer(10)},
		}, nil).AnyTimes()

	m.users.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Client{{ClientID: "c1", MfCurrentValue: 2000000, DateOfBirth: &dob}}, nil).AnyTimes()
	m.insurance.EXPECT().
		List(gomock.Any(), gomock.Any(), repository.InsuranceRecordListFilter{ClientIDs: []string{"c1"}}).
		Return([]domain.InsuranceRecord{}, nil).AnyTimes()
}

func validPayload() *domain.DashboardPayload {
	return &domain.DashboardPayload{
		HeroMetrics: domain.HeroMetrics{
			TotalOpportunityValue: 299000,
			FormattedValue:        "₹2.99 L",
			ExecutiveSummary:      "Restart Arun's SIP first.",
		},
		TopClients: []domain.FocusClient{{ClientID: "c1", ClientName: "Arun"}},
	}
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	agent := util.StringPointer("AG1")

	t.Run("summarized dashboard", func(t *testing.T) {
		handler, m := newTestDashboardHandler(t)
		expectBundles(m, agent)

		m.summarizer.EXPECT().
			Summarize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in domain.SummarizerInput) (*domain.DashboardPayload, error) {
				require.Len(t, in.PortfolioReview.Clients, 1)
				require.Len(t, in.StagnantSips.Opportunities, 15)
				require.Equal(t, 20.0*1000, in.StagnantSips.Opportunities[0].CurrentSip)
				require.Equal(t, 20, in.StagnantSips.TotalStagnantSips)
				require.Len(t, in.StoppedSips.Opportunities, 1)
				require.Len(t, in.InsuranceGaps.Opportunities, 1)
				return validPayload(), nil
			})

		got, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow})
		require.NoError(t, err)

		require.False(t, got.Metadata.UsedFallback)
		require.Equal(t, 299000.0, got.HeroMetrics.TotalOpportunityValue)
		require.Len(t, got.TopClients, 1)

		require.Equal(t, domain.CategoryCounts{Total: 1, Analyzed: 1}, got.Metadata.PortfolioReview)
		require.Equal(t, domain.CategoryCounts{Total: 20, Analyzed: 15}, got.Metadata.StagnantSips)
		require.Equal(t, domain.CategoryCounts{Total: 1, Analyzed: 1}, got.Metadata.StoppedSips)
		require.Equal(t, domain.CategoryCounts{Total: 1, Analyzed: 1}, got.Metadata.InsuranceGaps)
		// 1% of 100,000 + 10% x 12 of the top fifteen SIPs + 5,000 x 12 + 4,000
		require.InDelta(t, 299000, got.Metadata.EstimatedOpportunityValue, 1e-6)
		require.Equal(t, domain.MaxFocusClients, got.Metadata.FocusClientCount)
		require.Equal(t, testNow, got.Metadata.GeneratedAt)
		require.Equal(t, "AG1", *got.Metadata.AgentExternalID)
	})

	fallbackCases := []struct {
		name      string
		summarize func(ctx context.Context, in domain.SummarizerInput) (*domain.DashboardPayload, error)
	}{
		{
			name: "summarizer error",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				return nil, errors.New("rate limited")
			},
		},
		{
			name: "summarizer not configured",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				return nil, repository.ErrSummarizerUnavailable
			},
		},
		{
			name: "summarizer panic",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				panic("boom")
			},
		},
		{
			name: "summarizer timeout",
			summarize: func(ctx context.Context, in domain.SummarizerInput) (*domain.DashboardPayload, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		},
		{
			name: "too many focus clients",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				p := validPayload()
				for i := 0; i < domain.MaxFocusClients; i++ {
					p.TopClients = append(p.TopClients, domain.FocusClient{ClientID: fmt.Sprintf("x%d", i)})
				}
				return p, nil
			},
		},
		{
			name: "negative total",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				p := validPayload()
				p.HeroMetrics.TotalOpportunityValue = -1
				return p, nil
			},
		},
		{
			name: "nil payload",
			summarize: func(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
				return nil, nil
			},
		},
	}

	for _, tc := range fallbackCases {
		t.Run("fallback on "+tc.name, func(t *testing.T) {
			handler, m := newTestDashboardHandler(t)
			handler.SummarizerTimeout = 50 * time.Millisecond
			expectBundles(m, agent)
			m.summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).DoAndReturn(tc.summarize)

			got, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow})
			require.NoError(t, err)
			require.True(t, got.Metadata.UsedFallback)
			require.Equal(t, domain.FallbackDashboardPayload(), got.DashboardPayload)
			require.NotNil(t, got.TopClients)
			require.Equal(t, domain.CategoryCounts{Total: 20, Analyzed: 15}, got.Metadata.StagnantSips)
		})
	}

	t.Run("repository error fails the call", func(t *testing.T) {
		handler, m := newTestDashboardHandler(t)
		m.holdings.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))
		m.sips.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.SipRecord{}, nil).AnyTimes()
		m.users.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Client{}, nil).AnyTimes()
		m.insurance.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.InsuranceRecord{}, nil).AnyTimes()

		_, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow})
		require.ErrorContains(t, err, "connection reset")
	})

	t.Run("read session error fails the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mock_repository.NewMockReadSessionProvider(ctrl)
		sessions.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("too many connections")).MinTimes(1)

		handler := DashboardHandler{ReadSessionProvider: sessions}
		_, err := handler.GetDashboard(context.Background(), GetDashboardInput{Now: testNow})
		require.ErrorContains(t, err, "too many connections")
	})

	t.Run("cached until refresh", func(t *testing.T) {
		handler, m := newTestDashboardHandler(t)
		handler.Cache = NewDashboardCache(time.Hour)
		expectBundles(m, agent)
		m.summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(validPayload(), nil).Times(2)

		first, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow})
		require.NoError(t, err)
		second, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow})
		require.NoError(t, err)
		require.Same(t, first, second)

		refreshed, err := handler.GetDashboard(context.Background(), GetDashboardInput{AgentExternalID: agent, Now: testNow, Refresh: true})
		require.NoError(t, err)
		require.NotSame(t, first, refreshed)
	})
}

func TestDashboardHandler_GetFocusClients(t *testing.T) {
	agent := util.StringPointer("AG1")
	handler, m := newTestDashboardHandler(t)
	expectBundles(m, agent)

	got, err := handler.GetFocusClients(context.Background(), GetFocusClientsInput{AgentExternalID: agent, Limit: 5, Now: testNow})
	require.NoError(t, err)
	require.Len(t, got, 5)
	// c1 shows up in three bundles and ranks first
	require.Equal(t, "c1", got[0].ClientID)
	require.Len(t, got[0].Tags, 3)
}
