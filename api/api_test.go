package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wealthdesk/internal/app"
	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
	mock_repository "wealthdesk/internal/repository/mocks"
	"wealthdesk/internal/service"
	"wealthdesk/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

type testRepositories struct {
	sips       *mock_repository.MockSipRecordRepository
	insurance  *mock_repository.MockInsuranceRecordRepository
	holdings   *mock_repository.MockPortfolioHoldingRepository
	users      *mock_repository.MockUserRepository
	summarizer *mock_repository.MockDashboardSummarizerRepository
	sessions   *mock_repository.MockReadSessionProvider
}

func newTestRouter(t *testing.T) (*gin.Engine, testRepositories) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	repos := testRepositories{
		sips:       mock_repository.NewMockSipRecordRepository(ctrl),
		insurance:  mock_repository.NewMockInsuranceRecordRepository(ctrl),
		holdings:   mock_repository.NewMockPortfolioHoldingRepository(ctrl),
		users:      mock_repository.NewMockUserRepository(ctrl),
		summarizer: mock_repository.NewMockDashboardSummarizerRepository(ctrl),
		sessions:   mock_repository.NewMockReadSessionProvider(ctrl),
	}

	sipService := service.NewSipOpportunityService(repos.sips)
	insuranceService := service.NewInsuranceOpportunityService(repos.insurance, repos.sips, repos.users)
	portfolioService := service.NewPortfolioOpportunityService(repos.holdings, repos.users)

	handler := ApiHandler{
		SipOpportunityService:       sipService,
		InsuranceOpportunityService: insuranceService,
		PortfolioOpportunityService: portfolioService,
		DashboardHandler: app.DashboardHandler{
			ReadSessionProvider:           repos.sessions,
			SipOpportunityService:         sipService,
			InsuranceOpportunityService:   insuranceService,
			PortfolioOpportunityService:   portfolioService,
			DashboardSummarizerRepository: repos.summarizer,
			SummarizerTimeout:             time.Second,
		},
		now: func() time.Time { return testNow },
	}
	return handler.InitializeRouterEngine(), repos
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/health")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestQueryValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/opportunities?limit=0",
		"/api/opportunities?limit=1001",
		"/api/opportunities/no-sip-increase?min_months=0",
		"/api/opportunities/failed-sips?min_failed_amount=-1",
		"/api/opportunities/high-value-inactive?limit=abc",
		"/api/opportunities/stopped-sips?min_success_count=0",
		"/api/insurance/opportunities/coverage-gaps?min_age=-5",
		"/api/portfolio/opportunities/concentrated?min_concentration=120",
		"/api/clients/focus?limit=0",
		"/api/ai/dashboard-insights?refresh=maybe",
	} {
		t.Run(path, func(t *testing.T) {
			w := get(router, path)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), "invalid query params")
		})
	}
}

func TestGetFailedSips(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		router, repos := newTestRouter(t)
		minFailed := 5000.0
		repos.sips.EXPECT().
			List(gomock.Any(), nil, repository.SipRecordListFilter{
				AgentID:         util.StringPointer("A1"),
				MinFailedAmount: &minFailed,
			}).
			Return([]domain.SipRecord{
				{SipID: "S1", ClientID: "c1", FailedTotal: 6000, SuccessTotal: 54000},
				{SipID: "S2", ClientID: "c2", FailedTotal: 20000, SuccessTotal: 20000},
			}, nil)

		w := get(router, "/api/opportunities/failed-sips?agent_id=A1")
		require.Equal(t, 200, w.Code)

		out := []domain.SipOpportunity{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 2)
		require.Equal(t, "S2", out[0].SipID)
		require.Equal(t, 50.0, *out[0].FailureRate)
	})

	t.Run("repository error is a 500", func(t *testing.T) {
		router, repos := newTestRouter(t)
		repos.sips.EXPECT().
			List(gomock.Any(), nil, gomock.Any()).
			Return(nil, errors.New("connection refused"))

		w := get(router, "/api/opportunities/failed-sips")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestGetClientSips(t *testing.T) {
	router, repos := newTestRouter(t)
	start := util.NewDate(2023, 1, 10)
	repos.sips.EXPECT().
		List(gomock.Any(), nil, repository.SipRecordListFilter{ClientID: util.StringPointer("c1")}).
		Return([]domain.SipRecord{{
			SipID:         "S1",
			ClientID:      "c1",
			Amount:        10000,
			IsActive:      true,
			CurrentStatus: domain.SipStatusSuccess,
			StartDate:     &start,
		}}, nil)

	w := get(router, "/api/clients/c1/sips")
	require.Equal(t, 200, w.Code)

	out := []clientSipResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, "S1", out[0].SipMetaID)
	require.Equal(t, "Success", out[0].CurrentSipStatus)
	require.Equal(t, "2023-01-10", *out[0].StartDate)
	require.Nil(t, out[0].LatestSuccessDate)
}

func TestGetClientInsurance_empty(t *testing.T) {
	router, repos := newTestRouter(t)
	repos.insurance.EXPECT().
		List(gomock.Any(), nil, gomock.Any()).
		Return([]domain.InsuranceRecord{}, nil)

	w := get(router, "/api/clients/c9/insurance")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func expectEmptyBundles(repos testRepositories, session *mock_repository.MockReadSession) {
	repos.sessions.EXPECT().Begin(gomock.Any()).Return(session, nil).AnyTimes()
	session.EXPECT().Rollback().Return(nil).AnyTimes()
	repos.holdings.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.PortfolioHolding{}, nil).AnyTimes()
	repos.users.EXPECT().GetMany(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]domain.Client{}, nil).AnyTimes()
	repos.users.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Client{}, nil).AnyTimes()
	repos.insurance.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.InsuranceRecord{}, nil).AnyTimes()
}

func TestGetDashboardInsights(t *testing.T) {
	t.Run("summarizer failure still answers 200", func(t *testing.T) {
		router, repos := newTestRouter(t)
		session := mock_repository.NewMockReadSession(gomock.NewController(t))
		expectEmptyBundles(repos, session)
		repos.sips.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.SipRecord{}, nil).AnyTimes()
		repos.summarizer.EXPECT().
			Summarize(gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrSummarizerUnavailable)

		w := get(router, "/api/ai/dashboard-insights?agent_external_id=AG1")
		require.Equal(t, 200, w.Code)

		out := domain.Dashboard{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.True(t, out.Metadata.UsedFallback)
		require.Equal(t, "AG1", *out.Metadata.AgentExternalID)
		require.Equal(t, "Calculating...", out.HeroMetrics.FormattedValue)
		require.Empty(t, out.TopClients)
	})

	t.Run("data access failure is a 500", func(t *testing.T) {
		router, repos := newTestRouter(t)
		session := mock_repository.NewMockReadSession(gomock.NewController(t))
		expectEmptyBundles(repos, session)
		repos.sips.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).AnyTimes()

		w := get(router, "/api/ai/dashboard-insights")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "timeout")
	})
}

func TestGetAgents(t *testing.T) {
	router, repos := newTestRouter(t)
	repos.sips.EXPECT().
		ListAgents(gomock.Any(), nil).
		Return([]domain.Agent{{AgentExternalID: util.StringPointer("AG1")}}, nil)

	w := get(router, "/api/agents")
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"agentExternalID":"AG1"`)
}

func TestRequestRecording(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	requests := mock_repository.NewMockApiRequestRepository(ctrl)
	router := ApiHandler{ApiRequestRepository: requests}.InitializeRouterEngine()
	callerID := uuid.New()

	var recorded []uuid.UUID
	requests.EXPECT().
		Add(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ any, _ any, ar model.APIRequest) error {
			require.NotEqual(t, callerID, ar.RequestID)
			require.Equal(t, "/health", ar.Route)
			require.Equal(t, "verbose=1", *ar.Query)
			require.Nil(t, ar.StatusCode)
			recorded = append(recorded, ar.RequestID)
			return nil
		}).
		Times(2)
	requests.EXPECT().
		Update(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ any, _ any, ar model.APIRequest) error {
			require.Equal(t, recorded[len(recorded)-1], ar.RequestID)
			require.Equal(t, int32(200), *ar.StatusCode)
			require.NotNil(t, ar.DurationMs)
			return errors.New("db unavailable")
		}).
		Times(2)

	// the same caller id twice still yields two distinct rows
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil)
		req.Header.Set("X-Request-ID", callerID.String())
		router.ServeHTTP(w, req)

		// recording failures never change the response
		require.Equal(t, 200, w.Code)
		require.Equal(t, recorded[i].String(), w.Header().Get("X-Request-ID"))
	}
	require.Len(t, recorded, 2)
	require.NotEqual(t, recorded[0], recorded[1])
}

func TestGetUsageStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	requests := mock_repository.NewMockApiRequestRepository(ctrl)
	router := ApiHandler{
		ApiRequestRepository: requests,
		now:                  func() time.Time { return testNow },
	}.InitializeRouterEngine()

	requests.EXPECT().Add(gomock.Any(), nil, gomock.Any()).Return(nil).AnyTimes()
	requests.EXPECT().Update(gomock.Any(), nil, gomock.Any()).Return(nil).AnyTimes()
	requests.EXPECT().
		GetUsageStats(gomock.Any(), nil, testNow.AddDate(0, 0, -7)).
		Return(&repository.UsageStats{Requests: 42, UniqueCallers: 3}, nil)

	w := get(router, "/api/usage-stats?days=7")
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"requests":42`)

	w = get(router, "/api/usage-stats?days=0")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
