package api

import (
	"fmt"
	"net/http"
	"time"

	"wealthdesk/internal/app"
	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/service"
	"wealthdesk/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	SipOpportunityService       service.SipOpportunityService
	InsuranceOpportunityService service.InsuranceOpportunityService
	PortfolioOpportunityService service.PortfolioOpportunityService
	DashboardHandler            app.DashboardHandler
	// optional; requests are only logged when nil
	ApiRequestRepository repository.ApiRequestRepository

	// overridden in tests
	now func() time.Time
}

func (m ApiHandler) currentTime() time.Time {
	if m.now != nil {
		return m.now()
	}
	return time.Now().UTC()
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.requestLoggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{
			"message": "welcome to wealthdesk",
			"version": "1.0.0",
		})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "healthy"})
	})

	router.GET("/api/opportunities", m.getSipOpportunities)
	router.GET("/api/opportunities/no-sip-increase", m.getNoSipIncrease)
	router.GET("/api/opportunities/failed-sips", m.getFailedSips)
	router.GET("/api/opportunities/high-value-inactive", m.getHighValueInactive)
	router.GET("/api/opportunities/stagnant-sips", m.getStagnantSips)
	router.GET("/api/opportunities/stopped-sips", m.getStoppedSips)
	router.GET("/api/opportunities/stats", m.getSipStats)

	router.GET("/api/insurance/opportunities/gaps", m.getPremiumGaps)
	router.GET("/api/insurance/opportunities/no-coverage", m.getNoCoverage)
	router.GET("/api/insurance/opportunities/coverage-gaps", m.getCoverageGaps)
	router.GET("/api/insurance/stats", m.getInsuranceStats)

	router.GET("/api/portfolio/opportunities", m.getFundOpportunities)
	router.GET("/api/portfolio/opportunities/underperforming", m.getUnderperformingFunds)
	router.GET("/api/portfolio/opportunities/low-rated", m.getLowRatedFunds)
	router.GET("/api/portfolio/opportunities/concentrated", m.getConcentratedFunds)
	router.GET("/api/portfolio/review-opportunities", m.getPortfolioReview)

	router.GET("/api/clients/focus", m.getFocusClients)
	router.GET("/api/clients/:user_id/sips", m.getClientSips)
	router.GET("/api/clients/:user_id/insurance", m.getClientInsurance)
	router.GET("/api/agents", m.getAgents)

	router.GET("/api/ai/dashboard-insights", m.getDashboardInsights)
	router.GET("/api/usage-stats", m.getUsageStats)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorw("request failed", "error", err)
	} else {
		lg.Infow("rejected request", "error", err, "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// bindQuery binds and validates query params, answering 400 on failure.
func bindQuery(c *gin.Context, out any) bool {
	if err := c.ShouldBindQuery(out); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid query params: %w", err), c, http.StatusBadRequest)
		return false
	}
	return true
}

func (m ApiHandler) requestLoggerMiddleware(c *gin.Context) {
	// the caller's id is only logged; audit rows are keyed by our own
	requestID := uuid.New()
	lg := logger.FromContext(c.Request.Context()).With("requestID", requestID.String())
	if callerID := c.GetHeader("X-Request-ID"); callerID != "" {
		lg = lg.With("callerRequestID", callerID)
	}
	ctx := logger.WithContext(c.Request.Context(), lg)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set("X-Request-ID", requestID.String())

	start := time.Now()
	record := model.APIRequest{
		RequestID: requestID,
		IPAddress: util.StringPointer(c.ClientIP()),
		Method:    c.Request.Method,
		Route:     c.Request.URL.Path,
		StartTs:   start.UTC(),
	}
	if c.Request.URL.RawQuery != "" {
		record.Query = util.StringPointer(c.Request.URL.RawQuery)
	}
	if m.ApiRequestRepository != nil {
		if err := m.ApiRequestRepository.Add(ctx, nil, record); err != nil {
			lg.Warnw("failed to record request", "error", err)
		}
	}

	c.Next()

	elapsed := time.Since(start)
	lg.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"elapsed", elapsed.String(),
	)

	if m.ApiRequestRepository != nil {
		status := int32(c.Writer.Status())
		durationMs := elapsed.Milliseconds()
		record.StatusCode = &status
		record.DurationMs = &durationMs
		if err := m.ApiRequestRepository.Update(ctx, nil, record); err != nil {
			lg.Warnw("failed to record request", "error", err)
		}
	}
}

// agentScope is shared by routes that filter by advisor.
type agentScope struct {
	AgentID         *string `form:"agent_id"`
	AgentExternalID *string `form:"agent_external_id"`
}
