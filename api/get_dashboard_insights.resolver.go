package api

import (
	"wealthdesk/internal/app"

	"github.com/gin-gonic/gin"
)

type getDashboardInsightsRequest struct {
	agentScope
	Refresh bool `form:"refresh,default=false"`
}

// getDashboardInsights only fails on data access errors. Summarizer
// problems come back as the fallback dashboard with usedFallback set.
func (m ApiHandler) getDashboardInsights(c *gin.Context) {
	var req getDashboardInsightsRequest
	if !bindQuery(c, &req) {
		return
	}

	dashboard, err := m.DashboardHandler.GetDashboard(c.Request.Context(), app.GetDashboardInput{
		AgentExternalID: req.AgentExternalID,
		AgentID:         req.AgentID,
		Refresh:         req.Refresh,
		Now:             m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, dashboard)
}
