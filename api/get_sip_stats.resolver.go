package api

import (
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getSipStatsRequest struct {
	AgentID *string `form:"agent_id"`
}

func (m ApiHandler) getSipStats(c *gin.Context) {
	var req getSipStatsRequest
	if !bindQuery(c, &req) {
		return
	}

	stats, err := m.SipOpportunityService.GetStats(c.Request.Context(), nil, service.GetSipStatsInput{
		AgentID: req.AgentID,
		Now:     m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
