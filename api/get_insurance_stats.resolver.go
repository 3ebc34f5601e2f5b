package api

import (
	"github.com/gin-gonic/gin"
)

type getInsuranceStatsRequest struct {
	AgentID *string `form:"agent_id"`
}

func (m ApiHandler) getInsuranceStats(c *gin.Context) {
	var req getInsuranceStatsRequest
	if !bindQuery(c, &req) {
		return
	}

	stats, err := m.InsuranceOpportunityService.GetStats(c.Request.Context(), nil, req.AgentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
