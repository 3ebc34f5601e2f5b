package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getCoverageGapsRequest struct {
	AgentExternalID *string `form:"agent_external_id"`
	MinMfValue      float64 `form:"min_mf_value,default=500000" binding:"gte=0"`
	MinAge          int     `form:"min_age,default=30" binding:"gte=0"`
	Limit           int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getCoverageGaps(c *gin.Context) {
	var req getCoverageGapsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.InsuranceOpportunityService.GetCoverageGaps(c.Request.Context(), nil, service.GetCoverageGapsInput{
		AgentExternalID: req.AgentExternalID,
		Params: calculator.CoverageGapParams{
			MinMfValue: req.MinMfValue,
			MinAge:     req.MinAge,
			Limit:      req.Limit,
		},
		Now: m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
