package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getNoCoverageRequest struct {
	AgentID    *string `form:"agent_id"`
	MinMfValue float64 `form:"min_mf_value,default=1000000" binding:"gte=0"`
	Limit      int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getNoCoverage(c *gin.Context) {
	var req getNoCoverageRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.InsuranceOpportunityService.GetNoInsurance(c.Request.Context(), nil, service.GetNoInsuranceInput{
		AgentID: req.AgentID,
		Params: calculator.NoInsuranceParams{
			MinMfValue: req.MinMfValue,
			Limit:      req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
