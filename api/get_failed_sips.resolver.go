package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getFailedSipsRequest struct {
	AgentID         *string `form:"agent_id"`
	MinFailedAmount float64 `form:"min_failed_amount,default=5000" binding:"gte=0"`
	Limit           int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getFailedSips(c *gin.Context) {
	var req getFailedSipsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetFailedSipOpportunities(c.Request.Context(), nil, service.GetFailedSipsInput{
		AgentID: req.AgentID,
		Params: calculator.FailedParams{
			MinFailedAmount: req.MinFailedAmount,
			Limit:           req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
