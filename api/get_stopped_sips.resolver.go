package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getStoppedSipsRequest struct {
	AgentExternalID   *string `form:"agent_external_id"`
	MinSuccessCount   int     `form:"min_success_count,default=3" binding:"min=1"`
	MinInactiveMonths int     `form:"min_inactive_months,default=2" binding:"min=1"`
	Limit             int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getStoppedSips(c *gin.Context) {
	var req getStoppedSipsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetStoppedPayments(c.Request.Context(), nil, service.GetStoppedPaymentsInput{
		AgentExternalID: req.AgentExternalID,
		Params: calculator.StoppedParams{
			MinSuccessCount:   req.MinSuccessCount,
			MinInactiveMonths: req.MinInactiveMonths,
			Limit:             req.Limit,
		},
		Now: m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
