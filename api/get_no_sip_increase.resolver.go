package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getNoSipIncreaseRequest struct {
	AgentID   *string `form:"agent_id"`
	MinMonths int     `form:"min_months,default=12" binding:"min=1"`
	Limit     int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getNoSipIncrease(c *gin.Context) {
	var req getNoSipIncreaseRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetNoIncreaseOpportunities(c.Request.Context(), nil, service.GetNoIncreaseInput{
		AgentID: req.AgentID,
		Params: calculator.NoIncreaseParams{
			MinMonths: req.MinMonths,
			Limit:     req.Limit,
		},
		Now: m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
