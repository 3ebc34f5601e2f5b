package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getHighValueInactiveRequest struct {
	AgentID           *string `form:"agent_id"`
	MinInvestedAmount float64 `form:"min_invested_amount,default=100000" binding:"gte=0"`
	MinInactiveDays   int     `form:"min_inactive_days,default=60" binding:"min=1"`
	Limit             int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getHighValueInactive(c *gin.Context) {
	var req getHighValueInactiveRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetHighValueInactive(c.Request.Context(), nil, service.GetHighValueInactiveInput{
		AgentID: req.AgentID,
		Params: calculator.HighValueParams{
			MinInvestedAmount: req.MinInvestedAmount,
			MinInactiveDays:   req.MinInactiveDays,
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
