package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getStagnantSipsRequest struct {
	agentScope
	MinMonths int `form:"min_months,default=6" binding:"min=1"`
	Limit     int `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getStagnantSips(c *gin.Context) {
	var req getStagnantSipsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetStagnantStepUp(c.Request.Context(), nil, service.GetStagnantStepUpInput{
		AgentID:         req.AgentID,
		AgentExternalID: req.AgentExternalID,
		Params: calculator.StagnantStepUpParams{
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
