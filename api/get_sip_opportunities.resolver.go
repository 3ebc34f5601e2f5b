package api

import (
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getSipOpportunitiesRequest struct {
	AgentID *string `form:"agent_id"`
	Limit   int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getSipOpportunities(c *gin.Context) {
	var req getSipOpportunitiesRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.SipOpportunityService.GetAllOpportunities(c.Request.Context(), nil, service.GetAllSipOpportunitiesInput{
		AgentID: req.AgentID,
		Limit:   req.Limit,
		Now:     m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
