package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAgents(c *gin.Context) {
	agents, err := m.SipOpportunityService.ListAgents(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, agents)
}
