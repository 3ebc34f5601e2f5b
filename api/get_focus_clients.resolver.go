package api

import (
	"wealthdesk/internal/app"

	"github.com/gin-gonic/gin"
)

type getFocusClientsRequest struct {
	agentScope
	Limit int `form:"limit,default=10" binding:"min=1,max=1000"`
}

func (m ApiHandler) getFocusClients(c *gin.Context) {
	var req getFocusClientsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.DashboardHandler.GetFocusClients(c.Request.Context(), app.GetFocusClientsInput{
		AgentExternalID: req.AgentExternalID,
		AgentID:         req.AgentID,
		Limit:           req.Limit,
		Now:             m.currentTime(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
