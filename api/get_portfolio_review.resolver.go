package api

import (
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getPortfolioReviewRequest struct {
	AgentExternalID *string `form:"agent_external_id"`
}

func (m ApiHandler) getPortfolioReview(c *gin.Context) {
	var req getPortfolioReviewRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.PortfolioOpportunityService.GetPortfolioReview(c.Request.Context(), nil, service.GetPortfolioReviewInput{
		AgentExternalID: req.AgentExternalID,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
