package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type getPremiumGapsRequest struct {
	AgentID             *string `form:"agent_id"`
	MinPremiumGap       float64 `form:"min_premium_gap,default=10000" binding:"gte=0"`
	MinOpportunityScore int     `form:"min_opportunity_score,default=0" binding:"gte=0"`
	Limit               int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getPremiumGaps(c *gin.Context) {
	var req getPremiumGapsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.InsuranceOpportunityService.GetPremiumGaps(c.Request.Context(), nil, service.GetPremiumGapsInput{
		AgentID: req.AgentID,
		Params: calculator.PremiumGapParams{
			MinPremiumGap: req.MinPremiumGap,
			MinScore:      req.MinOpportunityScore,
			Limit:         req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
