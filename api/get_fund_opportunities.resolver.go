package api

import (
	"wealthdesk/internal/calculator"
	"wealthdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// holdingScopeQuery narrows fund classifiers to an advisor's book or a
// single client.
type holdingScopeQuery struct {
	AgentExternalID *string `form:"agent_external_id"`
	ClientID        *string `form:"user_id"`
}

func (q holdingScopeQuery) scope() service.HoldingScope {
	return service.HoldingScope{
		AgentExternalID: q.AgentExternalID,
		ClientID:        q.ClientID,
	}
}

type getFundOpportunitiesRequest struct {
	holdingScopeQuery
	Limit int `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getFundOpportunities(c *gin.Context) {
	var req getFundOpportunitiesRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.PortfolioOpportunityService.GetAllOpportunities(c.Request.Context(), nil, service.GetAllFundOpportunitiesInput{
		HoldingScope: req.scope(),
		Limit:        req.Limit,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type getUnderperformingFundsRequest struct {
	holdingScopeQuery
	MinCurrentValue float64 `form:"min_current_value,default=0" binding:"gte=0"`
	Limit           int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getUnderperformingFunds(c *gin.Context) {
	var req getUnderperformingFundsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.PortfolioOpportunityService.GetUnderperforming(c.Request.Context(), nil, service.GetUnderperformingInput{
		HoldingScope: req.scope(),
		Params: calculator.UnderperformingParams{
			MinCurrentValue: req.MinCurrentValue,
			Limit:           req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type getLowRatedFundsRequest struct {
	holdingScopeQuery
	MaxRating       float64 `form:"max_rating,default=3" binding:"gte=0"`
	MinCurrentValue float64 `form:"min_current_value,default=0" binding:"gte=0"`
	Limit           int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getLowRatedFunds(c *gin.Context) {
	var req getLowRatedFundsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.PortfolioOpportunityService.GetLowRated(c.Request.Context(), nil, service.GetLowRatedInput{
		HoldingScope: req.scope(),
		Params: calculator.LowRatedParams{
			MaxRating:       req.MaxRating,
			MinCurrentValue: req.MinCurrentValue,
			Limit:           req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type getConcentratedFundsRequest struct {
	holdingScopeQuery
	MinConcentration float64 `form:"min_concentration,default=25" binding:"gte=0,lte=100"`
	Limit            int     `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (m ApiHandler) getConcentratedFunds(c *gin.Context) {
	var req getConcentratedFundsRequest
	if !bindQuery(c, &req) {
		return
	}

	out, err := m.PortfolioOpportunityService.GetConcentrated(c.Request.Context(), nil, service.GetConcentratedInput{
		HoldingScope: req.scope(),
		Params: calculator.ConcentratedParams{
			MinConcentration: req.MinConcentration,
			Limit:            req.Limit,
		},
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
