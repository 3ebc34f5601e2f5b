package service

import (
	"context"
	"fmt"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
)

type PortfolioOpportunityService interface {
	GetUnderperforming(ctx context.Context, tx repository.Queryer, input GetUnderperformingInput) ([]domain.FundOpportunity, error)
	GetLowRated(ctx context.Context, tx repository.Queryer, input GetLowRatedInput) ([]domain.FundOpportunity, error)
	GetConcentrated(ctx context.Context, tx repository.Queryer, input GetConcentratedInput) ([]domain.FundOpportunity, error)
	GetAllOpportunities(ctx context.Context, tx repository.Queryer, input GetAllFundOpportunitiesInput) ([]domain.FundOpportunity, error)
	GetPortfolioReview(ctx context.Context, tx repository.Queryer, input GetPortfolioReviewInput) (*domain.PortfolioReviewResult, error)
}

type HoldingScope struct {
	AgentExternalID *string
	ClientID        *string
}

type GetUnderperformingInput struct {
	HoldingScope
	Params calculator.UnderperformingParams
}

type GetLowRatedInput struct {
	HoldingScope
	Params calculator.LowRatedParams
}

type GetConcentratedInput struct {
	HoldingScope
	Params calculator.ConcentratedParams
}

type GetAllFundOpportunitiesInput struct {
	HoldingScope
	Limit int
}

type GetPortfolioReviewInput struct {
	AgentExternalID *string
}

type portfolioOpportunityServiceHandler struct {
	PortfolioHoldingRepository repository.PortfolioHoldingRepository
	UserRepository             repository.UserRepository
}

func NewPortfolioOpportunityService(
	portfolioHoldingRepository repository.PortfolioHoldingRepository,
	userRepository repository.UserRepository,
) PortfolioOpportunityService {
	return portfolioOpportunityServiceHandler{
		PortfolioHoldingRepository: portfolioHoldingRepository,
		UserRepository:             userRepository,
	}
}

func (h portfolioOpportunityServiceHandler) listHoldings(ctx context.Context, tx repository.Queryer, scope HoldingScope, minValue *float64) ([]domain.PortfolioHolding, error) {
	holdings, err := h.PortfolioHoldingRepository.List(ctx, tx, repository.PortfolioHoldingListFilter{
		ClientID:        scope.ClientID,
		AgentExternalID: scope.AgentExternalID,
		MinCurrentValue: minValue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio holdings: %w", err)
	}
	return holdings, nil
}

func positiveOrNil(f float64) *float64 {
	if f <= 0 {
		return nil
	}
	return &f
}

func (h portfolioOpportunityServiceHandler) GetUnderperforming(ctx context.Context, tx repository.Queryer, input GetUnderperformingInput) ([]domain.FundOpportunity, error) {
	holdings, err := h.listHoldings(ctx, tx, input.HoldingScope, positiveOrNil(input.Params.MinCurrentValue))
	if err != nil {
		return nil, err
	}
	return calculator.Underperforming(holdings, input.Params), nil
}

func (h portfolioOpportunityServiceHandler) GetLowRated(ctx context.Context, tx repository.Queryer, input GetLowRatedInput) ([]domain.FundOpportunity, error) {
	holdings, err := h.listHoldings(ctx, tx, input.HoldingScope, positiveOrNil(input.Params.MinCurrentValue))
	if err != nil {
		return nil, err
	}
	return calculator.LowRated(holdings, input.Params), nil
}

func (h portfolioOpportunityServiceHandler) GetConcentrated(ctx context.Context, tx repository.Queryer, input GetConcentratedInput) ([]domain.FundOpportunity, error) {
	holdings, err := h.listHoldings(ctx, tx, input.HoldingScope, nil)
	if err != nil {
		return nil, err
	}
	return calculator.Concentrated(holdings, input.Params), nil
}

func (h portfolioOpportunityServiceHandler) GetAllOpportunities(ctx context.Context, tx repository.Queryer, input GetAllFundOpportunitiesInput) ([]domain.FundOpportunity, error) {
	holdings, err := h.listHoldings(ctx, tx, input.HoldingScope, nil)
	if err != nil {
		return nil, err
	}

	per := perDetectorLimit(input.Limit)
	underperformingParams := calculator.DefaultUnderperformingParams()
	underperformingParams.Limit = per
	lowRatedParams := calculator.DefaultLowRatedParams()
	lowRatedParams.Limit = per
	concentratedParams := calculator.DefaultConcentratedParams()
	concentratedParams.Limit = per

	return calculator.CombineFundOpportunities(
		input.Limit,
		calculator.Underperforming(holdings, underperformingParams),
		calculator.LowRated(holdings, lowRatedParams),
		calculator.Concentrated(holdings, concentratedParams),
	), nil
}

// GetPortfolioReview groups holdings trailing their benchmark by client.
// Holdings are fetched first; only the clients they reference are loaded.
func (h portfolioOpportunityServiceHandler) GetPortfolioReview(ctx context.Context, tx repository.Queryer, input GetPortfolioReviewInput) (*domain.PortfolioReviewResult, error) {
	holdings, err := h.PortfolioHoldingRepository.List(ctx, tx, repository.PortfolioHoldingListFilter{
		AgentExternalID: input.AgentExternalID,
		XirrOnly:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio holdings: %w", err)
	}

	seen := map[string]struct{}{}
	clientIDs := []string{}
	for _, holding := range holdings {
		if _, ok := seen[holding.ClientID]; ok {
			continue
		}
		seen[holding.ClientID] = struct{}{}
		clientIDs = append(clientIDs, holding.ClientID)
	}

	clientsByID, err := h.UserRepository.GetMany(ctx, tx, clientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	result := calculator.PortfolioReview(holdings, clientsByID)
	return &result, nil
}
