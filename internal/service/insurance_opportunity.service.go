package service

import (
	"context"
	"fmt"
	"time"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
)

type InsuranceOpportunityService interface {
	GetPremiumGaps(ctx context.Context, tx repository.Queryer, input GetPremiumGapsInput) ([]domain.InsuranceOpportunity, error)
	GetNoInsurance(ctx context.Context, tx repository.Queryer, input GetNoInsuranceInput) ([]domain.InsuranceOpportunity, error)
	GetCoverageGaps(ctx context.Context, tx repository.Queryer, input GetCoverageGapsInput) (*domain.CoverageGapsResult, error)
	GetStats(ctx context.Context, tx repository.Queryer, agentID *string) (*domain.InsuranceStats, error)
	GetClientInsurance(ctx context.Context, tx repository.Queryer, clientID string) ([]domain.InsuranceRecord, error)
}

type GetPremiumGapsInput struct {
	AgentID *string
	Params  calculator.PremiumGapParams
}

type GetNoInsuranceInput struct {
	AgentID *string
	Params  calculator.NoInsuranceParams
}

type GetCoverageGapsInput struct {
	AgentExternalID *string
	Params          calculator.CoverageGapParams
	Now             time.Time
}

type insuranceOpportunityServiceHandler struct {
	InsuranceRecordRepository repository.InsuranceRecordRepository
	SipRecordRepository       repository.SipRecordRepository
	UserRepository            repository.UserRepository
}

func NewInsuranceOpportunityService(
	insuranceRecordRepository repository.InsuranceRecordRepository,
	sipRecordRepository repository.SipRecordRepository,
	userRepository repository.UserRepository,
) InsuranceOpportunityService {
	return insuranceOpportunityServiceHandler{
		InsuranceRecordRepository: insuranceRecordRepository,
		SipRecordRepository:       sipRecordRepository,
		UserRepository:            userRepository,
	}
}

func (h insuranceOpportunityServiceHandler) GetPremiumGaps(ctx context.Context, tx repository.Queryer, input GetPremiumGapsInput) ([]domain.InsuranceOpportunity, error) {
	filter := repository.InsuranceRecordListFilter{
		AgentID:       input.AgentID,
		MinPremiumGap: &input.Params.MinPremiumGap,
	}
	if input.Params.MinScore > 0 {
		filter.MinScore = &input.Params.MinScore
	}

	records, err := h.InsuranceRecordRepository.List(ctx, tx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance records: %w", err)
	}

	return calculator.PremiumGaps(records, input.Params), nil
}

func (h insuranceOpportunityServiceHandler) GetNoInsurance(ctx context.Context, tx repository.Queryer, input GetNoInsuranceInput) ([]domain.InsuranceOpportunity, error) {
	sips, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID: input.AgentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	insured, err := h.InsuranceRecordRepository.ListInsuredClientIDs(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to get insured clients: %w", err)
	}

	return calculator.NoInsurance(sips, insured, input.Params), nil
}

// GetCoverageGaps loads clients above the fund value threshold together
// with their policies.
func (h insuranceOpportunityServiceHandler) GetCoverageGaps(ctx context.Context, tx repository.Queryer, input GetCoverageGapsInput) (*domain.CoverageGapsResult, error) {
	clients, err := h.UserRepository.List(ctx, tx, repository.UserListFilter{
		AgentExternalID: input.AgentExternalID,
		MinMfValue:      &input.Params.MinMfValue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}

	clientIDs := make([]string, 0, len(clients))
	for _, c := range clients {
		clientIDs = append(clientIDs, c.ClientID)
	}

	policies, err := h.InsuranceRecordRepository.List(ctx, tx, repository.InsuranceRecordListFilter{
		ClientIDs: clientIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance records: %w", err)
	}

	result := calculator.CoverageGaps(clients, policies, input.Params, input.Now)
	return &result, nil
}

func (h insuranceOpportunityServiceHandler) GetStats(ctx context.Context, tx repository.Queryer, agentID *string) (*domain.InsuranceStats, error) {
	stats, err := h.InsuranceRecordRepository.Stats(ctx, tx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance stats: %w", err)
	}
	return stats, nil
}

func (h insuranceOpportunityServiceHandler) GetClientInsurance(ctx context.Context, tx repository.Queryer, clientID string) ([]domain.InsuranceRecord, error) {
	records, err := h.InsuranceRecordRepository.List(ctx, tx, repository.InsuranceRecordListFilter{
		ClientID: &clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance for client %s: %w", clientID, err)
	}
	return records, nil
}
