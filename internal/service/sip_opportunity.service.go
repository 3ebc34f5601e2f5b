package service

import (
	"context"
	"fmt"
	"time"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/repository"
)

// StatsFetchLimit bounds each detector when computing opportunity stats.
const StatsFetchLimit = 1000

// SipOpportunityService loads SIP records and runs the SIP detectors
// over them. Every method takes an optional tx; nil runs against the
// repository pool.
type SipOpportunityService interface {
	GetNoIncreaseOpportunities(ctx context.Context, tx repository.Queryer, input GetNoIncreaseInput) ([]domain.SipOpportunity, error)
	GetFailedSipOpportunities(ctx context.Context, tx repository.Queryer, input GetFailedSipsInput) ([]domain.SipOpportunity, error)
	GetHighValueInactive(ctx context.Context, tx repository.Queryer, input GetHighValueInactiveInput) ([]domain.SipOpportunity, error)
	GetAllOpportunities(ctx context.Context, tx repository.Queryer, input GetAllSipOpportunitiesInput) ([]domain.SipOpportunity, error)
	GetStats(ctx context.Context, tx repository.Queryer, input GetSipStatsInput) (*domain.SipOpportunityStats, error)

	GetStagnantStepUp(ctx context.Context, tx repository.Queryer, input GetStagnantStepUpInput) (*domain.StagnantSipsResult, error)
	GetStoppedPayments(ctx context.Context, tx repository.Queryer, input GetStoppedPaymentsInput) (*domain.StoppedSipsResult, error)

	ListAgents(ctx context.Context, tx repository.Queryer) ([]domain.Agent, error)
	GetClientSips(ctx context.Context, tx repository.Queryer, clientID string) ([]domain.SipRecord, error)
}

type GetNoIncreaseInput struct {
	AgentID *string
	Params  calculator.NoIncreaseParams
	Now     time.Time
}

type GetFailedSipsInput struct {
	AgentID *string
	Params  calculator.FailedParams
}

type GetHighValueInactiveInput struct {
	AgentID *string
	Params  calculator.HighValueParams
	Now     time.Time
}

type GetAllSipOpportunitiesInput struct {
	AgentID *string
	Limit   int
	Now     time.Time
}

type GetSipStatsInput struct {
	AgentID *string
	Now     time.Time
}

type GetStagnantStepUpInput struct {
	AgentID         *string
	AgentExternalID *string
	Params          calculator.StagnantStepUpParams
	Now             time.Time
}

type GetStoppedPaymentsInput struct {
	AgentExternalID *string
	Params          calculator.StoppedParams
	Now             time.Time
}

type sipOpportunityServiceHandler struct {
	SipRecordRepository repository.SipRecordRepository
}

func NewSipOpportunityService(sipRecordRepository repository.SipRecordRepository) SipOpportunityService {
	return sipOpportunityServiceHandler{
		SipRecordRepository: sipRecordRepository,
	}
}

func (h sipOpportunityServiceHandler) GetNoIncreaseOpportunities(ctx context.Context, tx repository.Queryer, input GetNoIncreaseInput) ([]domain.SipOpportunity, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID:    input.AgentID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	return calculator.NoRecentIncrease(records, input.Params, input.Now), nil
}

func (h sipOpportunityServiceHandler) GetFailedSipOpportunities(ctx context.Context, tx repository.Queryer, input GetFailedSipsInput) ([]domain.SipOpportunity, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID:         input.AgentID,
		MinFailedAmount: &input.Params.MinFailedAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	return calculator.FailedTransactions(records, input.Params), nil
}

func (h sipOpportunityServiceHandler) GetHighValueInactive(ctx context.Context, tx repository.Queryer, input GetHighValueInactiveInput) ([]domain.SipOpportunity, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID:          input.AgentID,
		MinSuccessAmount: &input.Params.MinInvestedAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	return calculator.HighValueInactive(records, input.Params, input.Now), nil
}

// perDetectorLimit splits a combined limit across the three per-SIP
// detectors, never dropping below one.
func perDetectorLimit(limit int) int {
	per := limit / 3
	if per < 1 {
		return 1
	}
	return per
}

// GetAllOpportunities runs the three per-SIP detectors over a single
// fetch and merges them.
func (h sipOpportunityServiceHandler) GetAllOpportunities(ctx context.Context, tx repository.Queryer, input GetAllSipOpportunitiesInput) ([]domain.SipOpportunity, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID: input.AgentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	per := perDetectorLimit(input.Limit)

	noIncreaseParams := calculator.DefaultNoIncreaseParams()
	noIncreaseParams.Limit = per
	failedParams := calculator.DefaultFailedParams()
	failedParams.Limit = per
	highValueParams := calculator.DefaultHighValueParams()
	highValueParams.Limit = per

	return calculator.CombineSipOpportunities(
		input.Limit,
		calculator.NoRecentIncrease(records, noIncreaseParams, input.Now),
		calculator.FailedTransactions(records, failedParams),
		calculator.HighValueInactive(records, highValueParams, input.Now),
	), nil
}

func (h sipOpportunityServiceHandler) GetStats(ctx context.Context, tx repository.Queryer, input GetSipStatsInput) (*domain.SipOpportunityStats, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID: input.AgentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	noIncreaseParams := calculator.DefaultNoIncreaseParams()
	noIncreaseParams.Limit = StatsFetchLimit
	failedParams := calculator.DefaultFailedParams()
	failedParams.Limit = StatsFetchLimit
	highValueParams := calculator.DefaultHighValueParams()
	highValueParams.Limit = StatsFetchLimit

	stats := calculator.SummarizeSipOpportunities(map[domain.OpportunityType][]domain.SipOpportunity{
		domain.OpportunityNoIncrease:        calculator.NoRecentIncrease(records, noIncreaseParams, input.Now),
		domain.OpportunityFailedPayments:    calculator.FailedTransactions(records, failedParams),
		domain.OpportunityHighValueInactive: calculator.HighValueInactive(records, highValueParams, input.Now),
	})
	return &stats, nil
}

func (h sipOpportunityServiceHandler) GetStagnantStepUp(ctx context.Context, tx repository.Queryer, input GetStagnantStepUpInput) (*domain.StagnantSipsResult, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentID:         input.AgentID,
		AgentExternalID: input.AgentExternalID,
		ActiveOnly:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	result := calculator.StagnantStepUp(records, input.Params, input.Now)
	return &result, nil
}

// GetStoppedPayments needs every mandate a client holds, active or not,
// to work out lifetime success counts, so only the agent filter is
// pushed down.
func (h sipOpportunityServiceHandler) GetStoppedPayments(ctx context.Context, tx repository.Queryer, input GetStoppedPaymentsInput) (*domain.StoppedSipsResult, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		AgentExternalID: input.AgentExternalID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sip records: %w", err)
	}

	summaries := calculator.GroupSipsByClient(records)
	result := calculator.StoppedPayments(summaries, input.Params, input.Now)
	return &result, nil
}

func (h sipOpportunityServiceHandler) ListAgents(ctx context.Context, tx repository.Queryer) ([]domain.Agent, error) {
	agents, err := h.SipRecordRepository.ListAgents(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (h sipOpportunityServiceHandler) GetClientSips(ctx context.Context, tx repository.Queryer, clientID string) ([]domain.SipRecord, error) {
	records, err := h.SipRecordRepository.List(ctx, tx, repository.SipRecordListFilter{
		ClientID: &clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get sips for client %s: %w", clientID, err)
	}
	return records, nil
}
