package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wealthdesk/internal/calculator"
	"wealthdesk/internal/domain"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/service"

	"golang.org/x/sync/errgroup"
)

// DashboardFetchLimit caps each classifier before truncation.
const DashboardFetchLimit = 1000

// how much of each bundle the summarizer gets to see
const (
	dashboardReviewClients = 10
	dashboardStagnantSips  = 15
	dashboardStoppedSips   = 15
	dashboardCoverageGaps  = 20
)

const defaultSummarizerTimeout = 120 * time.Second

type DashboardHandler struct {
	ReadSessionProvider           repository.ReadSessionProvider
	SipOpportunityService         service.SipOpportunityService
	InsuranceOpportunityService   service.InsuranceOpportunityService
	PortfolioOpportunityService   service.PortfolioOpportunityService
	DashboardSummarizerRepository repository.DashboardSummarizerRepository

	SummarizerTimeout time.Duration
	// Cache is optional; without it every call recomputes
	Cache *DashboardCache
}

type GetDashboardInput struct {
	AgentExternalID *string
	AgentID         *string
	// Refresh bypasses the cache
	Refresh bool
	Now     time.Time
}

// GetDashboard builds the advisor dashboard: the four opportunity
// bundles are fetched concurrently, truncated, and handed to the
// summarizer. A summarizer failure of any kind yields the fallback
// payload; only data access errors are returned.
func (h DashboardHandler) GetDashboard(ctx context.Context, input GetDashboardInput) (*domain.Dashboard, error) {
	lg := logger.FromContext(ctx)
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}

	cacheKey := DashboardCacheKey(input.AgentExternalID, input.AgentID)
	if h.Cache != nil && !input.Refresh {
		if cached, ok := h.Cache.Get(cacheKey); ok {
			lg.Debugw("serving cached dashboard", "key", cacheKey)
			return cached, nil
		}
	}

	profile, endProfile := domain.NewProfile()
	full, err := h.fetchBundles(ctx, profile, bundleScope{
		AgentExternalID: input.AgentExternalID,
		AgentID:         input.AgentID,
		Now:             input.Now,
	})
	if err != nil {
		return nil, err
	}

	truncated := domain.SummarizerInput{
		PortfolioReview: calculator.TopReviewClients(full.PortfolioReview, dashboardReviewClients),
		StagnantSips:    calculator.TopStagnantSips(full.StagnantSips, dashboardStagnantSips),
		StoppedSips:     calculator.TopStoppedSips(full.StoppedSips, dashboardStoppedSips),
		InsuranceGaps:   calculator.TopCoverageGaps(full.InsuranceGaps, dashboardCoverageGaps),
	}

	usedFallback := false
	_, endSpan := profile.StartSpan("summarize")
	payload, err := h.summarize(ctx, truncated)
	endSpan()
	if err == nil {
		err = validatePayload(payload)
	}
	if err != nil {
		if errors.Is(err, repository.ErrSummarizerUnavailable) {
			lg.Infow("summarizer not configured, using fallback dashboard")
		} else {
			lg.Warnw("failed to summarize dashboard, using fallback", "error", err)
		}
		fallback := domain.FallbackDashboardPayload()
		payload = &fallback
		usedFallback = true
	}

	dashboard := &domain.Dashboard{
		DashboardPayload: *payload,
		Metadata:         buildMetadata(input, *full, truncated, usedFallback),
	}

	if h.Cache != nil && !usedFallback {
		h.Cache.Set(cacheKey, dashboard)
	}

	endProfile()
	lg.Debugw("built dashboard", "key", cacheKey, "usedFallback", usedFallback, "timingsMs", profile.Timings())

	return dashboard, nil
}

type GetFocusClientsInput struct {
	AgentExternalID *string
	AgentID         *string
	Limit           int
	Now             time.Time
}

// GetFocusClients ranks clients across every opportunity bundle without
// going through the summarizer.
func (h DashboardHandler) GetFocusClients(ctx context.Context, input GetFocusClientsInput) ([]domain.ClientOpportunities, error) {
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}

	profile, _ := domain.NewProfile()
	bundles, err := h.fetchBundles(ctx, profile, bundleScope{
		AgentExternalID: input.AgentExternalID,
		AgentID:         input.AgentID,
		Now:             input.Now,
	})
	if err != nil {
		return nil, err
	}

	clients := calculator.GroupByClient(calculator.FlattenBundles(*bundles))
	if input.Limit > 0 && len(clients) > input.Limit {
		clients = clients[:input.Limit]
	}
	return clients, nil
}

type bundleScope struct {
	AgentExternalID *string
	AgentID         *string
	Now             time.Time
}

// fetchBundles runs the four dashboard classifiers concurrently. Each
// fetch gets its own read session so no connection is shared between
// goroutines. The first failure cancels the rest.
func (h DashboardHandler) fetchBundles(ctx context.Context, profile *domain.Profile, scope bundleScope) (*domain.SummarizerInput, error) {
	out := domain.SummarizerInput{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, end := profile.StartSpan("portfolio_review")
		defer end()
		return h.withReadSession(gctx, func(tx repository.Queryer) error {
			result, err := h.PortfolioOpportunityService.GetPortfolioReview(gctx, tx, service.GetPortfolioReviewInput{
				AgentExternalID: scope.AgentExternalID,
			})
			if err != nil {
				return fmt.Errorf("failed to get portfolio review: %w", err)
			}
			out.PortfolioReview = *result
			return nil
		})
	})

	g.Go(func() error {
		_, end := profile.StartSpan("stagnant_sips")
		defer end()
		return h.withReadSession(gctx, func(tx repository.Queryer) error {
			params := calculator.DefaultStagnantStepUpParams()
			params.Limit = DashboardFetchLimit
			result, err := h.SipOpportunityService.GetStagnantStepUp(gctx, tx, service.GetStagnantStepUpInput{
				AgentID:         scope.AgentID,
				AgentExternalID: scope.AgentExternalID,
				Params:          params,
				Now:             scope.Now,
			})
			if err != nil {
				return fmt.Errorf("failed to get stagnant sips: %w", err)
			}
			out.StagnantSips = *result
			return nil
		})
	})

	g.Go(func() error {
		_, end := profile.StartSpan("stopped_sips")
		defer end()
		return h.withReadSession(gctx, func(tx repository.Queryer) error {
			params := calculator.DefaultStoppedParams()
			params.Limit = DashboardFetchLimit
			result, err := h.SipOpportunityService.GetStoppedPayments(gctx, tx, service.GetStoppedPaymentsInput{
				AgentExternalID: scope.AgentExternalID,
				Params:          params,
				Now:             scope.Now,
			})
			if err != nil {
				return fmt.Errorf("failed to get stopped sips: %w", err)
			}
			out.StoppedSips = *result
			return nil
		})
	})

	g.Go(func() error {
		_, end := profile.StartSpan("insurance_gaps")
		defer end()
		return h.withReadSession(gctx, func(tx repository.Queryer) error {
			params := calculator.DefaultCoverageGapParams()
			params.Limit = DashboardFetchLimit
			result, err := h.InsuranceOpportunityService.GetCoverageGaps(gctx, tx, service.GetCoverageGapsInput{
				AgentExternalID: scope.AgentExternalID,
				Params:          params,
				Now:             scope.Now,
			})
			if err != nil {
				return fmt.Errorf("failed to get insurance gaps: %w", err)
			}
			out.InsuranceGaps = *result
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h DashboardHandler) withReadSession(ctx context.Context, fn func(tx repository.Queryer) error) error {
	session, err := h.ReadSessionProvider.Begin(ctx)
	if err != nil {
		return err
	}
	defer session.Rollback()

	return fn(session)
}

type summaryResult struct {
	payload *domain.DashboardPayload
	err     error
}

// summarize makes a single bounded attempt. Panics inside the summarizer
// are turned into errors.
func (h DashboardHandler) summarize(ctx context.Context, input domain.SummarizerInput) (*domain.DashboardPayload, error) {
	timeout := h.SummarizerTimeout
	if timeout <= 0 {
		timeout = defaultSummarizerTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan summaryResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- summaryResult{err: fmt.Errorf("summarizer panicked: %v", r)}
			}
		}()
		payload, err := h.DashboardSummarizerRepository.Summarize(ctx, input)
		ch <- summaryResult{payload: payload, err: err}
	}()

	select {
	case res := <-ch:
		return res.payload, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("summarizer timed out after %s: %w", timeout, ctx.Err())
	}
}

func validatePayload(p *domain.DashboardPayload) error {
	if p == nil {
		return fmt.Errorf("summarizer returned no payload")
	}
	if p.HeroMetrics.TotalOpportunityValue < 0 {
		return fmt.Errorf("negative total opportunity value %f", p.HeroMetrics.TotalOpportunityValue)
	}
	if len(p.TopClients) > domain.MaxFocusClients {
		return fmt.Errorf("summarizer returned %d focus clients, max is %d", len(p.TopClients), domain.MaxFocusClients)
	}
	if p.TopClients == nil {
		p.TopClients = []domain.FocusClient{}
	}
	return nil
}

func buildMetadata(input GetDashboardInput, full, truncated domain.SummarizerInput, usedFallback bool) domain.DashboardMetadata {
	focus := len(calculator.GroupByClient(calculator.FlattenBundles(truncated)))
	if focus > domain.MaxFocusClients {
		focus = domain.MaxFocusClients
	}

	return domain.DashboardMetadata{
		AgentExternalID: input.AgentExternalID,
		AgentID:         input.AgentID,
		GeneratedAt:     input.Now,
		UsedFallback:    usedFallback,
		PortfolioReview: domain.CategoryCounts{
			Total:    full.PortfolioReview.TotalClients,
			Analyzed: len(truncated.PortfolioReview.Clients),
		},
		StagnantSips: domain.CategoryCounts{
			Total:    full.StagnantSips.TotalStagnantSips,
			Analyzed: len(truncated.StagnantSips.Opportunities),
		},
		StoppedSips: domain.CategoryCounts{
			Total:    full.StoppedSips.TotalStoppedClients,
			Analyzed: len(truncated.StoppedSips.Opportunities),
		},
		InsuranceGaps: domain.CategoryCounts{
			Total:    full.InsuranceGaps.TotalOpportunities,
			Analyzed: len(truncated.InsuranceGaps.Opportunities),
		},
		EstimatedOpportunityValue: calculator.EstimateOpportunityValue(truncated),
		FocusClientCount:          focus,
	}
}
