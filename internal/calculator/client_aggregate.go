package calculator

import (
	"sort"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"
)

// GroupByClient collects opportunities of any kind per client. Clients
// with more distinct kinds of issue rank first, then by total impact.
func GroupByClient(opps []domain.Opportunity) []domain.ClientOpportunities {
	order := []string{}
	byClient := map[string]*domain.ClientOpportunities{}
	impacts := map[string][]float64{}
	kinds := map[string]map[domain.OpportunityType]struct{}{}

	for _, o := range opps {
		id := o.Client()
		c, ok := byClient[id]
		if !ok {
			c = &domain.ClientOpportunities{
				ClientID:      id,
				Tags:          []domain.OpportunityType{},
				Opportunities: []domain.Opportunity{},
			}
			byClient[id] = c
			kinds[id] = map[domain.OpportunityType]struct{}{}
			order = append(order, id)
		}
		if c.ClientName == nil {
			c.ClientName = clientName(o)
		}
		if _, seen := kinds[id][o.Kind()]; !seen {
			kinds[id][o.Kind()] = struct{}{}
			c.Tags = append(c.Tags, o.Kind())
		}
		c.Opportunities = append(c.Opportunities, o)
		impacts[id] = append(impacts[id], o.Impact())
	}

	out := make([]domain.ClientOpportunities, 0, len(order))
	for _, id := range order {
		c := byClient[id]
		c.TotalImpact = util.SumMoney(impacts[id]...)
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Tags) != len(out[j].Tags) {
			return len(out[i].Tags) > len(out[j].Tags)
		}
		if out[i].TotalImpact != out[j].TotalImpact {
			return out[i].TotalImpact > out[j].TotalImpact
		}
		return out[i].ClientID < out[j].ClientID
	})
	return out
}

func clientName(o domain.Opportunity) *string {
	switch v := o.(type) {
	case domain.StagnantSipOpportunity:
		return v.ClientName
	case domain.StoppedSipOpportunity:
		return v.ClientName
	case domain.CoverageGapOpportunity:
		return v.ClientName
	case domain.ReviewClient:
		return v.ClientName
	case domain.InsuranceOpportunity:
		if v.Name != "" && v.Name != "Unknown" {
			return &v.Name
		}
	}
	return nil
}

// FlattenBundles turns the dashboard bundles into a single opportunity
// list for GroupByClient.
func FlattenBundles(in domain.SummarizerInput) []domain.Opportunity {
	out := []domain.Opportunity{}
	for _, c := range in.PortfolioReview.Clients {
		out = append(out, c)
	}
	for _, o := range in.StagnantSips.Opportunities {
		out = append(out, o)
	}
	for _, o := range in.StoppedSips.Opportunities {
		out = append(out, o)
	}
	for _, o := range in.InsuranceGaps.Opportunities {
		out = append(out, o)
	}
	return out
}

// EstimateOpportunityValue is a local, deterministic estimate of the
// annual value across all bundles, used alongside the summarizer's own
// hero figure.
func EstimateOpportunityValue(in domain.SummarizerInput) float64 {
	values := []float64{}
	for _, o := range FlattenBundles(in) {
		values = append(values, o.Impact())
	}
	return util.RoundTo(util.SumMoney(values...), 2)
}

// TopReviewClients keeps the n clients with the most underperforming
// value. Aggregate counters are left untouched.
func TopReviewClients(r domain.PortfolioReviewResult, n int) domain.PortfolioReviewResult {
	clients := append([]domain.ReviewClient{}, r.Clients...)
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].TotalValueUnderperforming > clients[j].TotalValueUnderperforming
	})
	r.Clients = capSlice(clients, n)
	return r
}

// TopStagnantSips keeps the n largest stagnant SIPs by amount.
func TopStagnantSips(r domain.StagnantSipsResult, n int) domain.StagnantSipsResult {
	opps := append([]domain.StagnantSipOpportunity{}, r.Opportunities...)
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].CurrentSip > opps[j].CurrentSip
	})
	r.Opportunities = capSlice(opps, n)
	return r
}

// TopStoppedSips keeps the n clients with the largest lifetime investment.
func TopStoppedSips(r domain.StoppedSipsResult, n int) domain.StoppedSipsResult {
	opps := append([]domain.StoppedSipOpportunity{}, r.Opportunities...)
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].LifetimeSuccessAmount > opps[j].LifetimeSuccessAmount
	})
	r.Opportunities = capSlice(opps, n)
	return r
}

// TopCoverageGaps keeps the n largest coverage gaps by opportunity value.
func TopCoverageGaps(r domain.CoverageGapsResult, n int) domain.CoverageGapsResult {
	opps := append([]domain.CoverageGapOpportunity{}, r.Opportunities...)
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].OpportunityValue > opps[j].OpportunityValue
	})
	r.Opportunities = capSlice(opps, n)
	return r
}
