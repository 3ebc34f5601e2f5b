package calculator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"wealthdesk/internal/domain"
	"wealthdesk/internal/util"
)

type UnderperformingParams struct {
	MinCurrentValue float64
	Limit           int
}

type LowRatedParams struct {
	MaxRating       float64
	MinCurrentValue float64
	Limit           int
}

type ConcentratedParams struct {
	MinConcentration float64
	Limit            int
}

func DefaultUnderperformingParams() UnderperformingParams {
	return UnderperformingParams{MinCurrentValue: 0, Limit: 100}
}

func DefaultLowRatedParams() LowRatedParams {
	return LowRatedParams{MaxRating: 3.0, MinCurrentValue: 0, Limit: 100}
}

func DefaultConcentratedParams() ConcentratedParams {
	return ConcentratedParams{MinConcentration: 25, Limit: 100}
}

// Underperforming flags holdings with any negative alpha or XIRR
// performance metric.
func Underperforming(holdings []domain.PortfolioHolding, params UnderperformingParams) []domain.FundOpportunity {
	out := []domain.FundOpportunity{}
	for _, h := range holdings {
		if h.CurrentValue < params.MinCurrentValue {
			continue
		}
		reasons := []string{}
		if v := h.ThreeYearAlpha; v != nil && *v < 0 {
			reasons = append(reasons, fmt.Sprintf("3Y alpha %.2f%%", *v))
		}
		if v := h.FiveYearAlpha; v != nil && *v < 0 {
			reasons = append(reasons, fmt.Sprintf("5Y alpha %.2f%%", *v))
		}
		if v := h.XirrPerformance; v != nil && *v < 0 {
			reasons = append(reasons, fmt.Sprintf("XIRR vs benchmark %.2f%%", *v))
		}
		if len(reasons) == 0 {
			continue
		}
		out = append(out, fundOpportunity(h, domain.OpportunityUnderperformingFund,
			fmt.Sprintf("Fund is underperforming: %s.", strings.Join(reasons, ", "))))
	}

	sortByCurrentValue(out)
	return capSlice(out, params.Limit)
}

// ParseRating reads the stored rating text as a number. Non numeric
// ratings are treated as absent.
func ParseRating(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return nil
	}
	return &f
}

func LowRated(holdings []domain.PortfolioHolding, params LowRatedParams) []domain.FundOpportunity {
	out := []domain.FundOpportunity{}
	for _, h := range holdings {
		rating := ParseRating(h.Rating)
		if rating == nil || *rating >= params.MaxRating || h.CurrentValue < params.MinCurrentValue {
			continue
		}
		o := fundOpportunity(h, domain.OpportunityLowRatedFund,
			fmt.Sprintf("Fund is rated %.1f, below the %.1f threshold. Consider switching to a higher rated scheme.", *rating, params.MaxRating))
		o.Rating = rating
		out = append(out, o)
	}

	sortByCurrentValue(out)
	return capSlice(out, params.Limit)
}

func Concentrated(holdings []domain.PortfolioHolding, params ConcentratedParams) []domain.FundOpportunity {
	out := []domain.FundOpportunity{}
	for _, h := range holdings {
		if h.PortfolioWeight < params.MinConcentration {
			continue
		}
		out = append(out, fundOpportunity(h, domain.OpportunityConcentratedHolding,
			fmt.Sprintf("%.1f%% of the portfolio sits in a single scheme. Consider diversifying.", h.PortfolioWeight)))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PortfolioWeight != out[j].PortfolioWeight {
			return out[i].PortfolioWeight > out[j].PortfolioWeight
		}
		return fundKey(out[i]) < fundKey(out[j])
	})
	return capSlice(out, params.Limit)
}

// CombineFundOpportunities merges the flat portfolio detectors. Each
// input is expected to already be capped at limit/3.
func CombineFundOpportunities(limit int, sets ...[]domain.FundOpportunity) []domain.FundOpportunity {
	out := []domain.FundOpportunity{}
	for _, set := range sets {
		out = append(out, set...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CurrentValue > out[j].CurrentValue
	})
	return capSlice(out, limit)
}

// PortfolioReview groups the schemes that trail their benchmark XIRR by
// client. Holdings whose client is not in clientsByID are skipped.
func PortfolioReview(holdings []domain.PortfolioHolding, clientsByID map[string]domain.Client) domain.PortfolioReviewResult {
	byClient := map[string]*domain.ReviewClient{}
	values := map[string][]float64{}
	for _, h := range holdings {
		if h.LiveXirr == nil || h.BenchmarkXirr == nil || *h.LiveXirr >= *h.BenchmarkXirr || h.CurrentValue <= 0 {
			continue
		}
		client, ok := clientsByID[h.ClientID]
		if !ok {
			continue
		}

		rc, ok := byClient[h.ClientID]
		if !ok {
			rc = &domain.ReviewClient{
				ClientID:        client.ClientID,
				ClientName:      client.Name,
				AgentExternalID: client.AgentExternalID,
				AgentName:       client.AgentName,
			}
			byClient[h.ClientID] = rc
		}
		rc.Schemes = append(rc.Schemes, domain.ReviewScheme{
			SchemeID:             h.SchemeID,
			SchemeName:           h.SchemeName,
			Category:             h.Category,
			AmcName:              h.AmcName,
			CurrentValue:         h.CurrentValue,
			PortfolioWeight:      h.PortfolioWeight,
			LiveXirr:             *h.LiveXirr,
			BenchmarkXirr:        *h.BenchmarkXirr,
			XirrUnderperformance: util.RoundTo(*h.BenchmarkXirr-*h.LiveXirr, 2),
		})
		values[h.ClientID] = append(values[h.ClientID], h.CurrentValue)
	}

	result := domain.PortfolioReviewResult{Clients: []domain.ReviewClient{}}
	for id, rc := range byClient {
		rc.TotalValueUnderperforming = util.SumMoney(values[id]...)
		rc.SchemeCount = len(rc.Schemes)
		sort.SliceStable(rc.Schemes, func(i, j int) bool {
			if rc.Schemes[i].XirrUnderperformance != rc.Schemes[j].XirrUnderperformance {
				return rc.Schemes[i].XirrUnderperformance > rc.Schemes[j].XirrUnderperformance
			}
			return rc.Schemes[i].SchemeID < rc.Schemes[j].SchemeID
		})
		result.Clients = append(result.Clients, *rc)
		result.TotalUnderperformingSchemes += rc.SchemeCount
	}

	sort.Slice(result.Clients, func(i, j int) bool {
		if result.Clients[i].TotalValueUnderperforming != result.Clients[j].TotalValueUnderperforming {
			return result.Clients[i].TotalValueUnderperforming > result.Clients[j].TotalValueUnderperforming
		}
		return result.Clients[i].ClientID < result.Clients[j].ClientID
	})

	totals := make([]float64, 0, len(result.Clients))
	for _, c := range result.Clients {
		totals = append(totals, c.TotalValueUnderperforming)
	}
	result.TotalClients = len(result.Clients)
	result.TotalValueUnderperforming = util.SumMoney(totals...)

	return result
}

func fundOpportunity(h domain.PortfolioHolding, kind domain.OpportunityType, description string) domain.FundOpportunity {
	return domain.FundOpportunity{
		ClientID:        h.ClientID,
		SchemeID:        h.SchemeID,
		SchemeName:      h.SchemeName,
		Category:        h.Category,
		AmcName:         h.AmcName,
		OpportunityType: kind,
		Description:     description,
		CurrentValue:    h.CurrentValue,
		PortfolioWeight: h.PortfolioWeight,
		ThreeYearAlpha:  h.ThreeYearAlpha,
		FiveYearAlpha:   h.FiveYearAlpha,
		XirrPerformance: h.XirrPerformance,
		Rating:          ParseRating(h.Rating),
	}
}

func sortByCurrentValue(in []domain.FundOpportunity) {
	sort.SliceStable(in, func(i, j int) bool {
		if in[i].CurrentValue != in[j].CurrentValue {
			return in[i].CurrentValue > in[j].CurrentValue
		}
		return fundKey(in[i]) < fundKey(in[j])
	})
}

func fundKey(o domain.FundOpportunity) string {
	return o.ClientID + "/" + o.SchemeID
}
