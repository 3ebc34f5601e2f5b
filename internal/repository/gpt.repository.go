package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wealthdesk/internal/domain"

	"github.com/ayush6624/go-chatgpt"
	"github.com/go-playground/validator/v10"
)

var ErrSummarizerUnavailable = errors.New("dashboard summarizer is not configured")

// DashboardSummarizerRepository turns the four opportunity bundles into
// the advisor dashboard. Responses are untrusted and are validated
// before being returned.
type DashboardSummarizerRepository interface {
	Summarize(ctx context.Context, input domain.SummarizerInput) (*domain.DashboardPayload, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     chatgpt.ChatGPTModel
	Validate  *validator.Validate
}

// NewGptRepository returns a summarizer backed by the chat completion
// API. Without an api key every call fails with ErrSummarizerUnavailable.
func NewGptRepository(apiKey string, model string) (DashboardSummarizerRepository, error) {
	if apiKey == "" {
		return disabledSummarizer{}, nil
	}

	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	m := chatgpt.GPT4
	if model != "" {
		m = chatgpt.ChatGPTModel(model)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     m,
		Validate:  validator.New(),
	}, nil
}

type disabledSummarizer struct{}

func (disabledSummarizer) Summarize(context.Context, domain.SummarizerInput) (*domain.DashboardPayload, error) {
	return nil, ErrSummarizerUnavailable
}

const dashboardPrompt = `
You are a wealth intelligence engine for a mutual fund and insurance advisor. You receive four datasets about the advisor's clients and must return a single JSON document describing the advisor dashboard.

Datasets:
1. portfolioReview: clients holding schemes whose live XIRR trails the benchmark
2. stagnantSips: active SIPs that have never had a step-up configured
3. stoppedSips: clients with an active SIP mandate but no successful payment for over two months
4. insuranceGaps: clients whose premiums fall short of what their age and fund value suggest

Hero metric (total_opportunity_value), in rupees, is the sum of:
- stopped SIPs: activeMonthlyAmount * 12
- stagnant SIPs: 10% of currentSip * 12
- insurance: opportunityValue
- portfolio: 1% of totalValueUnderperforming

Focus clients:
- group everything by client id
- a client with several kinds of issue outranks a client with one
- return at most 10 clients, highest value first

Write a one sentence executive summary for the dashboard header and a short pitch hook (two lines at most) for each client. Format rupee strings in lakhs and crores, e.g. "₹15.2 L" or "₹1.1 Cr".

Respond with JSON only, no prose and no code fences, matching exactly:
{
  "dashboard_hero": {
    "total_opportunity_value": number,
    "formatted_value": string,
    "executive_summary": string,
    "opportunity_breakdown": {"insurance": string, "sip_recovery": string, "portfolio_rebalancing": string}
  },
  "top_focus_clients": [
    {
      "user_id": string,
      "client_name": string,
      "total_impact_value": string,
      "tags": [string],
      "pitch_hook": string,
      "drill_down_details": {
        "portfolio_review": {"has_issue": boolean, "schemes": [{"name": string, "xirr_lag": number}]},
        "sip_health": {
          "stopped_sips": [{"scheme": string, "days_stopped": number, "amount": number}],
          "stagnant_sips": [{"scheme": string, "years_running": number}]
        },
        "insurance": {"has_gap": boolean, "gap_amount": number, "wealth_band": string}
      }
    }
  ]
}
`

func (h gptRepositoryHandler) Summarize(ctx context.Context, input domain.SummarizerInput) (*domain.DashboardPayload, error) {
	datasets, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summarizer input: %w", err)
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: h.Model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: dashboardPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: string(datasets),
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("dashboard completion returned no choices")
	}

	return parseDashboardResponse(h.Validate, res.Choices[0].Message.Content)
}

type dashboardResponse struct {
	DashboardHero   *dashboardHero        `json:"dashboard_hero" validate:"required"`
	TopFocusClients []dashboardFocusEntry `json:"top_focus_clients" validate:"max=10,dive"`
}

type dashboardHero struct {
	TotalOpportunityValue json.Number `json:"total_opportunity_value" validate:"required"`
	FormattedValue        string      `json:"formatted_value" validate:"required"`
	ExecutiveSummary      string      `json:"executive_summary" validate:"required"`
	OpportunityBreakdown  struct {
		Insurance            string `json:"insurance"`
		SipRecovery          string `json:"sip_recovery"`
		PortfolioRebalancing string `json:"portfolio_rebalancing"`
	} `json:"opportunity_breakdown"`
}

type dashboardFocusEntry struct {
	UserID           string   `json:"user_id" validate:"required"`
	ClientName       string   `json:"client_name"`
	TotalImpactValue string   `json:"total_impact_value"`
	Tags             []string `json:"tags"`
	PitchHook        string   `json:"pitch_hook"`
	DrillDownDetails struct {
		PortfolioReview struct {
			HasIssue bool `json:"has_issue"`
			Schemes  []struct {
				Name    string      `json:"name"`
				XirrLag json.Number `json:"xirr_lag"`
			} `json:"schemes"`
		} `json:"portfolio_review"`
		SipHealth struct {
			StoppedSips []struct {
				Scheme      string      `json:"scheme"`
				DaysStopped json.Number `json:"days_stopped"`
				Amount      json.Number `json:"amount"`
			} `json:"stopped_sips"`
			StagnantSips []struct {
				Scheme       string      `json:"scheme"`
				YearsRunning json.Number `json:"years_running"`
			} `json:"stagnant_sips"`
		} `json:"sip_health"`
		Insurance struct {
			HasGap     bool        `json:"has_gap"`
			GapAmount  json.Number `json:"gap_amount"`
			WealthBand string      `json:"wealth_band"`
		} `json:"insurance"`
	} `json:"drill_down_details"`
}

// parseDashboardResponse decodes and validates raw completion text.
func parseDashboardResponse(v *validator.Validate, raw string) (*domain.DashboardPayload, error) {
	resp := dashboardResponse{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard response: %w", err)
	}
	if err := v.Struct(resp); err != nil {
		return nil, fmt.Errorf("invalid dashboard response: %w", err)
	}

	total, err := resp.DashboardHero.TotalOpportunityValue.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid total opportunity value: %w", err)
	}
	if err := v.Var(total, "gte=0"); err != nil {
		return nil, fmt.Errorf("invalid total opportunity value %f: %w", total, err)
	}

	hero := resp.DashboardHero
	out := domain.DashboardPayload{
		HeroMetrics: domain.HeroMetrics{
			TotalOpportunityValue: total,
			FormattedValue:        hero.FormattedValue,
			ExecutiveSummary:      hero.ExecutiveSummary,
			Breakdown: domain.DashboardBreakdown{
				Insurance:            hero.OpportunityBreakdown.Insurance,
				SipRecovery:          hero.OpportunityBreakdown.SipRecovery,
				PortfolioRebalancing: hero.OpportunityBreakdown.PortfolioRebalancing,
			},
		},
		TopClients: make([]domain.FocusClient, 0, len(resp.TopFocusClients)),
	}

	for _, c := range resp.TopFocusClients {
		fc := domain.FocusClient{
			ClientID:    c.UserID,
			ClientName:  c.ClientName,
			ImpactValue: c.TotalImpactValue,
			Tags:        c.Tags,
			PitchHook:   c.PitchHook,
		}
		if fc.Tags == nil {
			fc.Tags = []string{}
		}

		details := c.DrillDownDetails
		fc.DrillDown.PortfolioReview.HasIssue = details.PortfolioReview.HasIssue
		fc.DrillDown.PortfolioReview.Schemes = []domain.SchemeLag{}
		for _, s := range details.PortfolioReview.Schemes {
			fc.DrillDown.PortfolioReview.Schemes = append(fc.DrillDown.PortfolioReview.Schemes, domain.SchemeLag{
				Name:    s.Name,
				XirrLag: numberOrZero(s.XirrLag),
			})
		}
		fc.DrillDown.SipHealth.StoppedSips = []domain.StoppedSipDetail{}
		for _, s := range details.SipHealth.StoppedSips {
			fc.DrillDown.SipHealth.StoppedSips = append(fc.DrillDown.SipHealth.StoppedSips, domain.StoppedSipDetail{
				Scheme:      s.Scheme,
				DaysStopped: int(numberOrZero(s.DaysStopped)),
				Amount:      numberOrZero(s.Amount),
			})
		}
		fc.DrillDown.SipHealth.StagnantSips = []domain.StagnantSipDetail{}
		for _, s := range details.SipHealth.StagnantSips {
			fc.DrillDown.SipHealth.StagnantSips = append(fc.DrillDown.SipHealth.StagnantSips, domain.StagnantSipDetail{
				Scheme:       s.Scheme,
				YearsRunning: numberOrZero(s.YearsRunning),
			})
		}
		fc.DrillDown.Insurance.HasGap = details.Insurance.HasGap
		fc.DrillDown.Insurance.GapAmount = numberOrZero(details.Insurance.GapAmount)
		fc.DrillDown.Insurance.WealthBand = details.Insurance.WealthBand

		out.TopClients = append(out.TopClients, fc)
	}

	return &out, nil
}

func numberOrZero(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

// stripCodeFences removes a surrounding ``` or ```json fence, which chat
// models add despite being asked not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
