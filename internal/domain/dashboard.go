package domain

import "time"

type DashboardBreakdown struct {
	Insurance            string `json:"insurance"`
	SipRecovery          string `json:"sipRecovery"`
	PortfolioRebalancing string `json:"portfolioRebalancing"`
}

type HeroMetrics struct {
	TotalOpportunityValue float64            `json:"totalOpportunityValue"`
	FormattedValue        string             `json:"formattedValue"`
	ExecutiveSummary      string             `json:"executiveSummary"`
	Breakdown             DashboardBreakdown `json:"breakdown"`
}

type SchemeLag struct {
	Name    string  `json:"name"`
	XirrLag float64 `json:"xirrLag"`
}

type StoppedSipDetail struct {
	Scheme      string  `json:"scheme"`
	DaysStopped int     `json:"daysStopped"`
	Amount      float64 `json:"amount"`
}

type StagnantSipDetail struct {
	Scheme       string  `json:"scheme"`
	YearsRunning float64 `json:"yearsRunning"`
}

type DrillDown struct {
	PortfolioReview struct {
		HasIssue bool        `json:"hasIssue"`
		Schemes  []SchemeLag `json:"schemes"`
	} `json:"portfolioReview"`
	SipHealth struct {
		StoppedSips  []StoppedSipDetail  `json:"stoppedSips"`
		StagnantSips []StagnantSipDetail `json:"stagnantSips"`
	} `json:"sipHealth"`
	Insurance struct {
		HasGap     bool    `json:"hasGap"`
		GapAmount  float64 `json:"gapAmount"`
		WealthBand string  `json:"wealthBand"`
	} `json:"insurance"`
}

type FocusClient struct {
	ClientID    string    `json:"clientID"`
	ClientName  string    `json:"clientName"`
	ImpactValue string    `json:"impactValue"`
	Tags        []string  `json:"tags"`
	PitchHook   string    `json:"pitchHook"`
	DrillDown   DrillDown `json:"drillDown"`
}

// DashboardPayload is what the summarizer produces.
type DashboardPayload struct {
	HeroMetrics HeroMetrics   `json:"heroMetrics"`
	TopClients  []FocusClient `json:"topClients"`
}

// MaxFocusClients bounds the number of clients the summarizer may return
const MaxFocusClients = 10

// FallbackDashboardPayload is returned whenever the summarizer cannot
// produce a usable payload.
func FallbackDashboardPayload() DashboardPayload {
	return DashboardPayload{
		HeroMetrics: HeroMetrics{
			TotalOpportunityValue: 0,
			FormattedValue:        "Calculating...",
			ExecutiveSummary:      "AI is analyzing your client data. Please refresh shortly.",
			Breakdown: DashboardBreakdown{
				Insurance:            "0",
				SipRecovery:          "0",
				PortfolioRebalancing: "0",
			},
		},
		TopClients: []FocusClient{},
	}
}

type CategoryCounts struct {
	Total    int `json:"total"`
	Analyzed int `json:"analyzed"`
}

type DashboardMetadata struct {
	AgentExternalID           *string        `json:"agentExternalID"`
	AgentID                   *string        `json:"agentID"`
	GeneratedAt               time.Time      `json:"generatedAt"`
	UsedFallback              bool           `json:"usedFallback"`
	PortfolioReview           CategoryCounts `json:"portfolioReview"`
	StagnantSips              CategoryCounts `json:"stagnantSips"`
	StoppedSips               CategoryCounts `json:"stoppedSips"`
	InsuranceGaps             CategoryCounts `json:"insuranceGaps"`
	EstimatedOpportunityValue float64        `json:"estimatedOpportunityValue"`
	FocusClientCount          int            `json:"focusClientCount"`
}

type Dashboard struct {
	DashboardPayload
	Metadata DashboardMetadata `json:"metadata"`
}

// SummarizerInput holds the truncated bundles handed to the summarizer
// together with their untruncated counters.
type SummarizerInput struct {
	PortfolioReview PortfolioReviewResult `json:"portfolioReview"`
	StagnantSips    StagnantSipsResult    `json:"stagnantSips"`
	StoppedSips     StoppedSipsResult     `json:"stoppedSips"`
	InsuranceGaps   CoverageGapsResult    `json:"insuranceGaps"`
}
