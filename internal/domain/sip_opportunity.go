package domain

import "time"

// SipOpportunity is the per-SIP result shared by the no-increase, failed
// payment and high value inactive detectors.
type SipOpportunity struct {
	ClientID          string          `json:"userID"`
	SipID             string          `json:"sipID"`
	AgentID           string          `json:"agentID"`
	AgentExternalID   string          `json:"agentExternalID"`
	OpportunityType   OpportunityType `json:"opportunityType"`
	Description       string          `json:"opportunityDescription"`
	CurrentSipAmount  float64         `json:"currentSipAmount"`
	PotentialIncrease float64         `json:"potentialIncrease"`
	LastActivityDate  *time.Time      `json:"lastActivityDate"`
	DaysSinceActivity *int            `json:"daysSinceActivity"`
	RiskScore         float64         `json:"riskScore"`
	TotalInvested     float64         `json:"totalInvested"`
	FailedAmount      *float64        `json:"failedAmount,omitempty"`
	FailureRate       *float64        `json:"failureRate,omitempty"`

	MonthsSinceLastSuccess *int `json:"monthsSinceLastSuccess,omitempty"`
	ExpectedIncrements     *int `json:"expectedIncrements,omitempty"`
}

func (o SipOpportunity) Kind() OpportunityType { return o.OpportunityType }
func (o SipOpportunity) Client() string        { return o.ClientID }
func (o SipOpportunity) Summary() string       { return o.Description }
func (o SipOpportunity) Impact() float64       { return o.PotentialIncrease }

// CombinedScore orders the combined SIP view.
func (o SipOpportunity) CombinedScore() float64 {
	return o.RiskScore + o.PotentialIncrease/10000
}

type StagnantSipOpportunity struct {
	ClientID         string    `json:"userID"`
	ClientName       *string   `json:"userName"`
	AgentID          *string   `json:"agentID"`
	AgentExternalID  *string   `json:"agentExternalID"`
	AgentName        *string   `json:"agentName"`
	SipID            string    `json:"sipID"`
	SchemeNames      []string  `json:"schemeName"`
	CurrentSip       float64   `json:"currentSip"`
	MonthsStagnant   int       `json:"monthsStagnant"`
	CreatedAt        time.Time `json:"createdAt"`
	CurrentSipStatus SipStatus `json:"currentSipStatus"`
	IncrementAmount  *float64  `json:"incrementAmount"`
	IncrementPercent *float64  `json:"incrementPercentage"`
	SuccessAmount    float64   `json:"successAmount"`
	Description      string    `json:"opportunityDescription"`
}

// stagnant step-ups are valued at a 10% step-up held for a year
const StagnantStepUpAssumedRate = 0.10

func (o StagnantSipOpportunity) Kind() OpportunityType { return OpportunityStagnantStepUp }
func (o StagnantSipOpportunity) Client() string        { return o.ClientID }
func (o StagnantSipOpportunity) Summary() string       { return o.Description }
func (o StagnantSipOpportunity) Impact() float64 {
	return o.CurrentSip * StagnantStepUpAssumedRate * 12
}

type StagnantSipsResult struct {
	TotalStagnantSips    int                      `json:"totalStagnantSips"`
	TotalClientsAffected int                      `json:"totalClientsAffected"`
	TotalSipValue        float64                  `json:"totalSipValue"`
	Opportunities        []StagnantSipOpportunity `json:"opportunities"`
}

// ClientSipSummary is a client's SIP book rolled up across every
// non-deleted mandate.
type ClientSipSummary struct {
	ClientID              string
	ClientName            *string
	AgentID               *string
	AgentExternalID       *string
	AgentName             *string
	SchemeNames           []string
	TotalSips             int
	ActiveSips            int
	MaxSuccessCount       int
	HasAnyActive          bool
	LastSuccessDate       *time.Time
	LifetimeSuccessAmount float64
	ActiveMonthlyAmount   float64
}

type StoppedSipOpportunity struct {
	ClientID              string    `json:"userID"`
	ClientName            *string   `json:"userName"`
	AgentID               *string   `json:"agentID"`
	AgentExternalID       *string   `json:"agentExternalID"`
	AgentName             *string   `json:"agentName"`
	SchemeNames           []string  `json:"schemeNames"`
	TotalSips             int       `json:"totalSips"`
	ActiveSips            int       `json:"activeSips"`
	MaxSuccessCount       int       `json:"maxSuccessCount"`
	LifetimeSuccessAmount float64   `json:"lifetimeSuccessAmount"`
	ActiveMonthlyAmount   float64   `json:"activeMonthlyAmount"`
	LastSuccessDate       time.Time `json:"lastSuccessDate"`
	DaysSinceAnySuccess   int       `json:"daysSinceAnySuccess"`
	MonthsSinceSuccess    int       `json:"monthsSinceSuccess"`
	Description           string    `json:"opportunityDescription"`
}

func (o StoppedSipOpportunity) Kind() OpportunityType { return OpportunityStoppedPayments }
func (o StoppedSipOpportunity) Client() string        { return o.ClientID }
func (o StoppedSipOpportunity) Summary() string       { return o.Description }

// Impact is the annualised value of the mandates that stopped paying.
func (o StoppedSipOpportunity) Impact() float64 { return o.ActiveMonthlyAmount * 12 }

type StoppedSipsResult struct {
	TotalStoppedClients     int                     `json:"totalStoppedClients"`
	TotalActiveSipsAffected int                     `json:"totalActiveSipsAffected"`
	TotalLifetimeInvestment float64                 `json:"totalLifetimeInvestment"`
	AverageDaysInactive     *float64                `json:"averageDaysInactive"`
	Opportunities           []StoppedSipOpportunity `json:"opportunities"`
}

type OpportunityCategoryStats struct {
	Count            int     `json:"count"`
	PotentialRevenue float64 `json:"potentialRevenue"`
}

type SipOpportunityStats struct {
	TotalOpportunities    int                                 `json:"totalOpportunities"`
	TotalPotentialRevenue float64                             `json:"totalPotentialRevenue"`
	BreakdownByType       map[string]OpportunityCategoryStats `json:"breakdownByType"`
}
