package domain

type OpportunityType string

const (
	OpportunityNoIncrease          OpportunityType = "No SIP Increase"
	OpportunityFailedPayments      OpportunityType = "Failed SIP Transactions"
	OpportunityHighValueInactive   OpportunityType = "High-Value Inactive Client"
	OpportunityStagnantStepUp      OpportunityType = "Stagnant SIP Step-up"
	OpportunityStoppedPayments     OpportunityType = "Stopped SIP Payments"
	OpportunityInsuranceGap        OpportunityType = "Insurance Coverage Gap"
	OpportunityNoInsurance         OpportunityType = "No Insurance Coverage"
	OpportunityCoverageGap         OpportunityType = "Insurance Coverage Shortfall"
	OpportunityUnderperformingFund OpportunityType = "Underperforming Fund"
	OpportunityLowRatedFund        OpportunityType = "Low Rated Fund"
	OpportunityConcentratedHolding OpportunityType = "Concentrated Holding"
	OpportunityPortfolioReview     OpportunityType = "Portfolio Review"
)

// Opportunity is implemented by every classifier output so that mixed
// result sets can be grouped per client.
type Opportunity interface {
	Kind() OpportunityType
	Client() string
	Summary() string
	// Impact is the monetary value attached to acting on the opportunity
	Impact() float64
}

// ClientOpportunities is the per client view produced by the aggregator.
type ClientOpportunities struct {
	ClientID      string            `json:"clientID"`
	ClientName    *string           `json:"clientName"`
	Tags          []OpportunityType `json:"tags"`
	TotalImpact   float64           `json:"totalImpact"`
	Opportunities []Opportunity     `json:"opportunities"`
}
