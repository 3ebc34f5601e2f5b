package domain

// InsuranceOpportunity is produced by the premium gap and the no policy
// detectors.
type InsuranceOpportunity struct {
	ClientID                string          `json:"userID"`
	Name                    string          `json:"name"`
	AgentID                 string          `json:"agentID"`
	AgentExternalID         string          `json:"agentExternalID"`
	OpportunityType         OpportunityType `json:"opportunityType"`
	Description             string          `json:"opportunityDescription"`
	WealthBand              string          `json:"wealthBand"`
	Age                     *int            `json:"age"`
	MfCurrentValue          float64         `json:"mfCurrentValue"`
	TotalPremium            float64         `json:"totalPremium"`
	BaselineExpectedPremium float64         `json:"baselineExpectedPremium"`
	PremiumGap              float64         `json:"premiumGap"`
	OpportunityScore        int             `json:"opportunityScore"`
	CoveredTypes            []InsuranceType `json:"coveredTypes"`
	MissingCoverageTypes    []InsuranceType `json:"missingCoverageTypes"`
}

func (o InsuranceOpportunity) Kind() OpportunityType { return o.OpportunityType }
func (o InsuranceOpportunity) Client() string        { return o.ClientID }
func (o InsuranceOpportunity) Summary() string       { return o.Description }
func (o InsuranceOpportunity) Impact() float64       { return o.PremiumGap }

// CoverageGapOpportunity is the age aware expected premium comparison.
type CoverageGapOpportunity struct {
	ClientID            string          `json:"userID"`
	ClientName          *string         `json:"userName"`
	AgentID             *string         `json:"agentID"`
	AgentExternalID     *string         `json:"agentExternalID"`
	AgentName           *string         `json:"agentName"`
	Age                 int             `json:"age"`
	MfCurrentValue      float64         `json:"mfCurrentValue"`
	ExpectedPremiumRate float64         `json:"expectedPremiumRate"`
	ExpectedPremium     float64         `json:"expectedPremium"`
	TotalPremium        float64         `json:"totalPremium"`
	PolicyCount         int             `json:"policyCount"`
	CoveredTypes        []InsuranceType `json:"coveredTypes"`
	InsuranceStatus     CoverageStatus  `json:"insuranceStatus"`
	OpportunityValue    float64         `json:"opportunityValue"`
	CoveragePercentage  float64         `json:"coveragePercentage"`
	Description         string          `json:"opportunityDescription"`
}

func (o CoverageGapOpportunity) Kind() OpportunityType { return OpportunityCoverageGap }
func (o CoverageGapOpportunity) Client() string        { return o.ClientID }
func (o CoverageGapOpportunity) Summary() string       { return o.Description }
func (o CoverageGapOpportunity) Impact() float64       { return o.OpportunityValue }

type CoverageGapsResult struct {
	TotalOpportunities    int                      `json:"totalOpportunities"`
	NoInsuranceCount      int                      `json:"noInsuranceCount"`
	LowCoverageCount      int                      `json:"lowCoverageCount"`
	TotalOpportunityValue float64                  `json:"totalOpportunityValue"`
	TotalMfValueAtRisk    float64                  `json:"totalMfValueAtRisk"`
	AverageAge            *float64                 `json:"averageAge"`
	Opportunities         []CoverageGapOpportunity `json:"opportunities"`
}
