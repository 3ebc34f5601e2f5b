package domain

// FundOpportunity is produced by the flat portfolio detectors
// (underperforming, low rated, concentrated).
type FundOpportunity struct {
	ClientID        string          `json:"userID"`
	SchemeID        string          `json:"wpc"`
	SchemeName      string          `json:"schemeName"`
	Category        *string         `json:"category"`
	AmcName         *string         `json:"amcName"`
	OpportunityType OpportunityType `json:"opportunityType"`
	Description     string          `json:"opportunityDescription"`
	CurrentValue    float64         `json:"currentValue"`
	PortfolioWeight float64         `json:"portfolioWeight"`
	ThreeYearAlpha  *float64        `json:"threeYearAlpha"`
	FiveYearAlpha   *float64        `json:"fiveYearAlpha"`
	XirrPerformance *float64        `json:"xirrPerformance"`
	Rating          *float64        `json:"rating"`
}

// advisory fee assumed recoverable when an underperforming position is
// rebalanced
const PortfolioAdvisoryFeeRate = 0.01

func (o FundOpportunity) Kind() OpportunityType { return o.OpportunityType }
func (o FundOpportunity) Client() string        { return o.ClientID }
func (o FundOpportunity) Summary() string       { return o.Description }
func (o FundOpportunity) Impact() float64       { return o.CurrentValue * PortfolioAdvisoryFeeRate }

type ReviewScheme struct {
	SchemeID             string  `json:"wpc"`
	SchemeName           string  `json:"schemeName"`
	Category             *string `json:"category"`
	AmcName              *string `json:"amcName"`
	CurrentValue         float64 `json:"currentValue"`
	PortfolioWeight      float64 `json:"portfolioWeight"`
	LiveXirr             float64 `json:"liveXirr"`
	BenchmarkXirr        float64 `json:"benchmarkXirr"`
	XirrUnderperformance float64 `json:"xirrUnderperformance"`
}

type ReviewClient struct {
	ClientID                  string         `json:"userID"`
	ClientName                *string        `json:"userName"`
	AgentExternalID           *string        `json:"agentExternalID"`
	AgentName                 *string        `json:"agentName"`
	TotalValueUnderperforming float64        `json:"totalValueUnderperforming"`
	SchemeCount               int            `json:"schemeCount"`
	Schemes                   []ReviewScheme `json:"schemes"`
}

func (o ReviewClient) Kind() OpportunityType { return OpportunityPortfolioReview }
func (o ReviewClient) Client() string        { return o.ClientID }
func (o ReviewClient) Summary() string {
	if len(o.Schemes) == 0 {
		return "Portfolio review recommended"
	}
	return "Portfolio review recommended: " + o.Schemes[0].SchemeName + " trails its benchmark"
}
func (o ReviewClient) Impact() float64 {
	return o.TotalValueUnderperforming * PortfolioAdvisoryFeeRate
}

type PortfolioReviewResult struct {
	TotalClients                int            `json:"totalClients"`
	TotalUnderperformingSchemes int            `json:"totalUnderperformingSchemes"`
	TotalValueUnderperforming   float64        `json:"totalValueUnderperforming"`
	Clients                     []ReviewClient `json:"clients"`
}
