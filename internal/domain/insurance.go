package domain

import "strings"

type InsuranceType string

const (
	InsuranceTypeHealth      InsuranceType = "Health"
	InsuranceTypeTerm        InsuranceType = "Term"
	InsuranceTypeULIP        InsuranceType = "ULIP"
	InsuranceTypeTraditional InsuranceType = "Traditional"
	InsuranceTypeUnknown     InsuranceType = "Unknown"
)

// CoreInsuranceTypes are the categories every well covered client is
// expected to hold. Ordered alphabetically.
var CoreInsuranceTypes = []InsuranceType{
	InsuranceTypeHealth,
	InsuranceTypeTerm,
	InsuranceTypeTraditional,
	InsuranceTypeULIP,
}

func NewInsuranceType(raw string) InsuranceType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "health":
		return InsuranceTypeHealth
	case "term":
		return InsuranceTypeTerm
	case "ulip":
		return InsuranceTypeULIP
	case "traditional":
		return InsuranceTypeTraditional
	}
	return InsuranceTypeUnknown
}

type CoverageStatus string

const (
	CoverageStatusNoInsurance CoverageStatus = "NO_INSURANCE"
	CoverageStatusLowCoverage CoverageStatus = "LOW_COVERAGE"
	CoverageStatusCovered     CoverageStatus = "COVERED"
)

// InsuranceRecord is a single premium line for a client. Several records
// per client are summed into a client level premium.
type InsuranceRecord struct {
	SourceID        string
	ClientID        string
	ClientName      *string
	AgentID         *string
	AgentExternalID *string

	InsuranceType  InsuranceType
	Insurer        *string
	Premium        float64
	MfCurrentValue float64
	Age            *int
	WealthBand     *string

	BaselineExpectedPremium float64
	PremiumGap              float64
	OpportunityScore        int

	Deleted bool
}

type InsuranceTypeStats struct {
	Count        int64   `json:"count"`
	TotalPremium float64 `json:"totalPremium"`
}

type InsuranceStats struct {
	TotalPolicies              int64                                `json:"totalPolicies"`
	TotalPremiumCollected      float64                              `json:"totalPremiumCollected"`
	TotalPremiumGap            float64                              `json:"totalPremiumGap"`
	PotentialAdditionalRevenue float64                              `json:"potentialAdditionalRevenue"`
	BreakdownByType            map[InsuranceType]InsuranceTypeStats `json:"breakdownByType"`
}
