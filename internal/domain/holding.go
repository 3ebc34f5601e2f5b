package domain

// PortfolioHolding is one fund position for a client. PortfolioWeight is
// the percentage (0-100) of the client's full holding set.
type PortfolioHolding struct {
	ClientID        string
	SchemeID        string
	SchemeName      string
	Category        *string
	AmcName         *string
	CurrentValue    float64
	PortfolioWeight float64

	LiveXirr        *float64
	BenchmarkXirr   *float64
	XirrPerformance *float64
	ThreeYearAlpha  *float64
	FiveYearAlpha   *float64
	Rating          *string
}
