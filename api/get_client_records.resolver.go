package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"wealthdesk/internal/domain"

	"github.com/gin-gonic/gin"
)

type clientSipResponse struct {
	SipMetaID         string   `json:"sipMetaID"`
	UserID            string   `json:"userID"`
	AgentID           *string  `json:"agentID"`
	AgentExternalID   *string  `json:"agentExternalID"`
	SchemeName        *string  `json:"schemeName"`
	Amount            float64  `json:"amount"`
	IncrementAmount   *float64 `json:"incrementAmount"`
	IncrementPercent  *float64 `json:"incrementPercentage"`
	IncrementPeriod   string   `json:"incrementPeriod"`
	IsActive          bool     `json:"isActive"`
	CurrentSipStatus  string   `json:"currentSipStatus"`
	SuccessAmount     float64  `json:"successAmount"`
	FailedAmount      float64  `json:"failedAmount"`
	PendingAmount     float64  `json:"pendingAmount"`
	SuccessCount      int      `json:"successCount"`
	StartDate         *string  `json:"startDate"`
	LatestSuccessDate *string  `json:"latestSuccessOrderDate"`
}

type clientInsuranceResponse struct {
	SourceID                string  `json:"sourceID"`
	UserID                  string  `json:"userID"`
	Name                    *string `json:"name"`
	AgentExternalID         *string `json:"agentExternalID"`
	InsuranceType           string  `json:"insuranceType"`
	Insurer                 *string `json:"insurer"`
	Premium                 float64 `json:"premium"`
	MfCurrentValue          float64 `json:"mfCurrentValue"`
	Age                     *int    `json:"age"`
	WealthBand              *string `json:"wealthBand"`
	BaselineExpectedPremium float64 `json:"baselineExpectedPremium"`
	PremiumGap              float64 `json:"premiumGap"`
	OpportunityScore        int     `json:"opportunityScore"`
}

func clientIDParam(c *gin.Context) (string, bool) {
	clientID := strings.TrimSpace(c.Param("user_id"))
	if clientID == "" {
		returnErrorJsonCode(fmt.Errorf("user_id is required"), c, http.StatusBadRequest)
		return "", false
	}
	return clientID, true
}

func (m ApiHandler) getClientSips(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	records, err := m.SipOpportunityService.GetClientSips(c.Request.Context(), nil, clientID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, clientSipsResponseFromDomain(records))
}

func (m ApiHandler) getClientInsurance(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	records, err := m.InsuranceOpportunityService.GetClientInsurance(c.Request.Context(), nil, clientID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, clientInsuranceResponseFromDomain(records))
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func clientSipsResponseFromDomain(records []domain.SipRecord) []clientSipResponse {
	out := []clientSipResponse{}
	for _, r := range records {
		out = append(out, clientSipResponse{
			SipMetaID:         r.SipID,
			UserID:            r.ClientID,
			AgentID:           r.AgentID,
			AgentExternalID:   r.AgentExternalID,
			SchemeName:        r.SchemeName,
			Amount:            r.Amount,
			IncrementAmount:   r.IncrementAmount,
			IncrementPercent:  r.IncrementPercent,
			IncrementPeriod:   r.RawIncrementPeriod,
			IsActive:          r.IsActive,
			CurrentSipStatus:  string(r.CurrentStatus),
			SuccessAmount:     r.SuccessTotal,
			FailedAmount:      r.FailedTotal,
			PendingAmount:     r.PendingTotal,
			SuccessCount:      r.SuccessCount,
			StartDate:         formatDate(r.StartDate),
			LatestSuccessDate: formatDate(r.LatestSuccessDate),
		})
	}
	return out
}

func clientInsuranceResponseFromDomain(records []domain.InsuranceRecord) []clientInsuranceResponse {
	out := []clientInsuranceResponse{}
	for _, r := range records {
		out = append(out, clientInsuranceResponse{
			SourceID:                r.SourceID,
			UserID:                  r.ClientID,
			Name:                    r.ClientName,
			AgentExternalID:         r.AgentExternalID,
			InsuranceType:           string(r.InsuranceType),
			Insurer:                 r.Insurer,
			Premium:                 r.Premium,
			MfCurrentValue:          r.MfCurrentValue,
			Age:                     r.Age,
			WealthBand:              r.WealthBand,
			BaselineExpectedPremium: r.BaselineExpectedPremium,
			PremiumGap:              r.PremiumGap,
			OpportunityScore:        r.OpportunityScore,
		})
	}
	return out
}
