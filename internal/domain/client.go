package domain

import "time"

type Client struct {
	ClientID        string
	Name            *string
	AgentID         *string
	AgentExternalID *string
	AgentName       *string
	DateOfBirth     *time.Time

	TotalCurrentValue     float64
	MfCurrentValue        float64
	MfInvestedValue       float64
	InsuranceCurrentValue float64
}

// AgeAt returns the client's age in whole years on the given date, or nil
// when the date of birth is unknown or in the future.
func (c Client) AgeAt(now time.Time) *int {
	if c.DateOfBirth == nil {
		return nil
	}
	dob := c.DateOfBirth.UTC()
	now = now.UTC()
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}

type Agent struct {
	AgentID         *string `json:"agentID"`
	AgentExternalID *string `json:"agentExternalID"`
	TotalSips       int64   `json:"totalSips"`
	TotalAum        float64 `json:"totalAum"`
}
