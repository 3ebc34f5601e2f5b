package domain

import (
	"strings"
	"time"
)

type IncrementPeriod string

const (
	IncrementPeriod6M      IncrementPeriod = "6M"
	IncrementPeriod1Y      IncrementPeriod = "1Y"
	IncrementPeriodUnknown IncrementPeriod = ""
)

// NewIncrementPeriod maps the stored increment period text onto the
// known step-up periods. Anything else is treated as unknown.
func NewIncrementPeriod(raw string) IncrementPeriod {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "6M", "6", "HALF_YEARLY", "HALFYEARLY":
		return IncrementPeriod6M
	case "1Y", "12M", "12", "YEARLY", "ANNUAL":
		return IncrementPeriod1Y
	}
	return IncrementPeriodUnknown
}

// Months returns the period length in months, or 0 when unknown
func (p IncrementPeriod) Months() int {
	switch p {
	case IncrementPeriod6M:
		return 6
	case IncrementPeriod1Y:
		return 12
	}
	return 0
}

type SipStatus string

const (
	SipStatusSuccess    SipStatus = "Success"
	SipStatusFailed     SipStatus = "Failed"
	SipStatusPending    SipStatus = "Pending"
	SipStatusInProgress SipStatus = "InProgress"
	SipStatusPaused     SipStatus = "Paused"
	SipStatusUnknown    SipStatus = "Unknown"
)

func NewSipStatus(raw string) SipStatus {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "")) {
	case "success":
		return SipStatusSuccess
	case "failed", "failure":
		return SipStatusFailed
	case "pending":
		return SipStatusPending
	case "inprogress", "in_progress":
		return SipStatusInProgress
	case "paused":
		return SipStatusPaused
	}
	return SipStatusUnknown
}

// SipRecord is one recurring investment mandate. Storage-level text
// values (booleans, dates, statuses) are already converted by the
// repository adapter.
type SipRecord struct {
	SipID           string
	ClientID        string
	ClientName      *string
	AgentID         *string
	AgentExternalID *string
	AgentName       *string
	SchemeName      *string

	Amount       float64
	SuccessTotal float64
	FailedTotal  float64
	PendingTotal float64
	SuccessCount int

	IncrementAmount    *float64
	IncrementPercent   *float64
	IncrementPeriod    IncrementPeriod
	RawIncrementPeriod string

	IsActive      bool
	CurrentStatus SipStatus
	Deleted       bool

	CreatedAt         *time.Time
	StartDate         *time.Time
	LatestSuccessDate *time.Time
}

// StepUpConfigured is true when either an increment amount or an
// increment percentage is set to a non-zero value.
func (s SipRecord) StepUpConfigured() bool {
	return (s.IncrementAmount != nil && *s.IncrementAmount != 0) ||
		(s.IncrementPercent != nil && *s.IncrementPercent != 0)
}
