package service

import "github.com/shopspring/decimal"

// Login outcomes reported to MetricsRecorder.
const (
	LoginSucceeded = "success"
	LoginFailed    = "failure"
	LoginThrottled = "throttled"
)

// MetricsRecorder receives business counters.
type MetricsRecorder interface {
	SaleCreated(tenantSlug string, total decimal.Decimal, items int)
	SaleDeleted(tenantSlug string)
	LoginAttempt(outcome string)
}
