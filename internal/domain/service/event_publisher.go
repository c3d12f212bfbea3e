package service

import (
	"context"
	"time"
)

// SaleEvent is published after a sale is created or deleted.
type SaleEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	TenantID      string    `json:"tenant_id"`
	SaleID        string    `json:"sale_id"`
	CustomerID    string    `json:"customer_id"`
	ProductIDs    []string  `json:"product_ids"`
	PaymentMethod string    `json:"payment_method"`
	TotalValue    string    `json:"total_value"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSaleEvent publishes a sale lifecycle event
	PublishSaleEvent(ctx context.Context, event *SaleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
