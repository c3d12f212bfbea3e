package constants

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published by the sale orchestrator.
const (
	EventSaleCreated = "sale.created"
	EventSaleDeleted = "sale.deleted"
)
