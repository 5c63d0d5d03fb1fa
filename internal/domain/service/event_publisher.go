package service

import (
	"context"
)

// QuoteAssignedEvent represents an assignment outcome handed to the notifier worker
type QuoteAssignedEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	QuoteID       string  `json:"quote_id"`
	PartnerID     string  `json:"partner_id"`
	TerritoryID   string  `json:"territory_id"`
	TerritoryName string  `json:"territory_name"`
	ContactEmail  string  `json:"contact_email"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQuoteAssigned publishes an assignment event for async partner notification
	PublishQuoteAssigned(ctx context.Context, event *QuoteAssignedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
