package entities

import "time"

// EngagementStatus is the scheduled-service lifecycle. Only the initial state
// matters to this service; dispatch and completion are owned elsewhere.

type EngagementStatus string

const (
	EngagementStatusRequested EngagementStatus = "requested"
)

// Engagement is the scheduled service record created when a quote is booked.
// The quote's ceiling is copied in as the guaranteed maximum at creation time
// and never changes afterwards.
type Engagement struct {
	ID                string           `json:"id"`
	QuoteID           string           `json:"quote_id"`
	CustomerID        string           `json:"customer_id"`
	ProviderID        string           `json:"provider_id,omitempty"`
	ServiceType       ServiceType      `json:"service_type"`
	GuaranteedCeiling int              `json:"guaranteed_ceiling"`
	ScheduledFor      time.Time        `json:"scheduled_for"`
	Description       string           `json:"description"`
	ArrivalPhotoRef   string           `json:"arrival_photo_ref,omitempty"`
	ScopeVerified     bool             `json:"scope_verified"`
	Status            EngagementStatus `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
}
