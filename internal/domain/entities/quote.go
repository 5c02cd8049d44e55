package entities

import "time"

// QuoteStatus represents the lifecycle of a snap quote.
//
// Domain notes:
//   - Status only moves forward: quoted -> booked. Later lifecycle states
//     (completion, cancellation) belong to the engagement, not the quote.
//   - The booked transition is enforced by a conditional write in the
//     repository, never by caller-side checking alone.

type QuoteStatus string

const (
	QuoteStatusQuoted QuoteStatus = "quoted"
	QuoteStatusBooked QuoteStatus = "booked"
)

// ConfidenceTier classifies how much the vision analysis can be trusted.
// High-confidence quotes earn automatic scope approval on provider arrival.

type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// ParseConfidence maps a raw model string to a tier, defaulting to medium.
func ParseConfidence(s string) ConfidenceTier {
	switch ConfidenceTier(s) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// Adjustment is a priced line item explaining how a quote was built.
type Adjustment struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// VisionAnalysis is the validated output of the vision step.
//
// Details carries the typed per-service variant used by the pricing engine;
// DetailsMap keeps the model's raw signals verbatim as the audit copy that is
// serialized with the quote.
type VisionAnalysis struct {
	ServiceType      ServiceType    `json:"service_type"`
	ScopeDescription string         `json:"scope_description"`
	EstimatedHours   float64        `json:"estimated_hours"`
	Confidence       ConfidenceTier `json:"confidence"`
	Details          ServiceDetails `json:"-"`
	DetailsMap       map[string]any `json:"details"`
}

// Quote is the central entity: a guaranteed-ceiling price offer derived from a
// photo, retained forever as the audit trail for the price guarantee and the
// provider payout.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - BaseEstimate is the unbuffered estimate in whole dollars; CeilingPrice is
//     the buffered customer maximum. Both are stored explicitly so payout never
//     has to recover the base by division.
type Quote struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id,omitempty"`
	ImageRefs       []string       `json:"image_refs,omitempty"`
	ServiceType     ServiceType    `json:"service_type"`
	Confidence      ConfidenceTier `json:"confidence"`
	Analysis        VisionAnalysis `json:"analysis"`
	BaseEstimate    int            `json:"base_estimate"`
	CeilingPrice    int            `json:"ceiling_price"`
	Adjustments     []Adjustment   `json:"adjustments"`
	Status          QuoteStatus    `json:"status"`
	EngagementID    string         `json:"engagement_id,omitempty"`
	ArrivalPhotoRef string         `json:"arrival_photo_ref,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
