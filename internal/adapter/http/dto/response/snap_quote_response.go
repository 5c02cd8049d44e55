package response

import (
	"fmt"

	"snapbook/internal/domain/entities"
	"snapbook/internal/usecase"
)

const priceGuarantee = "Price Protection Guarantee - this is your maximum price"

type AdjustmentResponse struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// QuoteBreakdown is the customer-facing price explanation. TotalPrice is the
// guaranteed ceiling; BaseEstimate is the unbuffered figure it was built
// from.
type QuoteBreakdown struct {
	BasePrice    int                  `json:"base_price"`
	Adjustments  []AdjustmentResponse `json:"adjustments"`
	TotalPrice   int                  `json:"total_price"`
	BaseEstimate int                  `json:"base_estimate"`
	PriceDisplay string               `json:"price_display"`
	Guarantee    string               `json:"guarantee"`
}

type AnalysisResponse struct {
	ServiceType        string  `json:"service_type"`
	ServiceLabel       string  `json:"service_label"`
	ProblemDescription string  `json:"problem_description"`
	EstimatedHours     float64 `json:"estimated_hours"`
}

type SnapQuoteResponse struct {
	Success         bool             `json:"success"`
	SnapQuoteID     string           `json:"snap_quote_id"`
	Confidence      string           `json:"confidence"`
	Analysis        AnalysisResponse `json:"analysis"`
	Quote           QuoteBreakdown   `json:"quote"`
	BookingURL      string           `json:"booking_url"`
	FallbackMessage string           `json:"fallback_message,omitempty"`
}

// SnapQuoteRejectionResponse is the 200-status shape for photos that do not
// show a home service need. Rejections are an expected outcome, not an
// error.
type SnapQuoteRejectionResponse struct {
	Success  bool   `json:"success"`
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason"`
	Error    string `json:"error"`
}

func FromQuoteResult(res usecase.QuoteResult) SnapQuoteResponse {
	q := res.Quote

	adjustments := make([]AdjustmentResponse, 0, len(q.Adjustments))
	for _, a := range q.Adjustments {
		adjustments = append(adjustments, AdjustmentResponse{Label: a.Label, Amount: a.Amount})
	}

	return SnapQuoteResponse{
		Success:     true,
		SnapQuoteID: q.ID,
		Confidence:  string(q.Confidence),
		Analysis: AnalysisResponse{
			ServiceType:        string(q.ServiceType),
			ServiceLabel:       entities.ServiceLabel(q.ServiceType),
			ProblemDescription: q.Analysis.ScopeDescription,
			EstimatedHours:     q.Analysis.EstimatedHours,
		},
		Quote: QuoteBreakdown{
			BasePrice:    q.BaseEstimate,
			Adjustments:  adjustments,
			TotalPrice:   q.CeilingPrice,
			BaseEstimate: q.BaseEstimate,
			PriceDisplay: fmt.Sprintf("$%d", q.CeilingPrice),
			Guarantee:    priceGuarantee,
		},
		BookingURL:      res.BookingURL,
		FallbackMessage: res.FallbackMessage,
	}
}

func FromRejection(r usecase.Rejection) SnapQuoteRejectionResponse {
	return SnapQuoteRejectionResponse{
		Success:  false,
		Rejected: true,
		Reason:   r.Reason,
		Error:    r.Message,
	}
}
