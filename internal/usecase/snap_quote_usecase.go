package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"snapbook/internal/domain/entities"
	"snapbook/internal/domain/pricing"
	"snapbook/internal/infrastructure/metrics"
	"snapbook/internal/usecase/interfaces"
)

var (
	ErrMissingImage = errors.New("missing image reference")
)

// Rejection reasons for photos that never reach pricing.
const (
	RejectionNotHomeRelated = "not_home_related"
	RejectionVehicleService = "vehicle_service"
)

const visionTimeout = 20 * time.Second

// CreateQuoteCommand is a photo submission from a customer. CustomerID is
// empty for anonymous callers.
type CreateQuoteCommand struct {
	CustomerID  string
	ImageRefs   []string
	Description string
	Address     string
}

// Rejection is the typed outcome for photos that are not a home service
// need. It is a successful response shape, not an error.
type Rejection struct {
	Reason  string
	Message string
}

// QuoteResult is the outcome of a photo submission: either a priced quote or
// a rejection, never both. FallbackMessage is set when the vision step
// degraded and the quote was priced conservatively.
type QuoteResult struct {
	Quote           entities.Quote
	Rejection       *Rejection
	FallbackMessage string
	BookingURL      string
}

// ISnapQuoteUseCase exposes the photo-to-quote pipeline.

type ISnapQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (QuoteResult, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
}

type SnapQuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	vision interfaces.IVisionClient
}

var _ ISnapQuoteUseCase = (*SnapQuoteUseCase)(nil)

func NewSnapQuoteUseCase(repo interfaces.IQuoteRepository, vision interfaces.IVisionClient) *SnapQuoteUseCase {
	return &SnapQuoteUseCase{repo: repo, vision: vision}
}

// CreateQuote analyzes the photos, prices the detected service and persists
// the quote. Vision failures degrade the analysis but never fail the call;
// persistence failures do fail it, because a quote that was shown must exist.
func (u *SnapQuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (QuoteResult, error) {
	refs := make([]string, 0, len(cmd.ImageRefs))
	for _, ref := range cmd.ImageRefs {
		if strings.TrimSpace(ref) != "" {
			refs = append(refs, strings.TrimSpace(ref))
		}
	}
	if len(refs) == 0 {
		return QuoteResult{}, ErrMissingImage
	}

	analysis, rejection, fallback := u.analyze(ctx, refs, cmd.Description, cmd.Address)
	if rejection != nil {
		metrics.QuotesRejected.WithLabelValues(rejection.Reason).Inc()
		log.Printf("[snapquote][usecase] rejected reason=%s", rejection.Reason)
		return QuoteResult{Rejection: rejection}, nil
	}

	priced := pricing.Price(analysis.ServiceType, analysis.Details)

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		CustomerID:   cmd.CustomerID,
		ImageRefs:    refs,
		ServiceType:  analysis.ServiceType,
		Confidence:   analysis.Confidence,
		Analysis:     analysis,
		BaseEstimate: priced.BaseEstimate,
		CeilingPrice: priced.CeilingPrice,
		Adjustments:  priced.Adjustments,
		Status:       entities.QuoteStatusQuoted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[snapquote][usecase] create failed service=%s err=%v", q.ServiceType, err)
		return QuoteResult{}, err
	}

	metrics.QuotesCreated.WithLabelValues(string(q.ServiceType), string(q.Confidence)).Inc()
	log.Printf("[snapquote][usecase] created id=%s service=%s confidence=%s ceiling=%d",
		created.ID, created.ServiceType, created.Confidence, created.CeilingPrice)

	result := QuoteResult{
		Quote:      created,
		BookingURL: "/book?quote_id=" + created.ID,
	}
	if fallback || created.Confidence == entities.ConfidenceLow {
		result.FallbackMessage = "Tell us more about the issue so we can give you a more accurate quote."
	}
	return result, nil
}

func (u *SnapQuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// visionResult is the raw JSON shape the model is prompted to produce, plus
// the client's mock and prose-wrap fields.
type visionResult struct {
	Mock             bool           `json:"_mock"`
	Degraded         bool           `json:"_degraded"`
	Valid            *bool          `json:"valid"`
	Reason           string         `json:"reason"`
	ServiceType      string         `json:"serviceType"`
	ScopeDescription string         `json:"scopeDescription"`
	Analysis         string         `json:"analysis"`
	EstimatedHours   float64        `json:"estimatedHours"`
	Confidence       string         `json:"confidence"`
	Details          map[string]any `json:"details"`
}

// analyze runs the vision call and validates its output. It returns either a
// usable analysis or a typed rejection. Transport failures, timeouts and
// malformed payloads all degrade to a conservative handyman analysis instead
// of erroring, so a broken vision dependency can never block quoting.
func (u *SnapQuoteUseCase) analyze(ctx context.Context, refs []string, description, address string) (entities.VisionAnalysis, *Rejection, bool) {
	callCtx, cancel := context.WithTimeout(ctx, visionTimeout)
	defer cancel()

	raw, err := u.vision.AnalyzeImages(callCtx, interfaces.VisionRequest{
		ImageRefs: refs,
		Prompt:    buildVisionPrompt(description, address),
		MaxTokens: 1024,
	})
	if err != nil {
		log.Printf("[snapquote][usecase] vision error err=%v", err)
		metrics.VisionFallbacks.Inc()
		return degradedAnalysis("Could not analyze image. Please describe the issue."), nil, true
	}

	var result visionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		log.Printf("[snapquote][usecase] vision payload unparseable err=%v", err)
		metrics.VisionFallbacks.Inc()
		return degradedAnalysis("Could not analyze image. Please describe the issue."), nil, true
	}

	if result.Mock {
		metrics.VisionFallbacks.Inc()
		return degradedAnalysis("Unable to analyze image without vision configured"), nil, true
	}

	if result.Degraded {
		log.Printf("[snapquote][usecase] vision reply was not structured output")
		metrics.VisionFallbacks.Inc()
		return degradedAnalysis("Could not analyze image. Please describe the issue."), nil, true
	}

	if result.Valid != nil && !*result.Valid {
		if result.Reason == RejectionVehicleService {
			return entities.VisionAnalysis{}, &Rejection{
				Reason:  RejectionVehicleService,
				Message: "That looks like a vehicle issue. Vehicle services are coming soon, so for now describe your home service need instead.",
			}, false
		}
		return entities.VisionAnalysis{}, &Rejection{
			Reason:  RejectionNotHomeRelated,
			Message: "We couldn't identify a home service need in this photo. Try a closer photo of the area that needs work, or describe the issue instead.",
		}, false
	}

	if result.ServiceType == "" {
		// A reply carrying no service classification at all is malformed
		// output, not a low-confidence assessment.
		log.Printf("[snapquote][usecase] vision reply missing service type")
		metrics.VisionFallbacks.Inc()
		return degradedAnalysis("Could not analyze image. Please describe the issue."), nil, true
	}

	scope := result.ScopeDescription
	if scope == "" {
		scope = result.Analysis
	}
	if scope == "" {
		scope = "Service issue detected"
	}

	hours := result.EstimatedHours
	if hours <= 0 {
		hours = 1
	}

	serviceType, known := entities.ParseServiceType(result.ServiceType)
	confidence := entities.ParseConfidence(result.Confidence)
	if !known {
		// Anything outside the catalog becomes a consultation rather than a
		// guessed billable category.
		serviceType = entities.ServiceHomeConsultation
		confidence = entities.ConfidenceLow
	}

	return entities.VisionAnalysis{
		ServiceType:      serviceType,
		ScopeDescription: scope,
		EstimatedHours:   hours,
		Confidence:       confidence,
		Details:          entities.DetailsFromMap(serviceType, result.Details, hours, scope),
		DetailsMap:       result.Details,
	}, nil, false
}

func degradedAnalysis(scope string) entities.VisionAnalysis {
	return entities.VisionAnalysis{
		ServiceType:      entities.ServiceHandyman,
		ScopeDescription: scope,
		EstimatedHours:   1,
		Confidence:       entities.ConfidenceLow,
		Details:          entities.DetailsFromMap(entities.ServiceHandyman, nil, 1, scope),
		DetailsMap:       map[string]any{},
	}
}

func buildVisionPrompt(description, address string) string {
	var b strings.Builder

	b.WriteString(`Analyze this photo of a home service issue. Determine:
1. What service is needed (must be one of: junk_removal, home_cleaning, carpet_cleaning, pressure_washing, landscaping, pool_cleaning, handyman, gutter_cleaning, moving_labor, garage_cleanout, light_demolition, home_consultation)
2. Scope/severity description
3. Estimated labor hours
4. Confidence level (high/medium/low) in your assessment
5. Any visible details that affect pricing (square footage, story count, debris level, room count, etc.)
`)
	if description != "" {
		fmt.Fprintf(&b, "Customer description: %q\n", description)
	}
	if address != "" {
		fmt.Fprintf(&b, "Property address: %s\n", address)
	}

	b.WriteString(`
IMPORTANT VALIDATION RULES:
- If the image is NOT related to a home, property, yard, or building (e.g., selfie, pet, food, meme, screenshot, document, car), respond with: { "valid": false, "reason": "brief explanation of what you see instead" }
- If the image shows a home-related issue but you cannot determine which service is needed, respond with: { "valid": true, "confidence": "low", "serviceType": "home_consultation", "scopeDescription": "what you see", "estimatedHours": 1, "details": {} }
- If the image shows a vehicle or car issue, respond with: { "valid": false, "reason": "vehicle_service" }
- Only return a full analysis if the image clearly shows a home/property service need

For valid home service images, return JSON:
{
  "valid": true,
  "serviceType": "one_of_the_12_types",
  "scopeDescription": "what you see",
  "estimatedHours": number,
  "confidence": "high" | "medium" | "low",
  "details": { any relevant pricing details like storyCount, volume, bedrooms, rooms, area, scope, condition, size, heavyItems, movers, hours, linearFeet, tier }
}`)

	return b.String()
}
