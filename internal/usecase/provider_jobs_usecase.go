package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"snapbook/internal/domain/checklist"
	"snapbook/internal/domain/entities"
	"snapbook/internal/domain/pricing"
	"snapbook/internal/usecase/interfaces"
)

var (
	ErrEngagementNotFound  = errors.New("engagement not found")
	ErrNotAssignedProvider = errors.New("provider not assigned to this engagement")
	ErrMissingProviderID   = errors.New("missing provider id")
	ErrMissingPhotoRef     = errors.New("missing photo reference")
)

// JobContext is everything a provider needs before showing up: the analysis
// that priced the job, the money split, the packing list and human-readable
// expectations.
type JobContext struct {
	Engagement     entities.Engagement
	Quote          entities.Quote
	ServiceLabel   string
	CustomerPrice  int
	ProviderPayout float64
	Checklist      []string
	WhatToExpect   []string
}

// ArrivalResult is the outcome of an arrival-photo upload.
type ArrivalResult struct {
	PhotoRef      string
	ScopeVerified bool
	Message       string
}

// IProviderJobsUseCase exposes the provider-facing side of a booked job.

type IProviderJobsUseCase interface {
	JobContext(ctx context.Context, engagementID, providerID string) (JobContext, error)
	AttachArrivalPhoto(ctx context.Context, engagementID, providerID, photoRef string) (ArrivalResult, error)
}

type ProviderJobsUseCase struct {
	quotes      interfaces.IQuoteRepository
	engagements interfaces.IEngagementRepository
}

var _ IProviderJobsUseCase = (*ProviderJobsUseCase)(nil)

func NewProviderJobsUseCase(quotes interfaces.IQuoteRepository, engagements interfaces.IEngagementRepository) *ProviderJobsUseCase {
	return &ProviderJobsUseCase{quotes: quotes, engagements: engagements}
}

// JobContext assembles the pre-arrival briefing. Payout comes from the
// stored unbuffered base estimate; quotes persisted before the base was
// stored fall back to recovering it from the ceiling.
func (u *ProviderJobsUseCase) JobContext(ctx context.Context, engagementID, providerID string) (JobContext, error) {
	e, q, err := u.loadAssigned(ctx, engagementID, providerID)
	if err != nil {
		return JobContext{}, err
	}

	base := q.BaseEstimate
	if base == 0 && q.CeilingPrice > 0 {
		base = pricing.BaseFromCeiling(q.CeilingPrice)
	}

	return JobContext{
		Engagement:     e,
		Quote:          q,
		ServiceLabel:   entities.ServiceLabel(q.ServiceType),
		CustomerPrice:  e.GuaranteedCeiling,
		ProviderPayout: pricing.Payout(base),
		Checklist:      checklist.Generate(q.ServiceType, q.Analysis.ScopeDescription),
		WhatToExpect:   whatToExpect(q),
	}, nil
}

// AttachArrivalPhoto stores the provider's arrival evidence on both the
// engagement and the originating quote. Scope is auto-verified only for
// high-confidence quotes; everything else waits for manual verification.
func (u *ProviderJobsUseCase) AttachArrivalPhoto(ctx context.Context, engagementID, providerID, photoRef string) (ArrivalResult, error) {
	photoRef = strings.TrimSpace(photoRef)
	if photoRef == "" {
		return ArrivalResult{}, ErrMissingPhotoRef
	}

	e, q, err := u.loadAssigned(ctx, engagementID, providerID)
	if err != nil {
		return ArrivalResult{}, err
	}

	autoVerified := q.Confidence == entities.ConfidenceHigh

	updated, err := u.engagements.SetArrivalPhoto(ctx, e.ID, photoRef, autoVerified || e.ScopeVerified)
	if err != nil {
		return ArrivalResult{}, err
	}
	if updated.ID == "" {
		return ArrivalResult{}, ErrEngagementNotFound
	}

	if _, err := u.quotes.AttachArrivalEvidence(ctx, q.ID, photoRef); err != nil {
		// The engagement already holds the evidence; keep going but leave a
		// trace for reconciliation.
		log.Printf("[providerjobs][usecase] quote evidence attach failed quote_id=%s err=%v", q.ID, err)
	}

	message := "Arrival photo saved. Awaiting scope verification before starting."
	if autoVerified {
		message = "Arrival photo saved. High-confidence quote - scope auto-verified. Ready to start."
	}

	log.Printf("[providerjobs][usecase] arrival photo engagement_id=%s auto_verified=%t", e.ID, autoVerified)
	return ArrivalResult{
		PhotoRef:      photoRef,
		ScopeVerified: updated.ScopeVerified,
		Message:       message,
	}, nil
}

func (u *ProviderJobsUseCase) loadAssigned(ctx context.Context, engagementID, providerID string) (entities.Engagement, entities.Quote, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Engagement{}, entities.Quote{}, ErrEngagementNotFound
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.Engagement{}, entities.Quote{}, ErrMissingProviderID
	}

	e, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.Engagement{}, entities.Quote{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, entities.Quote{}, ErrEngagementNotFound
	}
	// Unassigned engagements are visible to any provider (matching happens
	// outside this service); once assigned, only that provider may act.
	if e.ProviderID != "" && e.ProviderID != providerID {
		return entities.Engagement{}, entities.Quote{}, ErrNotAssignedProvider
	}

	q, err := u.quotes.GetByID(ctx, e.QuoteID)
	if err != nil {
		return entities.Engagement{}, entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Engagement{}, entities.Quote{}, ErrQuoteNotFound
	}
	return e, q, nil
}

// whatToExpect renders the analysis into short notes for the provider.
func whatToExpect(q entities.Quote) []string {
	notes := []string{"Service type: " + entities.ServiceLabel(q.ServiceType)}

	a := q.Analysis
	if a.ScopeDescription != "" {
		notes = append(notes, "Scope: "+a.ScopeDescription)
	}
	if a.EstimatedHours > 0 {
		plural := "s"
		if a.EstimatedHours == 1 {
			plural = ""
		}
		notes = append(notes, fmt.Sprintf("Estimated duration: %s hour%s", strconv.FormatFloat(a.EstimatedHours, 'f', -1, 64), plural))
	}
	if a.Confidence != "" {
		notes = append(notes, "AI confidence: "+string(a.Confidence))
	}

	d := a.DetailsMap
	if d != nil {
		if story, ok := d["storyCount"].(float64); ok && story > 1 {
			notes = append(notes, fmt.Sprintf("Property is %d-story", int(story)))
		}
		if volume, ok := d["volume"].(string); ok && volume != "" {
			notes = append(notes, "Volume estimate: "+volume)
		}
		if heavy, ok := d["heavyItems"].(bool); ok && heavy {
			notes = append(notes, "Heavy items present - bring appropriate equipment")
		}
		if condition, ok := d["condition"].(string); ok && condition != "" {
			notes = append(notes, "Condition: "+condition)
		}
		if area, ok := d["area"].(string); ok && area != "" {
			notes = append(notes, "Area: "+area)
		}
	}
	return notes
}
