package response

import (
	"snapbook/internal/usecase"
)

type JobAnalysisResponse struct {
	ServiceType      string         `json:"service_type"`
	ServiceLabel     string         `json:"service_label"`
	ScopeDescription string         `json:"scope_description"`
	EstimatedHours   float64        `json:"estimated_hours"`
	Confidence       string         `json:"confidence"`
	Details          map[string]any `json:"details,omitempty"`
}

type JobPricingResponse struct {
	CustomerPrice  int                  `json:"customer_price"`
	ProviderPayout float64              `json:"provider_payout"`
	Adjustments    []AdjustmentResponse `json:"adjustments"`
}

type JobContextDetails struct {
	CustomerPhotoRefs  []string            `json:"customer_photo_refs"`
	ArrivalPhotoRef    string              `json:"arrival_photo_ref,omitempty"`
	Analysis           JobAnalysisResponse `json:"analysis"`
	Pricing            JobPricingResponse  `json:"pricing"`
	EquipmentChecklist []string            `json:"equipment_checklist"`
	WhatToExpect       []string            `json:"what_to_expect"`
	ScopeVerified      bool                `json:"scope_verified"`
}

type JobContextResponse struct {
	Success     bool              `json:"success"`
	SnapDetails JobContextDetails `json:"snap_details"`
}

type ArrivalPhotoResponse struct {
	Success         bool   `json:"success"`
	ArrivalPhotoRef string `json:"arrival_photo_ref"`
	ScopeVerified   bool   `json:"scope_verified"`
	Message         string `json:"message"`
}

func FromJobContext(jc usecase.JobContext) JobContextResponse {
	adjustments := make([]AdjustmentResponse, 0, len(jc.Quote.Adjustments))
	for _, a := range jc.Quote.Adjustments {
		adjustments = append(adjustments, AdjustmentResponse{Label: a.Label, Amount: a.Amount})
	}

	return JobContextResponse{
		Success: true,
		SnapDetails: JobContextDetails{
			CustomerPhotoRefs: jc.Quote.ImageRefs,
			ArrivalPhotoRef:   jc.Engagement.ArrivalPhotoRef,
			Analysis: JobAnalysisResponse{
				ServiceType:      string(jc.Quote.ServiceType),
				ServiceLabel:     jc.ServiceLabel,
				ScopeDescription: jc.Quote.Analysis.ScopeDescription,
				EstimatedHours:   jc.Quote.Analysis.EstimatedHours,
				Confidence:       string(jc.Quote.Analysis.Confidence),
				Details:          jc.Quote.Analysis.DetailsMap,
			},
			Pricing: JobPricingResponse{
				CustomerPrice:  jc.CustomerPrice,
				ProviderPayout: jc.ProviderPayout,
				Adjustments:    adjustments,
			},
			EquipmentChecklist: jc.Checklist,
			WhatToExpect:       jc.WhatToExpect,
			ScopeVerified:      jc.Engagement.ScopeVerified,
		},
	}
}

func FromArrivalResult(r usecase.ArrivalResult) ArrivalPhotoResponse {
	return ArrivalPhotoResponse{
		Success:         true,
		ArrivalPhotoRef: r.PhotoRef,
		ScopeVerified:   r.ScopeVerified,
		Message:         r.Message,
	}
}
