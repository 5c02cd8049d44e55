package response

import (
	"time"

	"snapbook/internal/domain/entities"
	"snapbook/internal/usecase"
)

type BookingDetails struct {
	EngagementID      string    `json:"engagement_id"`
	ServiceType       string    `json:"service_type"`
	ServiceLabel      string    `json:"service_label"`
	GuaranteedCeiling int       `json:"guaranteed_ceiling"`
	ScheduledFor      time.Time `json:"scheduled_for"`
	Status            string    `json:"status"`
}

type BookingResponse struct {
	Success bool           `json:"success"`
	Booking BookingDetails `json:"booking"`
}

func FromBookingConfirmation(c usecase.BookingConfirmation) BookingResponse {
	return BookingResponse{
		Success: true,
		Booking: BookingDetails{
			EngagementID:      c.Engagement.ID,
			ServiceType:       string(c.Engagement.ServiceType),
			ServiceLabel:      entities.ServiceLabel(c.Engagement.ServiceType),
			GuaranteedCeiling: c.Engagement.GuaranteedCeiling,
			ScheduledFor:      c.Engagement.ScheduledFor,
			Status:            string(c.Engagement.Status),
		},
	}
}
