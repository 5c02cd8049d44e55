package request

// BookQuoteRequest is the booking payload. Both fields are optional; an
// absent schedule means the next available morning slot.
type BookQuoteRequest struct {
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}
