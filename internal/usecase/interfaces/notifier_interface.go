package interfaces

import "context"

// NotificationEvent is an outbound event for the (external) delivery system.
// Data is small and flat; delivery channels are chosen downstream.
type NotificationEvent struct {
	Type        string
	RecipientID string
	Title       string
	Body        string
	Data        map[string]string
}

// INotifier abstracts the notification hand-off. Publishing is best effort
// from the booking flow's point of view: failures are logged, never returned
// to the customer.
type INotifier interface {
	Publish(ctx context.Context, event NotificationEvent) error
}
