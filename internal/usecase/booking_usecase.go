package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"snapbook/internal/domain/entities"
	"snapbook/internal/infrastructure/metrics"
	"snapbook/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteAlreadyBooked = errors.New("quote already booked")
	ErrMissingCustomerID  = errors.New("missing customer id")
)

// BookQuoteCommand books a quote for a customer. ScheduledDate is
// "2006-01-02" and ScheduledTime "15:04"; both optional, defaulting to the
// next morning.
type BookQuoteCommand struct {
	QuoteID       string
	CustomerID    string
	ScheduledDate string
	ScheduledTime string
}

// BookingConfirmation is the booked engagement plus the quote it came from.
type BookingConfirmation struct {
	Engagement entities.Engagement
	Quote      entities.Quote
}

// IBookingUseCase converts quotes into engagements.

type IBookingUseCase interface {
	Book(ctx context.Context, cmd BookQuoteCommand) (BookingConfirmation, error)
}

type BookingUseCase struct {
	quotes      interfaces.IQuoteRepository
	engagements interfaces.IEngagementRepository
	notifier    interfaces.INotifier
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(quotes interfaces.IQuoteRepository, engagements interfaces.IEngagementRepository, notifier interfaces.INotifier) *BookingUseCase {
	return &BookingUseCase{quotes: quotes, engagements: engagements, notifier: notifier}
}

// Book creates the engagement and then flips the quote with a conditional
// write. The engagement is written first so a successfully booked quote
// always points at an existing engagement; if the conditional write loses,
// the orphan engagement is rolled back. Notification publish failures are
// logged and swallowed: the booking already happened.
func (u *BookingUseCase) Book(ctx context.Context, cmd BookQuoteCommand) (BookingConfirmation, error) {
	quoteID := strings.TrimSpace(cmd.QuoteID)
	if quoteID == "" {
		return BookingConfirmation{}, ErrQuoteNotFound
	}
	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		return BookingConfirmation{}, ErrMissingCustomerID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return BookingConfirmation{}, err
	}
	if q.ID == "" {
		return BookingConfirmation{}, ErrQuoteNotFound
	}
	if q.Status == entities.QuoteStatusBooked {
		return BookingConfirmation{}, ErrQuoteAlreadyBooked
	}

	description := "Snap Quote: " + q.Analysis.ScopeDescription
	if q.Analysis.ScopeDescription == "" {
		description = "Snap Quote: " + string(q.ServiceType)
	}

	engagement := entities.Engagement{
		ID:                uuid.NewString(),
		QuoteID:           q.ID,
		CustomerID:        customerID,
		ServiceType:       q.ServiceType,
		GuaranteedCeiling: q.CeilingPrice,
		ScheduledFor:      scheduleFor(cmd.ScheduledDate, cmd.ScheduledTime, time.Now().UTC()),
		Description:       description,
		Status:            entities.EngagementStatusRequested,
		CreatedAt:         time.Now().UTC(),
	}

	if _, err := u.engagements.Create(ctx, engagement); err != nil {
		log.Printf("[booking][usecase] engagement create failed quote_id=%s err=%v", q.ID, err)
		return BookingConfirmation{}, err
	}

	booked, err := u.quotes.Book(ctx, q.ID, engagement.ID)
	if err != nil {
		u.rollbackEngagement(ctx, engagement.ID)
		return BookingConfirmation{}, err
	}
	if booked.ID == "" {
		u.rollbackEngagement(ctx, engagement.ID)
		return BookingConfirmation{}, ErrQuoteNotFound
	}
	if booked.EngagementID != engagement.ID {
		// Another booking won the conditional write.
		u.rollbackEngagement(ctx, engagement.ID)
		return BookingConfirmation{}, ErrQuoteAlreadyBooked
	}

	metrics.QuotesBooked.Inc()
	log.Printf("[booking][usecase] booked quote_id=%s engagement_id=%s service=%s ceiling=%d",
		booked.ID, engagement.ID, booked.ServiceType, booked.CeilingPrice)

	u.notifyProviders(ctx, booked, engagement)

	return BookingConfirmation{Engagement: engagement, Quote: booked}, nil
}

func (u *BookingUseCase) rollbackEngagement(ctx context.Context, id string) {
	if err := u.engagements.Delete(ctx, id); err != nil {
		log.Printf("[booking][usecase] engagement rollback failed id=%s err=%v", id, err)
	}
}

func (u *BookingUseCase) notifyProviders(ctx context.Context, q entities.Quote, e entities.Engagement) {
	label := entities.ServiceLabel(q.ServiceType)
	err := u.notifier.Publish(ctx, interfaces.NotificationEvent{
		Type:  "snap_book_job",
		Title: fmt.Sprintf("New %s Job", label),
		Body:  fmt.Sprintf("New %s job - photo quote attached. View details for scope and equipment list.", label),
		Data: map[string]string{
			"quote_id":      q.ID,
			"engagement_id": e.ID,
			"service_type":  string(q.ServiceType),
		},
	})
	if err != nil {
		log.Printf("[booking][usecase] notification publish failed engagement_id=%s err=%v", e.ID, err)
	}
}

// scheduleFor resolves the requested slot, defaulting to 09:00 the next day.
func scheduleFor(date, clock string, now time.Time) time.Time {
	if date == "" {
		next := now.Add(24 * time.Hour)
		return time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, time.UTC)
	}
	if clock == "" {
		clock = "09:00"
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		next := now.Add(24 * time.Hour)
		return time.Date(next.Year(), next.Month(), next.Day(), 9, 0, 0, 0, time.UTC)
	}
	return t
}
