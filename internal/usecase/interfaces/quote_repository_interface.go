package interfaces

import (
	"context"

	"snapbook/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote store must be able to:
//   - create a quote in the quoted state
//   - read a quote by ID
//   - flip quoted -> booked with a conditional write so that exactly one
//     booking wins under concurrency
//   - attach arrival evidence to an already booked quote

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Book(ctx context.Context, id string, engagementID string) (entities.Quote, error)
	AttachArrivalEvidence(ctx context.Context, id string, photoRef string) (entities.Quote, error)
}
