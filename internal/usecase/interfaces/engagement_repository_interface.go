package interfaces

import (
	"context"

	"snapbook/internal/domain/entities"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.
//
// Delete exists only to roll back an engagement whose quote lost the booking
// race after the engagement row was written.

type IEngagementRepository interface {
	Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	SetArrivalPhoto(ctx context.Context, id string, photoRef string, scopeVerified bool) (entities.Engagement, error)
	Delete(ctx context.Context, id string) error
}
