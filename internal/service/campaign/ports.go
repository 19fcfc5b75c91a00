package campaign

import (
	"context"

	"github.com/fundrik/backend/internal/domain"
)

// SaveResult tags the outcome of an upsert so the command service can choose
// between the created and updated events.
type SaveResult string

const (
	SaveInserted SaveResult = "inserted"
	SaveUpdated  SaveResult = "updated"
)

// campaignRepo is the persistence contract the services require of any
// adapter. Every failure must wrap domain.ErrRepository; the services match
// that marker only and never branch on adapter-specific detail.
//
// FindByID reports an absent campaign as (nil, nil) — "not found" is an
// expected outcome on the read path, not a failure. On the write path
// (Update, Delete) a missing row IS a repository failure.
type campaignRepo interface {
	FindByID(ctx context.Context, id domain.EntityID) (*CampaignDTO, error)
	FindAll(ctx context.Context) ([]CampaignDTO, error)
	Exists(ctx context.Context, c domain.Campaign) (bool, error)

	// Insert fails when a campaign with the same id already exists.
	Insert(ctx context.Context, c domain.Campaign) error

	// InsertWithoutID stores a new campaign under an adapter-assigned
	// identifier and returns it.
	InsertWithoutID(ctx context.Context, title domain.CampaignTitle, active, open bool, target domain.CampaignTarget) (domain.EntityID, error)

	// Update fails when no campaign with the given id exists.
	Update(ctx context.Context, c domain.Campaign) error

	// Save upserts and reports which branch was taken.
	Save(ctx context.Context, c domain.Campaign) (SaveResult, error)

	// Delete fails when no campaign with the given id exists.
	Delete(ctx context.Context, id domain.EntityID) error
}

// eventBus publishes domain events. Publishing is best-effort: the command
// service logs a failed publish and carries on, so implementations are free
// to return any error.
type eventBus interface {
	Publish(ctx context.Context, event any) error
}
