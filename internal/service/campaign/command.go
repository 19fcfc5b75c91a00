// Package campaign implements the application services for the fundraising
// campaign domain: commands that persist state changes and publish events,
// and queries that reconstruct campaigns from stored data.
//
// Both services hold only injected, stateless collaborators, so a single
// instance is safe for concurrent use.
package campaign

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fundrik/backend/internal/domain"
)

// CommandService turns validated campaigns into persisted state changes plus
// best-effort notifications.
//
// Every operation follows the same shape: log started (debug), call the
// repository (on failure: log at error level and return the error unchanged
// — repository failures are never swallowed), publish the matching event (on
// failure: log at warn level and swallow — persistence is the source of
// truth, notification is best-effort), log succeeded (info).
type CommandService struct {
	repo campaignRepo
	bus  eventBus
	log  *opLogger
}

// NewCommandService creates a command service over the given repository and
// event bus.
func NewCommandService(log *slog.Logger, repo campaignRepo, bus eventBus) *CommandService {
	return &CommandService{
		repo: repo,
		bus:  bus,
		log:  newOpLogger(log, "campaign_command"),
	}
}

// CreateCampaign persists a new campaign under its pre-assigned identifier
// and publishes CampaignCreated. Fails when the identifier is already taken.
func (s *CommandService) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	id := c.ID()
	s.log.saveStarted(ctx, id.String(), actionCreate)

	if err := s.repo.Insert(ctx, c); err != nil {
		s.log.saveFailedRepository(ctx, id.String(), err, actionCreate)
		return err
	}

	s.publishSaved(ctx, id, actionCreate)
	s.log.saveSucceeded(ctx, id.String(), actionCreate)
	return nil
}

// CreateCampaignWithoutID persists a new campaign under an adapter-assigned
// identifier and returns the campaign carrying it, so the caller can act on
// the result without a second round trip.
func (s *CommandService) CreateCampaignWithoutID(
	ctx context.Context,
	title domain.CampaignTitle,
	active, open bool,
	target domain.CampaignTarget,
) (domain.Campaign, error) {
	s.log.saveStarted(ctx, placeholderID, actionCreate)

	id, err := s.repo.InsertWithoutID(ctx, title, active, open, target)
	if err != nil {
		s.log.saveFailedRepository(ctx, placeholderID, err, actionCreate)
		return domain.Campaign{}, err
	}

	c := domain.NewCampaign(id, title, active, open, target)

	s.publishSaved(ctx, id, actionCreate)
	s.log.saveSucceeded(ctx, id.String(), actionCreate)
	return c, nil
}

// UpdateCampaign persists changes to an existing campaign and publishes
// CampaignUpdated. Fails when no campaign with that identifier exists.
func (s *CommandService) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	id := c.ID()
	s.log.saveStarted(ctx, id.String(), actionUpdate)

	if err := s.repo.Update(ctx, c); err != nil {
		s.log.saveFailedRepository(ctx, id.String(), err, actionUpdate)
		return err
	}

	s.publishSaved(ctx, id, actionUpdate)
	s.log.saveSucceeded(ctx, id.String(), actionUpdate)
	return nil
}

// SaveCampaign upserts a campaign. The repository reports which branch it
// took; that tag picks the event — CampaignCreated after an insert,
// CampaignUpdated after an update.
func (s *CommandService) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	id := c.ID()
	s.log.saveStarted(ctx, id.String(), actionSave)

	result, err := s.repo.Save(ctx, c)
	if err != nil {
		s.log.saveFailedRepository(ctx, id.String(), err, actionSave)
		return err
	}

	action := actionUpdate
	if result == SaveInserted {
		action = actionCreate
	}

	s.publishSaved(ctx, id, action)
	s.log.saveSucceeded(ctx, id.String(), action)
	return nil
}

// DeleteCampaign removes a campaign and publishes CampaignDeleted. Fails
// when no campaign with that identifier exists.
func (s *CommandService) DeleteCampaign(ctx context.Context, id domain.EntityID) error {
	s.log.deleteStarted(ctx, id.String())

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.deleteFailedRepository(ctx, id.String(), err)
		return err
	}

	if err := s.publish(ctx, CampaignDeleted{CampaignID: id}); err != nil {
		s.log.publishDeletedFailed(ctx, id.String(), err)
	}

	s.log.deleteSucceeded(ctx, id.String())
	return nil
}

// publishSaved publishes the event for a completed create or update. The
// publish is best-effort: a failure is logged at warn level and swallowed.
func (s *CommandService) publishSaved(ctx context.Context, id domain.EntityID, action saveLogAction) {
	if err := s.publish(ctx, savedEvent(id, action)); err != nil {
		s.log.publishSavedFailed(ctx, id.String(), err, action)
	}
}

// publish shields the operation from a panicking bus implementation as well:
// any failure mode of the bus is reported as an error to be logged.
func (s *CommandService) publish(ctx context.Context, event any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event bus panic: %v", r)
		}
	}()
	return s.bus.Publish(ctx, event)
}

// savedEvent narrows a save action to its event. The save action is valid
// for logging only; by the time an event is constructed it must have been
// mapped to create or update, so reaching it here is a programming error.
func savedEvent(id domain.EntityID, action saveLogAction) any {
	switch action {
	case actionCreate:
		return CampaignCreated{CampaignID: id}
	case actionUpdate:
		return CampaignUpdated{CampaignID: id}
	default:
		panic(fmt.Sprintf("campaign: no saved event for action %q", action))
	}
}

// savedEventLabel names the event a save action maps to, for log records.
func savedEventLabel(action saveLogAction) string {
	switch action {
	case actionCreate:
		return CampaignCreated{}.EventName()
	case actionUpdate:
		return CampaignUpdated{}.EventName()
	default:
		panic(fmt.Sprintf("campaign: no saved event for action %q", action))
	}
}
