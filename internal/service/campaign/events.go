package campaign

import "github.com/fundrik/backend/internal/domain"

// Domain events published after successful mutations. Fire-and-forget: they
// are handed to the event bus once and never persisted or retried.

// CampaignCreated signals that a new campaign was persisted.
type CampaignCreated struct {
	CampaignID domain.EntityID `json:"campaign_id"`
}

// EventName labels the event on the bus.
func (CampaignCreated) EventName() string { return "campaign.created" }

// CampaignUpdated signals that an existing campaign was modified.
type CampaignUpdated struct {
	CampaignID domain.EntityID `json:"campaign_id"`
}

// EventName labels the event on the bus.
func (CampaignUpdated) EventName() string { return "campaign.updated" }

// CampaignDeleted signals that a campaign was removed.
type CampaignDeleted struct {
	CampaignID domain.EntityID `json:"campaign_id"`
}

// EventName labels the event on the bus.
func (CampaignDeleted) EventName() string { return "campaign.deleted" }
