package campaign

import (
	"fmt"

	"github.com/fundrik/backend/internal/domain"
	"github.com/fundrik/backend/pkg/extract"
)

// CampaignDTO is the flat carrier used at the persistence boundary. It
// enforces no invariants; validation happens only when the DTO is assembled
// into a domain.Campaign.
//
// ID holds either an int64 or a string, matching the two identifier kinds.
type CampaignDTO struct {
	ID           any    `json:"id"`
	Title        string `json:"title"`
	IsActive     bool   `json:"is_active"`
	IsOpen       bool   `json:"is_open"`
	HasTarget    bool   `json:"has_target"`
	TargetAmount int64  `json:"target_amount"`
}

// CampaignToDTO flattens a campaign for persistence.
func CampaignToDTO(c domain.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:           c.ID().Value(),
		Title:        c.Title().Value(),
		IsActive:     c.Active(),
		IsOpen:       c.Open(),
		HasTarget:    c.HasTarget(),
		TargetAmount: c.TargetAmount(),
	}
}

// CampaignDTOFromMap builds a DTO from an untyped row or payload map.
// Missing keys and wrong types fail with extract.ErrExtraction.
func CampaignDTOFromMap(data map[string]any) (CampaignDTO, error) {
	id, err := extract.ID(data, "id")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}
	title, err := extract.String(data, "title")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}
	isActive, err := extract.Bool(data, "is_active")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}
	isOpen, err := extract.Bool(data, "is_open")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}
	hasTarget, err := extract.Bool(data, "has_target")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}
	amount, err := extract.Int64(data, "target_amount")
	if err != nil {
		return CampaignDTO{}, fmt.Errorf("campaign dto: %w", err)
	}

	return CampaignDTO{
		ID:           id,
		Title:        title,
		IsActive:     isActive,
		IsOpen:       isOpen,
		HasTarget:    hasTarget,
		TargetAmount: amount,
	}, nil
}
