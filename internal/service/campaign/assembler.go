package campaign

import (
	"errors"
	"fmt"

	"github.com/fundrik/backend/internal/domain"
)

// ErrAssembly wraps every validation failure raised while reconstructing a
// campaign from a DTO, so callers catch one kind instead of three.
var ErrAssembly = errors.New("cannot assemble campaign")

// AssembleCampaign validates a DTO into a domain.Campaign. Pure function:
// no side effects, the input is never modified.
func AssembleCampaign(dto CampaignDTO) (domain.Campaign, error) {
	id, err := domain.ParseEntityID(dto.ID)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	title, err := domain.NewCampaignTitle(dto.Title)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	target, err := domain.NewCampaignTarget(dto.HasTarget, dto.TargetAmount)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %w", ErrAssembly, err)
	}
	return domain.NewCampaign(id, title, dto.IsActive, dto.IsOpen, target), nil
}
