package campaign

import (
	"context"
	"log/slog"

	"github.com/fundrik/backend/internal/domain"
)

// QueryService reconstructs campaigns from stored DTOs.
type QueryService struct {
	repo campaignRepo
	log  *opLogger
}

// NewQueryService creates a query service over the given repository.
func NewQueryService(log *slog.Logger, repo campaignRepo) *QueryService {
	return &QueryService{
		repo: repo,
		log:  newOpLogger(log, "campaign_query"),
	}
}

// FindCampaignByID returns the campaign with the given identifier, or
// (nil, nil) when no such campaign exists — an absent campaign is an
// expected outcome, not an error. Repository and assembly failures are
// logged and returned unchanged.
func (s *QueryService) FindCampaignByID(ctx context.Context, id domain.EntityID) (*domain.Campaign, error) {
	s.log.findByIDStarted(ctx, id.String())

	dto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.findByIDFailedRepository(ctx, id.String(), err)
		return nil, err
	}
	if dto == nil {
		s.log.findByIDNotFound(ctx, id.String())
		return nil, nil
	}

	c, err := AssembleCampaign(*dto)
	if err != nil {
		s.log.findByIDFailedAssembler(ctx, dto.ID, err)
		return nil, err
	}

	s.log.findByIDSucceeded(ctx, id.String())
	return &c, nil
}

// FindAllCampaigns returns every stored campaign. The first assembly failure
// aborts the whole call with no partial result: a DTO that no longer
// validates means the stored data is corrupt, which is a hard stop rather
// than a per-record skip.
func (s *QueryService) FindAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	s.log.findAllStarted(ctx)

	dtos, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.findAllFailedRepository(ctx, err)
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(dtos))
	for _, dto := range dtos {
		c, err := AssembleCampaign(dto)
		if err != nil {
			s.log.findAllFailedAssembler(ctx, err)
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	s.log.findAllSucceeded(ctx, len(campaigns))
	return campaigns, nil
}
