// Package memory provides a map-backed campaign repository for tests and
// local development. It honors the same error contract as the durable
// adapters, so services cannot tell the difference.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fundrik/backend/internal/domain"
	"github.com/fundrik/backend/internal/service/campaign"
)

// CampaignRepository stores campaign DTOs in process memory. Identifiers
// assigned by InsertWithoutID are sequential positive integers. Safe for
// concurrent use.
type CampaignRepository struct {
	mu      sync.RWMutex
	byID    map[string]campaign.CampaignDTO
	nextID  int64
	ordered []string
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		byID:   make(map[string]campaign.CampaignDTO),
		nextID: 1,
	}
}

func (r *CampaignRepository) FindByID(_ context.Context, id domain.EntityID) (*campaign.CampaignDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.byID[id.String()]
	if !ok {
		return nil, nil
	}
	return &dto, nil
}

// FindAll returns campaigns in insertion order.
func (r *CampaignRepository) FindAll(_ context.Context) ([]campaign.CampaignDTO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dtos := make([]campaign.CampaignDTO, 0, len(r.ordered))
	for _, key := range r.ordered {
		dtos = append(dtos, r.byID[key])
	}
	return dtos, nil
}

func (r *CampaignRepository) Exists(_ context.Context, c domain.Campaign) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[c.ID().String()]
	return ok, nil
}

func (r *CampaignRepository) Insert(_ context.Context, c domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.ID().String()
	if _, ok := r.byID[key]; ok {
		return fmt.Errorf("%w: %w: campaign %q", domain.ErrRepository, domain.ErrAlreadyExists, key)
	}
	r.put(key, campaign.CampaignToDTO(c))
	return nil
}

func (r *CampaignRepository) InsertWithoutID(
	_ context.Context,
	title domain.CampaignTitle,
	active, open bool,
	target domain.CampaignTarget,
) (domain.EntityID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Skip over identifiers already taken by explicit inserts.
	var id domain.EntityID
	for {
		id = domain.MustEntityID(r.nextID)
		r.nextID++
		if _, ok := r.byID[id.String()]; !ok {
			break
		}
	}

	r.put(id.String(), campaign.CampaignToDTO(domain.NewCampaign(id, title, active, open, target)))
	return id, nil
}

func (r *CampaignRepository) Update(_ context.Context, c domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.ID().String()
	if _, ok := r.byID[key]; !ok {
		return fmt.Errorf("%w: %w: campaign %q", domain.ErrRepository, domain.ErrNotFound, key)
	}
	r.byID[key] = campaign.CampaignToDTO(c)
	return nil
}

func (r *CampaignRepository) Save(_ context.Context, c domain.Campaign) (campaign.SaveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.ID().String()
	_, existed := r.byID[key]
	if existed {
		r.byID[key] = campaign.CampaignToDTO(c)
		return campaign.SaveUpdated, nil
	}
	r.put(key, campaign.CampaignToDTO(c))
	return campaign.SaveInserted, nil
}

func (r *CampaignRepository) Delete(_ context.Context, id domain.EntityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.byID[key]; !ok {
		return fmt.Errorf("%w: %w: campaign %q", domain.ErrRepository, domain.ErrNotFound, key)
	}
	delete(r.byID, key)
	for i, k := range r.ordered {
		if k == key {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}

// put must be called with the write lock held.
func (r *CampaignRepository) put(key string, dto campaign.CampaignDTO) {
	r.byID[key] = dto
	r.ordered = append(r.ordered, key)
}
