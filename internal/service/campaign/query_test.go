package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundrik/backend/internal/domain"
)

func TestQueryService_FindCampaignByID(t *testing.T) {
	t.Parallel()

	t.Run("assembles the stored campaign", func(t *testing.T) {
		t.Parallel()

		id := domain.MustEntityID(12)
		repo := &repoMock{
			FindByIDFunc: func(_ context.Context, got domain.EntityID) (*CampaignDTO, error) {
				assert.Equal(t, id, got)
				return &CampaignDTO{
					ID:           int64(12),
					Title:        "School Garden",
					IsActive:     true,
					IsOpen:       false,
					HasTarget:    true,
					TargetAmount: 900,
				}, nil
			},
		}
		log, _ := newTestLogger()

		svc := NewQueryService(log, repo)
		c, err := svc.FindCampaignByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, id, c.ID())
		assert.Equal(t, "School Garden", c.Title().Value())
		assert.True(t, c.Active())
		assert.False(t, c.Open())
		assert.Equal(t, int64(900), c.TargetAmount())
	})

	t.Run("absent campaign is nil without error", func(t *testing.T) {
		t.Parallel()

		repo := &repoMock{
			FindByIDFunc: func(_ context.Context, _ domain.EntityID) (*CampaignDTO, error) {
				return nil, nil
			},
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		c, err := svc.FindCampaignByID(context.Background(), domain.MustEntityID(99))

		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Empty(t, rec.entriesAt(slog.LevelError))
		assert.Empty(t, rec.entriesAt(slog.LevelWarn))
	})

	t.Run("repository failure is logged and returned", func(t *testing.T) {
		t.Parallel()

		repoErr := fmt.Errorf("%w: connection refused", domain.ErrRepository)
		repo := &repoMock{
			FindByIDFunc: func(_ context.Context, _ domain.EntityID) (*CampaignDTO, error) {
				return nil, repoErr
			},
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		c, err := svc.FindCampaignByID(context.Background(), domain.MustEntityID(99))

		require.ErrorIs(t, err, domain.ErrRepository)
		assert.Nil(t, c)

		errs := rec.entriesAt(slog.LevelError)
		require.Len(t, errs, 1)
		assert.Equal(t, "find_campaign_by_id", errs[0].attrs["operation"])
	})

	t.Run("corrupt record fails with assembly error", func(t *testing.T) {
		t.Parallel()

		repo := &repoMock{
			FindByIDFunc: func(_ context.Context, _ domain.EntityID) (*CampaignDTO, error) {
				return &CampaignDTO{ID: int64(12), Title: "   "}, nil
			},
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		c, err := svc.FindCampaignByID(context.Background(), domain.MustEntityID(12))

		require.ErrorIs(t, err, ErrAssembly)
		require.ErrorIs(t, err, domain.ErrInvalidCampaignTitle)
		assert.Nil(t, c)
		require.Len(t, rec.entriesAt(slog.LevelError), 1)
	})
}

func TestQueryService_FindAllCampaigns(t *testing.T) {
	t.Parallel()

	t.Run("assembles every stored campaign in order", func(t *testing.T) {
		t.Parallel()

		repo := &repoMock{
			FindAllFunc: func(_ context.Context) ([]CampaignDTO, error) {
				return []CampaignDTO{
					{ID: int64(1), Title: "First", IsActive: true, IsOpen: true},
					{ID: "0f81b0b0-0c8c-4a42-9dd5-6a445a5fd123", Title: "Second", HasTarget: true, TargetAmount: 100},
				}, nil
			},
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		campaigns, err := svc.FindAllCampaigns(context.Background())
		require.NoError(t, err)
		require.Len(t, campaigns, 2)

		assert.Equal(t, "First", campaigns[0].Title().Value())
		assert.Equal(t, "0f81b0b0-0c8c-4a42-9dd5-6a445a5fd123", campaigns[1].ID().String())

		debugs := rec.entriesAt(slog.LevelDebug)
		require.NotEmpty(t, debugs)
		last := debugs[len(debugs)-1]
		assert.Equal(t, "finding campaigns succeeded", last.msg)
		assert.EqualValues(t, 2, last.attrs["count"])
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		t.Parallel()

		repo := &repoMock{
			FindAllFunc: func(_ context.Context) ([]CampaignDTO, error) { return nil, nil },
		}
		log, _ := newTestLogger()

		svc := NewQueryService(log, repo)
		campaigns, err := svc.FindAllCampaigns(context.Background())

		require.NoError(t, err)
		assert.Empty(t, campaigns)
	})

	t.Run("repository failure is logged and returned", func(t *testing.T) {
		t.Parallel()

		repoErr := fmt.Errorf("%w: timeout", domain.ErrRepository)
		repo := &repoMock{
			FindAllFunc: func(_ context.Context) ([]CampaignDTO, error) { return nil, repoErr },
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		_, err := svc.FindAllCampaigns(context.Background())

		require.ErrorIs(t, err, domain.ErrRepository)
		require.Len(t, rec.entriesAt(slog.LevelError), 1)
	})

	t.Run("one corrupt record aborts the whole listing", func(t *testing.T) {
		t.Parallel()

		repo := &repoMock{
			FindAllFunc: func(_ context.Context) ([]CampaignDTO, error) {
				return []CampaignDTO{
					{ID: int64(1), Title: "Fine"},
					{ID: int64(-2), Title: "Broken"},
					{ID: int64(3), Title: "Never reached"},
				}, nil
			},
		}
		log, rec := newTestLogger()

		svc := NewQueryService(log, repo)
		campaigns, err := svc.FindAllCampaigns(context.Background())

		require.ErrorIs(t, err, ErrAssembly)
		require.ErrorIs(t, err, domain.ErrInvalidEntityID)
		assert.Nil(t, campaigns)
		require.Len(t, rec.entriesAt(slog.LevelError), 1)
	})
}
