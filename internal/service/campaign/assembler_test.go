package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundrik/backend/internal/domain"
)

func TestAssembleCampaign(t *testing.T) {
	t.Parallel()

	t.Run("valid dto yields a campaign", func(t *testing.T) {
		t.Parallel()

		dto := CampaignDTO{
			ID:           int64(5),
			Title:        "Food Drive",
			IsActive:     true,
			IsOpen:       true,
			HasTarget:    true,
			TargetAmount: 2500,
		}

		c, err := AssembleCampaign(dto)
		require.NoError(t, err)

		assert.Equal(t, domain.MustEntityID(5), c.ID())
		assert.Equal(t, "Food Drive", c.Title().Value())
		assert.True(t, c.Active())
		assert.True(t, c.Open())
		assert.True(t, c.HasTarget())
		assert.Equal(t, int64(2500), c.TargetAmount())
	})

	t.Run("round trip through dto preserves the campaign", func(t *testing.T) {
		t.Parallel()

		id, err := domain.ParseEntityID("0F81B0B0-0C8C-4A42-9DD5-6A445A5FD123")
		require.NoError(t, err)
		title, err := domain.NewCampaignTitle("Winter Shelter")
		require.NoError(t, err)
		target, err := domain.NewCampaignTarget(false, 0)
		require.NoError(t, err)
		original := domain.NewCampaign(id, title, false, true, target)

		back, err := AssembleCampaign(CampaignToDTO(original))
		require.NoError(t, err)
		assert.Equal(t, original, back)
	})

	tests := []struct {
		name    string
		dto     CampaignDTO
		wantErr error
	}{
		{
			name:    "invalid id",
			dto:     CampaignDTO{ID: int64(0), Title: "Fine"},
			wantErr: domain.ErrInvalidEntityID,
		},
		{
			name:    "malformed uuid id",
			dto:     CampaignDTO{ID: "not-a-uuid", Title: "Fine"},
			wantErr: domain.ErrInvalidEntityID,
		},
		{
			name:    "blank title",
			dto:     CampaignDTO{ID: int64(1), Title: "  \t "},
			wantErr: domain.ErrInvalidCampaignTitle,
		},
		{
			name:    "enabled target without amount",
			dto:     CampaignDTO{ID: int64(1), Title: "Fine", HasTarget: true, TargetAmount: 0},
			wantErr: domain.ErrInvalidCampaignTarget,
		},
		{
			name:    "disabled target with amount",
			dto:     CampaignDTO{ID: int64(1), Title: "Fine", HasTarget: false, TargetAmount: 10},
			wantErr: domain.ErrInvalidCampaignTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := AssembleCampaign(tt.dto)
			require.ErrorIs(t, err, ErrAssembly)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
