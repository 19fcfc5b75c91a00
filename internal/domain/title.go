package domain

import (
	"fmt"
	"strings"
)

// CampaignTitle is the validated title of a fundraising campaign: trimmed and
// never empty. Comparable value object; == is value equality.
type CampaignTitle struct {
	value string
}

// NewCampaignTitle trims the input and rejects empty or whitespace-only
// titles with ErrInvalidCampaignTitle.
func NewCampaignTitle(raw string) (CampaignTitle, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CampaignTitle{}, fmt.Errorf("%w: must not be empty or whitespace", ErrInvalidCampaignTitle)
	}
	return CampaignTitle{value: trimmed}, nil
}

// Value returns the validated title string.
func (t CampaignTitle) Value() string { return t.value }

func (t CampaignTitle) String() string { return t.value }
