package domain

import "fmt"

// CampaignTarget is the fundraising goal of a campaign.
//
// The enablement flag and the amount are mutually consistent by construction:
// enabled targeting requires a positive amount, disabled targeting requires a
// zero amount. Amounts are minor currency units with no implicit scaling.
// Comparable value object; == is value equality.
type CampaignTarget struct {
	enabled bool
	amount  int64
}

// NewCampaignTarget validates both directions of the flag/amount invariant
// and fails with ErrInvalidCampaignTarget carrying the offending amount.
func NewCampaignTarget(enabled bool, amount int64) (CampaignTarget, error) {
	if enabled && amount <= 0 {
		return CampaignTarget{}, fmt.Errorf(
			"%w: amount must be positive when targeting is enabled, got %d", ErrInvalidCampaignTarget, amount)
	}
	if !enabled && amount != 0 {
		return CampaignTarget{}, fmt.Errorf(
			"%w: amount must be zero when targeting is disabled, got %d", ErrInvalidCampaignTarget, amount)
	}
	return CampaignTarget{enabled: enabled, amount: amount}, nil
}

// Enabled reports whether targeting is enabled.
func (t CampaignTarget) Enabled() bool { return t.enabled }

// Amount returns the target amount: positive when enabled, zero when disabled.
func (t CampaignTarget) Amount() int64 { return t.amount }
