// Package domain holds the fundraising campaign aggregate and its value
// objects. Everything here is immutable: state transitions return new
// snapshots and never touch the receiver, so values are safe to share across
// goroutines without locking.
package domain

import "fmt"

// Campaign is an immutable snapshot of a fundraising campaign.
//
// The active, open, and target axes are independent: no campaign-level
// invariant couples them beyond the validity of each value object. Every
// transition must actually change something; a would-be no-op (activating an
// active campaign, renaming to the same title, ...) fails with
// ErrCampaignChange instead of silently succeeding.
type Campaign struct {
	id     EntityID
	title  CampaignTitle
	active bool
	open   bool
	target CampaignTarget
}

// NewCampaign assembles a campaign from already-validated parts.
func NewCampaign(id EntityID, title CampaignTitle, active, open bool, target CampaignTarget) Campaign {
	return Campaign{id: id, title: title, active: active, open: open, target: target}
}

// ID returns the campaign identifier.
func (c Campaign) ID() EntityID { return c.id }

// Title returns the campaign title value object.
func (c Campaign) Title() CampaignTitle { return c.title }

// Active reports whether the campaign is active.
func (c Campaign) Active() bool { return c.active }

// Open reports whether the campaign is open for donations.
func (c Campaign) Open() bool { return c.open }

// Target returns the campaign target value object.
func (c Campaign) Target() CampaignTarget { return c.target }

// HasTarget reports whether targeting is enabled.
func (c Campaign) HasTarget() bool { return c.target.enabled }

// TargetAmount returns the target amount, zero when targeting is disabled.
func (c Campaign) TargetAmount() int64 { return c.target.amount }

// Rename returns a copy with the new title. The raw title is validated first;
// renaming to the current (post-trim) title is rejected.
func (c Campaign) Rename(raw string) (Campaign, error) {
	title, err := NewCampaignTitle(raw)
	if err != nil {
		return Campaign{}, err
	}
	if title == c.title {
		return Campaign{}, fmt.Errorf(
			"%w: title must differ from the current one, got %q", ErrCampaignChange, title.Value())
	}
	c.title = title
	return c, nil
}

// Activate returns an active copy; fails if the campaign is already active.
func (c Campaign) Activate() (Campaign, error) {
	if c.active {
		return Campaign{}, fmt.Errorf("%w: campaign is already active", ErrCampaignChange)
	}
	c.active = true
	return c, nil
}

// Deactivate returns an inactive copy; fails if already inactive.
func (c Campaign) Deactivate() (Campaign, error) {
	if !c.active {
		return Campaign{}, fmt.Errorf("%w: campaign is already inactive", ErrCampaignChange)
	}
	c.active = false
	return c, nil
}

// OpenForDonations returns an open copy; fails if already open.
func (c Campaign) OpenForDonations() (Campaign, error) {
	if c.open {
		return Campaign{}, fmt.Errorf("%w: campaign is already open", ErrCampaignChange)
	}
	c.open = true
	return c, nil
}

// Close returns a closed copy; fails if already closed.
func (c Campaign) Close() (Campaign, error) {
	if !c.open {
		return Campaign{}, fmt.Errorf("%w: campaign is already closed", ErrCampaignChange)
	}
	c.open = false
	return c, nil
}

// EnableTarget returns a copy with targeting enabled at the given amount.
// Re-enabling with the current amount is a no-op and is rejected.
func (c Campaign) EnableTarget(amount int64) (Campaign, error) {
	target, err := NewCampaignTarget(true, amount)
	if err != nil {
		return Campaign{}, err
	}
	if target == c.target {
		return Campaign{}, fmt.Errorf(
			"%w: target amount must differ from the current one, got %d", ErrCampaignChange, amount)
	}
	c.target = target
	return c, nil
}

// DisableTarget returns a copy with targeting disabled (amount zero); fails
// if targeting is already disabled.
func (c Campaign) DisableTarget() (Campaign, error) {
	if !c.target.enabled {
		return Campaign{}, fmt.Errorf("%w: target is already disabled", ErrCampaignChange)
	}
	c.target = CampaignTarget{}
	return c, nil
}

// SetTargetAmount is sugar: zero disables targeting, a positive amount
// enables or updates it. Negative amounts fail target validation.
func (c Campaign) SetTargetAmount(amount int64) (Campaign, error) {
	if amount == 0 {
		return c.DisableTarget()
	}
	return c.EnableTarget(amount)
}
