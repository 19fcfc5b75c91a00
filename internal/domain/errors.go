package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrInvalidEntityID indicates an identifier that is neither a positive
	// integer nor a valid UUID.
	ErrInvalidEntityID = errors.New("invalid entity id")

	// ErrInvalidCampaignTitle indicates an empty or whitespace-only title.
	ErrInvalidCampaignTitle = errors.New("invalid campaign title")

	// ErrInvalidCampaignTarget indicates an inconsistent targeting flag/amount pair.
	ErrInvalidCampaignTarget = errors.New("invalid campaign target")

	// ErrCampaignChange indicates a campaign transition that would be a no-op
	// or would violate a transition rule. It signals misuse by the caller,
	// not bad external input.
	ErrCampaignChange = errors.New("campaign state change rejected")

	// ErrRepository is the marker wrapped by every persistence failure.
	// The application core matches this marker only and never inspects the
	// adapter-specific cause behind it.
	ErrRepository = errors.New("campaign repository failure")

	// ErrNotFound and ErrAlreadyExists are detail sentinels that adapters
	// wrap alongside ErrRepository so transports can map status codes.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
