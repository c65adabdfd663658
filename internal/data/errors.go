package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrTenantNotFound is returned when the configured tenant row is missing.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrStallNotFound is returned when a stall is not found.
	ErrStallNotFound = errors.New("stall not found")
	// ErrDomainNotPresent is returned when removing a domain the tenant does not hold.
	ErrDomainNotPresent = errors.New("domain not present in allow-list")
)
