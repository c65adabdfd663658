package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxStallNameLen = 255

// StallStatus controls whether a stall is operating.
type StallStatus string

const (
	StallStatusActive   StallStatus = "active"
	StallStatusInactive StallStatus = "inactive"
)

// Valid reports whether the stall status is supported.
func (s StallStatus) Valid() bool {
	switch s {
	case StallStatusActive, StallStatusInactive:
		return true
	default:
		return false
	}
}

// normalizeStallStatus trims and lowercases the input, defaulting to active when empty.
func normalizeStallStatus(v StallStatus) StallStatus {
	normalized := StallStatus(strings.ToLower(strings.TrimSpace(string(v))))
	if normalized == "" {
		return StallStatusActive
	}
	return normalized
}

// Stall represents a food stall registered under the tenant.
type Stall struct {
	ID         string      `json:"id"          db:"id"`
	Name       string      `json:"name"        db:"name"`
	Email      string      `json:"email"       db:"email"`
	IsVerified bool        `json:"is_verified" db:"is_verified"`
	Status     StallStatus `json:"status"      db:"status"`
	CreatedBy  string      `json:"created_by"  db:"created_by"`
	CreatedAt  time.Time   `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"  db:"updated_at"`
}

// CreateStallRequest represents parameters to create a Stall.
// IsVerified and CreatedBy are always server-assigned, never client input.
type CreateStallRequest struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Status StallStatus `json:"status,omitempty"`
}

// UpdateStallRequest represents parameters to update a Stall.
type UpdateStallRequest struct {
	Name       *string      `json:"name,omitempty"`
	Email      *string      `json:"email,omitempty"`
	IsVerified *bool        `json:"is_verified,omitempty"`
	Status     *StallStatus `json:"status,omitempty"`
}

// Validate validates CreateStallRequest.
func (r *CreateStallRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxStallNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	r.Status = normalizeStallStatus(r.Status)
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateStallRequest.
func (r *UpdateStallRequest) HasUpdates() bool {
	return r.Name != nil || r.Email != nil || r.IsVerified != nil || r.Status != nil
}

// Validate validates UpdateStallRequest, ensuring at least one field is set and values are sane.
func (r *UpdateStallRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxStallNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		return errors.New("email cannot be empty")
	}
	if r.Status != nil {
		status := normalizeStallStatus(*r.Status)
		if !status.Valid() {
			return errors.New("invalid status")
		}
		*r.Status = status
	}
	return nil
}

// StallStats summarizes stall counts for the dashboard.
type StallStats struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Active   int `json:"active"`
}
