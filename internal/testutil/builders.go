package testutil

import (
	"github.com/greenplate/admin-api/internal/domain/model"
)

// StallRequestBuilder provides a fluent interface for building CreateStallRequest objects for testing.
type StallRequestBuilder struct {
	req *model.CreateStallRequest
}

// NewStallRequest creates a new StallRequestBuilder with sensible defaults.
func NewStallRequest() *StallRequestBuilder {
	return &StallRequestBuilder{
		req: &model.CreateStallRequest{
			Name:   "Juice Junction",
			Email:  "juice@tint.edu.in",
			Status: model.StallStatusActive,
		},
	}
}

// WithName sets the stall name.
func (b *StallRequestBuilder) WithName(name string) *StallRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the stall contact email.
func (b *StallRequestBuilder) WithEmail(email string) *StallRequestBuilder {
	b.req.Email = email
	return b
}

// WithStatus sets the stall status.
func (b *StallRequestBuilder) WithStatus(status model.StallStatus) *StallRequestBuilder {
	b.req.Status = status
	return b
}

// Build returns the constructed request.
func (b *StallRequestBuilder) Build() *model.CreateStallRequest {
	req := *b.req
	return &req
}

// AllowListBuilder provides a fluent interface for building AllowList snapshots for testing.
type AllowListBuilder struct {
	list model.AllowList
}

// NewAllowList creates a new AllowListBuilder with sensible defaults.
func NewAllowList() *AllowListBuilder {
	return &AllowListBuilder{
		list: model.AllowList{
			TenantName: "Test College",
			Domains:    []string{"tint.edu.in"},
		},
	}
}

// WithTenantName sets the tenant display name.
func (b *AllowListBuilder) WithTenantName(name string) *AllowListBuilder {
	b.list.TenantName = name
	return b
}

// WithDomains replaces the domain set.
func (b *AllowListBuilder) WithDomains(domains ...string) *AllowListBuilder {
	b.list.Domains = domains
	return b
}

// Build returns the constructed allow-list.
func (b *AllowListBuilder) Build() *model.AllowList {
	list := b.list
	list.Domains = append([]string(nil), b.list.Domains...)
	return &list
}
