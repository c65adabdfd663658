package config

import "errors"

// TenantConfig identifies the single tenant (college) this deployment serves.
// The original system hardcoded the college identifier; it is injected here
// instead so the same binary can serve any tenant.
type TenantConfig struct {
	// ID is the tenant row identifier in the tenants table.
	ID string `env:"ID,required"`
}

// Validate checks that the tenant configuration is usable.
func (t *TenantConfig) Validate() error {
	if t.ID == "" {
		return errors.New("TENANT_ID is required")
	}
	return nil
}
