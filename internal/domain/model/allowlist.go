package model

import (
	"regexp"
	"strings"
)

// reDomain matches a conventional registrable domain: dot-separated labels of
// letters/digits/hyphens ending in an alphabetic TLD of at least two
// characters. Hyphens may not lead or trail a label, and the pattern rejects
// leading/trailing dots outright.
var reDomain = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// AllowList is the tenant's snapshot of permitted email domains plus the
// tenant display name. It is fetched fresh per authorization decision and
// never cached beyond a single in-memory value.
type AllowList struct {
	TenantName string   `json:"tenant_name"`
	Domains    []string `json:"domains"`
}

// Contains reports whether domain (compared lowercased) is in the snapshot.
func (a *AllowList) Contains(domain string) bool {
	domain = NormalizeDomain(domain)
	for _, d := range a.Domains {
		if NormalizeDomain(d) == domain {
			return true
		}
	}
	return false
}

// NormalizeDomain lowercases and trims a domain entry.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// ValidDomain reports whether domain has a valid registrable-domain format.
func ValidDomain(domain string) bool {
	if strings.ContainsAny(domain, " \t") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return reDomain.MatchString(domain)
}
