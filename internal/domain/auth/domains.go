package auth

import (
	"regexp"
	"strings"
)

// reEmail matches a conventional local@domain.tld shape. Deliberately loose:
// the identity provider is the authority on whether the account exists; this
// only blocks obviously malformed input before any remote call.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has a conventional local@domain.tld shape.
func ValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

// NormalizeEmail lowercases and trims an email for comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain returns the domain segment after the single @, lowercased.
// Returns "" when the address does not contain exactly one @ with a
// non-empty local part.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	if strings.Contains(email[:at], "@") {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// EmailDomainAllowed reports whether the exact domain segment of email is a
// member of domains, case-insensitively.
//
// The comparison must be an exact match on the full domain segment, never a
// suffix check on the whole address: a naive "ends with" test would admit
// evil-tint.edu.in when only tint.edu.in is allowed.
func EmailDomainAllowed(email string, domains []string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	for _, d := range domains {
		if domain == strings.ToLower(strings.TrimSpace(d)) {
			return true
		}
	}
	return false
}
