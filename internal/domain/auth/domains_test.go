package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	t.Run("accepts conventional addresses", func(t *testing.T) {
		valid := []string{
			"admin@tint.edu.in",
			"first.last@example.com",
			"user+tag@sub.domain.org",
		}
		for _, email := range valid {
			assert.True(t, ValidEmail(email), email)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		invalid := []string{
			"",
			"no-at-sign",
			"@missing-local.com",
			"missing-domain@",
			"missing-tld@host",
			"spaces in@local.com",
			"user@do main.com",
		}
		for _, email := range invalid {
			assert.False(t, ValidEmail(email), email)
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@tint.edu.in", NormalizeEmail("  Admin@TINT.edu.IN  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestEmailDomain(t *testing.T) {
	t.Run("extracts lowercased domain", func(t *testing.T) {
		assert.Equal(t, "tint.edu.in", EmailDomain("admin@TINT.edu.in"))
	})

	t.Run("rejects missing or empty parts", func(t *testing.T) {
		for _, email := range []string{"", "no-at", "@tint.edu.in", "admin@", "a@b@c.com"} {
			assert.Empty(t, EmailDomain(email), email)
		}
	})
}

func TestEmailDomainAllowed(t *testing.T) {
	domains := []string{"tint.edu.in", "Partner.AC.IN"}

	t.Run("exact match", func(t *testing.T) {
		assert.True(t, EmailDomainAllowed("admin@tint.edu.in", domains))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, EmailDomainAllowed("Admin@TINT.EDU.IN", domains))
		assert.True(t, EmailDomainAllowed("x@partner.ac.in", domains))
	})

	t.Run("superstring domains are rejected", func(t *testing.T) {
		// A suffix check would wrongly admit these.
		assert.False(t, EmailDomainAllowed("attacker@evil-tint.edu.in", domains))
		assert.False(t, EmailDomainAllowed("attacker@xtint.edu.in", domains))
	})

	t.Run("subdomains are rejected", func(t *testing.T) {
		assert.False(t, EmailDomainAllowed("user@mail.tint.edu.in", domains))
	})

	t.Run("empty allow-list admits nobody", func(t *testing.T) {
		assert.False(t, EmailDomainAllowed("admin@tint.edu.in", nil))
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		assert.False(t, EmailDomainAllowed("not-an-email", domains))
	})
}
