package kratos

import (
	"errors"
	"net/http"
	"testing"
	"time"

	ory "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/greenplate/admin-api/internal/errors"
)

func TestNewProvider(t *testing.T) {
	t.Run("requires a public URL", func(t *testing.T) {
		_, err := NewProvider(ProviderConfig{})
		assert.Error(t, err)
	})

	t.Run("builds a client", func(t *testing.T) {
		p, err := NewProvider(ProviderConfig{PublicURL: "http://kratos:4433"})
		require.NoError(t, err)
		assert.NotNil(t, p.client)
	})
}

func TestClassify(t *testing.T) {
	cause := errors.New("upstream failure")

	tests := []struct {
		name   string
		resp   *http.Response
		expect apperrors.ErrorCode
	}{
		{"no response means unreachable", nil, apperrors.ErrCodeServiceUnavailable},
		{"404 is an unknown account", &http.Response{StatusCode: http.StatusNotFound}, apperrors.ErrCodeAccountNotFound},
		{"400 is a bad credential", &http.Response{StatusCode: http.StatusBadRequest}, apperrors.ErrCodeInvalidCredential},
		{"401 is a bad credential", &http.Response{StatusCode: http.StatusUnauthorized}, apperrors.ErrCodeInvalidCredential},
		{"429 is rate limited", &http.Response{StatusCode: http.StatusTooManyRequests}, apperrors.ErrCodeRateLimited},
		{"5xx is unavailable", &http.Response{StatusCode: http.StatusBadGateway}, apperrors.ErrCodeServiceUnavailable},
		{"anything else is unknown", &http.Response{StatusCode: http.StatusTeapot}, apperrors.ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.resp, cause, "submit login flow")
			assert.Equal(t, tt.expect, apperrors.CodeOf(err))
			assert.ErrorIs(t, err, cause, "the cause stays on the chain for logs")
		})
	}
}

func TestIdentityFromSession(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC()

	t.Run("maps traits and token", func(t *testing.T) {
		session := &ory.Session{
			ExpiresAt: &expires,
			Identity: &ory.Identity{
				Id:     "identity-1",
				Traits: map[string]interface{}{"email": "Admin@Tint.edu.in"},
			},
		}

		identity, err := identityFromSession(session, "session-token")

		require.NoError(t, err)
		assert.Equal(t, "identity-1", identity.UserID)
		assert.Equal(t, "admin@tint.edu.in", identity.Email, "emails are normalized on the way in")
		assert.Equal(t, "session-token", identity.Token)
		assert.True(t, identity.ExpiresAt.Equal(expires))
	})

	t.Run("rejects a session without an identity", func(t *testing.T) {
		_, err := identityFromSession(&ory.Session{}, "session-token")
		assert.Error(t, err)
	})

	t.Run("rejects an identity without an email trait", func(t *testing.T) {
		session := &ory.Session{
			Identity: &ory.Identity{Id: "identity-1", Traits: map[string]interface{}{}},
		}
		_, err := identityFromSession(session, "session-token")
		assert.Error(t, err)
	})
}
