package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAuthenticated(t *testing.T) {
	t.Run("requires both the flag and an identity", func(t *testing.T) {
		sess := Session{
			State:             StateAuthenticated,
			IsAuthorizedAdmin: true,
			Identity:          &Identity{Email: "admin@tint.edu.in"},
		}
		assert.True(t, sess.Authenticated())
	})

	t.Run("flag without identity is not authenticated", func(t *testing.T) {
		sess := Session{State: StateAuthenticated, IsAuthorizedAdmin: true}
		assert.False(t, sess.Authenticated())
	})

	t.Run("identity without the flag is not authenticated", func(t *testing.T) {
		sess := Session{
			State:    StateDenied,
			Identity: &Identity{Email: "x@evil-tint.edu.in"},
		}
		assert.False(t, sess.Authenticated())
	})
}

func TestSessionConstructors(t *testing.T) {
	assert.Equal(t, StateInitializing, Initial().State)
	assert.False(t, Initial().Authenticated())

	cleared := Cleared()
	assert.Equal(t, StateUnauthenticated, cleared.State)
	assert.Nil(t, cleared.Identity)
	assert.False(t, cleared.IsAuthorizedAdmin)
}
