package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("fetching cart: %w", ErrNotFound)))
	assert.False(t, IsNotFound(ErrConflict))
	assert.False(t, IsNotFound(nil))
}

func TestAuthErrorMessages(t *testing.T) {
	kinds := []AuthErrorKind{
		AuthUnknown, AuthBadCredentials, AuthStateMismatch,
		AuthCancelled, AuthUnauthorizedOrigin, AuthExchangeFailed,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		msg := k.Message()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "message for kind %d reused", k)
		seen[msg] = true
	}
}
