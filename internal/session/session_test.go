package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())

	id := Identity{Name: "Ada Lovelace", Email: "ada@example.com", Role: "admin"}
	s.Login("token-123", id)

	assert.True(t, s.Authenticated())
	assert.Equal(t, "token-123", s.Token())
	assert.Equal(t, id, s.Identity())

	s.Logout()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Equal(t, Identity{}, s.Identity())
}

func TestLoginReplacesPreviousIdentity(t *testing.T) {
	s := New()
	s.Login("t1", Identity{Name: "First", Email: "first@example.com"})
	s.Login("t2", Identity{Name: "Second", Email: "second@example.com"})

	assert.Equal(t, "t2", s.Token())
	assert.Equal(t, "Second", s.Identity().Name)
}
