//go:build unit

package main

import (
	"testing"

	"meeting-room-reservation/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUser(t *testing.T) {
	u, err := buildUser(" dean@example.ac.th ", "Dean", "executive")
	require.NoError(t, err)
	assert.Equal(t, "dean@example.ac.th", u.Email().Value())
	assert.Equal(t, user.RoleExecutive, u.Role())
	assert.True(t, u.IsActive())

	_, err = buildUser("not-an-email", "", "user")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = buildUser("dean@example.ac.th", "", "janitor")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
