package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uar-project/uar/pkg/errclass"
	"github.com/uar-project/uar/pkg/model"
)

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "Admin", model.RoleAdmin.Label())
	assert.Equal(t, "User", model.RoleUser.Label())
	assert.Equal(t, "Guest", model.RoleGuest.Label())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, model.RoleAdmin.Valid())
	assert.True(t, model.RoleUser.Valid())
	assert.True(t, model.RoleGuest.Valid())
	assert.False(t, model.Role("Owner").Valid())
	assert.False(t, model.Role("").Valid())
	// Labels are case-sensitive
	assert.False(t, model.Role("admin").Valid())
}

func TestParseRole(t *testing.T) {
	r, err := model.ParseRole("Guest")
	require.NoError(t, err)
	assert.Equal(t, model.RoleGuest, r)
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := model.ParseRole("Superuser")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrRoleUnknown))
}
