package service

import (
	"testing"

	"lms_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanAssign(t *testing.T) {
	// anyone with user management rights may create plain members
	assert.True(t, canAssign(model.Admin, model.Member))
	assert.True(t, canAssign(model.SuperAdmin, model.Member))

	// elevated roles are super admin territory
	assert.False(t, canAssign(model.Admin, model.Admin))
	assert.False(t, canAssign(model.Admin, model.SuperAdmin))
	assert.True(t, canAssign(model.SuperAdmin, model.Admin))
	assert.True(t, canAssign(model.SuperAdmin, model.SuperAdmin))
}

func TestValidRole(t *testing.T) {
	assert.True(t, validRole(model.Member))
	assert.True(t, validRole(model.Admin))
	assert.True(t, validRole(model.SuperAdmin))
	assert.False(t, validRole("moderator"))
	assert.False(t, validRole(""))
}
