package auth_test

import (
	"testing"

	"go-hiring-portal/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-password"))
	assert.False(t, auth.CheckPassword(hash, "wrong-password"))
}
