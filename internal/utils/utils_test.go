package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, CheckPasswordHash("Secret123", hash))
	assert.False(t, CheckPasswordHash("secret123", hash))
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	hash, err := HashPassword("Secret123", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Secret123", true},
		{"Sécret123", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail(SanitizeEmail("  User@Example.COM ")))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail("user example.com"))
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type body struct {
		Password string `binding:"required,password"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&body{Password: "Secret123"}))
	assert.Error(t, binding.Validator.ValidateStruct(&body{Password: "weak"}))
}
