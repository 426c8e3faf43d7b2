package jwtutil

import (
	"testing"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdmin() *model.AdminUser {
	return &model.AdminUser{
		ID:       3,
		Email:    "reviewer@case.edu",
		Name:     "Reviewer",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken(testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.AdminID)
	assert.Equal(t, "reviewer@case.edu", claims.Email)
	assert.Equal(t, "Reviewer", claims.Name)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	token, err := GenerateToken(testAdmin())
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	token, err := GenerateToken(testAdmin())
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "another-key", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
