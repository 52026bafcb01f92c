package auth

import (
	"testing"
	"time"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testUser() *models.User {
	return &models.User{
		Model:    gorm.Model{ID: 7},
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Role:     models.UserRoleTeacher,
	}
}

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "teacher", claims.Role)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewService("secret-a", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	assert.True(t, CheckPassword("pass1234", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
