package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}

	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "Valid password", password: "securepassword"},
		{name: "Empty password", password: "", expectedError: ErrEmptyPassword},
		{name: "Longer than bcrypt accepts", password: string(make([]byte, 80)), expectedError: bcrypt.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hashedPassword)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.password, hashedPassword)
			cost, err := bcrypt.Cost([]byte(hashedPassword))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hashedPassword, err := (&HashService{}).HashPassword("securepassword")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}
	stored, err := hashService.HashPassword("securepassword")
	require.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		expectMatch    bool
	}{
		{name: "Matching password", hashedPassword: stored, password: "securepassword", expectMatch: true},
		{name: "Wrong password", hashedPassword: stored, password: "wrongpassword", expectMatch: false},
		{name: "Stored value is not a hash", hashedPassword: "securepassword", password: "securepassword", expectMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}
