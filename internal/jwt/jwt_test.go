package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "user@tezu.ac.in")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token yields the session user back
	user, err := j.GetSessionUser(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "user@tezu.ac.in", user.Email)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "user@tezu.ac.in")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := j.GetSessionUser(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	user, err := j.GetSessionUser(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New(), "user@tezu.ac.in")
	assert.NoError(t, err)

	user, err := j2.GetSessionUser(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
