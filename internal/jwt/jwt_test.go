package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/parts-store/internal/models"
)

var alice = models.Identity{UserID: 7, Username: "alice", Role: models.RoleAdmin}

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, alice)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)

	identity := claims.Identity()
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, claims.ID, identity.SessionID)
	assert.True(t, identity.IsAdmin())
	assert.WithinDuration(t, time.Now().Add(time.Minute), identity.ExpiresAt, 2*time.Second)
}

func TestJWT_SessionIDsAreUnique(t *testing.T) {
	j := New()
	ctx := context.Background()

	t1, err := j.Generate(ctx, alice)
	assert.NoError(t, err)
	t2, err := j.Generate(ctx, alice)
	assert.NoError(t, err)

	c1, _ := j.GetClaims(ctx, t1)
	c2, _ := j.GetClaims(ctx, t2)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, alice)
	assert.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, alice)
	assert.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"Cookie", "cookietoken", "", "cookietoken", false},
		{"CookieWinsOverHeader", "cookietoken", "Bearer headertoken", "cookietoken", false},
		{"ValidBearer", "", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "", "Token mytoken123", "", true},
		{"TooManyParts", "", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
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
