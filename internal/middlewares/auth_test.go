package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/parts-store/internal/jwt"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/stretchr/testify/assert"
)

func adminClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:   1,
		Username: "root",
		Role:     models.RoleAdmin,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "sess-1",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(tok *MockTokener, rev *MockRevocationChecker)
		withRevoker  bool
		expectAccess models.Access
		expectUser   string
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, _ *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectAccess: models.AccessAnonymous,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, _ *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, errors.New("invalid token"))
			},
			expectAccess: models.AccessAnonymous,
		},
		{
			name: "ValidTokenWithoutRevocationStore",
			mockSetup: func(tok *MockTokener, _ *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(adminClaims(), nil)
			},
			expectAccess: models.AccessAdmin,
			expectUser:   "root",
		},
		{
			name:        "ValidTokenNotRevoked",
			withRevoker: true,
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(adminClaims(), nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "sess-1").Return(false, nil)
			},
			expectAccess: models.AccessAdmin,
			expectUser:   "root",
		},
		{
			name:        "RevokedToken",
			withRevoker: true,
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(adminClaims(), nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "sess-1").Return(true, nil)
			},
			expectAccess: models.AccessAnonymous,
		},
		{
			name:        "RevocationStoreDown",
			withRevoker: true,
			mockSetup: func(tok *MockTokener, rev *MockRevocationChecker) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(adminClaims(), nil)
				rev.EXPECT().IsRevoked(gomock.Any(), "sess-1").Return(false, errors.New("redis down"))
			},
			expectAccess: models.AccessAnonymous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockRevoker := NewMockRevocationChecker(ctrl)
			tt.mockSetup(mockTokener, mockRevoker)

			var revocations RevocationChecker
			if tt.withRevoker {
				revocations = mockRevoker
			}

			var got models.Identity
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got = IdentityFromContext(r.Context())
			})

			rr := httptest.NewRecorder()
			AuthMiddleware(mockTokener, revocations)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.expectAccess, got.Access())
			assert.Equal(t, tt.expectUser, got.Username)
		})
	}
}

func TestRequireUserAndAdmin(t *testing.T) {
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	user := models.Identity{UserID: 2, Username: "alice", Role: models.RoleUser}
	admin := models.Identity{UserID: 1, Username: "root", Role: models.RoleAdmin}

	tests := []struct {
		name     string
		guard    func(http.Handler) func(http.Handler) http.Handler
		identity *models.Identity
		want     int
	}{
		{name: "user gate anonymous", guard: RequireUser, want: http.StatusUnauthorized},
		{name: "user gate user", guard: RequireUser, identity: &user, want: http.StatusOK},
		{name: "user gate admin", guard: RequireUser, identity: &admin, want: http.StatusOK},
		{name: "admin gate anonymous", guard: RequireAdmin, want: http.StatusUnauthorized},
		{name: "admin gate user", guard: RequireAdmin, identity: &user, want: http.StatusUnauthorized},
		{name: "admin gate admin", guard: RequireAdmin, identity: &admin, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), *tt.identity))
			}
			rr := httptest.NewRecorder()
			tt.guard(deny)(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestIdentityFromContext_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IdentityFromContext(req.Context()).IsAuthenticated())
}
