package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/parts-store/internal/jwt"
	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports sessions that were logged out before expiry.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by AuthMiddleware, or
// Anonymous when there is none.
func IdentityFromContext(ctx context.Context) models.Identity {
	if identity, ok := ctx.Value(identityKey{}).(models.Identity); ok {
		return identity
	}
	return models.Anonymous()
}

// AuthMiddleware resolves the caller's identity from the session token and
// stores it in the request context. Missing, invalid, expired or revoked
// tokens resolve to Anonymous; the request always proceeds. revocations may
// be nil.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			identity := resolveIdentity(ctx, r, tokener, revocations)
			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
		})
	}
}

func resolveIdentity(ctx context.Context, r *http.Request, tokener Tokener, revocations RevocationChecker) models.Identity {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return models.Anonymous()
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("session rejected", "err", err)
		return models.Anonymous()
	}

	if revocations != nil && claims.ID != "" {
		revoked, err := revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			// Fail closed: an unverifiable session grants nothing.
			logger.Log.Errorw("failed to check session revocation", "session_id", claims.ID, "err", err)
			return models.Anonymous()
		}
		if revoked {
			logger.Log.Infow("revoked session used", "session_id", claims.ID, "username", claims.Username)
			return models.Anonymous()
		}
	}

	return claims.Identity()
}

// RequireUser lets any logged-in identity through and sends everyone else to deny.
func RequireUser(deny http.Handler) func(http.Handler) http.Handler {
	return require(deny, models.Identity.IsAuthenticated)
}

// RequireAdmin lets only admins through and sends everyone else to deny.
func RequireAdmin(deny http.Handler) func(http.Handler) http.Handler {
	return require(deny, models.Identity.IsAdmin)
}

func require(deny http.Handler, allowed func(models.Identity) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if !allowed(identity) {
				logger.Log.Infow("access denied", "path", r.URL.Path, "username", identity.Username, "role", identity.Role)
				deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
