package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/repositories"
	"github.com/sbilibin2017/parts-store/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (int64, error)
}

// SessionIssuer issues session tokens.
type SessionIssuer interface {
	Generate(ctx context.Context, identity models.Identity) (string, error)
}

// SessionRevoker invalidates sessions before they expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
}

// credentials is the validated registration input.
type credentials struct {
	Username string      `validate:"required,max=80"`
	Password string      `validate:"required,password"`
	Role     models.Role `validate:"oneof=user admin"`
}

// dummyHash is compared against when the username is unknown, so a failed
// login costs the same whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	issuer  SessionIssuer
	revoker SessionRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil, in
// which case logout only drops the client's cookie.
func NewAuthService(reader UserReader, writer UserWriter, issuer SessionIssuer, revoker SessionRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		issuer:  issuer,
		revoker: revoker,
	}
}

// Register creates a user. An empty role means RoleUser; only an admin
// requester may create another admin.
func (svc *AuthService) Register(ctx context.Context, requester models.Identity, username, password string, role models.Role) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	if err := validation.Struct(credentials{Username: username, Password: password, Role: role}, ""); err != nil {
		return nil, err
	}
	if role == models.RoleAdmin && !requester.IsAdmin() {
		logger.Log.Warnw("admin registration denied", "username", username, "requester", requester.Username)
		return nil, ErrUnauthorized
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: string(hashedPassword), Role: role}
	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	user.ID = id

	logger.Log.Infow("user registered", "username", username, "role", role)
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account unless the username is taken.
func (svc *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := svc.Register(ctx, models.System(), username, password, models.RoleAdmin)
	if errors.Is(err, ErrDuplicateUsername) {
		return nil
	}
	return err
}

// Login authenticates a user and returns a session token. Unknown usernames
// and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.issuer.Generate(ctx, models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	logger.Log.Infow("user logged in", "username", username, "role", user.Role)
	return token, nil
}

// Logout revokes the requester's session for the rest of its lifetime.
func (svc *AuthService) Logout(ctx context.Context, requester models.Identity) error {
	if svc.revoker == nil || !requester.IsAuthenticated() || requester.SessionID == "" {
		return nil
	}
	if err := svc.revoker.Revoke(ctx, requester.SessionID, time.Until(requester.ExpiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke session", "username", requester.Username, "err", err)
		return err
	}
	logger.Log.Infow("user logged out", "username", requester.Username)
	return nil
}
