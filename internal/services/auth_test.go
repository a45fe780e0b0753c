package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/repositories"
	"github.com/sbilibin2017/parts-store/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var (
	anonymous = models.Anonymous()
	alice     = models.Identity{UserID: 2, Username: "alice", Role: models.RoleUser, SessionID: "s-alice"}
	root      = models.Identity{UserID: 1, Username: "root", Role: models.RoleAdmin, SessionID: "s-root"}
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockIssuer := services.NewMockSessionIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockIssuer, nil)

	tests := []struct {
		name         string
		requester    models.Identity
		username     string
		password     string
		role         models.Role
		existingUser *models.User
		readerErr    error
		writerErr    error
		expectRead   bool
		expectWrite  bool
		wantRole     models.Role
		wantErr      error
	}{
		{
			name:        "successful registration defaults to user",
			requester:   anonymous,
			username:    "alice",
			password:    "pass123",
			expectRead:  true,
			expectWrite: true,
			wantRole:    models.RoleUser,
		},
		{
			name:        "admin creates admin",
			requester:   root,
			username:    "ops",
			password:    "pass123",
			role:        models.RoleAdmin,
			expectRead:  true,
			expectWrite: true,
			wantRole:    models.RoleAdmin,
		},
		{
			name:      "anonymous cannot create admin",
			requester: anonymous,
			username:  "mallory",
			password:  "pass123",
			role:      models.RoleAdmin,
			wantErr:   services.ErrUnauthorized,
		},
		{
			name:      "user cannot create admin",
			requester: alice,
			username:  "mallory",
			password:  "pass123",
			role:      models.RoleAdmin,
			wantErr:   services.ErrUnauthorized,
		},
		{
			name:      "unknown role",
			requester: anonymous,
			username:  "eve",
			password:  "pass123",
			role:      "superuser",
			wantErr:   services.ErrValidation,
		},
		{
			name:      "empty username",
			requester: anonymous,
			password:  "pass123",
			wantErr:   services.ErrValidation,
		},
		{
			name:      "password longer than bcrypt accepts in bytes",
			requester: anonymous,
			username:  "eve",
			password:  strings.Repeat("€", 30),
			wantErr:   services.ErrValidation,
		},
		{
			name:      "empty password",
			requester: anonymous,
			username:  "eve",
			wantErr:   services.ErrValidation,
		},
		{
			name:         "user already exists",
			requester:    anonymous,
			username:     "bob",
			password:     "pass123",
			existingUser: &models.User{ID: 7, Username: "bob"},
			expectRead:   true,
			wantErr:      services.ErrDuplicateUsername,
		},
		{
			name:       "reader error",
			requester:  anonymous,
			username:   "eve",
			password:   "pass123",
			readerErr:  errors.New("db error"),
			expectRead: true,
			wantErr:    errors.New("db error"),
		},
		{
			name:        "concurrent duplicate caught by constraint",
			requester:   anonymous,
			username:    "carol",
			password:    "pass123",
			writerErr:   repositories.ErrDuplicate,
			expectRead:  true,
			expectWrite: true,
			wantErr:     services.ErrDuplicateUsername,
		},
		{
			name:        "writer error",
			requester:   anonymous,
			username:    "dave",
			password:    "pass123",
			writerErr:   errors.New("insert failed"),
			expectRead:  true,
			expectWrite: true,
			wantErr:     errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			if tt.expectRead {
				mockReader.EXPECT().
					GetByUsername(ctx, tt.username).
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.expectWrite {
				mockWriter.EXPECT().
					Save(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.User) (int64, error) {
						assert.Equal(t, tt.username, u.Username)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.password)))
						return 42, tt.writerErr
					})
			}

			user, err := svc.Register(ctx, tt.requester, tt.username, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.Nil(t, user)
				if errors.Is(err, tt.wantErr) {
					return
				}
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(42), user.ID)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockSessionIssuer(ctrl), nil)
	ctx := context.Background()

	t.Run("creates admin", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(ctx, "admin").Return(nil, nil)
		mockWriter.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User) (int64, error) {
				assert.Equal(t, models.RoleAdmin, u.Role)
				return 1, nil
			})
		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("existing account is kept", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(ctx, "admin").Return(&models.User{ID: 1, Username: "admin"}, nil)
		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "secret"))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockIssuer := services.NewMockSessionIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockIssuer, nil)

	password := "pass123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.User{ID: 3, Username: "alice", PasswordHash: string(hashed), Role: models.RoleUser}

	tests := []struct {
		name      string
		username  string
		password  string
		mockUser  *models.User
		readerErr error
		issueErr  error
		expectJWT bool
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  password,
			mockUser:  user,
			expectJWT: true,
			wantToken: "token123",
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrongpass",
			mockUser: user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: password,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  password,
			readerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
		{
			name:      "token generation fails",
			username:  "alice",
			password:  password,
			mockUser:  user,
			issueErr:  errors.New("sign failed"),
			expectJWT: true,
			wantErr:   errors.New("sign failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockReader.EXPECT().GetByUsername(ctx, tt.username).Return(tt.mockUser, tt.readerErr)
			if tt.expectJWT {
				mockIssuer.EXPECT().
					Generate(ctx, models.Identity{UserID: 3, Username: "alice", Role: models.RoleUser}).
					Return(tt.wantToken, tt.issueErr)
			}

			token, err := svc.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.Empty(t, token)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login_FailuresLookTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockSessionIssuer(ctrl), nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{ID: 1, Username: "alice", PasswordHash: string(hashed), Role: models.RoleUser}, nil)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

	_, errWrongPassword := svc.Login(context.Background(), "alice", "wrong")
	_, errUnknownUser := svc.Login(context.Background(), "nobody", "wrong")

	assert.Equal(t, errWrongPassword, errUnknownUser)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockSessionRevoker(ctrl)
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockSessionIssuer(ctrl),
		mockRevoker,
	)
	ctx := context.Background()

	t.Run("revokes for the remaining lifetime", func(t *testing.T) {
		who := alice
		who.ExpiresAt = time.Now().Add(time.Hour)
		mockRevoker.EXPECT().Revoke(ctx, "s-alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
				return nil
			})
		assert.NoError(t, svc.Logout(ctx, who))
	})

	t.Run("anonymous is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Logout(ctx, anonymous))
	})

	t.Run("revoker error", func(t *testing.T) {
		mockRevoker.EXPECT().Revoke(ctx, "s-root", gomock.Any()).Return(errors.New("redis down"))
		assert.EqualError(t, svc.Logout(ctx, root), "redis down")
	})

	t.Run("without revoker", func(t *testing.T) {
		plain := services.NewAuthService(nil, nil, nil, nil)
		assert.NoError(t, plain.Logout(ctx, alice))
	})
}
