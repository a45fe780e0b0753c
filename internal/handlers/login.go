package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/sbilibin2017/parts-store/internal/jwt"
	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, requester models.Identity) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful JSON login
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler authenticates a user. Form posts get the session cookie
// and a redirect; JSON posts get the token in the body as well.
// @Summary User login
// @Description Authenticate user, set the session cookie and return the JWT token for JSON clients
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param loginRequest body handlers.LoginRequest false "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Success 302 "Redirect to /home with the session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sessionTTL time.Duration, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonClient := isJSON(r)

		var req LoginRequest
		if jsonClient {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				redirect(w, r, "/", FlashDanger, msgInvalidCredentials)
				return
			}
			req.Username = r.PostForm.Get("username")
			req.Password = r.PostForm.Get("password")
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials) && jsonClient:
				writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			case errors.Is(err, services.ErrInvalidCredentials):
				redirect(w, r, "/", FlashDanger, msgInvalidCredentials)
			case jsonClient:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				redirect(w, r, "/", FlashDanger, msgInternal)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		if jsonClient {
			writeJSON(w, http.StatusOK, LoginResponse{Token: token})
			return
		}
		redirect(w, r, "/home", FlashSuccess, msgLoggedIn)
	}
}

// NewLogoutHandler revokes the session and clears the cookie.
// @Summary Logout
// @Tags auth
// @Success 302 "Redirect to /"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester := middlewares.IdentityFromContext(r.Context())
		if err := svc.Logout(r.Context(), requester); err != nil {
			logger.Log.Errorw("logout failed, clearing cookie anyway", "username", requester.Username, "err", err)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
