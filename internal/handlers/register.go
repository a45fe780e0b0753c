package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, requester models.Identity, username, password string, role models.Role) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role, "user" when omitted
	// default: user
	Role models.Role `json:"role,omitempty"`
}

// NewRegisterFormHandler handles the browser registration form.
// @Summary Register a new user (form)
// @Description Creates an account and redirects to the entry page with a flash message.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string false "user or admin"
// @Success 302 "Redirect with flash"
// @Router /register [post]
func NewRegisterFormHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirect(w, r, "/register", FlashDanger, msgInvalidForm)
			return
		}

		requester := middlewares.IdentityFromContext(r.Context())
		_, err := svc.Register(r.Context(), requester,
			r.PostForm.Get("username"),
			r.PostForm.Get("password"),
			models.Role(r.PostForm.Get("role")),
		)
		switch {
		case err == nil:
			redirect(w, r, "/", FlashSuccess, msgRegistered)
		case errors.Is(err, services.ErrDuplicateUsername):
			redirect(w, r, "/register", FlashDanger, msgUsernameTaken)
		case errors.Is(err, services.ErrValidation):
			redirect(w, r, "/register", FlashDanger, msgInvalidForm)
		case errors.Is(err, services.ErrUnauthorized):
			redirect(w, r, "/register", FlashDanger, msgAdminOnly)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			redirect(w, r, "/register", FlashDanger, msgInternal)
		}
	}
}

// NewAPIRegisterHandler returns an HTTP handler for admin-driven registration.
// @Summary Register a new user
// @Description Creates an account with the given role. Admin only.
// @Tags api
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Username already taken"
// @Router /api/register [post]
// @Security BearerAuth
func NewAPIRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidForm)
			return
		}

		requester := middlewares.IdentityFromContext(r.Context())
		if _, err := svc.Register(r.Context(), requester, req.Username, req.Password, req.Role); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Registration successful"})
	}
}
