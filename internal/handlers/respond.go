package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/services"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

// flashCookie holds the pending flash messages between a redirect and the
// page that shows them.
const flashCookie = "flash"

// Messages shown to browser clients.
const (
	msgRegistered         = "Registration successful!"
	msgUsernameTaken      = "This username is already taken!"
	msgLoggedIn           = "Login successful!"
	msgInvalidCredentials = "Invalid username or password"
	msgPurchased          = "Purchase successful."
	msgNotEnoughStock     = "Not enough stock."
	msgChangesSaved       = "Changes saved successfully."
	msgPartAdded          = "New part added successfully!"
	msgInvalidForm        = "Invalid form data"
	msgPartDeleted        = "Part deleted successfully."
	msgNoSuchPart         = "There is no part of this id."
	msgAdminOnly          = "Only an administrator can create admin accounts."
	msgInternal           = "Internal server error"
)

// Flash is a one-shot message shown on the next page.
// swagger:model Flash
type Flash struct {
	// Category, "success" or "danger"
	Category string `json:"category"`
	// Message text
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed API call.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// MessageResponse is the body of a successful API mutation.
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: Registration successful
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// redirect sends a browser to path, queueing an optional flash message.
func redirect(w http.ResponseWriter, r *http.Request, path, category, message string) {
	if message != "" {
		addFlash(w, r, Flash{Category: category, Message: message})
	}
	http.Redirect(w, r, path, http.StatusFound)
}

func addFlash(w http.ResponseWriter, r *http.Request, f Flash) {
	flashes := append(readFlashes(r), f)
	data, err := json.Marshal(flashes)
	if err != nil {
		logger.Log.Errorw("failed to encode flash", "err", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func readFlashes(r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}

// popFlashes returns the pending flash messages and clears them.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if flashes != nil {
		http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	}
	return flashes
}

// RedirectToEntry is the deny handler of browser routes.
func RedirectToEntry(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// UnauthorizedJSON is the deny handler of API routes: 401 for anonymous
// callers, 403 for logged-in users without the admin role.
func UnauthorizedJSON(w http.ResponseWriter, r *http.Request) {
	status := http.StatusUnauthorized
	if middlewares.IdentityFromContext(r.Context()).IsAuthenticated() {
		status = http.StatusForbidden
	}
	writeError(w, status, "Unauthorized")
}

// apiStatus maps a service error to an HTTP status and message.
func apiStatus(r *http.Request, err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		if middlewares.IdentityFromContext(r.Context()).IsAuthenticated() {
			return http.StatusForbidden, "Unauthorized"
		}
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, msgInvalidForm
	case errors.Is(err, services.ErrDuplicateUsername):
		return http.StatusConflict, msgUsernameTaken
	case errors.Is(err, services.ErrPartNotFound):
		return http.StatusNotFound, "No part of this id"
	default:
		logger.Log.Errorw("internal server error", "path", r.URL.Path, "err", err)
		return http.StatusInternalServerError, msgInternal
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apiStatus(r, err)
	writeError(w, status, msg)
}
