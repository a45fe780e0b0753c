package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
)

//go:generate mockgen -source=home.go -destination=mock_home.go -package=handlers

// PartLister returns the catalog.
type PartLister interface {
	ListParts(ctx context.Context, requester models.Identity) ([]models.Part, error)
}

// NewHomeHandler lists the catalog to a logged-in user.
// @Summary Home page
// @Tags pages
// @Produce json
// @Success 200 {object} handlers.Page
// @Success 302 "Redirect to / for anonymous visitors"
// @Router /home [get]
func NewHomeHandler(svc PartLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := svc.ListParts(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		page := newPage(w, r, "home")
		page.Fields = []string{"part_id", "quantity"}
		page.Parts = partViews(parts, true)
		writeJSON(w, http.StatusOK, page)
	}
}

// NewAPIPartsHandler returns the catalog as JSON.
// @Summary List parts
// @Tags api
// @Produce json
// @Success 200 {array} handlers.PartView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/parts [get]
// @Security BearerAuth
func NewAPIPartsHandler(svc PartLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := svc.ListParts(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, partViews(parts, false))
	}
}
