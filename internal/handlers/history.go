package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=handlers

// HistoryReader answers the admin reporting queries.
type HistoryReader interface {
	PurchaseHistory(ctx context.Context, requester models.Identity) ([]models.Purchase, error)
	PartHistory(ctx context.Context, requester models.Identity, partID int64) ([]models.Purchase, error)
	Users(ctx context.Context, requester models.Identity) ([]models.User, error)
}

// NewPurchaseHistoryPageHandler serves the admin purchase history page.
// @Summary Purchase history page
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /admin/purchase_history [get]
func NewPurchaseHistoryPageHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchases, err := svc.PurchaseHistory(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		page := newPage(w, r, "purchase_history")
		page.Purchases = purchaseViews(purchases, true)
		writeJSON(w, http.StatusOK, page)
	}
}

// NewAPIPurchaseHistoryHandler returns the whole ledger.
// @Summary Purchase history
// @Tags api
// @Produce json
// @Success 200 {array} handlers.PurchaseView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/purchase_history [get]
// @Security BearerAuth
func NewAPIPurchaseHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purchases, err := svc.PurchaseHistory(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, purchaseViews(purchases, true))
	}
}

// NewAPIPartHistoryHandler returns the purchases of one part.
// @Summary Part purchase history
// @Tags api
// @Produce json
// @Param partID path int true "Part id"
// @Success 200 {array} handlers.PurchaseView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No part of this id"
// @Router /api/part_history/{partID} [get]
// @Security BearerAuth
func NewAPIPartHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partID, err := strconv.ParseInt(chi.URLParam(r, "partID"), 10, 64)
		if err != nil {
			writeServiceError(w, r, services.ErrPartNotFound)
			return
		}

		purchases, err := svc.PartHistory(r.Context(), middlewares.IdentityFromContext(r.Context()), partID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, purchaseViews(purchases, false))
	}
}

// NewAPIUsersHandler lists accounts.
// @Summary List users
// @Tags api
// @Produce json
// @Success 200 {array} handlers.UserView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/users [get]
// @Security BearerAuth
func NewAPIUsersHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.Users(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, userViews(users))
	}
}
