package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
)

//go:generate mockgen -source=purchase.go -destination=mock_purchase.go -package=handlers

// Purchaser buys parts.
type Purchaser interface {
	Purchase(ctx context.Context, requester models.Identity, partID int64, quantity int) (*models.Purchase, error)
}

// NewPurchaseHandler handles the purchase form.
// @Summary Purchase a part
// @Tags shop
// @Accept x-www-form-urlencoded
// @Param part_id formData int true "Part id"
// @Param quantity formData int true "Units to buy"
// @Success 302 "Redirect to /home with flash"
// @Router /purchase [post]
func NewPurchaseHandler(svc Purchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirect(w, r, "/home", FlashDanger, msgInvalidForm)
			return
		}
		partID, err := strconv.ParseInt(r.PostForm.Get("part_id"), 10, 64)
		if err != nil {
			redirect(w, r, "/home", FlashDanger, msgInvalidForm)
			return
		}
		quantity, err := strconv.Atoi(r.PostForm.Get("quantity"))
		if err != nil {
			redirect(w, r, "/home", FlashDanger, msgInvalidForm)
			return
		}

		_, err = svc.Purchase(r.Context(), middlewares.IdentityFromContext(r.Context()), partID, quantity)
		switch {
		case err == nil:
			redirect(w, r, "/home", FlashSuccess, msgPurchased)
		case errors.Is(err, services.ErrInsufficientStock):
			redirect(w, r, "/home", FlashDanger, msgNotEnoughStock)
		case errors.Is(err, services.ErrPartNotFound):
			redirect(w, r, "/home", FlashDanger, msgNoSuchPart)
		case errors.Is(err, services.ErrValidation):
			redirect(w, r, "/home", FlashDanger, msgInvalidForm)
		case errors.Is(err, services.ErrUnauthorized):
			RedirectToEntry(w, r)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			redirect(w, r, "/home", FlashDanger, msgInternal)
		}
	}
}
