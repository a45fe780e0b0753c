package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
	"github.com/sbilibin2017/parts-store/internal/validation"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=handlers

// maxUploadSize bounds the multipart body of the add-part form.
const maxUploadSize = 10 << 20

// CatalogManager is the admin side of the catalog.
type CatalogManager interface {
	ListParts(ctx context.Context, requester models.Identity) ([]models.Part, error)
	AddPart(ctx context.Context, requester models.Identity, in models.NewPart) (*models.Part, error)
	DeletePart(ctx context.Context, requester models.Identity, id int64) error
	ApplyUpdates(ctx context.Context, requester models.Identity, edits map[int64]models.PartEdit) error
}

// NewAdminHandler serves the bulk edit page.
// @Summary Admin page
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.Page
// @Router /admin [get]
func NewAdminHandler(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := svc.ListParts(r.Context(), middlewares.IdentityFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		page := newPage(w, r, "admin")
		page.Fields = []string{"stock_<id>", "price_<id>"}
		page.Parts = partViews(parts, true)
		writeJSON(w, http.StatusOK, page)
	}
}

// NewAdminUpdateHandler applies the bulk edit form. Fields are named
// stock_<id> and price_<id>; empty fields leave the value unchanged.
// @Summary Bulk stock and price edit
// @Tags admin
// @Accept x-www-form-urlencoded
// @Success 302 "Redirect to /admin with flash"
// @Router /admin [post]
func NewAdminUpdateHandler(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirect(w, r, "/admin", FlashDanger, msgInvalidForm)
			return
		}
		edits, err := parseEdits(r.PostForm)
		if err != nil {
			logger.Log.Infow("bulk edit rejected", "err", err)
			redirect(w, r, "/admin", FlashDanger, msgInvalidForm)
			return
		}

		err = svc.ApplyUpdates(r.Context(), middlewares.IdentityFromContext(r.Context()), edits)
		switch {
		case err == nil:
			redirect(w, r, "/admin", FlashSuccess, msgChangesSaved)
		case errors.Is(err, services.ErrValidation):
			redirect(w, r, "/admin", FlashDanger, msgInvalidForm)
		case errors.Is(err, services.ErrPartNotFound):
			redirect(w, r, "/admin", FlashDanger, msgNoSuchPart)
		case errors.Is(err, services.ErrUnauthorized):
			RedirectToEntry(w, r)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			redirect(w, r, "/admin", FlashDanger, msgInternal)
		}
	}
}

func parseEdits(form url.Values) (map[int64]models.PartEdit, error) {
	edits := make(map[int64]models.PartEdit)
	for key, values := range form {
		field, rawID, ok := strings.Cut(key, "_")
		if !ok || (field != "stock" && field != "price") {
			continue
		}
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, validation.NewError(key, "part_id")
		}
		value := strings.TrimSpace(values[0])
		if value == "" {
			continue
		}

		edit := edits[id]
		switch field {
		case "stock":
			stock, err := strconv.Atoi(value)
			if err != nil {
				return nil, validation.NewError(key, "number")
			}
			edit.Stock = &stock
		case "price":
			price, err := decimal.NewFromString(value)
			if err != nil {
				return nil, validation.NewError(key, "number")
			}
			edit.Price = &price
		}
		edits[id] = edit
	}
	return edits, nil
}

// NewAddPartHandler handles the add-part form. The image is either an
// uploaded file, of which only the name is kept, or a plain image field.
// @Summary Add a part
// @Tags admin
// @Accept multipart/form-data
// @Param name formData string true "Part name"
// @Param price formData number true "Unit price"
// @Param quantity formData int true "Initial stock"
// @Param image formData file true "Image (.jpg, .jpeg, .png)"
// @Success 302 "Redirect with flash"
// @Router /admin/add_part [post]
func NewAddPartHandler(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := parseNewPart(r)
		if err != nil {
			logger.Log.Infow("add part rejected", "err", err)
			redirect(w, r, "/admin/add_part", FlashDanger, msgInvalidForm)
			return
		}

		_, err = svc.AddPart(r.Context(), middlewares.IdentityFromContext(r.Context()), in)
		switch {
		case err == nil:
			redirect(w, r, "/admin", FlashSuccess, msgPartAdded)
		case errors.Is(err, services.ErrValidation):
			redirect(w, r, "/admin/add_part", FlashDanger, msgInvalidForm)
		case errors.Is(err, services.ErrUnauthorized):
			RedirectToEntry(w, r)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			redirect(w, r, "/admin/add_part", FlashDanger, msgInternal)
		}
	}
}

func parseNewPart(r *http.Request) (models.NewPart, error) {
	var in models.NewPart

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return in, err
		}
	} else if err := r.ParseForm(); err != nil {
		return in, err
	}

	in.Name = strings.TrimSpace(r.FormValue("name"))

	price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		return in, validation.NewError("price", "number")
	}
	in.Price = price

	quantity, err := strconv.Atoi(strings.TrimSpace(r.FormValue("quantity")))
	if err != nil {
		return in, validation.NewError("quantity", "number")
	}
	in.Quantity = quantity

	if file, header, err := r.FormFile("image"); err == nil {
		file.Close()
		in.Image = filepath.Base(header.Filename)
	} else {
		in.Image = strings.TrimSpace(r.FormValue("image"))
	}

	return in, nil
}

// NewDeletePartHandler deletes the part named in the path.
// @Summary Delete a part
// @Tags admin
// @Param partID path int true "Part id"
// @Success 302 "Redirect to /admin with flash"
// @Router /admin/delete_part/{partID} [post]
func NewDeletePartHandler(svc CatalogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "partID"), 10, 64)
		if err != nil {
			redirect(w, r, "/admin", FlashDanger, msgNoSuchPart)
			return
		}

		err = svc.DeletePart(r.Context(), middlewares.IdentityFromContext(r.Context()), id)
		switch {
		case err == nil:
			redirect(w, r, "/admin", FlashSuccess, msgPartDeleted)
		case errors.Is(err, services.ErrPartNotFound):
			redirect(w, r, "/admin", FlashDanger, msgNoSuchPart)
		case errors.Is(err, services.ErrUnauthorized):
			RedirectToEntry(w, r)
		default:
			logger.Log.Errorw("internal server error", "err", err)
			redirect(w, r, "/admin", FlashDanger, msgInternal)
		}
	}
}
