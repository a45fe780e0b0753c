package handlers

import (
	"net/http"

	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
)

// Page is the view model of a browser page, rendered as JSON.
// swagger:model Page
type Page struct {
	// Page name
	// default: home
	Name string `json:"page"`
	// Logged-in username, empty for anonymous visitors
	Username string `json:"username,omitempty"`
	// Role of the logged-in user
	Role models.Role `json:"role,omitempty"`
	// Pending flash messages
	Flashes []Flash `json:"flashes,omitempty"`
	// Form fields the page submits
	Fields []string `json:"fields,omitempty"`
	// Catalog rows
	Parts []PartView `json:"parts,omitempty"`
	// Ledger rows
	Purchases []PurchaseView `json:"purchases,omitempty"`
}

// PartView is a catalog row as shown to clients.
// swagger:model PartView
type PartView struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// PurchaseView is a ledger row as shown to clients.
// swagger:model PurchaseView
type PurchaseView struct {
	PartName  string `json:"part_name,omitempty"`
	Username  string `json:"username"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}

// UserView is an account as shown to clients.
// swagger:model UserView
type UserView struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

func partViews(parts []models.Part, withID bool) []PartView {
	views := make([]PartView, 0, len(parts))
	for _, p := range parts {
		v := PartView{
			Name:     p.Name,
			Price:    p.Price.InexactFloat64(),
			Quantity: p.Quantity,
			Image:    p.Image,
		}
		if withID {
			v.ID = p.ID
		}
		views = append(views, v)
	}
	return views
}

func purchaseViews(purchases []models.Purchase, withPart bool) []PurchaseView {
	views := make([]PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		v := PurchaseView{
			Username:  p.Username,
			Quantity:  p.Quantity,
			Timestamp: p.Timestamp.UTC().Format(models.TimestampLayout),
		}
		if withPart {
			v.PartName = p.PartName
		}
		views = append(views, v)
	}
	return views
}

func userViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{Username: u.Username, Role: u.Role})
	}
	return views
}

// newPage starts a page for the current caller and consumes its flashes.
func newPage(w http.ResponseWriter, r *http.Request, name string) Page {
	identity := middlewares.IdentityFromContext(r.Context())
	return Page{
		Name:     name,
		Username: identity.Username,
		Role:     identity.Role,
		Flashes:  popFlashes(w, r),
	}
}

// NewIndexHandler serves the entry page, or sends logged-in users home.
// @Summary Entry page
// @Tags pages
// @Produce json
// @Success 200 {object} handlers.Page
// @Success 302 "Redirect to /home when a session is active"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middlewares.IdentityFromContext(r.Context()).IsAuthenticated() {
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
		writeJSON(w, http.StatusOK, newPage(w, r, "index"))
	}
}

// NewFormPageHandler serves a page that only describes a form.
func NewFormPageHandler(name string, fields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := newPage(w, r, name)
		page.Fields = fields
		writeJSON(w, http.StatusOK, page)
	}
}
