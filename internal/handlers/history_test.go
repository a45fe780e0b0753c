package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledger = []models.Purchase{
	{ID: 1, PartName: "bolt", Username: "alice", Quantity: 5, Timestamp: time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)},
	{ID: 2, PartName: "bolt", Username: "bob", Quantity: 3, Timestamp: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)},
}

func TestAPIPurchaseHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryReader(ctrl)

	t.Run("admin", func(t *testing.T) {
		mockSvc.EXPECT().PurchaseHistory(gomock.Any(), adminIdentity).Return(ledger, nil)

		rr := httptest.NewRecorder()
		NewAPIPurchaseHistoryHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/purchase_history", nil), adminIdentity))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, map[string]any{
			"part_name": "bolt",
			"username":  "alice",
			"quantity":  5.0,
			"timestamp": "2024-03-09 14:05:07",
		}, resp[0])
	})

	t.Run("plain user", func(t *testing.T) {
		mockSvc.EXPECT().PurchaseHistory(gomock.Any(), userIdentity).Return(nil, services.ErrUnauthorized)

		rr := httptest.NewRecorder()
		NewAPIPurchaseHistoryHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/purchase_history", nil), userIdentity))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("empty ledger is an empty list", func(t *testing.T) {
		mockSvc.EXPECT().PurchaseHistory(gomock.Any(), adminIdentity).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewAPIPurchaseHistoryHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/purchase_history", nil), adminIdentity))

		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestAPIPartHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryReader(ctrl)
	r := chi.NewRouter()
	r.Get("/api/part_history/{partID}", NewAPIPartHistoryHandler(mockSvc))

	get := func(path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, as(httptest.NewRequest(http.MethodGet, path, nil), adminIdentity))
		return rr
	}

	t.Run("existing part", func(t *testing.T) {
		mockSvc.EXPECT().PartHistory(gomock.Any(), adminIdentity, int64(7)).Return(ledger[:1], nil)

		rr := get("/api/part_history/7")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"username":"alice","quantity":5,"timestamp":"2024-03-09 14:05:07"}]`, rr.Body.String())
	})

	t.Run("unknown part", func(t *testing.T) {
		mockSvc.EXPECT().PartHistory(gomock.Any(), adminIdentity, int64(8)).Return(nil, services.ErrPartNotFound)

		rr := get("/api/part_history/8")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No part of this id"}`, rr.Body.String())
	})

	t.Run("not an id", func(t *testing.T) {
		rr := get("/api/part_history/xyz")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAPIUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryReader(ctrl)

	mockSvc.EXPECT().Users(gomock.Any(), adminIdentity).Return([]models.User{
		{ID: 1, Username: "root", PasswordHash: "secret-hash", Role: models.RoleAdmin},
		{ID: 2, Username: "alice", PasswordHash: "secret-hash", Role: models.RoleUser},
	}, nil)

	rr := httptest.NewRecorder()
	NewAPIUsersHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/users", nil), adminIdentity))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"username":"root","role":"admin"},{"username":"alice","role":"user"}]`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret-hash")

	mockSvc.EXPECT().Users(gomock.Any(), adminIdentity).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	NewAPIUsersHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/users", nil), adminIdentity))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPurchaseHistoryPageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryReader(ctrl)
	mockSvc.EXPECT().PurchaseHistory(gomock.Any(), adminIdentity).Return(ledger, nil)

	rr := httptest.NewRecorder()
	NewPurchaseHistoryPageHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/admin/purchase_history", nil), adminIdentity))

	var page Page
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, "purchase_history", page.Name)
	require.Len(t, page.Purchases, 2)
	assert.Equal(t, "2024-03-10 08:00:00", page.Purchases[1].Timestamp)
}

func TestHomeAndPartsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPartLister(ctrl)
	parts := []models.Part{{ID: 3, Name: "gear", Price: decimal.RequireFromString("12.50"), Quantity: 0, Image: "gear.jpg"}}

	t.Run("home page", func(t *testing.T) {
		mockSvc.EXPECT().ListParts(gomock.Any(), userIdentity).Return(parts, nil)

		rr := httptest.NewRecorder()
		NewHomeHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/home", nil), userIdentity))

		var page Page
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
		assert.Equal(t, "home", page.Name)
		assert.Equal(t, "alice", page.Username)
		assert.Equal(t, []PartView{{ID: 3, Name: "gear", Price: 12.5, Quantity: 0, Image: "gear.jpg"}}, page.Parts)
	})

	t.Run("api parts", func(t *testing.T) {
		mockSvc.EXPECT().ListParts(gomock.Any(), adminIdentity).Return(parts, nil)

		rr := httptest.NewRecorder()
		NewAPIPartsHandler(mockSvc)(rr, as(httptest.NewRequest(http.MethodGet, "/api/parts", nil), adminIdentity))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"name":"gear","price":12.5,"quantity":0,"image":"gear.jpg"}]`, rr.Body.String())
	})
}
