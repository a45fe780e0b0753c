package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/parts-store/internal/middlewares"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/stretchr/testify/require"
)

var (
	userIdentity  = models.Identity{UserID: 2, Username: "alice", Role: models.RoleUser, SessionID: "s-2"}
	adminIdentity = models.Identity{UserID: 1, Username: "root", Role: models.RoleAdmin, SessionID: "s-1"}
)

func as(req *http.Request, identity models.Identity) *http.Request {
	return req.WithContext(middlewares.WithIdentity(req.Context(), identity))
}

// flashesOf decodes the flash cookie set on the response.
func flashesOf(t *testing.T, rr *httptest.ResponseRecorder) []Flash {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name != flashCookie || c.Value == "" {
			continue
		}
		data, err := base64.RawURLEncoding.DecodeString(c.Value)
		require.NoError(t, err)
		var flashes []Flash
		require.NoError(t, json.Unmarshal(data, &flashes))
		return flashes
	}
	return nil
}

func cookieOf(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
