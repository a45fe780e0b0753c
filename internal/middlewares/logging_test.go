package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/parts-store/internal/models"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
		expectedLevel  zapcore.Level
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
			expectedLevel:  zapcore.InfoLevel,
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
			expectedLevel:  zapcore.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(WithIdentity(req.Context(), models.Identity{UserID: 2, Username: "alice", Role: models.RoleUser}))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID)

			entries := logs.FilterMessage("request").All()
			if assert.Len(t, entries, 1) {
				fields := entries[0].ContextMap()
				assert.Equal(t, int64(tt.handlerStatus), fields["status"])
				assert.Equal(t, "alice", fields["username"])
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
			}
		})
	}
}
