package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	known := uuid.NewString()

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "reuses shell id", header: known, reused: true},
		{name: "missing header", header: ""},
		{name: "rejects non uuid", header: "not-an-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})
			require.NoError(t, handler(c))

			_, err := uuid.Parse(seen)
			require.NoError(t, err)
			if tt.reused {
				assert.Equal(t, known, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, buf.String(), "request_id="+seen)
		})
	}
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, deliverycontext.GetLoggerOrDefault(httptest.NewRequest(http.MethodGet, "/", nil).Context(), fallback))
}
