package handler

import (
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Horizontal segment along 48.85N in Paris.
const testRoute = `[[2.35,48.85],[2.36,48.85]]`

func newRouteCheckEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockLocationUsecase) {
	t.Helper()

	location := mockUsecase.NewMockLocationUsecase(t)
	h := NewMapHandler(MapHandlerParams{Location: location, Config: &config.Config{}, Logger: discardLogger})

	e := newTestEcho()
	e.POST("/map/route-check", h.RouteCheck)

	return e, location
}

func TestMapHandler_RouteCheck(t *testing.T) {
	tests := []struct {
		name     string
		position string
		label    string
		offRoute bool
	}{
		{name: "on the route", position: `[2.355,48.85]`, label: "0 m", offRoute: false},
		{name: "just past the threshold", position: `[2.355,48.8505]`, label: "56 m", offRoute: true},
		{name: "kilometers away", position: `[2.35,48.87]`, label: "2.2 km", offRoute: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newRouteCheckEcho(t)

			rec, env := serve(t, e, http.MethodPost, "/map/route-check",
				`{"route":`+testRoute+`,"position":`+tt.position+`}`)

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeData[RouteCheckResponse](t, env)
			assert.Equal(t, tt.label, body.DistanceLabel)
			assert.Equal(t, tt.offRoute, body.OffRoute)
		})
	}
}

func TestMapHandler_RouteCheckUsesActiveLocation(t *testing.T) {
	e, location := newRouteCheckEcho(t)
	location.EXPECT().ActiveLocation().
		Return(&entity.EffectiveLocation{Coordinates: entity.NewCoordinate(2.355, 48.8505), IsCustom: true}).Once()

	rec, env := serve(t, e, http.MethodPost, "/map/route-check", `{"route":`+testRoute+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[RouteCheckResponse](t, env)
	assert.Equal(t, entity.NewCoordinate(2.355, 48.8505), body.Position)
	assert.InDelta(t, 55.6, body.DistanceMeters, 0.1)
}

func TestMapHandler_RouteCheckErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		noFix  bool
		status int
		code   string
	}{
		{name: "single point route", body: `{"route":[[2.35,48.85]],"position":[2.35,48.85]}`, status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "route point out of range", body: `{"route":[[200,0],[0,0]],"position":[0,0]}`, status: http.StatusBadRequest, code: "INVALID_COORDINATES"},
		{name: "position out of range", body: `{"route":` + testRoute + `,"position":[0,95]}`, status: http.StatusBadRequest, code: "INVALID_COORDINATES"},
		{name: "no location yet", body: `{"route":` + testRoute + `}`, noFix: true, status: http.StatusNotFound, code: "LOCATION_NOT_RESOLVED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, location := newRouteCheckEcho(t)
			if tt.noFix {
				location.EXPECT().ActiveLocation().Return(nil).Once()
			}

			rec, env := serve(t, e, http.MethodPost, "/map/route-check", tt.body)

			require.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
