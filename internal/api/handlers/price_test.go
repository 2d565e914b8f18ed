package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/o6elisk/amber-scan-simple/internal/amber"
	amberMocks "github.com/o6elisk/amber-scan-simple/internal/amber/mocks"
	"github.com/o6elisk/amber-scan-simple/internal/api/handlers"
	"github.com/o6elisk/amber-scan-simple/internal/store"
	storeMocks "github.com/o6elisk/amber-scan-simple/internal/store/mocks"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func currentReadings(price, renewables float64) []amber.IntervalReading {
	return []amber.IntervalReading{
		{
			Type:        "CurrentInterval",
			ChannelType: "general",
			PerKwh:      &price,
			Renewables:  &renewables,
			EndTime:     time.Date(2026, time.March, 10, 12, 30, 0, 0, time.UTC),
		},
	}
}

func TestCurrentPrice_CachedSiteID(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)

	ms.EXPECT().GetProfile(mock.Anything, "tok-1").
		Return(storedProfile(), nil).Once()
	mc.EXPECT().CurrentPrices(mock.Anything, "tok-1", "site-1").
		Return(currentReadings(28.4, 61.2), nil).Once()

	h := handlers.NewPriceHandler(ms, mc, quietLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-price?token=tok-1", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.PriceReading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 28.4, got.Price)
	assert.Equal(t, 61.2, got.RenewablesPercent)
}

func TestCurrentPrice_UnregisteredTokenResolvesSite(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)

	ms.EXPECT().GetProfile(mock.Anything, "tok-new").
		Return(nil, store.ErrProfileNotFound).Once()
	mc.EXPECT().Sites(mock.Anything, "tok-new").
		Return([]amber.Site{{ID: "site-7"}}, nil).Once()
	mc.EXPECT().CurrentPrices(mock.Anything, "tok-new", "site-7").
		Return(currentReadings(12.1, 80), nil).Once()

	h := handlers.NewPriceHandler(ms, mc, quietLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-price?token=tok-new", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentPrice_MissingToken(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)
	h := handlers.NewPriceHandler(ms, mc, quietLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-price", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentPrice_Unauthorized(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)

	ms.EXPECT().GetProfile(mock.Anything, "tok-bad").
		Return(nil, store.ErrProfileNotFound).Once()
	mc.EXPECT().Sites(mock.Anything, "tok-bad").
		Return(nil, amber.ErrUnauthorized).Once()

	h := handlers.NewPriceHandler(ms, mc, quietLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-price?token=tok-bad", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentPrice_NoGeneralChannel(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mc := amberMocks.NewMockClient(t)

	ms.EXPECT().GetProfile(mock.Anything, "tok-1").
		Return(storedProfile(), nil).Once()
	mc.EXPECT().CurrentPrices(mock.Anything, "tok-1", "site-1").
		Return([]amber.IntervalReading{{ChannelType: "controlledLoad"}}, nil).Once()

	h := handlers.NewPriceHandler(ms, mc, quietLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/current-price?token=tok-1", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
