package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/o6elisk/amber-scan-simple/internal/amber"
	"github.com/o6elisk/amber-scan-simple/internal/store"
)

// PriceHandler serves the current normalized price for a user.
type PriceHandler struct {
	store store.Store
	amber amber.Client
	log   *slog.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(s store.Store, c amber.Client, log *slog.Logger) *PriceHandler {
	return &PriceHandler{store: s, amber: c, log: log}
}

// Current handles GET /api/v1/current-price?token=.
//
// @Summary Current price
// @Description Fetches and normalizes the current general-channel price
// @Description for the user's site.
// @Tags prices
// @Produce json
// @Param token query string true "Amber API token"
// @Success 200 {object} domain.PriceReading
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/current-price [get]
func (h *PriceHandler) Current(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "token query parameter is required",
		})
	}

	ctx := c.Request().Context()

	siteID, err := h.siteIDFor(c, token)
	if err != nil {
		return amberErrorResponse(c, err)
	}

	readings, err := h.amber.CurrentPrices(ctx, token, siteID)
	if err != nil {
		return amberErrorResponse(c, err)
	}

	reading, err := amber.ToPriceReading(readings)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, reading)
}

// siteIDFor prefers the profile's cached site ID and falls back to
// resolving it from the Amber API for unregistered tokens.
func (h *PriceHandler) siteIDFor(c echo.Context, token string) (string, error) {
	ctx := c.Request().Context()

	p, err := h.store.GetProfile(ctx, token)
	if err == nil && p.SiteID != "" {
		return p.SiteID, nil
	}
	if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
		return "", err
	}

	sites, err := h.amber.Sites(ctx, token)
	if err != nil {
		return "", err
	}
	if len(sites) == 0 {
		return "", amber.ErrNoSites
	}
	return sites[0].ID, nil
}
