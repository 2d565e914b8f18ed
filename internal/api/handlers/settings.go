package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/o6elisk/amber-scan-simple/internal/amber"
	"github.com/o6elisk/amber-scan-simple/internal/store"
	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// SettingsHandler handles user alert settings reads and writes.
type SettingsHandler struct {
	store store.Store
	amber amber.Client
	log   *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s store.Store, c amber.Client, log *slog.Logger) *SettingsHandler {
	return &SettingsHandler{store: s, amber: c, log: log}
}

// Get handles GET /api/v1/settings/:token.
//
// @Summary Get settings
// @Description Returns the alert profile for an API token.
// @Tags settings
// @Produce json
// @Param token path string true "Amber API token"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/settings/{token} [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	token := c.Param("token")

	p, err := h.store.GetProfile(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "profile not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting profile: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// GetByEmail handles GET /api/v1/settings/by-email/:email.
//
// @Summary Get settings by email
// @Description Returns the alert profile for an email address.
// @Tags settings
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/settings/by-email/{email} [get]
func (h *SettingsHandler) GetByEmail(c echo.Context) error {
	email := c.Param("email")

	p, err := h.store.GetProfileByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "profile not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting profile: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// Upsert handles POST /api/v1/settings.
//
// @Summary Create or update settings
// @Description Validates and saves an alert profile. The site ID is
// @Description resolved from the Amber API when not already cached.
// @Tags settings
// @Accept json
// @Produce json
// @Param profile body domain.UserProfile true "Alert profile"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/settings [post]
func (h *SettingsHandler) Upsert(c echo.Context) error {
	var p domain.UserProfile
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if err := p.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	// Resolve the site eagerly so the first evaluation cycle doesn't
	// have to. Resolution failures are not fatal; the engine retries
	// lazily on the next cycle.
	if p.SiteID == "" {
		siteID, err := h.resolveSiteID(c, p.APIToken)
		if err != nil {
			h.log.Warn("site resolution failed on settings save",
				"email", p.Email,
				"error", err,
			)
		} else {
			p.SiteID = siteID
		}
	}

	if err := h.store.UpsertProfile(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "saving profile: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// SiteID handles GET /api/v1/site-id?token=.
//
// @Summary Resolve site ID
// @Description Resolves the account's site ID from the Amber API and
// @Description caches it on the profile when one exists.
// @Tags settings
// @Produce json
// @Param token query string true "Amber API token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/site-id [get]
func (h *SettingsHandler) SiteID(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "token query parameter is required",
		})
	}

	siteID, err := h.resolveSiteID(c, token)
	if err != nil {
		return amberErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"site_id": siteID})
}

func (h *SettingsHandler) resolveSiteID(c echo.Context, token string) (string, error) {
	ctx := c.Request().Context()

	sites, err := h.amber.Sites(ctx, token)
	if err != nil {
		return "", err
	}
	if len(sites) == 0 {
		return "", amber.ErrNoSites
	}

	siteID := sites[0].ID

	// Cache on the profile when one exists; a miss just means the
	// user resolved their site before saving settings.
	if err := h.store.SetSiteID(ctx, token, siteID); err != nil &&
		!errors.Is(err, store.ErrProfileNotFound) {
		h.log.Warn("caching site id failed", "error", err)
	}

	return siteID, nil
}

// amberErrorResponse maps Amber client errors onto HTTP statuses.
func amberErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, amber.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "invalid Amber API token",
		})
	case errors.Is(err, amber.ErrNotFound), errors.Is(err, amber.ErrNoSites):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "amber api: " + err.Error(),
		})
	}
}
