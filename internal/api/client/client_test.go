package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetSettings(context.Background(), "tok-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetSettings(context.Background(), "tok-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_GetSettings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settings/tok-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.UserProfile{
			APIToken: "tok-1",
			Email:    "user@example.com",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.GetSettings(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", p.Email)
}

func TestClient_GetSettingsByEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settings/by-email/user@example.com", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.UserProfile{APIToken: "tok-1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.GetSettingsByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", p.APIToken)
}

func TestClient_SaveSettings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/settings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p domain.UserProfile
		err := json.NewDecoder(r.Body).Decode(&p)
		assert.NoError(t, err)
		p.SiteID = "site-9"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := New(srv.URL)
	saved, err := c.SaveSettings(context.Background(), &domain.UserProfile{
		APIToken: "tok-1",
		Email:    "user@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "site-9", saved.SiteID)
}

func TestClient_ResolveSiteID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/site-id", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"site_id": "site-9"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	siteID, err := c.ResolveSiteID(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "site-9", siteID)
}

func TestClient_CurrentPrice(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/current-price", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.PriceReading{Price: 28.4, RenewablesPercent: 61})
	}))
	defer srv.Close()

	c := New(srv.URL)
	r, err := c.CurrentPrice(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 28.4, r.Price)
	assert.Equal(t, 61.0, r.RenewablesPercent)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
