package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"giftcard-shop/config"
	_ "giftcard-shop/docs"
	"giftcard-shop/libs"
	"giftcard-shop/middleware"
	"giftcard-shop/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:              "test",
		Locale:              "ru-RU",
		CurrencySign:        "₽",
		CartSessionTTL:      time.Hour,
		NotificationBacklog: 10,
	}
	server, err := NewServer(cfg, libs.NopLogger(), repositories.NewStaticCatalog())
	require.NoError(t, err)
	return server
}

func TestNewServerRejectsBadLocale(t *testing.T) {
	cfg := &config.Config{Locale: "?? bad", CartSessionTTL: time.Hour}

	_, err := NewServer(cfg, libs.NopLogger(), repositories.NewStaticCatalog())

	assert.Error(t, err)
}

func TestPublicRoutes(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/", "/health", "/catalog", "/catalog/1", "/content/features", "/content/steps", "/content/faqs", "/swagger/doc.json"} {
		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCartFlowKeepsSessionByCookie(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"card_id": 2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"card_id": 2}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookies[0])
		rec = httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, cookies[0].Value, rec.Header().Get(middleware.SessionHeader))

	var body struct {
		Data struct {
			TotalAmount   int `json:"total_amount"`
			TotalQuantity int `json:"total_quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 6000, body.Data.TotalAmount)
	assert.Equal(t, 3, body.Data.TotalQuantity)
	assert.Equal(t, 1, server.Carts.SessionCount())
}

func TestCookielessReadsDoNotOpenSessions(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 200; i++ {
		for _, path := range []string{"/cart", "/notifications"} {
			rec := httptest.NewRecorder()
			server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, rec.Code, path)
		}
	}

	assert.Equal(t, 0, server.Carts.SessionCount())
}
