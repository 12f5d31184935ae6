package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cognitax/cognitax/internal/auth"
	cognitaxhttp "github.com/cognitax/cognitax/internal/http"
	authhttp "github.com/cognitax/cognitax/internal/http/auth"
	chathttp "github.com/cognitax/cognitax/internal/http/chat"
	overridehttp "github.com/cognitax/cognitax/internal/http/override"
	taxhttp "github.com/cognitax/cognitax/internal/http/tax"
	transactionhttp "github.com/cognitax/cognitax/internal/http/transaction"
	uploadhttp "github.com/cognitax/cognitax/internal/http/upload"
)

func newRouter(origins []string) http.Handler {
	return cognitaxhttp.New(
		auth.NewTokenManager("test-secret", time.Hour),
		origins,
		authhttp.NewHandler(nil),
		uploadhttp.NewHandler(nil),
		transactionhttp.NewHandler(nil),
		taxhttp.NewHandler(nil, nil),
		chathttp.NewHandler(nil),
		overridehttp.NewHandler(nil),
	)
}

func preflight(router http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", "GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_WildcardOriginDisablesCredentials(t *testing.T) {
	rec := preflight(newRouter([]string{"*"}), "https://app.example.com")

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_ExplicitOriginAllowsCredentials(t *testing.T) {
	rec := preflight(newRouter([]string{"https://app.example.com"}), "https://app.example.com")

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
