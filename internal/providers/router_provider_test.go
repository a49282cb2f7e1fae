package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRouterProvider(t *testing.T) {
	router := NewRouterProvider()

	router.Post("/difference", okHandler())
	router.Get("/history", okHandler())
	router.Delete("/history/clear", okHandler())

	routes := router.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/difference", routes[0].Url)
	assert.Equal(t, "/history", routes[1].Url)
	assert.Equal(t, "/history/clear", routes[2].Url)
}

func TestRouterProvider_MethodEnforcement(t *testing.T) {
	tests := []struct {
		name       string
		register   func(rp RouterProviderInterface, h http.Handler)
		goodMethod string
		badMethod  string
	}{
		{
			"get route",
			func(rp RouterProviderInterface, h http.Handler) { rp.Get("/history", h) },
			http.MethodGet, http.MethodPost,
		},
		{
			"post route",
			func(rp RouterProviderInterface, h http.Handler) { rp.Post("/add", h) },
			http.MethodPost, http.MethodGet,
		},
		{
			"delete route",
			func(rp RouterProviderInterface, h http.Handler) { rp.Delete("/history/clear", h) },
			http.MethodDelete, http.MethodPost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouterProvider()
			tt.register(router, okHandler())
			handler := router.GetRoutes()[0].Handler

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.goodMethod, "/", nil))
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.badMethod, "/", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}
