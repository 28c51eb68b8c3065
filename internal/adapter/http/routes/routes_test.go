package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"leasing_offers/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestRoutes_Registered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addOfferRoutes(v1, handlers.NewOfferHandler(nil), handlers.NewWorkflowHandler(nil), handlers.NewCommissionHandler(nil))
	addCommissionRoutes(v1, handlers.NewCommissionHandler(nil))
	addPricingRoutes(v1, handlers.NewPricingHandler(nil))

	want := map[string]bool{
		"GET /v1/ping":                             false,
		"POST /v1/offers":                          false,
		"PATCH /v1/offers/:id/status":              false,
		"DELETE /v1/offers/:id/equipment/:line_id": false,
		"GET /v1/offers/:id/commissions":           false,
		"PATCH /v1/commissions/:id/settle":         false,
		"GET /v1/leasers/:id/coefficient":          false,
		"POST /v1/pricing/financed-amount":         false,
	}
	for _, ri := range r.Routes() {
		key := ri.Method + " " + ri.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Fatalf("route %s not registered", route)
		}
	}
}

func TestRoutes_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
