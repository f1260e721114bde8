package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmelo/catalog/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	path, found := r.Path("products.show")
	if !found || path != "/products/{id}" {
		t.Fatalf("Path() = %q, %v", path, found)
	}

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/products/42" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected an error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestGroupPrefixAndDispatch(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	admin := api.Group("/admin")
	admin.Get("/stats", "admin.stats", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/a", "a.index", ok)
	r.Post("/a", "a.store", ok)
	r.Delete("/a/{id}", "a.destroy", ok)

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(infos))
	}

	seen := map[string]bool{}
	for _, ri := range infos {
		seen[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{"GET /a", "POST /a", "DELETE /a/{id}"} {
		if !seen[want] {
			t.Errorf("missing route %s", want)
		}
	}
}

func TestGroupMiddleware(t *testing.T) {
	stamp := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Stamped", "yes")
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/g", stamp)
	g.Get("/in", "g.in", ok)
	r.Get("/out", "out", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/g/in", nil))
	if rec.Header().Get("X-Stamped") != "yes" {
		t.Error("expected group middleware to run")
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/out", nil))
	if rec.Header().Get("X-Stamped") != "" {
		t.Error("group middleware leaked outside the group")
	}
}
