package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_assistencia/internal/adapter/http/handlers"
	"crm_assistencia/internal/adapter/http/handlers/mocks"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/metrics"
	"crm_assistencia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func serve(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockIAuthUseCase(ctrl)

	r := gin.New()
	admin := r.Group("/admin", Authenticate(auth), RequireRole(entities.RoleAdmin))
	admin.GET("", func(c *gin.Context) {
		user, _ := handlers.CurrentUser(c)
		c.String(http.StatusOK, user.ID)
	})

	auth.EXPECT().Authenticate(gomock.Any(), "admin-token").Return(entities.User{ID: "1", Role: entities.RoleAdmin}, nil)
	auth.EXPECT().Authenticate(gomock.Any(), "attendant-token").Return(entities.User{ID: "3", Role: entities.RoleAttendant}, nil)
	auth.EXPECT().Authenticate(gomock.Any(), "expired").Return(entities.User{}, usecase.ErrUnauthorized)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer expired", http.StatusUnauthorized},
		{"wrong role", "Bearer attendant-token", http.StatusForbidden},
		{"allowed", "bearer admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, "/admin", tt.header)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.status == http.StatusOK && w.Body.String() != "1" {
				t.Fatalf("expected user id on context, got %q", w.Body.String())
			}
		})
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	if w := serve(r, "/x", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPrometheus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	r := gin.New()
	r.Use(Prometheus(m))
	r.GET("/v1/customers/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, "/v1/customers/c1", "")
	serve(r, "/v1/customers/c2", "")
	serve(r, "/nowhere", "")

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/customers/:id", "404")); got != 2 {
		t.Fatalf("expected 2 requests on the route template, got %v", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "undefined", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}
