package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm_assistencia/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func testApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(t.Context(), config.Config{
		GinMode:            gin.TestMode,
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		CORSAllowedOrigins: []string{"*"},
		SeedDemoData:       true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func login(t *testing.T, router http.Handler, loginName string) *client {
	t.Helper()
	anon := &client{t: t, router: router}
	w := anon.do(http.MethodPost, "/v1/auth/login", map[string]string{"login": loginName, "password": "nova123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[map[string]any](t, w)
	return &client{t: t, router: router, token: body["token"].(string)}
}

func TestRouter_PublicAndAuth(t *testing.T) {
	app := testApp(t)
	anon := &client{t: t, router: app.Router}

	assert.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/v1/ping", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/v1/customers", nil).Code)

	w := anon.do(http.MethodPost, "/v1/auth/login", map[string]string{"login": "admin@crm.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	maria := login(t, app.Router, "atendente maria")
	me := decode[map[string]any](t, maria.do(http.MethodGet, "/v1/auth/me", nil))
	assert.Equal(t, "attendant", me["role"])

	customers := decode[[]map[string]any](t, maria.do(http.MethodGet, "/v1/customers", nil))
	assert.Len(t, customers, 3)
	assert.Equal(t, http.StatusOK, maria.do(http.MethodGet, "/v1/dashboard", nil).Code)
}

func TestRouter_RoleGating(t *testing.T) {
	app := testApp(t)
	maria := login(t, app.Router, "maria@crm.com")
	joao := login(t, app.Router, "joao@crm.com")

	assert.Equal(t, http.StatusForbidden, maria.do(http.MethodGet, "/v1/products", nil).Code)
	assert.Equal(t, http.StatusForbidden, maria.do(http.MethodGet, "/v1/reports/sales", nil).Code)
	assert.Equal(t, http.StatusOK, joao.do(http.MethodGet, "/v1/products", nil).Code)
	assert.Equal(t, http.StatusOK, joao.do(http.MethodGet, "/v1/reports/inventory", nil).Code)

	customers := decode[[]map[string]any](t, joao.do(http.MethodGet, "/v1/customers", nil))
	require.NotEmpty(t, customers)
	id := customers[0]["id"].(string)
	assert.Equal(t, http.StatusForbidden, joao.do(http.MethodDelete, "/v1/customers/"+id, nil).Code)
}

func TestRouter_SaleDecrementsStock(t *testing.T) {
	app := testApp(t)
	admin := login(t, app.Router, "admin@crm.com")

	w := admin.do(http.MethodPost, "/v1/customers", map[string]string{"name": "Ana Lima", "service_type": "maintenance"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customerID := decode[map[string]any](t, w)["id"].(string)

	w = admin.do(http.MethodPost, "/v1/products", map[string]any{"name": "SSD NVMe 1TB", "kind": "physical", "quantity": 8, "min_quantity": 2, "price": "320.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	productID := decode[map[string]any](t, w)["id"].(string)

	sale := map[string]any{"customer_id": customerID, "items": []map[string]any{{"product_id": productID, "quantity": 3}}}
	w = admin.do(http.MethodPost, "/v1/sales", sale)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "960.00", created["total"])

	product := decode[map[string]any](t, admin.do(http.MethodGet, "/v1/products/"+productID, nil))
	assert.Equal(t, float64(5), product["quantity"])

	movements := decode[[]map[string]any](t, admin.do(http.MethodGet, "/v1/products/"+productID+"/movements", nil))
	require.Len(t, movements, 1)
	assert.Equal(t, "out", movements[0]["direction"])
	assert.Equal(t, "Venda #"+created["id"].(string), movements[0]["reason"])

	oversell := map[string]any{"customer_id": customerID, "items": []map[string]any{{"product_id": productID, "quantity": 10}}}
	w = admin.do(http.MethodPost, "/v1/sales", oversell)
	assert.Equal(t, http.StatusConflict, w.Code)
	product = decode[map[string]any](t, admin.do(http.MethodGet, "/v1/products/"+productID, nil))
	assert.Equal(t, float64(5), product["quantity"])

	w = admin.do(http.MethodGet, "/v1/reports/sales?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "\ufeff"))
	assert.Contains(t, w.Body.String(), "Ana Lima")

	metricsBody := admin.do(http.MethodGet, "/metrics", nil).Body.String()
	assert.Contains(t, metricsBody, "crm_sales_total 1")
}

func TestRouter_PaymentRoutesDisabledByDefault(t *testing.T) {
	app := testApp(t)
	admin := login(t, app.Router, "admin@crm.com")

	assert.Equal(t, http.StatusNotFound, admin.do(http.MethodPost, "/v1/sales/s1/payments", nil).Code)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	listed := corsConfig([]string{"http://localhost:5173"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:5173"}, listed.AllowOrigins)
}
