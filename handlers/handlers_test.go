// handlers_test.go - Automated tests for the HTTP surface
// Run with: go test ./...

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront-backend/config"
	"storefront-backend/database"
	"storefront-backend/models"
	"storefront-backend/security"
	"storefront-backend/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router *gin.Engine
	store  store.Store
	hasher security.Hasher
}

// setupAPI opens a fresh sqlite store in a temp dir and registers every route
func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
		ConnectTimeout: 5 * time.Second,
	}
	s, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return newAPI(s)
}

func newAPI(s store.Store) *testAPI {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	r := gin.New()
	New(s, hasher, zap.NewNop()).Register(r)
	return &testAPI{router: r, store: s, hasher: hasher}
}

// do sends body (may be empty) to path and returns the recorded response
func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]any](t, w)["message"].(string)
}

func TestProductLifecycle(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/products", `{"name":"Shoes","price":59.99,"stock":10}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Product](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, []string{}, created.Images)
	assert.False(t, created.CreatedAt.IsZero())

	w = api.do(http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Product](t, w), 1)

	w = api.do(http.MethodPut, "/api/products/"+created.ID, `{"name":"Boot"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Product](t, w)
	assert.Equal(t, "Boot", updated.Name)
	assert.True(t, updated.Price.Decimal.Equal(decimal.RequireFromString("59.99")))
	assert.Equal(t, 10, updated.Stock)

	w = api.do(http.MethodDelete, "/api/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully", messageOf(t, w))

	w = api.do(http.MethodGet, "/api/products", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProductValidation(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/products", `{"name":"Shoes","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "price")

	w = api.do(http.MethodPost, "/api/products", `{"name":"Shoes","price":5,"status":"Gone"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "status")

	w = api.do(http.MethodPost, "/api/products", `{"name":"Shoes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "price is required")

	w = api.do(http.MethodGet, "/api/products", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestEmptyBodiesRejected(t *testing.T) {
	api := setupAPI(t)

	for _, path := range []string{"/api/users", "/api/products", "/api/categories", "/api/orders", "/api/login"} {
		for _, body := range []string{"", "  ", "{}"} {
			w := api.do(http.MethodPost, path, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "POST %s %q", path, body)
			assert.Equal(t, "Request body cannot be empty", messageOf(t, w))
		}
	}
	w := api.do(http.MethodPut, "/api/products/some-id", "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnknownID(t *testing.T) {
	api := setupAPI(t)

	cases := map[string]string{
		"/api/users/missing":      "User not found",
		"/api/products/missing":   "Product not found",
		"/api/categories/missing": "Category not found",
		"/api/orders/missing":     "Order not found",
	}
	for path, msg := range cases {
		w := api.do(http.MethodPut, path, `{"name":"X","customer":"X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, msg, messageOf(t, w))
	}
}

func TestDeleteUnknownIDSucceeds(t *testing.T) {
	api := setupAPI(t)

	for _, entity := range []string{"users", "products", "categories", "orders"} {
		w := api.do(http.MethodDelete, "/api/"+entity+"/does-not-exist", "")
		assert.Equal(t, http.StatusOK, w.Code, entity)
	}
}

func TestUserPasswordNeverExposed(t *testing.T) {
	api := setupAPI(t)
	ctx := context.Background()

	w := api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "s3cret")
	created := decode[models.User](t, w)
	assert.Equal(t, models.RoleEditor, created.Role)

	stored, err := api.store.Users().FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.True(t, api.hasher.Verify("s3cret", stored.Password))

	w = api.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), stored.Password)
	assert.Len(t, decode[[]models.User](t, w), 1)
}

func TestCreateUserValidation(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "email")

	w = api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"x","role":"Owner"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "role")

	w = api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "password is required")

	body := `{"name":"Ann","email":"ann@example.com","password":"x"}`
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/users", body).Code)
	w = api.do(http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, w.Code) // Duplicate email
	assert.Contains(t, messageOf(t, w), store.ErrDuplicate.Error())
}

func TestUpdateUserKeepsOtherFields(t *testing.T) {
	api := setupAPI(t)
	ctx := context.Background()

	w := api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"s3cret","role":"Admin"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[models.User](t, w).ID
	before, err := api.store.Users().FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)

	w = api.do(http.MethodPut, "/api/users/"+id, `{"name":"X"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	updated := decode[models.User](t, w)
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "ann@example.com", updated.Email)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	// A password in the update body is ignored
	w = api.do(http.MethodPut, "/api/users/"+id, `{"password":"changed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	after, err := api.store.Users().FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
	assert.True(t, api.hasher.Verify("s3cret", after.Password))
}

func TestLogin(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodPost, "/api/login", `{"email":"ann@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ok struct {
		Message string         `json:"message"`
		User    models.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ok))
	assert.Equal(t, "Login successful", ok.Message)
	assert.Equal(t, "ann@example.com", ok.User.Email)
	assert.Equal(t, "Ann", ok.User.Name)
	assert.NotContains(t, w.Body.String(), "password")

	wrong := api.do(http.MethodPost, "/api/login", `{"email":"ann@example.com","password":"nope"}`)
	unknown := api.do(http.MethodPost, "/api/login", `{"email":"bob@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	assert.Equal(t, "Invalid credentials", messageOf(t, wrong))

	w = api.do(http.MethodPost, "/api/login", `{"email":"ann@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "password is required")
}

func TestCategoryNamesUnique(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/categories", `{"name":"Footwear"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[models.Category](t, w).ID

	w = api.do(http.MethodPost, "/api/categories", `{"name":"Footwear"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), store.ErrDuplicate.Error())

	w = api.do(http.MethodGet, "/api/categories", "")
	assert.Len(t, decode[[]models.Category](t, w), 1)

	w = api.do(http.MethodPut, "/api/categories/"+id, `{"name":"Shoes"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shoes", decode[models.Category](t, w).Name)
}

func TestOrderLifecycle(t *testing.T) {
	api := setupAPI(t)

	body := `{"customer":"Ann","total":100,"items":[
		{"productName":"Shoes","quantity":2,"price":59.99},
		{"productName":"Socks","quantity":1,"price":4.5}]}`
	w := api.do(http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Order](t, w)
	assert.Equal(t, models.OrderProcessing, created.Status)
	assert.True(t, created.Total.Decimal.Equal(decimal.NewFromInt(100))) // Not recomputed
	require.Len(t, created.Items, 2)
	assert.Equal(t, "Shoes", created.Items[0].ProductName)
	assert.Equal(t, "Socks", created.Items[1].ProductName)

	w = api.do(http.MethodPut, "/api/orders/"+created.ID, `{"status":"Shipped"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	shipped := decode[models.Order](t, w)
	assert.Equal(t, models.OrderShipped, shipped.Status)
	assert.Len(t, shipped.Items, 2)

	// Any valid status is accepted, even moving backwards
	w = api.do(http.MethodPut, "/api/orders/"+created.ID, `{"status":"Processing"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/orders/"+created.ID, `{"status":"Lost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "status")

	w = api.do(http.MethodPut, "/api/orders/"+created.ID, `{"items":[{"productName":"Hat","quantity":3,"price":12}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	replaced := decode[models.Order](t, w)
	require.Len(t, replaced.Items, 1)
	assert.Equal(t, "Hat", replaced.Items[0].ProductName)

	w = api.do(http.MethodGet, "/api/orders", "")
	orders := decode[[]models.Order](t, w)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 1)

	w = api.do(http.MethodDelete, "/api/orders/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order deleted successfully", messageOf(t, w))
}

func TestOrderItemValidation(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/orders", `{"customer":"Ann","total":10,"items":[{"productName":"Shoes","quantity":0,"price":10}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, messageOf(t, w), "items[0].quantity")
}

func TestHealthEndpoints(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Storefront API is running", w.Body.String())

	w = api.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = api.do(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}

func TestUnavailableStore(t *testing.T) {
	api := newAPI(store.Unavailable(errors.New("connection refused")))

	w := api.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")

	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/api/products", ""},
		{http.MethodPost, "/api/products", `{"name":"Shoes","price":1}`},
		{http.MethodPut, "/api/products/x", `{"name":"Boot"}`},
		{http.MethodDelete, "/api/products/x", ""},
		{http.MethodPost, "/api/categories", `{"name":"Footwear"}`},
		{http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"x"}`},
		{http.MethodPost, "/api/login", `{"email":"ann@example.com","password":"x"}`},
	}
	for _, r := range requests {
		w := api.do(r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", r.method, r.path)
		assert.Contains(t, messageOf(t, w), store.ErrUnavailable.Error())
	}
}

// TestCatalogScenario walks a category and a product through the API the way
// the admin UI does, leaving stock and status to their defaults
func TestCatalogScenario(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/api/categories", `{"name":"Shoes"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/products", `{"name":"Boot","price":49.99,"category":"Shoes"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	raw := decode[map[string]any](t, w)
	assert.Equal(t, "Boot", raw["name"])
	assert.Equal(t, "Shoes", raw["category"])
	assert.Equal(t, 49.99, raw["price"]) // A JSON number, not a string
	assert.Equal(t, float64(0), raw["stock"])
	assert.Equal(t, models.StatusActive, raw["status"])
	assert.NotEmpty(t, raw["id"])

	w = api.do(http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	products := decode[[]models.Product](t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Shoes", products[0].Category)
	assert.Equal(t, 0, products[0].Stock)

	w = api.do(http.MethodGet, "/api/categories", "")
	categories := decode[[]models.Category](t, w)
	require.Len(t, categories, 1)
	assert.Equal(t, "Shoes", categories[0].Name)
}

// TestStoreFailureIsServerError checks that a store failing mid-flight answers
// 500 on every verb, not only on reads
func TestStoreFailureIsServerError(t *testing.T) {
	api := setupAPI(t)
	require.NoError(t, api.store.Close(context.Background()))

	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/api/products", ""},
		{http.MethodPost, "/api/products", `{"name":"Shoes","price":1}`},
		{http.MethodPut, "/api/products/x", `{"name":"Boot"}`},
		{http.MethodDelete, "/api/products/x", ""},
		{http.MethodPost, "/api/categories", `{"name":"Footwear"}`},
		{http.MethodPut, "/api/categories/x", `{"name":"Boots"}`},
		{http.MethodPost, "/api/orders", `{"customer":"Ann","total":1,"items":[]}`},
		{http.MethodPut, "/api/orders/x", `{"status":"Shipped"}`},
		{http.MethodPost, "/api/users", `{"name":"Ann","email":"ann@example.com","password":"x"}`},
		{http.MethodPut, "/api/users/x", `{"name":"X"}`},
		{http.MethodPost, "/api/login", `{"email":"ann@example.com","password":"x"}`},
	}
	for _, r := range requests {
		w := api.do(r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", r.method, r.path)
		assert.Contains(t, messageOf(t, w), "database is closed", "%s %s", r.method, r.path)
	}

	// Bad input is still reported as such before the store is touched
	w := api.do(http.MethodPost, "/api/products", `{"name":"Shoes","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &models.ValidationError{Problems: []string{"name is required"}}, http.StatusBadRequest},
		{"duplicate", fmt.Errorf("%w: UNIQUE constraint failed", store.ErrDuplicate), http.StatusBadRequest},
		{"missing", store.ErrNotFound, http.StatusNotFound},
		{"unavailable", store.Unavailable(errors.New("refused")).Ping(context.Background()), http.StatusInternalServerError},
		{"anything else", errors.New("disk I/O error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusOf(tc.err))
		})
	}
}
