package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/model"
	"stockroom/internal/repository/memory"
	"stockroom/internal/server"
	"stockroom/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, server.Repositories) {
	t.Helper()

	store := memory.NewStore()
	repos := server.Repositories{
		Products:     memory.NewProductRepo(store),
		Categories:   memory.NewCategoryRepo(store),
		Suppliers:    memory.NewSupplierRepo(store),
		Inventory:    memory.NewInventoryRepo(store),
		Transactions: memory.NewTransactionRepo(store),
		Users:        memory.NewUserRepo(store),
	}

	cfg := &config.Config{
		Port:            "0",
		Environment:     "development",
		StorageDriver:   config.DriverMemory,
		AllowedOrigins:  []string{"http://localhost:3000"},
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
	}

	hub := ws.NewHub()
	go hub.Run()

	return server.New(cfg, repos, hub), repos
}

func seedAccount(t *testing.T, repos server.Repositories, email, role string) *model.User {
	t.Helper()
	u := &model.User{FirstName: "Test", LastName: "User", Email: email, Role: role}
	require.NoError(t, u.SetPassword("Password123"))
	require.NoError(t, repos.Users.Create(u))
	return u
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	resp.Body.Close()
	return env
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := request(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "Password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode(t, resp)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}

func TestSignupAndLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "Password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode(t, resp)
	assert.True(t, env.Success)
	var signupData struct {
		User model.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &signupData))
	assert.Equal(t, "john@example.com", signupData.User.Email)
	assert.NotContains(t, string(env.Data), "Password123")

	// Same email again is rejected.
	resp = request(t, app, "POST", "/api/auth/signup", "", fiber.Map{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "Password123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = decode(t, resp)
	assert.Equal(t, "Email already exists", env.Error)

	token := login(t, app, "john@example.com")

	resp = request(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decode(t, resp)
	var meData struct {
		User model.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &meData))
	assert.Equal(t, "john@example.com", meData.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	app, repos := newTestApp(t)
	seedAccount(t, repos, "john@example.com", model.RoleUser)

	resp := request(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "john@example.com",
		"password": "WrongPassword1",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	env := decode(t, resp)
	assert.Equal(t, "Invalid credentials", env.Error)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/products", "/api/inventory", "/api/reports/dashboard"} {
		resp := request(t, app, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestWritesRequireAdmin(t *testing.T) {
	app, repos := newTestApp(t)
	seedAccount(t, repos, "john@example.com", model.RoleUser)
	token := login(t, app, "john@example.com")

	resp := request(t, app, "POST", "/api/products", token, fiber.Map{"name": "X"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, "GET", "/api/users", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStockUpdateFlow(t *testing.T) {
	app, repos := newTestApp(t)
	seedAccount(t, repos, "admin@inventory.com", model.RoleAdmin)
	token := login(t, app, "admin@inventory.com")

	resp := request(t, app, "POST", "/api/categories", token, fiber.Map{
		"name":  "Electronics",
		"color": "#3B82F6",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category model.Category
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &category))

	resp = request(t, app, "POST", "/api/suppliers", token, fiber.Map{
		"name": "Tech Solutions Inc.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var supplier model.Supplier
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &supplier))

	resp = request(t, app, "POST", "/api/products", token, fiber.Map{
		"name":       "Laptop Computer",
		"sku":        "LAP001",
		"price":      999.99,
		"cost":       650,
		"categoryId": category.ID,
		"supplierId": supplier.ID,
		"minStock":   10,
		"maxStock":   50,
		"unit":       "pcs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product model.ProductDetail
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &product))

	resp = request(t, app, "POST", "/api/inventory", token, fiber.Map{
		"productId": product.ID,
		"quantity":  15,
		"location":  "Warehouse A - Shelf 1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item model.InventoryItem
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &item))

	// Raise stock and check the ledger entry.
	resp = request(t, app, "PUT", "/api/inventory/"+item.ID.String()+"/stock", token, fiber.Map{
		"quantity": 25,
		"reason":   "Restock delivery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &item))
	assert.Equal(t, 25, item.Quantity)

	resp = request(t, app, "GET", "/api/inventory/"+item.ID.String()+"/transactions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []model.StockTransaction
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, model.TxIn, entries[0].Type)
	assert.Equal(t, 10, entries[0].Quantity)

	resp = request(t, app, "GET", "/api/inventory/value", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var value struct {
		TotalValue float64 `json:"totalValue"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &value))
	assert.InDelta(t, 25*650.0, value.TotalValue, 0.001)
}

func TestInventoryQuantityValidation(t *testing.T) {
	app, repos := newTestApp(t)
	seedAccount(t, repos, "admin@inventory.com", model.RoleAdmin)
	token := login(t, app, "admin@inventory.com")

	resp := request(t, app, "PUT", "/api/inventory/not-a-uuid/stock", token, fiber.Map{
		"quantity": 5,
		"reason":   "adjust",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouteNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, "GET", "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decode(t, resp)
	assert.False(t, env.Success)

	// Unknown paths under /api are still behind auth.
	resp = request(t, app, "GET", "/api/nope", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
