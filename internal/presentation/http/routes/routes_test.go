package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Josef-ino/poksys/internal/application/service"
	"github.com/Josef-ino/poksys/internal/config"
	"github.com/Josef-ino/poksys/internal/infrastructure/store"
	"github.com/Josef-ino/poksys/internal/presentation/http/handler"
	"github.com/Josef-ino/poksys/pkg/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	st, err := store.New(dir)
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	authService, err := service.NewAuthService(jwtManager, "uzivatel", "poksys1")
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	cartService := service.NewCartService(st)

	handlers := &Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Catalog:  handler.NewCatalogHandler(service.NewCatalogService(st, st)),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(service.NewCheckoutService(cartService, st, st, dir)),
		Sales:    handler.NewSalesHandler(service.NewSalesService(st)),
		Settings: handler.NewSettingsHandler(service.NewSettingsService(st)),
		System:   handler.NewSystemHandler(service.NewSystemService(st, cartService)),
	}

	cfg := &config.Config{}
	cfg.App.Name = "poksys-test"
	cfg.RateLimit.Requests = 100
	cfg.RateLimit.Duration = 1

	return Setup(handlers, &Deps{JWTManager: jwtManager, Cfg: cfg})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "uzivatel",
		"password": "poksys1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response failed: %v", err)
	}
	if resp.Data.AccessToken == "" {
		t.Fatal("login response carries no access token")
	}
	return resp.Data.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/products", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a bad token, got %d", w.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "uzivatel",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestTillFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Add a product to the catalog.
	w := doJSON(t, router, http.MethodPost, "/api/v1/products", token, gin.H{
		"name":  "Káva",
		"price": 2.50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add product failed with status %d: %s", w.Code, w.Body.String())
	}

	// Build an order: 2x via add, +1 via quick add.
	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"name":  "Káva",
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add cart item failed with status %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items/quick-add", token, gin.H{
		"name": "Káva",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("quick add failed with status %d: %s", w.Code, w.Body.String())
	}

	// Finalize with a 10 % discount.
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", token, gin.H{
		"discount": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout failed with status %d: %s", w.Code, w.Body.String())
	}

	var checkout struct {
		Data struct {
			OrderID     string  `json:"order_id"`
			PaymentType string  `json:"payment_type"`
			Discount    float64 `json:"discount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &checkout); err != nil {
		t.Fatalf("decode checkout response failed: %v", err)
	}
	if checkout.Data.PaymentType != "Hotově" {
		t.Errorf("expected default payment type, got %q", checkout.Data.PaymentType)
	}

	// The cart is empty again.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart failed with status %d", w.Code)
	}
	var cart struct {
		Data struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart response failed: %v", err)
	}
	if cart.Data.ItemCount != 0 {
		t.Errorf("cart must be empty after checkout, has %d items", cart.Data.ItemCount)
	}

	// The sale shows up in the history.
	w = doJSON(t, router, http.MethodGet, "/api/v1/sales/"+checkout.Data.OrderID, token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for the recorded sale, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/sales/OBJ-MISSING", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown order id, got %d", w.Code)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout", token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty purchase list, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateReceiptFormatValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Fetch the current template and break one slot.
	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/receipt-format", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get receipt format failed with status %d", w.Code)
	}
	var current struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &current); err != nil {
		t.Fatalf("decode format response failed: %v", err)
	}
	current.Data["total"] = "Celkem: {total_amount}"

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings/receipt-format", token, current.Data)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for an unknown placeholder, got %d: %s", w.Code, w.Body.String())
	}
}
