package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/catalog"
	"github.com/acaidecasa/storefront/internal/config"
	"github.com/acaidecasa/storefront/internal/domain"
	"github.com/acaidecasa/storefront/internal/pix"
	"github.com/acaidecasa/storefront/internal/service"
	"github.com/acaidecasa/storefront/internal/whatsapp"
)

type testAPI struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestAPI(t *testing.T, mutate func(*config.Config)) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:        "0",
		Environment: "test",
		Store:       config.StoreConfig{Name: "Açai de Casa"},
		Pix: config.PixConfig{
			Key:          "pagamentos@acaidecasa.com.br",
			City:         "RECIFE",
			ReceiverName: "ACAI DE CASA",
		},
		WhatsApp: config.WhatsAppConfig{Number: "5581999990000"},
		Session:  config.SessionConfig{Secret: "test-secret"},
	}
	if mutate != nil {
		mutate(cfg)
	}

	logger := zap.NewNop()
	orders, err := service.NewOrderService(cfg, pix.NewGenerator(logger), whatsapp.NewLinkBuilder(), EventBus.New(), logger)
	require.NoError(t, err)

	router := NewRouter(
		cfg,
		catalog.Default(),
		cart.NewManager(logger),
		orders,
		sessions.NewCookieStore([]byte(cfg.Session.Secret)),
		logger,
	)
	return &testAPI{router: router}
}

// do sends a request, carrying the session cookie across calls.
func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		a.cookies = cookies
	}
	return w
}

type cartState struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartState {
	t.Helper()
	var state cartState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}

func addItemBody(productID string, quantity int) gin.H {
	return gin.H{
		"product_id": productID,
		"quantity":   quantity,
		"selections": []gin.H{
			{"group_id": "frutas", "option_ids": []string{"fru-banana"}},
		},
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCatalog(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(t, http.MethodGet, "/v1/catalog", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Categories []catalog.Category `json:"categories"`
		Products   []domain.Product   `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 4)
	assert.NotEmpty(t, body.Products)
}

func TestCartFlow(t *testing.T) {
	api := newTestAPI(t, nil)

	// Empty at session start
	w := api.do(t, http.MethodGet, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeCart(t, w).TotalItems)

	// Add one line, quantity 2
	w = api.do(t, http.MethodPost, "/v1/cart/items", addItemBody("copo-500", 2))
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/v1/cart", nil)
	state := decodeCart(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.TotalItems)
	assert.True(t, state.TotalValue.Equal(decimal.RequireFromString("45.80")), "got %s", state.TotalValue)

	// Quantity 0 is floored to 1, not removed
	itemID := state.Items[0].ID
	w = api.do(t, http.MethodPatch, "/v1/cart/items/"+itemID, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeCart(t, w)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)

	// Unknown id is a no-op
	w = api.do(t, http.MethodPatch, "/v1/cart/items/missing-id", gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeCart(t, w).TotalItems)

	// Remove, then clear
	w = api.do(t, http.MethodDelete, "/v1/cart/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)

	api.do(t, http.MethodPost, "/v1/cart/items", addItemBody("copo-300", 1))
	w = api.do(t, http.MethodDelete, "/v1/cart", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(t, http.MethodPost, "/v1/cart/items", addItemBody("copo-9000", 1))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItem_RejectsOutOfBoundsSelection(t *testing.T) {
	api := newTestAPI(t, nil)

	body := gin.H{
		"product_id": "copo-300",
		"quantity":   1,
		"selections": []gin.H{
			{"group_id": "frutas", "option_ids": []string{"fru-banana", "fru-uva", "fru-manga"}},
		},
	}
	w := api.do(t, http.MethodPost, "/v1/cart/items", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Frutas")
}

func TestSubmitOrder_PixEndToEnd(t *testing.T) {
	api := newTestAPI(t, nil)
	api.do(t, http.MethodPost, "/v1/cart/items", addItemBody("copo-300", 1))

	w := api.do(t, http.MethodPost, "/v1/orders", gin.H{
		"payment_method": "pix",
		"customer": gin.H{
			"name":    "Maria Silva",
			"phone":   "(81) 99999-0000",
			"address": "Rua das Flores, 123",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result service.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.Pix)
	assert.Contains(t, result.Pix.Payload, "br.gov.bcb.pix")
	assert.Contains(t, result.Message, "Forma de pagamento: PIX")
	assert.Contains(t, result.WhatsAppURL, "wa.me/5581999990000")
}

func TestSubmitOrder_EmptyCartRejected(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(t, http.MethodPost, "/v1/orders", gin.H{
		"payment_method": "cash",
		"customer": gin.H{
			"name":    "Maria Silva",
			"phone":   "(81) 99999-0000",
			"address": "Rua das Flores, 123",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation")
}

func TestSubmitOrder_PixWithoutKey(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.Config) {
		cfg.Pix.Key = ""
	})
	api.do(t, http.MethodPost, "/v1/cart/items", addItemBody("copo-300", 1))

	w := api.do(t, http.MethodPost, "/v1/orders", gin.H{
		"payment_method": "pix",
		"customer": gin.H{
			"name":    "Maria Silva",
			"phone":   "(81) 99999-0000",
			"address": "Rua das Flores, 123",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "configuration")
}
