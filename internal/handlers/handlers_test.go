package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RCnetmiles/Lab-Label/internal/models"
	"github.com/RCnetmiles/Lab-Label/internal/services"
	"github.com/RCnetmiles/Lab-Label/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	products map[uint]models.Product
}

func newFakeStore(products ...models.Product) *fakeStore {
	s := &fakeStore{products: make(map[uint]models.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeStore) ListRandom(n int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if len(out) == n {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeStore) GetByID(id uint) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrProductNotFound
	}
	return &p, nil
}

func (s *fakeStore) Create(p *models.Product) error {
	p.ID = uint(len(s.products) + 1)
	s.products[p.ID] = *p
	return nil
}

func catalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Ethanol 99%", Description: "REQ-001", CorrectContainer: "glass", CorrectPictograms: []string{"flammable", "irritant"}},
		{ID: 2, Name: "Sulfuric Acid", Description: "REQ-002", CorrectContainer: "glass", CorrectPictograms: []string{"corrosive"}},
		{ID: 3, Name: "Distilled Water", Description: "REQ-005", CorrectContainer: "plastic", CorrectPictograms: []string{}},
	}
}

func newTestRouter(store services.ProductStore, batch int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	verifier := services.NewVerificationService(store)

	productHandler := NewProductHandler(store, batch)
	verifyHandler := NewVerifyHandler(verifier, hub)
	monitorHandler := NewMonitorHandler(hub)

	r := gin.New()
	r.GET("/ws/monitor", monitorHandler.HandleMonitor)
	api := r.Group("/api")
	{
		api.GET("/health", Health)
		api.GET("/products", productHandler.ListProducts)
		api.POST("/verify", verifyHandler.VerifyAnswer)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProducts(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3)

	seen := make(map[uint]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product %d in batch", p.ID)
		seen[p.ID] = true
	}
}

func TestVerifyAnswerPerfect(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodPost, "/api/verify",
		`{"productId":1,"selectedContainer":"glass","selectedPictograms":["irritant","flammable"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.VerifyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Correct)
	assert.Equal(t, 100, result.ScoreDelta)
	assert.Equal(t, "Perfect labeling.", result.Message)
	assert.Equal(t, "glass", result.CorrectContainer)
	assert.ElementsMatch(t, []string{"flammable", "irritant"}, result.CorrectPictograms)
}

func TestVerifyAnswerCitation(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodPost, "/api/verify",
		`{"productId":1,"selectedContainer":"plastic","selectedPictograms":["flammable"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.VerifyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Correct)
	assert.Equal(t, -50, result.ScoreDelta)
	assert.Equal(t, "Citation Issued: Wrong container type. Incorrect hazard symbols.", result.Message)
}

func TestVerifyAnswerEmptyPictograms(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodPost, "/api/verify",
		`{"productId":3,"selectedContainer":"plastic","selectedPictograms":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.VerifyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Correct)
}

func TestVerifyAnswerNotFound(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodPost, "/api/verify",
		`{"productId":99,"selectedContainer":"glass","selectedPictograms":[]}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "Product not found", errResp.Message)
}

func TestVerifyAnswerValidation(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing product id",
			body:      `{"selectedContainer":"glass","selectedPictograms":[]}`,
			wantField: "productId",
		},
		{
			name:      "invalid container enum",
			body:      `{"productId":1,"selectedContainer":"cardboard","selectedPictograms":[]}`,
			wantField: "selectedContainer",
		},
		{
			name:      "missing pictograms",
			body:      `{"productId":1,"selectedContainer":"glass"}`,
			wantField: "selectedPictograms",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(newFakeStore(catalog()...), 6)

			w := doJSON(t, r, http.MethodPost, "/api/verify", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tc.wantField, errResp.Field)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestVerifyAnswerMalformedJSON(t *testing.T) {
	r := newTestRouter(newFakeStore(catalog()...), 6)

	w := doJSON(t, r, http.MethodPost, "/api/verify", `{"productId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
