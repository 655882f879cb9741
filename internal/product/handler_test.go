package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) *chi.Mux {
	handler := NewHandler(NewService(repo))

	r := chi.NewRouter()
	r.Get("/", handler.GetAll)
	r.Post("/create", handler.Create)
	r.Post("/{id}", handler.Update)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreate_MissingFields(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"title":"Widget"}`,
		`{"title":"Widget","description":"A widget"}`,
		`{"title":"Widget","description":"A widget","price":0}`,
	}

	for _, body := range bodies {
		repo := newFakeRepo()
		router := newTestRouter(repo)

		rec := doJSON(t, router, http.MethodPost, "/create", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"All fields required","code":"validation_failed"}`, rec.Body.String())
		assert.Empty(t, repo.products)
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/create", `{"title":"Widget","description":"A widget","price":9.99}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Widget created successfully"}`, rec.Body.String())

	listRec := doJSON(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, listRec.Code)

	var products []Product
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Title)
	assert.Equal(t, "A widget", products[0].Description)
	assert.Equal(t, 9.99, products[0].Price)
}

func TestUpdate_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodPost, "/999", `{"price":19.99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found","code":"product_not_found"}`, rec.Body.String())
}

func TestUpdate_NonNumericID(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	rec := doJSON(t, router, http.MethodPost, "/abc", `{"price":19.99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_PartialPriceOnly(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/create", `{"title":"Widget","description":"A widget","price":9.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/1", `{"price":19.99}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body UpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product updated successfully", body.Message)
	require.NotNil(t, body.Updated)
	assert.Equal(t, "Widget", body.Updated.Title)
	assert.Equal(t, "A widget", body.Updated.Description)
	assert.Equal(t, 19.99, body.Updated.Price)
}

func TestUpdate_OmittedPricePreserved(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	rec := doJSON(t, router, http.MethodPost, "/create", `{"title":"Widget","description":"A widget","price":9.99}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/1", `{"title":"Gadget","description":"A gadget"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body UpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Updated)
	assert.Equal(t, "Gadget", body.Updated.Title)
	assert.Equal(t, "A gadget", body.Updated.Description)
	assert.Equal(t, 9.99, body.Updated.Price)
}
