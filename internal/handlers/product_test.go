package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentalequip_backend/internal/handlers"
	"rentalequip_backend/internal/models"
)

func setupProductRouter(store handlers.ProductStore, cache handlers.ProductListCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewProductHandler(store, cache)
	r.POST("/add-product", h.Create)
	r.GET("/products", h.List)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)
	return r
}

func TestCreateThenListProduct(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPost, "/add-product",
		`{"name":"Excavator","category":"Heavy","pricePerDay":250.5,"image":"https://img.example/exc.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())

	w = doJSON(t, r, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	// Les quatre champs ressortent tels quels
	assert.Equal(t, "Excavator", listed[0].Name)
	assert.Equal(t, "Heavy", listed[0].Category)
	assert.Equal(t, 250.5, listed[0].PricePerDay)
	assert.Equal(t, "https://img.example/exc.jpg", listed[0].Image)
}

func TestCreateProductMissingName(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPost, "/add-product", `{"category":"Heavy","pricePerDay":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error adding product", body["message"])
	assert.Contains(t, body, "error")
	assert.Empty(t, store.products)
}

func TestUpdateProduct(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPost, "/add-product", `{"name":"Drill","category":"Tools","pricePerDay":15,"image":"a.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/products/"+created.ID.Hex(),
		`{"name":"Hammer Drill","category":"Power Tools","pricePerDay":22,"image":"b.jpg"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Hammer Drill", updated.Name)
	assert.Equal(t, "Power Tools", updated.Category)
	assert.Equal(t, 22.0, updated.PricePerDay)
	assert.Equal(t, "b.jpg", updated.Image)

	// Le listing reflète la mise à jour
	w = doJSON(t, r, http.MethodGet, "/products", "")
	var listed []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Hammer Drill", listed[0].Name)
}

func TestUpdateUnknownProductReturnsNull(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPut, "/products/"+primitive.NewObjectID().Hex(),
		`{"name":"Ghost","category":"","pricePerDay":0,"image":""}`)

	// Pas de 404 : 200 avec un corps null
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestUpdateProductInvalidID(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPut, "/products/not-an-id", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error updating product", body["message"])
}

func TestDeleteProduct(t *testing.T) {
	store := &fakeProductStore{}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodPost, "/add-product", `{"name":"Saw","category":"Tools","pricePerDay":8,"image":""}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/products/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/products", "")
	assert.Equal(t, "[]", w.Body.String())

	// Supprimer un id inexistant réussit aussi
	w = doJSON(t, r, http.MethodDelete, "/products/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())
}

func TestListProductsStoreError(t *testing.T) {
	store := &fakeProductStore{failErr: errors.New("server selection timeout")}
	r := setupProductRouter(store, nil)

	w := doJSON(t, r, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error fetching products", body["message"])
	assert.Equal(t, "server selection timeout", body["error"])
}

func TestProductCacheInvalidation(t *testing.T) {
	store := &fakeProductStore{}
	cache := &fakeProductCache{}
	r := setupProductRouter(store, cache)

	w := doJSON(t, r, http.MethodPost, "/add-product", `{"name":"Crane","category":"Heavy","pricePerDay":900,"image":""}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, cache.invalidates)

	// Premier listing : remplit le cache ; second : servi du cache
	doJSON(t, r, http.MethodGet, "/products", "")
	doJSON(t, r, http.MethodGet, "/products", "")
	assert.Equal(t, 1, store.findAlls)

	// Toute écriture invalide le cache — aucune réponse périmée possible
	doJSON(t, r, http.MethodPut, fmt.Sprintf("/products/%s", created.ID.Hex()),
		`{"name":"Tower Crane","category":"Heavy","pricePerDay":950,"image":""}`)
	assert.Equal(t, 2, cache.invalidates)

	w = doJSON(t, r, http.MethodGet, "/products", "")
	var listed []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Tower Crane", listed[0].Name)

	doJSON(t, r, http.MethodDelete, "/products/"+created.ID.Hex(), "")
	assert.Equal(t, 3, cache.invalidates)
}
