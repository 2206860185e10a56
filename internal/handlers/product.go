package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentalequip_backend/internal/models"
)

type ProductStore interface {
	Insert(ctx context.Context, p models.Product) (models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Replace(ctx context.Context, id primitive.ObjectID, p models.Product) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductListCache est optionnel : nil quand Redis est absent.
type ProductListCache interface {
	Get(ctx context.Context) ([]models.Product, bool)
	Set(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

type ProductHandler struct {
	products ProductStore
	cache    ProductListCache
}

func NewProductHandler(products ProductStore, cache ProductListCache) *ProductHandler {
	return &ProductHandler{products: products, cache: cache}
}

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	PricePerDay float64 `json:"pricePerDay"`
	Image       string  `json:"image"`
}

// 🟢 POST /add-product
func (h *ProductHandler) Create(c *gin.Context) {
	var input productRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error adding product",
			"error":   err.Error(),
		})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Category:    input.Category,
		PricePerDay: input.PricePerDay,
		Image:       input.Image,
	}

	saved, err := h.products.Insert(c.Request.Context(), product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error adding product",
			"error":   err.Error(),
		})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusCreated, saved)
}

// 🟢 GET /products
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, err := h.products.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching products",
			"error":   err.Error(),
		})
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, products)
	}

	c.JSON(http.StatusOK, products)
}

// 🟢 PUT /products/:id
// Un id inconnu répond 200 avec un corps null : pas de 404 distinct.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error updating product",
			"error":   err.Error(),
		})
		return
	}

	var input productRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error updating product",
			"error":   err.Error(),
		})
		return
	}

	updated, err := h.products.Replace(c.Request.Context(), id, models.Product{
		Name:        input.Name,
		Category:    input.Category,
		PricePerDay: input.PricePerDay,
		Image:       input.Image,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error updating product",
			"error":   err.Error(),
		})
		return
	}

	h.invalidateCache(c)

	if updated == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// 🟢 DELETE /products/:id
// Supprimer un id inconnu réussit quand même.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error deleting product",
			"error":   err.Error(),
		})
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error deleting product",
			"error":   err.Error(),
		})
		return
	}

	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) invalidateCache(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
}
