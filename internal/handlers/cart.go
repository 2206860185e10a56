package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalequip_backend/internal/models"
)

type CartStore interface {
	Insert(ctx context.Context, cart models.Cart) (models.Cart, error)
	FindByUser(ctx context.Context, userID string) ([]models.Cart, error)
}

type CartHandler struct {
	carts CartStore
}

func NewCartHandler(carts CartStore) *CartHandler {
	return &CartHandler{carts: carts}
}

type checkoutRequest struct {
	UserID   string         `json:"userId"`
	Products []checkoutLine `json:"products"`
}

// Pointeurs pour distinguer un champ absent d'un zéro explicite :
// pricePerDay est obligatoire, quantity absent vaut 1 mais un 0 envoyé
// est conservé tel quel.
type checkoutLine struct {
	ProductID   string   `json:"productId"`
	Name        string   `json:"name"`
	PricePerDay *float64 `json:"pricePerDay"`
	Quantity    *int     `json:"quantity"`
}

// 🟢 POST /checkout
// Chaque appel crée un nouveau document panier. Les lignes sont persistées
// telles quelles : name et pricePerDay sont des snapshots du client, jamais
// recalculés côté serveur.
func (h *CartHandler) Checkout(c *gin.Context) {
	var input checkoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "userId and a non-empty products array are required",
		})
		return
	}

	if input.UserID == "" || len(input.Products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "userId and a non-empty products array are required",
		})
		return
	}

	lines := make([]models.CartLine, 0, len(input.Products))
	for _, p := range input.Products {
		if p.ProductID == "" || p.Name == "" || p.PricePerDay == nil {
			err := errors.New("cart line requires productId, name and pricePerDay")
			log.Println("❌ Erreur sauvegarde panier:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Error saving cart",
				"error":   err.Error(),
			})
			return
		}

		quantity := 1
		if p.Quantity != nil {
			quantity = *p.Quantity
		}

		lines = append(lines, models.CartLine{
			ProductID:   p.ProductID,
			Name:        p.Name,
			PricePerDay: *p.PricePerDay,
			Quantity:    quantity,
		})
	}

	cart := models.Cart{
		UserID:   input.UserID,
		Products: lines,
	}

	saved, err := h.carts.Insert(c.Request.Context(), cart)
	if err != nil {
		log.Println("❌ Erreur sauvegarde panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error saving cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cart saved successfully!",
		"cart":    saved,
	})
}

// 🟢 GET /cart/:userId
// Retourne tous les paniers historiques de l'utilisateur — il n'existe pas
// de panier actif unique. Séquence vide si aucun checkout.
func (h *CartHandler) GetUserCart(c *gin.Context) {
	userID := c.Param("userId")

	carts, err := h.carts.FindByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching user cart",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, carts)
}
