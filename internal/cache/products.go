package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"rentalequip_backend/internal/models"
)

const (
	productListKey = "products:all"
	ProductListTTL = time.Hour
)

// ProductCache met en cache la liste complète du catalogue dans Redis.
// Chaque écriture catalogue invalide la clé : une réponse servie du cache est
// toujours identique à celle que Mongo aurait donnée.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get retourne (nil, false) sur cache miss ou cache indisponible.
func (c *ProductCache) Get(ctx context.Context) ([]models.Product, bool) {
	val, err := c.client.Get(ctx, productListKey).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.client.Set(ctx, productListKey, data, ProductListTTL)
}

// Invalidate est appelé après chaque create/update/delete produit.
func (c *ProductCache) Invalidate(ctx context.Context) {
	c.client.Del(ctx, productListKey)
}
