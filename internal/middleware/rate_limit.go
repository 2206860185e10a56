package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par username.
// Sans Redis le middleware est un no-op.
func LoginRateLimit(client *redis.Client) gin.HandlerFunc {
	return rateLimitByUsername(client, "login_attempts:", LoginMaxAttempts, LoginCooldown)
}

// RegisterRateLimit limite les inscriptions par username.
func RegisterRateLimit(client *redis.Client) gin.HandlerFunc {
	return rateLimitByUsername(client, "register_attempts:", RegisterMaxAttempts, RegisterCooldown)
}

func rateLimitByUsername(client *redis.Client, keyPrefix string, maxAttempts int, cooldown time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := keyPrefix + input.Username

		attempts, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis en panne : on laisse passer plutôt que de bloquer tout le monde
			c.Next()
			return
		}
		if attempts == 1 {
			client.Expire(ctx, key, cooldown)
		}

		if attempts > int64(maxAttempts) {
			ttl := client.TTL(ctx, key).Val()
			minutes := int(ttl.Minutes()) + 1
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives. Réessayez dans %d minutes", minutes),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
