package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalequip_backend/internal/models"
	"rentalequip_backend/internal/utils"
)

// UserStore est l'accès au document User dont les handlers d'auth ont besoin.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthHandler struct {
	users UserStore
}

func NewAuthHandler(users UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register hash le mot de passe (Argon2id) et persiste l'utilisateur.
// Aucun token n'est émis à l'inscription.
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error registering user.",
			"error":   err.Error(),
		})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error registering user.",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Username: input.Username,
		Password: hashed,
	}

	if _, err := h.users.Insert(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Error registering user.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully!"})
}

// Login vérifie les identifiants et émet un bearer token d'une heure.
// Le message d'erreur est volontairement identique que l'utilisateur soit
// inconnu ou le mot de passe faux.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), input.Username)
	if err != nil || user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   token,
		"userId":  user.ID.Hex(),
	})
}
