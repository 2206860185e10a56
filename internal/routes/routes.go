package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentalequip_backend/internal/cache"
	"rentalequip_backend/internal/database"
	"rentalequip_backend/internal/handlers"
	"rentalequip_backend/internal/middleware"
	"rentalequip_backend/internal/repository"
)

// Origines autorisées par défaut : le dev local et les deux déploiements
var defaultOrigins = []string{
	"http://localhost:3000",
	"https://rentalequip-backend.onrender.com",
	"https://rentalequip-frontend-ui.netlify.app",
}

func RegisterRoutes(r *gin.Engine, dbs *database.Databases) {
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig()))

	userRepo := repository.NewUserRepo(dbs.Mongo)
	productRepo := repository.NewProductRepo(dbs.Mongo)
	cartRepo := repository.NewCartRepo(dbs.Mongo)

	var productCache handlers.ProductListCache
	if dbs.Redis != nil {
		productCache = cache.NewProductCache(dbs.Redis)
	}

	auth := handlers.NewAuthHandler(userRepo)
	products := handlers.NewProductHandler(productRepo, productCache)
	carts := handlers.NewCartHandler(cartRepo)

	// Auth
	r.POST("/register", middleware.RegisterRateLimit(dbs.Redis), auth.Register)
	r.POST("/login", middleware.LoginRateLimit(dbs.Redis), auth.Login)

	// Catalogue — servi sans contrôle du token, comme le frontend l'attend
	r.POST("/add-product", products.Create)
	r.GET("/products", products.List)
	r.PUT("/products/:id", products.Update)
	r.DELETE("/products/:id", products.Delete)

	// Panier / checkout
	r.POST("/checkout", carts.Checkout)
	r.GET("/cart/:userId", carts.GetUserCart)
}

func corsConfig() cors.Config {
	origins := defaultOrigins
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}
