package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"rentalequip_backend/internal/config"
	"rentalequip_backend/internal/database"
	"rentalequip_backend/internal/routes"
)

func main() {
	config.Load()

	dbs := database.Connect()
	defer dbs.Close()

	r := gin.Default()
	routes.RegisterRoutes(r, dbs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("🚀 Serveur RentalEquip lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur HTTP:", err)
	}
}
