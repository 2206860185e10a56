package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load charge le .env du backend RentalEquip s'il existe. En déploiement
// (Render) il n'y en a pas : les variables viennent du process.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Pas de .env — lecture directe des variables d'environnement du process")
		return
	}
	log.Println("✅ Configuration RentalEquip chargée depuis .env")
}
