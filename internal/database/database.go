package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Databases regroupe les connexions partagées du processus. Initialisé une
// seule fois au démarrage puis injecté dans les repositories et middlewares.
type Databases struct {
	client *mongo.Client

	Mongo *mongo.Database
	Redis *redis.Client
}

// Connect ouvre MongoDB et Redis. Un échec de ping MongoDB est loggé mais ne
// tue pas le processus : chaque requête remontera l'erreur du driver dans sa
// propre réponse. Un Redis absent désactive simplement le cache et le rate
// limiting.
func Connect() *Databases {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbs := &Databases{}
	dbs.connectMongo(ctx)
	dbs.connectRedis(ctx)

	return dbs
}

func (d *Databases) connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "rentalequip"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		// URI invalide : erreur de configuration, pas une base injoignable
		log.Fatalf("❌ MONGODB_URI invalide: %v", err)
	}

	d.client = client
	d.Mongo = client.Database(dbName)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("❌ Erreur connexion MongoDB:", err)
		return
	}
	log.Println("✅ Connecté à MongoDB :", dbName)
}

func (d *Databases) connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		log.Println("⚠️  REDIS_HOST non configuré — cache et rate limiting désactivés")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️  Redis injoignable — cache et rate limiting désactivés:", err)
		return
	}

	d.Redis = client
	log.Println("✅ Connecté à Redis")
}

// Close libère les connexions. À appeler en defer dans main.
func (d *Databases) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if d.client != nil {
		if err := d.client.Disconnect(ctx); err != nil {
			log.Println("⚠️  Erreur fermeture MongoDB:", err)
		} else {
			log.Println("🔌 Connexion MongoDB fermée")
		}
	}

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			log.Println("⚠️  Erreur fermeture Redis:", err)
		} else {
			log.Println("🔌 Connexion Redis fermée")
		}
	}
}
