package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rentalequip_backend/internal/models"
)

type CartRepo struct {
	coll *mongo.Collection
}

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{coll: db.Collection("carts")}
}

// Insert crée un nouveau document panier. Chaque checkout en crée un,
// jamais de mise à jour.
func (r *CartRepo) Insert(ctx context.Context, cart models.Cart) (models.Cart, error) {
	res, err := r.coll.InsertOne(ctx, cart)
	if err != nil {
		return models.Cart{}, err
	}
	cart.ID = res.InsertedID.(primitive.ObjectID)
	return cart, nil
}

// FindByUser retourne tous les paniers historiques d'un utilisateur,
// séquence vide si aucun.
func (r *CartRepo) FindByUser(ctx context.Context, userID string) ([]models.Cart, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}

	carts := []models.Cart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}
