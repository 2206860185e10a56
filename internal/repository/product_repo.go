package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rentalequip_backend/internal/models"
)

type ProductRepo struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

func (r *ProductRepo) Insert(ctx context.Context, p models.Product) (models.Product, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Replace écrase les quatre champs mutables du produit et retourne le
// document mis à jour. Retourne (nil, nil) si l'id n'existe pas : le handler
// répond alors 200 avec un corps null, comme le contrat l'exige.
func (r *ProductRepo) Replace(ctx context.Context, id primitive.ObjectID, p models.Product) (*models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"category":    p.Category,
		"pricePerDay": p.PricePerDay,
		"image":       p.Image,
	}}

	var updated models.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete supprime le produit si présent. Aucun signalement si l'id n'existe
// pas : la suppression d'un id inconnu réussit.
func (r *ProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
