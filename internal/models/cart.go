package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart est un document immuable créé à chaque checkout : les champs name et
// pricePerDay sont des snapshots pris au moment de l'achat, jamais resynchronisés
// avec le catalogue.
type Cart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string             `bson:"userId" json:"userId"`
	Products []CartLine         `bson:"products" json:"products"`
}

type CartLine struct {
	ProductID   string  `bson:"productId" json:"productId"`
	Name        string  `bson:"name" json:"name"`
	PricePerDay float64 `bson:"pricePerDay" json:"pricePerDay"`
	Quantity    int     `bson:"quantity" json:"quantity"`
}
