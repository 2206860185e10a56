package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	PricePerDay float64            `bson:"pricePerDay" json:"pricePerDay"`
	Image       string             `bson:"image" json:"image"`
}
