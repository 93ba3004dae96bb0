package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Property is the per-database metadata document. Each database is expected
// to hold at most one.
type Property struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
