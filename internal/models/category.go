package models

type Category struct {
	CategoryID int    `json:"categoryId" bson:"categoryId"`
	Name       string `json:"name" bson:"name"`
}
