package dto

import "go.mongodb.org/mongo-driver/bson"

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	CategoryID *int    `json:"categoryId"`
	Name       *string `json:"name"`
}

func (r *UpdateCategoryRequest) SetFields() bson.M {
	fields := bson.M{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	return fields
}

type DeleteCategoryRequest struct {
	CategoryID *int `json:"categoryId"`
}
