package dto

type UpdatePropertyNameRequest struct {
	Name string `json:"name"`
}
