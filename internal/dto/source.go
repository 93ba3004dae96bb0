package dto

import (
	"time"

	"accounting-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type CreateSourceRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// NewSource applies the creation defaults: empty description, active unless
// explicitly disabled, both timestamps stamped to now. The sourceId is
// assigned by the repository.
func (r *CreateSourceRequest) NewSource(now time.Time) *models.Source {
	return &models.Source{
		Name:        r.Name,
		Type:        models.SourceType(r.Type),
		Description: r.Description,
		IsActive:    r.IsActive == nil || *r.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateSourceRequest is a sparse patch: nil fields are left untouched.
type UpdateSourceRequest struct {
	SourceID    *int    `json:"sourceId"`
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// HasFields reports whether any mutable field was supplied.
func (r *UpdateSourceRequest) HasFields() bool {
	return r.Name != nil || r.Type != nil || r.Description != nil || r.IsActive != nil
}

// SetFields builds the field-set patch. updatedAt is always refreshed.
func (r *UpdateSourceRequest) SetFields(now time.Time) bson.M {
	fields := bson.M{"updatedAt": now}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Type != nil {
		fields["type"] = models.SourceType(*r.Type)
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.IsActive != nil {
		fields["isActive"] = *r.IsActive
	}
	return fields
}

type DeleteSourceRequest struct {
	SourceID *int `json:"sourceId"`
}

type ToggleSourceStatusRequest struct {
	SourceID *int  `json:"sourceId"`
	IsActive *bool `json:"isActive"`
}
