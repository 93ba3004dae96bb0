package dto

import (
	"go.mongodb.org/mongo-driver/bson"
)

type CreateSpendingRequest struct {
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	DateOfSpending string  `json:"dateOfSpending"`
	Description    string  `json:"description"`
	CategoryID     *int    `json:"categoryId"`
}

// UpdateSpendingRequest is a sparse patch: nil fields are left untouched.
type UpdateSpendingRequest struct {
	SpendingID     *int     `json:"spendingId"`
	Amount         *float64 `json:"amount"`
	Currency       *string  `json:"currency"`
	DateOfSpending *string  `json:"dateOfSpending"`
	Description    *string  `json:"description"`
	CategoryID     *int     `json:"categoryId"`
}

// SetFields builds the field-set patch from the supplied fields only. An
// empty result means the caller sent nothing to update.
func (r *UpdateSpendingRequest) SetFields() (bson.M, error) {
	fields := bson.M{}
	if r.Amount != nil {
		fields["amount"] = *r.Amount
	}
	if r.Currency != nil {
		fields["currency"] = *r.Currency
	}
	if r.DateOfSpending != nil {
		date, err := ParseDate(*r.DateOfSpending)
		if err != nil {
			return nil, err
		}
		fields["dateOfSpending"] = date
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.CategoryID != nil {
		fields["categoryId"] = *r.CategoryID
	}
	return fields, nil
}

type DeleteSpendingRequest struct {
	SpendingID *int `json:"spendingId"`
}
