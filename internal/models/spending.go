package models

import "time"

// Spending is one bookkeeping entry. Negative amounts are expenses, positive
// amounts are income, by convention.
type Spending struct {
	SpendingID     int       `json:"spendingId" bson:"spendingId"`
	Amount         float64   `json:"amount" bson:"amount"`
	Currency       string    `json:"currency" bson:"currency"`
	DateOfSpending time.Time `json:"dateOfSpending" bson:"dateOfSpending"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID     *int      `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
}
