package models

import (
	"strings"
	"time"
)

type SourceType string

const (
	SourceTypeBank          SourceType = "bank"
	SourceTypeDigitalWallet SourceType = "digital_wallet"
	SourceTypeCreditCard    SourceType = "credit_card"
	SourceTypeCash          SourceType = "cash"
	SourceTypeOther         SourceType = "other"
)

var sourceTypes = []SourceType{
	SourceTypeBank,
	SourceTypeDigitalWallet,
	SourceTypeCreditCard,
	SourceTypeCash,
	SourceTypeOther,
}

// Valid reports whether t is one of the fixed source types.
func (t SourceType) Valid() bool {
	for _, known := range sourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SourceTypeList returns the valid types joined for error messages.
func SourceTypeList() string {
	names := make([]string, len(sourceTypes))
	for i, t := range sourceTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Source is a funding source (bank account, wallet, card, ...).
type Source struct {
	SourceID    int        `json:"sourceId" bson:"sourceId"`
	Name        string     `json:"name" bson:"name"`
	Type        SourceType `json:"type" bson:"type"`
	Description string     `json:"description" bson:"description"`
	IsActive    bool       `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
