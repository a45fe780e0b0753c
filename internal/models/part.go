package models

import "github.com/shopspring/decimal"

// Part represents a catalog item row in the database
type Part struct {
	ID       int64           `json:"id" db:"id"`             // Primary key
	Name     string          `json:"name" db:"name"`         // Display name
	Price    decimal.Decimal `json:"price" db:"price"`       // Unit price, never negative
	Quantity int             `json:"quantity" db:"quantity"` // Units in stock, never negative
	Image    string          `json:"image" db:"image"`       // Image file reference
}

// NewPart holds the admin input for creating a part.
type NewPart struct {
	Name     string          `validate:"required,max=80"`
	Price    decimal.Decimal `validate:"price"`
	Quantity int             `validate:"gte=0,max=2147483647"`
	Image    string          `validate:"required,max=120,image_ext"`
}

// PartEdit is one entry of an admin bulk update. Nil fields are left untouched.
type PartEdit struct {
	Stock *int             `validate:"omitempty,gte=0,max=2147483647"`
	Price *decimal.Decimal `validate:"omitempty,price"`
}
