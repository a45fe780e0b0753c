package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is how purchase times are rendered to clients.
const TimestampLayout = "2006-01-02 15:04:05"

// Purchase represents an immutable ledger row.
type Purchase struct {
	ID        int64     `json:"id" db:"id"`                // Primary key
	PartID    *int64    `json:"part_id" db:"part_id"`      // Nil once the part has been deleted
	PartName  string    `json:"part_name" db:"part_name"`  // Part name at the time of purchase
	UserID    int64     `json:"user_id" db:"user_id"`      // Buyer
	Username  string    `json:"username" db:"username"`    // Buyer username, filled by joins
	Quantity  int       `json:"quantity" db:"quantity"`    // Units bought, always positive
	Timestamp time.Time `json:"timestamp" db:"created_at"` // Time of purchase (UTC)
}

// PurchaseEvent is the message published for every committed purchase.
type PurchaseEvent struct {
	EventID    string  `json:"event_id"`
	PurchaseID int64   `json:"purchase_id"`
	PartID     int64   `json:"part_id"`
	PartName   string  `json:"part_name"`
	Username   string  `json:"username"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Timestamp  int64   `json:"timestamp"` // Unix seconds
}

// NewPurchaseEvent builds the event for a committed purchase of part.
func NewPurchaseEvent(p Purchase, part Part) PurchaseEvent {
	return PurchaseEvent{
		EventID:    uuid.NewString(),
		PurchaseID: p.ID,
		PartID:     part.ID,
		PartName:   p.PartName,
		Username:   p.Username,
		Quantity:   p.Quantity,
		UnitPrice:  part.Price.InexactFloat64(),
		Timestamp:  p.Timestamp.Unix(),
	}
}
