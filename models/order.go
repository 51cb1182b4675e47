package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// total_amount goes over the wire as a JSON number, not a string.
	decimal.MarshalJSONWithoutQuotes = true
}

type Order struct {
	OrderID       int             `json:"order_id"`
	FullName      string          `json:"full_name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderSummary is the customer-facing listing row. Address, phone and
// transaction id never leave the admin surface.
type OrderSummary struct {
	OrderID     int             `json:"order_id"`
	FullName    string          `json:"full_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
