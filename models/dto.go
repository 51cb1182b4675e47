package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type PlaceOrderRequest struct {
	FullName      string          `json:"full_name" form:"full_name"`
	Address       string          `json:"address" form:"address"`
	Phone         string          `json:"phone" form:"phone"`
	TotalAmount   decimal.Decimal `json:"total_amount" form:"total_amount"`
	TransactionID string          `json:"transaction_id" form:"transaction_id"`
}
