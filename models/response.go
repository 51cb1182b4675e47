package models

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id"`
}
