package services

import (
	"context"
	"errors"

	"storefront-api/models"
	"storefront-api/repositories"
)

var ErrMissingOrderFields = errors.New("all fields are required")

const (
	defaultPage  = 1
	defaultLimit = 10
)

type OrderService struct {
	orders repositories.OrderRepository
}

func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (int, error) {
	if req.FullName == "" || req.Address == "" || req.Phone == "" ||
		req.TransactionID == "" || req.TotalAmount.IsZero() {
		return 0, ErrMissingOrderFields
	}

	order := &models.Order{
		FullName:      req.FullName,
		Address:       req.Address,
		Phone:         req.Phone,
		TotalAmount:   req.TotalAmount,
		TransactionID: req.TransactionID,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return 0, err
	}

	return order.OrderID, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	return s.orders.ListSummaries(ctx)
}

// ListOrdersAdmin returns the full records for one page. Limit carries no
// upper bound; see the open questions in DESIGN.md.
func (s *OrderService) ListOrdersAdmin(ctx context.Context, page, limit int) ([]models.Order, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	return s.orders.ListPage(ctx, limit, offset)
}
