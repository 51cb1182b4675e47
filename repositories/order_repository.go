package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListSummaries(ctx context.Context) ([]models.OrderSummary, error)
	ListPage(ctx context.Context, limit, offset int) ([]models.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewPGOrderRepository(db *pgxpool.Pool) *PGOrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (full_name, address, phone, total_amount, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		order.FullName,
		order.Address,
		order.Phone,
		order.TotalAmount,
		order.TransactionID,
	).Scan(&order.OrderID, &order.CreatedAt)
}

func (r *PGOrderRepository) ListSummaries(ctx context.Context) ([]models.OrderSummary, error) {
	query := `
		SELECT order_id, full_name, total_amount, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.OrderSummary{}
	for rows.Next() {
		var o models.OrderSummary
		if err := rows.Scan(&o.OrderID, &o.FullName, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *PGOrderRepository) ListPage(ctx context.Context, limit, offset int) ([]models.Order, error) {
	query := `
		SELECT order_id, full_name, address, phone, total_amount, transaction_id, created_at
		FROM orders
		ORDER BY order_id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.OrderID,
			&o.FullName,
			&o.Address,
			&o.Phone,
			&o.TotalAmount,
			&o.TransactionID,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
