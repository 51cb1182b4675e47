package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAdminByEmail(ctx context.Context, email string) (*models.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewPGUserRepository(db *pgxpool.Pool) *PGUserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Password,
		user.Role,
	).Scan(&user.ID)
}

func (r *PGUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password, role FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PGUserRepository) FindAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password, role FROM users WHERE email = $1 AND role = 'admin'`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PGUserRepository) scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
