package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/parts-store/internal/models"
)

// UserRepository persists user accounts.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the exact username, or nil if there is none.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)

	logQuery(query, []any{username}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts a new user and returns its id. ErrDuplicate is returned when
// the username is taken.
func (r *UserRepository) Save(ctx context.Context, user *models.User) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query,
		user.Username, user.PasswordHash, user.Role)

	logQuery(query, []any{user.Username, "***", user.Role}, id, err)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return id, nil
}

// List returns all users without their password hashes.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, username, role
		FROM users
		ORDER BY id
	`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}
