package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/parts-store/internal/models"
)

// PartRepository persists the part catalog.
type PartRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPartRepository(db *sqlx.DB, txGetter TxGetter) *PartRepository {
	return &PartRepository{db: db, txGetter: txGetter}
}

// List returns every part ordered by id.
func (r *PartRepository) List(ctx context.Context) ([]models.Part, error) {
	const query = `
		SELECT id, name, price, quantity, image
		FROM parts
		ORDER BY id
	`

	parts := []models.Part{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &parts, query)

	logQuery(query, nil, len(parts), err)

	if err != nil {
		return nil, err
	}
	return parts, nil
}

// Exists reports whether a part with the id is present.
func (r *PartRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM parts WHERE id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, id)

	logQuery(query, []any{id}, exists, err)

	return exists, err
}

// Create inserts part and returns its id.
func (r *PartRepository) Create(ctx context.Context, part *models.Part) (int64, error) {
	const query = `
		INSERT INTO parts (name, price, quantity, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{part.Name, part.Price, part.Quantity, part.Image}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// Delete removes the part. sql.ErrNoRows is returned when it does not exist.
// Ledger rows keep their part name snapshot and lose the reference.
func (r *PartRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM parts WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Update overwrites stock and/or price. Nil fields of edit keep their current
// value. sql.ErrNoRows is returned when the part does not exist.
func (r *PartRepository) Update(ctx context.Context, id int64, edit models.PartEdit) error {
	const query = `
		UPDATE parts
		SET quantity = COALESCE($2::INTEGER, quantity),
		    price = COALESCE($3::NUMERIC, price)
		WHERE id = $1
	`
	var stock, price any
	if edit.Stock != nil {
		stock = *edit.Stock
	}
	if edit.Price != nil {
		price = *edit.Price
	}
	args := []any{id, stock, price}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DecrementStock takes quantity units off the part in a single conditional
// statement, so concurrent callers are serialized on the row lock and the
// stock check is re-evaluated against the committed value. It returns the part
// as it is after the decrement, or sql.ErrNoRows when the part is missing or
// holds fewer than quantity units.
func (r *PartRepository) DecrementStock(ctx context.Context, id int64, quantity int) (*models.Part, error) {
	const query = `
		UPDATE parts
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
		RETURNING id, name, price, quantity, image
	`

	var part models.Part
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &part, query, id, quantity)

	logQuery(query, []any{id, quantity}, part.Quantity, err)

	if err != nil {
		return nil, err
	}
	return &part, nil
}
