package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/parts-store/internal/models"
)

// PurchaseRepository is the append-only purchase ledger.
type PurchaseRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPurchaseRepository(db *sqlx.DB, txGetter TxGetter) *PurchaseRepository {
	return &PurchaseRepository{db: db, txGetter: txGetter}
}

const selectPurchases = `
	SELECT p.id, p.part_id, p.part_name, p.user_id, u.username, p.quantity, p.created_at
	FROM purchases p
	JOIN users u ON u.id = p.user_id
`

// Save appends a purchase and returns its id.
func (r *PurchaseRepository) Save(ctx context.Context, p *models.Purchase) (int64, error) {
	const query = `
		INSERT INTO purchases (part_id, part_name, user_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{p.PartID, p.PartName, p.UserID, p.Quantity, p.Timestamp}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// List returns the whole ledger in purchase order.
func (r *PurchaseRepository) List(ctx context.Context) ([]models.Purchase, error) {
	query := selectPurchases + `ORDER BY p.created_at, p.id`

	purchases := []models.Purchase{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &purchases, query)

	logQuery(query, nil, len(purchases), err)

	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// ListByPart returns the purchases of one part in purchase order.
func (r *PurchaseRepository) ListByPart(ctx context.Context, partID int64) ([]models.Purchase, error) {
	query := selectPurchases + `WHERE p.part_id = $1 ORDER BY p.created_at, p.id`

	purchases := []models.Purchase{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &purchases, query, partID)

	logQuery(query, []any{partID}, len(purchases), err)

	if err != nil {
		return nil, err
	}
	return purchases, nil
}
