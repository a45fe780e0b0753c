package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/validation"
)

//go:generate mockgen -source=purchase.go -destination=mock_purchase.go -package=services

// Purchase outcomes reported to the PurchaseRecorder.
const (
	PurchaseSucceeded         = "success"
	PurchaseInsufficientStock = "insufficient_stock"
	PurchasePartNotFound      = "not_found"
	PurchaseFailed            = "error"
)

// Transactor runs fn as one atomic unit of work.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// StockWriter reduces part stock.
type StockWriter interface {
	DecrementStock(ctx context.Context, partID int64, quantity int) (*models.Part, error)
	Exists(ctx context.Context, partID int64) (bool, error)
}

// PurchaseWriter appends to the purchase ledger.
type PurchaseWriter interface {
	Save(ctx context.Context, purchase *models.Purchase) (int64, error)
}

// PurchasePublisher announces committed purchases.
type PurchasePublisher interface {
	Publish(ctx context.Context, event models.PurchaseEvent)
}

// PurchaseRecorder records purchase outcomes.
type PurchaseRecorder interface {
	ObservePurchase(result string, quantity int)
}

// PurchaseService applies purchases against catalog stock.
type PurchaseService struct {
	tx        Transactor
	stock     StockWriter
	ledger    PurchaseWriter
	publisher PurchasePublisher
	recorder  PurchaseRecorder
	now       func() time.Time
}

// NewPurchaseService creates a new PurchaseService. publisher and recorder may be nil.
func NewPurchaseService(
	tx Transactor,
	stock StockWriter,
	ledger PurchaseWriter,
	publisher PurchasePublisher,
	recorder PurchaseRecorder,
) *PurchaseService {
	return &PurchaseService{
		tx:        tx,
		stock:     stock,
		ledger:    ledger,
		publisher: publisher,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Purchase takes quantity units of the part for requester. The stock
// decrement and the ledger entry commit together or not at all; on
// ErrInsufficientStock or ErrPartNotFound nothing is written.
func (s *PurchaseService) Purchase(ctx context.Context, requester models.Identity, partID int64, quantity int) (*models.Purchase, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	if quantity <= 0 {
		return nil, validation.NewError("quantity", "gt")
	}

	var (
		purchase *models.Purchase
		part     *models.Part
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		part, err = s.decrement(ctx, partID, quantity)
		if errors.Is(err, sql.ErrNoRows) {
			exists, existsErr := s.stock.Exists(ctx, partID)
			if existsErr != nil {
				return existsErr
			}
			if !exists {
				return ErrPartNotFound
			}
			return ErrInsufficientStock
		}
		if err != nil {
			return err
		}

		purchase = &models.Purchase{
			PartID:    &part.ID,
			PartName:  part.Name,
			UserID:    requester.UserID,
			Username:  requester.Username,
			Quantity:  quantity,
			Timestamp: s.now().UTC().Truncate(time.Second),
		}
		purchase.ID, err = s.ledger.Save(ctx, purchase)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientStock):
			logger.Log.Infow("purchase rejected: not enough stock", "part_id", partID, "quantity", quantity, "username", requester.Username)
			s.observe(PurchaseInsufficientStock, 0)
		case errors.Is(err, ErrPartNotFound):
			logger.Log.Infow("purchase rejected: part not found", "part_id", partID, "username", requester.Username)
			s.observe(PurchasePartNotFound, 0)
		default:
			logger.Log.Errorw("purchase failed", "part_id", partID, "quantity", quantity, "username", requester.Username, "error", err)
			s.observe(PurchaseFailed, 0)
		}
		return nil, err
	}

	logger.Log.Infow("purchase committed",
		"purchase_id", purchase.ID,
		"part_id", partID,
		"quantity", quantity,
		"remaining", part.Quantity,
		"username", requester.Username,
	)
	s.observe(PurchaseSucceeded, quantity)
	if s.publisher != nil {
		s.publisher.Publish(ctx, models.NewPurchaseEvent(*purchase, *part))
	}

	return purchase, nil
}

func (s *PurchaseService) observe(result string, quantity int) {
	if s.recorder != nil {
		s.recorder.ObservePurchase(result, quantity)
	}
}

// decrement takes quantity units off the part's stock. A quantity above what
// a stock column can hold never fits and is reported like any shortfall.
func (s *PurchaseService) decrement(ctx context.Context, partID int64, quantity int) (*models.Part, error) {
	if quantity > validation.MaxQuantity {
		return nil, sql.ErrNoRows
	}
	return s.stock.DecrementStock(ctx, partID, quantity)
}
