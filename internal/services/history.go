package services

import (
	"context"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=services

// PurchaseReader reads the purchase ledger.
type PurchaseReader interface {
	List(ctx context.Context) ([]models.Purchase, error)
	ListByPart(ctx context.Context, partID int64) ([]models.Purchase, error)
}

// UserLister lists accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// PartChecker checks part existence.
type PartChecker interface {
	Exists(ctx context.Context, partID int64) (bool, error)
}

// HistoryService answers the admin reporting queries.
type HistoryService struct {
	purchases PurchaseReader
	users     UserLister
	parts     PartChecker
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(purchases PurchaseReader, users UserLister, parts PartChecker) *HistoryService {
	return &HistoryService{purchases: purchases, users: users, parts: parts}
}

// PurchaseHistory returns the whole ledger. Admin only.
func (s *HistoryService) PurchaseHistory(ctx context.Context, requester models.Identity) ([]models.Purchase, error) {
	if !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list purchases", "error", err)
		return nil, err
	}
	return purchases, nil
}

// PartHistory returns the purchases of one existing part. Admin only.
func (s *HistoryService) PartHistory(ctx context.Context, requester models.Identity, partID int64) ([]models.Purchase, error) {
	if !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	exists, err := s.parts.Exists(ctx, partID)
	if err != nil {
		logger.Log.Errorw("failed to check part", "part_id", partID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrPartNotFound
	}
	purchases, err := s.purchases.ListByPart(ctx, partID)
	if err != nil {
		logger.Log.Errorw("failed to list part purchases", "part_id", partID, "error", err)
		return nil, err
	}
	return purchases, nil
}

// Users returns every account. Admin only.
func (s *HistoryService) Users(ctx context.Context, requester models.Identity) ([]models.User, error) {
	if !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
