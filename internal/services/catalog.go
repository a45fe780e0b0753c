package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/sbilibin2017/parts-store/internal/validation"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=services

// PartReader reads the catalog.
type PartReader interface {
	List(ctx context.Context) ([]models.Part, error)
}

// PartWriter changes the catalog.
type PartWriter interface {
	Create(ctx context.Context, part *models.Part) (int64, error)
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, id int64, edit models.PartEdit) error
}

// CatalogService serves the part list and the admin catalog operations.
type CatalogService struct {
	tx     Transactor
	reader PartReader
	writer PartWriter
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(tx Transactor, reader PartReader, writer PartWriter) *CatalogService {
	return &CatalogService{tx: tx, reader: reader, writer: writer}
}

// ListParts returns the catalog to any logged-in user.
func (s *CatalogService) ListParts(ctx context.Context, requester models.Identity) ([]models.Part, error) {
	if !requester.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	parts, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list parts", "error", err)
		return nil, err
	}
	return parts, nil
}

// AddPart creates a part. Admin only.
func (s *CatalogService) AddPart(ctx context.Context, requester models.Identity, in models.NewPart) (*models.Part, error) {
	if !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validation.Struct(in, ""); err != nil {
		return nil, err
	}

	part := &models.Part{
		Name:     in.Name,
		Price:    in.Price,
		Quantity: in.Quantity,
		Image:    in.Image,
	}
	id, err := s.writer.Create(ctx, part)
	if err != nil {
		logger.Log.Errorw("failed to create part", "name", in.Name, "error", err)
		return nil, err
	}
	part.ID = id

	logger.Log.Infow("part added", "part_id", id, "name", part.Name, "quantity", part.Quantity, "admin", requester.Username)
	return part, nil
}

// DeletePart removes a part. Admin only. Purchase rows keep their part name
// and lose the reference.
func (s *CatalogService) DeletePart(ctx context.Context, requester models.Identity, id int64) error {
	if !requester.IsAdmin() {
		return ErrUnauthorized
	}
	if err := s.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPartNotFound
		}
		logger.Log.Errorw("failed to delete part", "part_id", id, "error", err)
		return err
	}
	logger.Log.Infow("part deleted", "part_id", id, "admin", requester.Username)
	return nil
}

// ApplyUpdates overwrites stock and/or price of every part in edits in a
// single transaction. Admin only. Stock is set unconditionally, regardless of
// purchase history. The batch is rejected as a whole when any value is
// invalid or any part does not exist.
func (s *CatalogService) ApplyUpdates(ctx context.Context, requester models.Identity, edits map[int64]models.PartEdit) error {
	if !requester.IsAdmin() {
		return ErrUnauthorized
	}

	ids := make([]int64, 0, len(edits))
	invalid := &validation.Error{Fields: map[string]string{}}
	for id, edit := range edits {
		ids = append(ids, id)
		var verr *validation.Error
		if err := validation.Struct(edit, fmt.Sprintf("part_%d.", id)); errors.As(err, &verr) {
			for field, rule := range verr.Fields {
				invalid.Fields[field] = rule
			}
		}
	}
	if len(invalid.Fields) > 0 {
		return invalid
	}
	// Stable order keeps row locks acquired in the same sequence across batches.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			edit := edits[id]
			if edit.Stock == nil && edit.Price == nil {
				continue
			}
			if err := s.writer.Update(ctx, id, edit); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("part %d: %w", id, ErrPartNotFound)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("bulk update rolled back", "parts", len(ids), "admin", requester.Username, "error", err)
		return err
	}

	logger.Log.Infow("bulk update applied", "parts", len(ids), "admin", requester.Username)
	return nil
}
