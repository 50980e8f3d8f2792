package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salesdash/api/internal/domain"
	"github.com/salesdash/api/internal/event"
	"github.com/salesdash/api/internal/repository"
	apperrors "github.com/salesdash/api/pkg/errors"
)

// ProductService implements the business logic for sales records.
type ProductService struct {
	productRepo repository.ProductRepository
	producer    *event.Producer
	logger      *slog.Logger
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		producer:    producer,
		logger:      logger,
	}
}

// ProductInput holds the full document for create and replace. Numeric
// fields are pointers so a missing field is distinguishable from zero.
type ProductInput struct {
	ProductName string
	Time        string
	Price       *float64
	Quantity    *int64
	NetPrice    *float64
	Category    string
}

// validate re-checks the required fields independent of whatever the
// transport layer already validated.
func (in *ProductInput) validate() error {
	if in.ProductName == "" {
		return apperrors.InvalidInput("productName is required")
	}
	if in.Time == "" {
		return apperrors.InvalidInput("time is required")
	}
	if in.Price == nil {
		return apperrors.InvalidInput("price is required and must be a number")
	}
	if in.Quantity == nil {
		return apperrors.InvalidInput("quantity is required and must be a number")
	}
	if in.NetPrice == nil {
		return apperrors.InvalidInput("netPrice is required and must be a number")
	}
	return nil
}

// Create validates and persists a new sales record.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		ProductName: input.ProductName,
		Time:        input.Time,
		Price:       *input.Price,
		Quantity:    *input.Quantity,
		NetPrice:    *input.NetPrice,
		Category:    input.Category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publishChange(ctx, "created", product)

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("product_name", product.ProductName),
	)

	return product, nil
}

// List returns every sales record in insertion order.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

// GetByID retrieves a single sales record.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Update replaces the full document of an existing record. Concurrent
// replacements are last-write-wins.
func (s *ProductService) Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          existing.ID,
		ProductName: input.ProductName,
		Time:        input.Time,
		Price:       *input.Price,
		Quantity:    *input.Quantity,
		NetPrice:    *input.NetPrice,
		Category:    input.Category,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publishChange(ctx, "updated", product)

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID),
	)

	return product, nil
}

// Delete removes one sales record.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(ctx, "deleted", &domain.Product{ID: id})

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

// DeleteAll removes every sales record and returns the removed count.
func (s *ProductService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.productRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.publishChange(ctx, "deleted_all", &domain.Product{})

	s.logger.InfoContext(ctx, "all products deleted",
		slog.Int64("count", count),
	)

	return count, nil
}

func (s *ProductService) publishChange(ctx context.Context, action string, product *domain.Product) {
	if err := s.producer.PublishProductChanged(ctx, action, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product event",
			slog.String("action", action),
			slog.String("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}
}
