package product

import (
	"context"
	"errors"
	"time"

	"shoplite-be/internal/logger"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Service defines the catalog operations exposed to the storefront and the
// admin console.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, limit *uint16) ([]*Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

const (
	cacheSize = 256
	cacheTTL  = time.Minute

	readAttempts = 3
	readBackoff  = 50 * time.Millisecond
)

type service struct {
	repo  Repository
	cache *expirable.LRU[string, *Product]
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, *Product](cacheSize, nil, cacheTTL),
	}
}

// GetProduct reads through a small expirable cache. Validation errors are
// surfaced immediately; transient store failures are retried a bounded
// number of times with backoff before giving up (reads only, never writes).
func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	p, err := s.withReadRetry(ctx, func() (*Product, error) {
		return s.repo.GetProduct(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Add(id, p)
	return p, nil
}

func (s *service) ListProducts(ctx context.Context, limit *uint16) ([]*Product, error) {
	var products []*Product
	_, err := s.withReadRetry(ctx, func() (*Product, error) {
		var listErr error
		products, listErr = s.repo.ListProducts(ctx, limit)
		return nil, listErr
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_name", params.Name))

	if params.Name == "" {
		return nil, ErrEmptyName
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.CreateProduct(ctx, params)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, params UpdateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", params.ID))

	if !params.HasAnyField() {
		return nil, ErrNoFields
	}
	if params.Price != nil && *params.Price < 0 {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.UpdateProduct(ctx, params)
	if err != nil {
		log.Warn("failed to update product", zap.Error(err))
		return nil, err
	}

	s.cache.Remove(params.ID)

	log.Info("product updated")
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(zap.String("product_id", id))

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		log.Warn("failed to delete product", zap.Error(err))
		return err
	}

	s.cache.Remove(id)

	log.Info("product deleted")
	return nil
}

// withReadRetry retries fn on store failures. Not-found is a final answer,
// not a transient failure.
func (s *service) withReadRetry(ctx context.Context, fn func() (*Product, error)) (*Product, error) {
	var lastErr error

	for attempt := 0; attempt < readAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(readBackoff * time.Duration(attempt)):
			}
		}

		p, err := fn()
		if err == nil {
			return p, nil
		}
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
