package repository

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/entity"

	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
}

type productRepository struct {
	log *zap.Logger
}

func NewProductRepository(log *zap.Logger) ProductRepository {
	return &productRepository{
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}

	products := make([]entity.Product, len(entity.Catalog))
	copy(products, entity.Catalog)
	return products, nil
}
