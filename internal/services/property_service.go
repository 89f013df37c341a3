package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oakfieldhq/oakfield/internal/models"
	"github.com/oakfieldhq/oakfield/pkg/metrics"
)

// PropertyReader is the store-accessor contract consumed by the caching
// layer: a bulk read of every listing plus a row count.
type PropertyReader interface {
	FetchAll(ctx context.Context) ([]models.Property, error)
	Count(ctx context.Context) (int64, error)
}

// PropertyService reads property records from the relational store. It
// projects a fixed field set and imposes no ordering of its own; callers
// get whatever order the store returns.
type PropertyService struct {
	db *gorm.DB
}

// NewPropertyService constructs a property service once a database handle is supplied.
func NewPropertyService(db *gorm.DB) (*PropertyService, error) {
	if db == nil {
		return nil, errors.New("property service: db is required")
	}
	return &PropertyService{db: db}, nil
}

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// FetchAll returns every property row, projecting exactly the listed
// columns. Store errors propagate unwrapped; there is no retry.
func (s *PropertyService) FetchAll(ctx context.Context) ([]models.Property, error) {
	if s == nil {
		return nil, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	var properties []models.Property
	err := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Select("id", "title", "description", "price", "location", "created_at").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}

	metrics.StoreQueries.WithLabelValues("fetch").Inc()
	return properties, nil
}

// Count returns the number of property rows in the store.
func (s *PropertyService) Count(ctx context.Context) (int64, error) {
	if s == nil {
		return 0, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Property{}).Count(&count).Error; err != nil {
		return 0, err
	}

	metrics.StoreQueries.WithLabelValues("count").Inc()
	return count, nil
}
