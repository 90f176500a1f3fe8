package service

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-catalog-ws/internal/model"
	"go-catalog-ws/internal/repository"
	"go-catalog-ws/internal/ws"
)

type CatalogService interface {
	ListProducts() []model.Product
	GetProduct(id string) (*model.Product, error)
	CreateProduct(payload map[string]interface{}) (*model.Product, error)
	UpdateProduct(id string, payload map[string]interface{}) (*model.Product, error)
	DeleteProduct(id string) error
}

// EventPublisher receives a change event after every successful write.
type EventPublisher interface {
	Publish(evt ws.Event)
}

type catalogService struct {
	productRepo      repository.ProductRepository
	publisher        EventPublisher
	placeholderImage string
	now              func() time.Time
	ids              *idSource
}

func NewCatalogService(pRepo repository.ProductRepository, publisher EventPublisher, placeholderImageURL string) CatalogService {
	return newCatalogService(pRepo, publisher, placeholderImageURL, time.Now)
}

func newCatalogService(pRepo repository.ProductRepository, publisher EventPublisher, placeholderImageURL string, now func() time.Time) *catalogService {
	return &catalogService{
		productRepo:      pRepo,
		publisher:        publisher,
		placeholderImage: placeholderImageURL,
		now:              now,
		ids:              &idSource{},
	}
}

func (s *catalogService) ListProducts() []model.Product {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProduct(id string) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *catalogService) CreateProduct(payload map[string]interface{}) (*model.Product, error) {
	// 1. Validate before touching the store
	input, fieldErrs := ValidateProduct(payload)
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// 2. System fields
	now := s.now()
	product := model.Product{
		ID:        s.ids.next(now),
		CreatedAt: model.FormatCreatedAt(now),
	}
	input.ApplyTo(&product)
	if product.ImageURL == "" {
		product.ImageURL = s.placeholderImage
	}

	// 3. Persist (prepend)
	if err := s.productRepo.Insert(product); err != nil {
		zap.S().Errorw("error adding product", "id", product.ID, "error", err)
		return nil, errors.Wrap(err, "insert product")
	}

	s.publish(ws.ActionProductCreated, product.ID, &product, fmt.Sprintf("Product '%s' created", product.Name))
	return &product, nil
}

func (s *catalogService) UpdateProduct(id string, payload map[string]interface{}) (*model.Product, error) {
	input, fieldErrs := ValidateProduct(payload)
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	input.ApplyTo(&merged)

	if err := s.productRepo.Update(merged); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		zap.S().Errorw("error updating product", "id", merged.ID, "error", err)
		return nil, errors.Wrap(err, "update product")
	}

	s.publish(ws.ActionProductUpdated, merged.ID, &merged, fmt.Sprintf("Product '%s' updated", merged.Name))
	return &merged, nil
}

func (s *catalogService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}
		zap.S().Errorw("error deleting product", "id", id, "error", err)
		return errors.Wrap(err, "delete product")
	}

	normalized := model.NormalizeID(id)
	s.publish(ws.ActionProductDeleted, normalized, nil, fmt.Sprintf("Product '%s' deleted", normalized))
	return nil
}

func (s *catalogService) publish(action, productID string, product *model.Product, message string) {
	if s.publisher == nil {
		return
	}
	evt := ws.Event{
		Type:      ws.EventProductUpdate,
		Action:    action,
		ProductID: productID,
		Message:   message,
	}
	if product != nil {
		evt.Product = *product
	}
	s.publisher.Publish(evt)
}

// idSource hands out millisecond timestamps as decimal ids, bumping past the
// previous id when the clock has not advanced.
type idSource struct {
	mu   sync.Mutex
	last int64
}

func (s *idSource) next(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return strconv.FormatInt(ms, 10)
}
