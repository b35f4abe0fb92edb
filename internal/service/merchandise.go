package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pena-betica-escocesa/api/internal/filestore"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// MerchandiseStore defines the interface for the merchandise document
type MerchandiseStore interface {
	Read() (filestore.MerchandiseDocument, error)
	Update(fn func(doc *filestore.MerchandiseDocument) error) (filestore.MerchandiseDocument, error)
}

// MerchandiseService handles catalog and order business logic
type MerchandiseService struct {
	store MerchandiseStore
	now   func() time.Time
}

// MerchandiseServiceConfig holds configuration for the merchandise service
type MerchandiseServiceConfig struct {
	Store MerchandiseStore
	Now   func() time.Time // defaults to time.Now
}

// NewMerchandiseService creates a new merchandise service
func NewMerchandiseService(cfg MerchandiseServiceConfig) *MerchandiseService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &MerchandiseService{store: cfg.Store, now: now}
}

// ListProducts retrieves the catalog. When inStockOnly is set, items
// marked out of stock are excluded.
func (s *MerchandiseService) ListProducts(ctx context.Context, inStockOnly bool) ([]model.Product, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read merchandise document: %w", err)
	}

	if !inStockOnly {
		return doc.Products, nil
	}

	products := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if p.InStock {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetProduct retrieves one catalog item
func (s *MerchandiseService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read merchandise document: %w", err)
	}

	for i := range doc.Products {
		if doc.Products[i].ID == productID {
			return &doc.Products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// CreateProduct adds a catalog item, for the board view
func (s *MerchandiseService) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var product model.Product
	_, err := s.store.Update(func(doc *filestore.MerchandiseDocument) error {
		now := s.now().UTC()
		product = model.Product{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Currency:    req.Currency,
			ImageURL:    req.ImageURL,
			Sizes:       req.Sizes,
			InStock:     req.InStock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		doc.Products = append(doc.Products, product)
		doc.Touch(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct edits a catalog item, for the board view
func (s *MerchandiseService) UpdateProduct(ctx context.Context, productID string, req *model.UpdateProductRequest) (*model.Product, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var updated model.Product
	_, err := s.store.Update(func(doc *filestore.MerchandiseDocument) error {
		for i := range doc.Products {
			if doc.Products[i].ID != productID {
				continue
			}
			p := &doc.Products[i]
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Description != nil {
				p.Description = req.Description
			}
			if req.PriceCents != nil {
				p.PriceCents = *req.PriceCents
			}
			if req.Currency != nil {
				p.Currency = *req.Currency
			}
			if req.ImageURL != nil {
				p.ImageURL = req.ImageURL
			}
			if req.Sizes != nil {
				p.Sizes = req.Sizes
			}
			if req.InStock != nil {
				p.InStock = *req.InStock
			}
			p.UpdatedAt = s.now().UTC()
			updated = *p
			doc.Touch(s.now().UTC())
			return nil
		}
		return ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteProduct removes a catalog item, for the board view
func (s *MerchandiseService) DeleteProduct(ctx context.Context, productID string) error {
	_, err := s.store.Update(func(doc *filestore.MerchandiseDocument) error {
		for i := range doc.Products {
			if doc.Products[i].ID == productID {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				doc.Touch(s.now().UTC())
				return nil
			}
		}
		return ErrProductNotFound
	})
	return err
}

// CreateOrder reserves merchandise for pickup at the peña. The total is
// computed server-side from the current catalog prices.
func (s *MerchandiseService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var order model.Order
	_, err := s.store.Update(func(doc *filestore.MerchandiseDocument) error {
		total := 0
		for _, item := range req.Items {
			product := findProduct(doc, item.ProductID)
			if product == nil {
				return ErrProductNotFound
			}
			if !product.InStock {
				return ErrProductOutOfStock
			}
			total += product.PriceCents * item.Quantity
		}

		now := s.now().UTC()
		order = model.Order{
			ID:         uuid.NewString(),
			Reference:  orderReference(now),
			Name:       req.Name,
			Email:      strings.ToLower(strings.TrimSpace(req.Email)),
			Items:      req.Items,
			TotalCents: total,
			Status:     model.OrderStatusPending,
			CreatedAt:  now,
		}
		doc.Orders = append(doc.Orders, order)
		doc.Touch(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders retrieves all orders, for the board view
func (s *MerchandiseService) ListOrders(ctx context.Context) ([]model.Order, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read merchandise document: %w", err)
	}
	return doc.Orders, nil
}

// UpdateOrderStatus moves an order through its lifecycle, for the board view
func (s *MerchandiseService) UpdateOrderStatus(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) (*model.Order, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var updated model.Order
	_, err := s.store.Update(func(doc *filestore.MerchandiseDocument) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == orderID {
				doc.Orders[i].Status = req.Status
				updated = doc.Orders[i]
				doc.Touch(s.now().UTC())
				return nil
			}
		}
		return ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func findProduct(doc *filestore.MerchandiseDocument, productID string) *model.Product {
	for i := range doc.Products {
		if doc.Products[i].ID == productID {
			return &doc.Products[i]
		}
	}
	return nil
}

// orderReference builds a short human-readable reference for pickup day,
// e.g. PBE-20260828-7F3A.
func orderReference(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("PBE-%s-%s", now.Format("20060102"), suffix)
}
