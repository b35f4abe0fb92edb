package handler

import (
	"net/http"

	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
)

// MerchandiseHandler handles merchandise catalog and order HTTP requests
type MerchandiseHandler struct {
	svc *service.MerchandiseService
}

// NewMerchandiseHandler creates a new merchandise handler
func NewMerchandiseHandler(svc *service.MerchandiseService) *MerchandiseHandler {
	return &MerchandiseHandler{svc: svc}
}

// Public Endpoints

// ListProducts handles GET /api/merchandise/products
func (h *MerchandiseHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	inStockOnly := r.URL.Query().Get("inStock") == "true"

	products, err := h.svc.ListProducts(r.Context(), inStockOnly)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, products, nil)
}

// GetProduct handles GET /api/merchandise/products/{productId}
func (h *MerchandiseHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(r.Context(), r.PathValue("productId"))
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, product, nil)
}

// CreateOrder handles POST /api/merchandise/orders
func (h *MerchandiseHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, order, nil)
}

// Board Endpoints

// CreateProduct handles POST /api/board/merchandise/products
func (h *MerchandiseHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, product, nil)
}

// UpdateProduct handles PATCH /api/board/merchandise/products/{productId}
func (h *MerchandiseHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), r.PathValue("productId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, product, nil)
}

// DeleteProduct handles DELETE /api/board/merchandise/products/{productId}
func (h *MerchandiseHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), r.PathValue("productId")); err != nil {
		handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// ListOrders handles GET /api/board/merchandise/orders
func (h *MerchandiseHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, orders, nil)
}

// UpdateOrderStatus handles PATCH /api/board/merchandise/orders/{orderId}
func (h *MerchandiseHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOrderStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	order, err := h.svc.UpdateOrderStatus(r.Context(), r.PathValue("orderId"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, order, nil)
}
