package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/pena-betica-escocesa/api/internal/filestore"
	"github.com/pena-betica-escocesa/api/internal/model"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/internal/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Merchandise Catalog & Orders
DOMAIN: Club Merchandise

The catalog lives in a flat JSON document rather than SurrealDB, so these
tests run against a real file in a temp dir instead of a test database.

ACCEPTANCE CRITERIA:
===================

AC-MERCH-001: Board Creates A Product
AC-MERCH-002: Public Listing Hides Out-Of-Stock Products
AC-MERCH-003: Order Total Is Computed Server-Side
AC-MERCH-004: Orders Rejected For Out-Of-Stock Products
AC-MERCH-005: Order Gets A Pickup Reference
AC-MERCH-006: Board Moves An Order Through Its Lifecycle
AC-MERCH-007: Board Updates A Product
AC-MERCH-008: Deleting A Product Leaves Past Orders Intact
*/

func createMerchService(t *testing.T) *service.MerchandiseService {
	t.Helper()
	store := filestore.NewCollection(t.TempDir(), "merchandise", filestore.NewMerchandiseDocument)
	return service.NewMerchandiseService(service.MerchandiseServiceConfig{Store: store})
}

func createTestProduct(t *testing.T, svc *service.MerchandiseService, name string, priceCents int, inStock bool) *model.Product {
	t.Helper()
	product, err := svc.CreateProduct(context.Background(), &model.CreateProductRequest{
		Name:       name,
		PriceCents: priceCents,
		Currency:   "GBP",
		Sizes:      []string{"S", "M", "L", "XL"},
		InStock:    inStock,
	})
	require.NoError(t, err)
	return product
}

func TestMerchandise_BoardCreatesProduct(t *testing.T) {
	// AC-MERCH-001: Board Creates A Product
	merchService := createMerchService(t)

	product := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Bufanda PBE", product.Name)
	assert.Equal(t, 1500, product.PriceCents)
	assert.True(t, product.InStock)
}

func TestMerchandise_PublicListingHidesOutOfStock(t *testing.T) {
	// AC-MERCH-002: Public Listing Hides Out-Of-Stock Products
	merchService := createMerchService(t)
	ctx := context.Background()

	visible := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)
	createTestProduct(t, merchService, "Parche bordado", 500, false)

	inStock, err := merchService.ListProducts(ctx, true)
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, visible.ID, inStock[0].ID)

	all, err := merchService.ListProducts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMerchandise_OrderTotalComputedServerSide(t *testing.T) {
	// AC-MERCH-003: Order Total Is Computed Server-Side
	merchService := createMerchService(t)
	ctx := context.Background()

	scarf := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)
	pin := createTestProduct(t, merchService, "Pin esmaltado", 600, true)

	order, err := merchService.CreateOrder(ctx, &model.CreateOrderRequest{
		Name:  "Iain Murray",
		Email: "Iain@Test.Local",
		Items: []model.OrderItem{
			{ProductID: scarf.ID, Quantity: 2},
			{ProductID: pin.ID, Quantity: 1, Size: helpers.StringPtr("M")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2*1500+600, order.TotalCents)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "iain@test.local", order.Email)
}

func TestMerchandise_OrderRejectedOutOfStock(t *testing.T) {
	// AC-MERCH-004: Orders Rejected For Out-Of-Stock Products
	merchService := createMerchService(t)
	ctx := context.Background()

	gone := createTestProduct(t, merchService, "Camiseta conmemorativa", 2500, false)

	_, err := merchService.CreateOrder(ctx, &model.CreateOrderRequest{
		Name:  "Iain Murray",
		Email: "iain@test.local",
		Items: []model.OrderItem{{ProductID: gone.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, service.ErrProductOutOfStock)
}

func TestMerchandise_OrderGetsPickupReference(t *testing.T) {
	// AC-MERCH-005: Order Gets A Pickup Reference
	merchService := createMerchService(t)
	ctx := context.Background()

	scarf := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)

	order, err := merchService.CreateOrder(ctx, &model.CreateOrderRequest{
		Name:  "Iain Murray",
		Email: "iain@test.local",
		Items: []model.OrderItem{{ProductID: scarf.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.Reference, "PBE-"),
		"expected reference with PBE- prefix, got %s", order.Reference)
}

func TestMerchandise_BoardMovesOrderThroughLifecycle(t *testing.T) {
	// AC-MERCH-006: Board Moves An Order Through Its Lifecycle
	merchService := createMerchService(t)
	ctx := context.Background()

	scarf := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)
	order, err := merchService.CreateOrder(ctx, &model.CreateOrderRequest{
		Name:  "Iain Murray",
		Email: "iain@test.local",
		Items: []model.OrderItem{{ProductID: scarf.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	confirmed, err := merchService.UpdateOrderStatus(ctx, order.ID, &model.UpdateOrderStatusRequest{
		Status: model.OrderStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, confirmed.Status)

	delivered, err := merchService.UpdateOrderStatus(ctx, order.ID, &model.UpdateOrderStatusRequest{
		Status: model.OrderStatusDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, delivered.Status)

	_, err = merchService.UpdateOrderStatus(ctx, order.ID, &model.UpdateOrderStatusRequest{
		Status: "lost",
	})
	require.Error(t, err)
	var problem *model.ProblemDetails
	require.ErrorAs(t, err, &problem)
}

func TestMerchandise_BoardUpdatesProduct(t *testing.T) {
	// AC-MERCH-007: Board Updates A Product
	merchService := createMerchService(t)
	ctx := context.Background()

	scarf := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)

	updated, err := merchService.UpdateProduct(ctx, scarf.ID, &model.UpdateProductRequest{
		PriceCents: helpers.IntPtr(1800),
		InStock:    helpers.BoolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, 1800, updated.PriceCents)
	assert.False(t, updated.InStock)
	assert.Equal(t, "Bufanda PBE", updated.Name)
}

func TestMerchandise_DeleteLeavesPastOrdersIntact(t *testing.T) {
	// AC-MERCH-008: Deleting A Product Leaves Past Orders Intact
	merchService := createMerchService(t)
	ctx := context.Background()

	scarf := createTestProduct(t, merchService, "Bufanda PBE", 1500, true)
	order, err := merchService.CreateOrder(ctx, &model.CreateOrderRequest{
		Name:  "Iain Murray",
		Email: "iain@test.local",
		Items: []model.OrderItem{{ProductID: scarf.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, merchService.DeleteProduct(ctx, scarf.ID))

	_, err = merchService.GetProduct(ctx, scarf.ID)
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	orders, err := merchService.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, 1500, orders[0].TotalCents)
}
