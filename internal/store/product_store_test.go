package store

import (
	"context"
	"errors"
	"testing"

	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductsService is a mock implementation of service.ProductsService.
type MockProductsService struct {
	mock.Mock
}

func (m *MockProductsService) GetProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductsService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

var testCatalog = []model.Product{
	{ID: "p1", Name: "Arnica 30C", Price: 150, Category: "Pain Relief"},
	{ID: "p2", Name: "Belladonna 200", Price: 350, Category: "Fever"},
	{ID: "p3", Name: "Nux Vomica 30", Price: 120, Category: "Digestion"},
	{ID: "p4", Name: "Arnica Gel", Price: 220, Category: "Pain Relief"},
}

func TestProductStore_FetchesOnce(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil)

	store := NewProductStore(products, zerolog.Nop())
	ctx := context.Background()

	first, err := store.Products(ctx)
	require.NoError(t, err)
	second, err := store.Products(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Equal(t, first, second)
	products.AssertNumberOfCalls(t, "GetProducts", 1)
}

func TestProductStore_FailedFetchIsNotCached(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(nil, errors.New("network down")).Once()
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil).Once()

	store := NewProductStore(products, zerolog.Nop())
	ctx := context.Background()

	_, err := store.Products(ctx)
	require.Error(t, err)

	items, err := store.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestProductStore_ReloadInvalidates(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil)

	store := NewProductStore(products, zerolog.Nop())
	ctx := context.Background()

	_, err := store.Products(ctx)
	require.NoError(t, err)
	_, err = store.Reload(ctx)
	require.NoError(t, err)

	products.AssertNumberOfCalls(t, "GetProducts", 2)
}

func TestProductStore_FindByID(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil)

	store := NewProductStore(products, zerolog.Nop())

	p, err := store.FindByID(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Belladonna 200", p.Name)

	_, err = store.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestProductStore_CategoriesComeFromLiveCatalog(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil)

	store := NewProductStore(products, zerolog.Nop())

	categories, err := store.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Digestion", "Fever", "Pain Relief"}, categories)
}

func TestProductStore_FilterByCategory(t *testing.T) {
	products := new(MockProductsService)
	products.On("GetProducts", mock.Anything).Return(testCatalog, nil)

	store := NewProductStore(products, zerolog.Nop())

	matched, err := store.FilterByCategory(context.Background(), "pain relief")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "p1", matched[0].ID)
	assert.Equal(t, "p4", matched[1].ID)

	none, err := store.FilterByCategory(context.Background(), "Cardiology")
	require.NoError(t, err)
	assert.Empty(t, none)
}
