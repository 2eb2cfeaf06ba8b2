package services_test

import (
	"context"
	"net/http"
	"testing"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"
	"ecommerce-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ---- mock product repository ----

type mockProductRepo struct {
	products   map[primitive.ObjectID]*models.Product
	nextCode   string
	created    *models.Product
	createErr  error
	codeErr    error
	updates    bson.M
	updateErr  error
	deleted    []primitive.ObjectID
	searchHits []models.Product
	searchN    int64
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[primitive.ObjectID]*models.Product), nextCode: "PR0001"}
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = primitive.NewObjectID()
	m.created = p
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) NextProductCode(_ context.Context) (string, error) {
	return m.nextCode, m.codeErr
}

func (m *mockProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) Search(_ context.Context, _ repository.ProductSearch) ([]models.Product, int64, error) {
	return m.searchHits, m.searchN, nil
}

func (m *mockProductRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	m.updates = updates
	return nil
}

func (m *mockProductRepo) SoftDelete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockProductRepo) AllocationView(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	return m.FindByID(context.Background(), id)
}

func (m *mockProductRepo) AvailableQuantity(_ context.Context, id primitive.ObjectID) (int, error) {
	p, ok := m.products[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return p.AvailableProductQuantity, nil
}

func (m *mockProductRepo) IncrementQuantity(_ context.Context, id primitive.ObjectID, amount int) (int, error) {
	p, ok := m.products[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	p.AvailableProductQuantity += amount
	return p.AvailableProductQuantity, nil
}

func (m *mockProductRepo) DecrementQuantity(_ context.Context, id primitive.ObjectID, amount int) (int, error) {
	p, ok := m.products[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if p.AvailableProductQuantity < amount {
		return 0, repository.ErrInsufficientStock
	}
	p.AvailableProductQuantity -= amount
	return p.AvailableProductQuantity, nil
}

func (m *mockProductRepo) FindByBrand(_ context.Context, brand string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.Brand == brand && !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) FindByBrandPaginated(ctx context.Context, brand string, _, _ int) ([]models.Product, int64, error) {
	out, err := m.FindByBrand(ctx, brand)
	return out, int64(len(out)), err
}

func (m *mockProductRepo) FindSimilar(_ context.Context, exclude primitive.ObjectID, filter bson.M, _, _ int) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.ID == exclude || p.IsDeleted {
			continue
		}
		if brand, ok := filter["brand"]; ok && p.Brand != brand {
			continue
		}
		if size, ok := filter["size"]; ok && p.Size != size {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

// ---- mock branch repositories ----

type mockBranchRepo struct {
	branches map[string]*models.Branch
}

func (m *mockBranchRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Branch, error) {
	for _, b := range m.branches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockBranchRepo) FindByName(_ context.Context, name string) (*models.Branch, error) {
	b, ok := m.branches[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (m *mockBranchRepo) Options(_ context.Context) ([]models.BranchOption, error) {
	var out []models.BranchOption
	for _, b := range m.branches {
		out = append(out, models.BranchOption{ID: b.ID, BranchName: b.BranchName})
	}
	return out, nil
}

func (m *mockBranchRepo) ServicePincodes(_ context.Context, id primitive.ObjectID) ([]string, error) {
	b, err := m.FindByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return b.ServicePinCode, nil
}

type mockBranchProductRepo struct {
	quantities map[primitive.ObjectID]int
}

func (m *mockBranchProductRepo) UpsertAllocation(_ context.Context, branchID, _ primitive.ObjectID, delta int) (int, error) {
	if m.quantities == nil {
		m.quantities = make(map[primitive.ObjectID]int)
	}
	m.quantities[branchID] += delta
	return m.quantities[branchID], nil
}

func (m *mockBranchProductRepo) Quantity(_ context.Context, branchID, _ primitive.ObjectID) (int, error) {
	q, ok := m.quantities[branchID]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return q, nil
}

func newProductService(repo *mockProductRepo) *services.ProductService {
	branches := &mockBranchRepo{branches: map[string]*models.Branch{}}
	return services.NewProductService(repo, branches, &mockBranchProductRepo{}, zap.NewNop())
}

// ---- tests ----

func TestCreateProduct_AssignsCodeAndTitleCasesName(t *testing.T) {
	repo := newMockProductRepo()
	repo.nextCode = "PR0042"
	svc := newProductService(repo)

	product, err := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Brand:                    "whisper",
		ProductName:              "ultra soft regular wings",
		Size:                     "Regular",
		Price:                    120,
		QuantityInEachPack:       10,
		AvailableProductQuantity: 500,
	})

	assert.Nil(t, err)
	assert.Equal(t, "PR0042", product.ProductCode)
	assert.Equal(t, "Ultra Soft Regular Wings", product.ProductName)
}

func TestCreateProduct_RejectsUnknownBrand(t *testing.T) {
	svc := newProductService(newMockProductRepo())

	_, err := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Brand:              "acme",
		ProductName:        "pads",
		Size:               "Regular",
		Price:              100,
		QuantityInEachPack: 10,
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Message, "Invalid brand value")
}

func TestCreateProduct_RejectsUnknownSize(t *testing.T) {
	svc := newProductService(newMockProductRepo())

	_, err := svc.CreateProduct(context.Background(), &models.CreateProductRequest{
		Brand:              "Sofy",
		ProductName:        "pads",
		Size:               "Gigantic",
		Price:              100,
		QuantityInEachPack: 10,
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Message, "Invalid size value")
}

func TestUpdateProduct_IgnoresEmptyFields(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	product := &models.Product{Brand: "always", ProductName: "Night Pads", Size: "Overnight"}
	assert.NoError(t, repo.Create(context.Background(), product))

	_, err := svc.UpdateProduct(context.Background(), product.ID, &models.UpdateProductRequest{
		ProductName: "night pads max",
	})

	assert.Nil(t, err)
	assert.Equal(t, bson.M{"productName": "Night Pads Max"}, repo.updates)
}

func TestAddQuantity(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	product := &models.Product{AvailableProductQuantity: 10}
	assert.NoError(t, repo.Create(context.Background(), product))

	newQty, err := svc.AddQuantity(context.Background(), product.ID, 40)

	assert.Nil(t, err)
	assert.Equal(t, 50, newQty)
}

func TestRemoveQuantity_OutOfStockSuffix(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	product := &models.Product{AvailableProductQuantity: 5}
	assert.NoError(t, repo.Create(context.Background(), product))

	newQty, message, err := svc.RemoveQuantity(context.Background(), product.ID, 5)

	assert.Nil(t, err)
	assert.Equal(t, 0, newQty)
	assert.Equal(t, "Product quantity updated successfully! Product is now out of stock.", message)
}

func TestRemoveQuantity_Overdraw(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	product := &models.Product{AvailableProductQuantity: 3}
	assert.NoError(t, repo.Create(context.Background(), product))

	_, _, err := svc.RemoveQuantity(context.Background(), product.ID, 10)

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Cannot remove 10 items. Only 3 available.", err.Message)
	assert.Equal(t, 3, product.AvailableProductQuantity)
}

func TestRemoveQuantity_NotFound(t *testing.T) {
	svc := newProductService(newMockProductRepo())

	_, _, err := svc.RemoveQuantity(context.Background(), primitive.NewObjectID(), 1)

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestListProducts_ProjectsFirstImage(t *testing.T) {
	repo := newMockProductRepo()
	repo.searchHits = []models.Product{{
		ID:                       primitive.NewObjectID(),
		ProductName:              "Day Pads",
		Image:                    []string{"first.jpg", "second.jpg"},
		AvailableProductQuantity: 80,
	}}
	repo.searchN = 1
	svc := newProductService(repo)

	items, pagination, err := svc.ListProducts(context.Background(), "", "", 1, 10)

	assert.Nil(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "first.jpg", items[0].Image)
	assert.Equal(t, int64(1), pagination.Total)
}
