package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/catalog/app/specifications"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/rbac"
)

func TestProductCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")

	created, err := svc.Create(rbac.RoleAdmin, ProductInput{
		Name:       "Laptop Pro",
		Price:      decimal.RequireFromString("1299.99"),
		Stock:      5,
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Active)
	assert.True(t, strings.HasPrefix(created.Slug, "laptop-pro-"))
	assert.Len(t, created.Slug, len("laptop-pro-")+6)

	got, err := svc.GetActive(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("1299.99")))

	bySlug, err := svc.GetPublicBySlug(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestProductCreateForbiddenRoles(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Books")

	input := ProductInput{
		Name:       "Novel",
		Price:      decimal.RequireFromString("10.00"),
		CategoryID: cat.ID,
	}

	for _, role := range []string{rbac.RoleVendor, rbac.RoleCustomer} {
		_, err := svc.Create(role, input)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden), "role %s", role)
	}
}

func TestProductCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	_, err := svc.Create(rbac.RoleAdmin, ProductInput{
		Name:       "  ",
		Price:      decimal.RequireFromString("-1"),
		Stock:      -3,
		CategoryID: uuid.New(), // does not exist
	})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Contains(t, ae.Fields, "name")
	assert.Contains(t, ae.Fields, "price")
	assert.Contains(t, ae.Fields, "stock")
	assert.Contains(t, ae.Fields, "category_id")
}

func TestProductSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")
	p := seedProduct(t, db, "Camera", "450.00", 2, cat.ID)

	require.NoError(t, svc.Delete(rbac.RoleAdmin, p.ID))

	// hidden from every read path
	_, err := svc.GetActive(p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	_, err = svc.GetPublicBySlug(p.Slug)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// second delete is indistinguishable from deleting a missing product
	err = svc.Delete(rbac.RoleAdmin, p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// the row itself survives
	var count int64
	require.NoError(t, db.Table("products").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProductDeleteRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")
	p := seedProduct(t, db, "Tripod", "35.00", 9, cat.ID)

	err := svc.Delete(rbac.RoleSupervisor, p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestProductUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")
	p := seedProduct(t, db, "Monitor", "199.00", 10, cat.ID)

	updated, err := svc.Update(rbac.RoleSupervisor, p.ID, ProductInput{
		Name:       "Monitor 27in",
		Price:      decimal.RequireFromString("249.00"),
		Stock:      8,
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Monitor 27in", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("249.00")))
	// slug is assigned at creation and never rewritten
	assert.Equal(t, p.Slug, updated.Slug)
}

func TestProductListFiltered(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	electronics := seedCategory(t, db, "Electronics")
	books := seedCategory(t, db, "Books")

	seedProduct(t, db, "Filtered Product", "50.00", 10, electronics.ID)
	seedProduct(t, db, "Cheap Widget", "5.00", 100, electronics.ID)
	seedProduct(t, db, "Some Book", "50.00", 10, books.ID)
	hidden := seedProduct(t, db, "Filtered Hidden", "50.00", 10, electronics.ID)
	require.NoError(t, db.Model(&hidden).Update("active", false).Error)

	page, err := svc.List(specifications.ProductFilter{
		Name:       "Filtered",
		MinPrice:   decimal.RequireFromString("10"),
		MaxPrice:   decimal.RequireFromString("100"),
		MinStock:   5,
		CategoryID: electronics.ID,
	}, 0, 20, "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.TotalElements)
	content := page.Content.([]ProductResponse)
	require.Len(t, content, 1)
	assert.Equal(t, "Filtered Product", content[0].Name)
}

func TestProductListAllAbsentFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")

	seedProduct(t, db, "Alpha", "10.00", 1, cat.ID)
	seedProduct(t, db, "Beta", "20.00", 1, cat.ID)
	inactive := seedProduct(t, db, "Gone", "30.00", 1, cat.ID)
	require.NoError(t, db.Model(&inactive).Update("active", false).Error)

	page, err := svc.List(specifications.ProductFilter{}, 0, 20, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestProductListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		seedProduct(t, db, "Item "+name, "10.00", 1, cat.ID)
	}

	page, err := svc.List(specifications.ProductFilter{}, 1, 2, "name", "asc")
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 2, page.PageSize)

	content := page.Content.([]ProductResponse)
	require.Len(t, content, 2)
	assert.Equal(t, "Item C", content[0].Name)
}

func TestProductListRejectsBadSort(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	_, err := svc.List(specifications.ProductFilter{}, 0, 20, "password", "asc")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.List(specifications.ProductFilter{}, 0, 20, "name", "sideways")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.List(specifications.ProductFilter{}, -1, 20, "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestProductListPublicProjection(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	cat := seedCategory(t, db, "Electronics")
	seedProduct(t, db, "Speaker", "75.00", 4, cat.ID)

	page, err := svc.ListPublic(specifications.ProductFilter{}, 0, 20, "", "")
	require.NoError(t, err)

	content := page.Content.([]ProductSummary)
	require.Len(t, content, 1)
	assert.Equal(t, "Speaker", content[0].Name)
	assert.Equal(t, "Electronics", content[0].CategoryName)
}
