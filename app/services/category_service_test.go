package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/rbac"
)

func TestCategoryCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	created, err := svc.Create(rbac.RoleAdmin, CategoryInput{Name: "Home & Garden", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", created.Slug)

	// accented names normalize to plain ASCII slugs
	accented, err := svc.Create(rbac.RoleSupervisor, CategoryInput{Name: "Électronique", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "electronique", accented.Slug)

	// explicit slug wins over the derived one
	explicit, err := svc.Create(rbac.RoleAdmin, CategoryInput{Name: "Misc Stuff", Slug: "misc", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "misc", explicit.Slug)
}

func TestCategoryCreateConflictAndValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	_, err := svc.Create(rbac.RoleAdmin, CategoryInput{Name: "Books", Active: true})
	require.NoError(t, err)

	_, err = svc.Create(rbac.RoleAdmin, CategoryInput{Name: "Books", Active: true})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// distinct name colliding on the derived slug is still a conflict
	_, err = svc.Create(rbac.RoleAdmin, CategoryInput{Name: "böoks", Slug: "books", Active: true})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	_, err = svc.Create(rbac.RoleAdmin, CategoryInput{Name: "   "})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(rbac.RoleCustomer, CategoryInput{Name: "Nope"})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestCategoryUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	cat := seedCategory(t, db, "Electronics")

	updated, err := svc.Update(rbac.RoleAdmin, cat.ID, CategoryInput{Name: "Consumer Electronics", Active: false})
	require.NoError(t, err)
	assert.Equal(t, "consumer-electronics", updated.Slug)
	assert.False(t, updated.Active)

	_, err = svc.Update(rbac.RoleAdmin, uuid.New(), CategoryInput{Name: "Ghost"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCategoryUpdateRenameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	books := seedCategory(t, db, "Books")
	seedCategory(t, db, "Games")

	// renaming onto another category's name is a conflict, not a raw DB error
	_, err := svc.Update(rbac.RoleAdmin, books.ID, CategoryInput{Name: "Games", Active: true})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// keeping its own name is not a collision
	same, err := svc.Update(rbac.RoleAdmin, books.ID, CategoryInput{Name: "Books", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "books", same.Slug)
}

func TestCategoryDeleteRestrictedByActiveProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	cat := seedCategory(t, db, "Electronics")
	p := seedProduct(t, db, "Mouse", "24.99", 10, cat.ID)

	err := svc.Delete(rbac.RoleAdmin, cat.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// soft-deleted products no longer block removal
	require.NoError(t, db.Model(&p).Update("active", false).Error)
	require.NoError(t, svc.Delete(rbac.RoleAdmin, cat.ID))

	_, err = svc.GetByID(cat.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCategoryVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	seedCategory(t, db, "Electronics")
	hidden, err := svc.Create(rbac.RoleAdmin, CategoryInput{Name: "Archive", Active: false})
	require.NoError(t, err)

	public, err := svc.FindAllPublic()
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.FindAll(rbac.RoleSupervisor)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.FindAll(rbac.RoleVendor)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	// direct lookup still sees the hidden row
	got, err := svc.GetByID(hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
