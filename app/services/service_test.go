package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/pkg/auth"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/dmelo/catalog/pkg/slug"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	u := models.User{Name: "Test User", Email: email, Password: hash, Role: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	c := models.Category{Name: name, Slug: slug.Make(name), Active: true}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int, categoryID uuid.UUID) models.Product {
	t.Helper()

	id := uuid.New()
	p := models.Product{
		ID:         id,
		Name:       name,
		Slug:       slug.Make(name) + "-" + id.String()[:6],
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		CategoryID: categoryID,
		Active:     true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// sanity check for the fixtures themselves
func TestSeedHelpers(t *testing.T) {
	db := newTestDB(t)

	u := seedUser(t, db, "seed@example.com", rbac.RoleCustomer)
	require.NotEqual(t, uuid.Nil, u.ID)

	c := seedCategory(t, db, "Gadgets")
	p := seedProduct(t, db, "Widget", "9.99", 3, c.ID)
	require.Equal(t, c.ID, p.CategoryID)
}
