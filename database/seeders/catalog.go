package seeders

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/pkg/auth"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/dmelo/catalog/pkg/slug"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("categories", SeedCategories)
	Register("products", SeedProducts)
}

// SeedAdminUser creates the bootstrap admin account if it does not exist.
func SeedAdminUser(db *gorm.DB) error {
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hash,
		Role:     rbac.RoleAdmin,
	}
	return db.Where("email = ?", admin.Email).
		FirstOrCreate(&admin).Error
}

// SeedCategories inserts a starter set of categories.
func SeedCategories(db *gorm.DB) error {
	names := []string{"Electronics", "Books", "Clothing"}
	for _, name := range names {
		c := models.Category{
			Name:   name,
			Slug:   slug.Make(name),
			Active: true,
		}
		if err := db.Where("slug = ?", c.Slug).
			FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts a few sample products under the Electronics category.
func SeedProducts(db *gorm.DB) error {
	var electronics models.Category
	if err := db.Where("slug = ?", "electronics").First(&electronics).Error; err != nil {
		return err
	}

	samples := []struct {
		name  string
		price string
		stock int
	}{
		{"Wireless Mouse", "24.99", 120},
		{"Mechanical Keyboard", "89.90", 45},
		{"USB-C Hub", "39.00", 80},
	}
	for _, s := range samples {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return err
		}
		id := uuid.New()
		p := models.Product{
			ID:         id,
			Name:       s.name,
			Slug:       slug.Make(s.name) + "-" + id.String()[:6],
			Price:      price,
			Stock:      s.stock,
			CategoryID: electronics.ID,
			Active:     true,
		}
		var existing models.Product
		err = db.Where("name = ? AND category_id = ?", s.name, electronics.ID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
