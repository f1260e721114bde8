package services

import (
	"errors"
	"time"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/repositories"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/collection"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItemView embeds the product projection with the added-at timestamp.
type WishlistItemView struct {
	Product ProductResponse `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// WishlistService manages the per-user product wishlist.
type WishlistService struct {
	wishlist *repositories.WishlistRepository
	products *repositories.ProductRepository
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{
		wishlist: repositories.NewWishlistRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// Add puts a product on the user's wishlist. The duplicate check runs before
// the insert so the caller gets a domain-level Conflict rather than a raw
// constraint violation.
func (s *WishlistService) Add(userID, productID uuid.UUID) error {
	if _, err := s.products.FindActiveByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Internal(err)
	}

	exists, err := s.wishlist.Exists(userID, productID)
	if err != nil {
		return apperr.Internal(err)
	}
	if exists {
		return apperr.Conflict("Product already in wishlist")
	}

	item := models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.wishlist.Create(&item); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Remove takes a product off the wishlist. Removing an absent item succeeds.
func (s *WishlistService) Remove(userID, productID uuid.UUID) error {
	if err := s.wishlist.DeleteByUserAndProduct(userID, productID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// List returns the user's wishlist in insertion order.
func (s *WishlistService) List(userID uuid.UUID) ([]WishlistItemView, error) {
	items, err := s.wishlist.FindByUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return collection.Map(items, func(item models.WishlistItem) WishlistItemView {
		return WishlistItemView{
			Product: toProductResponse(item.Product),
			AddedAt: item.AddedAt,
		}
	}), nil
}

// Contains reports whether the product is on the user's wishlist.
func (s *WishlistService) Contains(userID, productID uuid.UUID) (bool, error) {
	exists, err := s.wishlist.Exists(userID, productID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return exists, nil
}
