package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// CartRepository cart data access interface
type CartRepository interface {
	Create(cart *domain.Cart) error
	Find(userID uint, itemName, category string) (*domain.Cart, error)
	ListByUser(userID uint, category string) ([]*domain.Cart, error)
	Delete(userID uint, itemName, category string) error
	Exists(userID uint, itemName, category string) (bool, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *domain.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepository) Find(userID uint, itemName, category string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.Where("user_id = ? AND item_name = ? AND category = ?",
		userID, itemName, category).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &cart, err
}

func (r *cartRepository) ListByUser(userID uint, category string) ([]*domain.Cart, error) {
	var carts []*domain.Cart
	query := r.db.Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&carts).Error
	return carts, err
}

func (r *cartRepository) Delete(userID uint, itemName, category string) error {
	result := r.db.Where("user_id = ? AND item_name = ? AND category = ?",
		userID, itemName, category).Delete(&domain.Cart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Exists(userID uint, itemName, category string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Cart{}).
		Where("user_id = ? AND item_name = ? AND category = ?", userID, itemName, category).
		Count(&count).Error
	return count > 0, err
}
