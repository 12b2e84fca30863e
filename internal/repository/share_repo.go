package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// ShareRepository shared image link data access interface
type ShareRepository interface {
	Create(share *domain.Share) error
	Find(userID uint, itemName, category string) (*domain.Share, error)
	FindByImageID(imageID string) (*domain.Share, error)
	ExistsImageID(imageID string) (bool, error)
}

type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(share *domain.Share) error {
	return r.db.Create(share).Error
}

func (r *shareRepository) Find(userID uint, itemName, category string) (*domain.Share, error) {
	var share domain.Share
	err := r.db.Where("user_id = ? AND item_name = ? AND category = ?",
		userID, itemName, category).First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &share, err
}

func (r *shareRepository) FindByImageID(imageID string) (*domain.Share, error) {
	var share domain.Share
	err := r.db.Where("image_id = ?", imageID).First(&share).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &share, err
}

func (r *shareRepository) ExistsImageID(imageID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Share{}).
		Where("image_id = ?", imageID).Count(&count).Error
	return count > 0, err
}
