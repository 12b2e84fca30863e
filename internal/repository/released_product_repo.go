package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// ReleasedProductRepository released product data access interface
type ReleasedProductRepository interface {
	Create(product *domain.ReleasedProduct) error
	FindByID(id uint) (*domain.ReleasedProduct, error)
	FindByName(designName string) (*domain.ReleasedProduct, error)
	List(page, size int, search, orderClause string, brandID *uint) ([]*domain.ReleasedProduct, int64, error)
	Update(product *domain.ReleasedProduct) error
	Delete(id uint) error
	// IncrementViews bumps the view counter and the daily tally in one
	// transaction (end-user detail reads only).
	IncrementViews(id uint, date string) error
	ExistsName(designName string) (bool, error)
}

type releasedProductRepository struct {
	db *gorm.DB
}

// NewReleasedProductRepository creates a new ReleasedProductRepository
func NewReleasedProductRepository(db *gorm.DB) ReleasedProductRepository {
	return &releasedProductRepository{db: db}
}

func (r *releasedProductRepository) Create(product *domain.ReleasedProduct) error {
	return r.db.Create(product).Error
}

func (r *releasedProductRepository) FindByID(id uint) (*domain.ReleasedProduct, error) {
	var product domain.ReleasedProduct
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &product, err
}

func (r *releasedProductRepository) FindByName(designName string) (*domain.ReleasedProduct, error) {
	var product domain.ReleasedProduct
	err := r.db.Where("design_name = ?", designName).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &product, err
}

func (r *releasedProductRepository) List(page, size int, search, orderClause string, brandID *uint) ([]*domain.ReleasedProduct, int64, error) {
	var products []*domain.ReleasedProduct
	var total int64

	query := r.db.Model(&domain.ReleasedProduct{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("design_name LIKE ? OR color_name LIKE ?", like, like)
	}
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&products).Error
	return products, total, err
}

func (r *releasedProductRepository) Update(product *domain.ReleasedProduct) error {
	return r.db.Save(product).Error
}

func (r *releasedProductRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.ReleasedProduct{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *releasedProductRepository) IncrementViews(id uint, date string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.ReleasedProduct{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return upsertDailyView(tx, date, domain.ContentTypeReleasedProduct, id)
	})
}

func (r *releasedProductRepository) ExistsName(designName string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ReleasedProduct{}).
		Where("design_name = ?", designName).Count(&count).Error
	return count > 0, err
}
