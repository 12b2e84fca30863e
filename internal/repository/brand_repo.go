package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// BrandRepository brand data access interface
type BrandRepository interface {
	Create(brand *domain.Brand) error
	FindByID(id uint) (*domain.Brand, error)
	FindByName(name string) (*domain.Brand, error)
	List(page, size int, search, orderClause string) ([]*domain.Brand, int64, error)
	ListAll() ([]*domain.Brand, error)
	Update(brand *domain.Brand) error
	Delete(id uint) error
	Count() (int64, error)
	CountReferences(id uint) (int64, error)
	MoveRank(id uint, direction string) error
	BulkRank(entries []RankEntry) error
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new BrandRepository
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Create inserts a brand at the bottom of the rank order (max+1)
func (r *brandRepository) Create(brand *domain.Brand) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxRank int64
		if err := tx.Model(&domain.Brand{}).
			Select("COALESCE(MAX(`rank`), 0)").Scan(&maxRank).Error; err != nil {
			return err
		}
		brand.Rank = int(maxRank) + 1
		return tx.Create(brand).Error
	})
}

func (r *brandRepository) FindByID(id uint) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.db.First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &brand, err
}

func (r *brandRepository) FindByName(name string) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.db.Where("name = ?", name).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &brand, err
}

func (r *brandRepository) List(page, size int, search, orderClause string) ([]*domain.Brand, int64, error) {
	var brands []*domain.Brand
	var total int64

	query := r.db.Model(&domain.Brand{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&brands).Error
	return brands, total, err
}

func (r *brandRepository) ListAll() ([]*domain.Brand, error) {
	var brands []*domain.Brand
	err := r.db.Order("`rank` ASC").Find(&brands).Error
	return brands, err
}

func (r *brandRepository) Update(brand *domain.Brand) error {
	return r.db.Save(brand).Error
}

// Delete removes a brand and closes the rank gap it leaves
func (r *brandRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var brand domain.Brand
		if err := tx.First(&brand, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&brand).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Brand{}).
			Where("`rank` > ?", brand.Rank).
			Update("rank", gorm.Expr("`rank` - 1")).Error
	})
}

func (r *brandRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Brand{}).Count(&count).Error
	return count, err
}

// CountReferences counts released products still pointing at the brand
func (r *brandRepository) CountReferences(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.ReleasedProduct{}).
		Where("brand_id = ?", id).Count(&count).Error
	return count, err
}

func (r *brandRepository) MoveRank(id uint, direction string) error {
	return moveRank(r.db, domain.Brand{}.TableName(), id, direction)
}

func (r *brandRepository) BulkRank(entries []RankEntry) error {
	return bulkRank(r.db, domain.Brand{}.TableName(), entries)
}
