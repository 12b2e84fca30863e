package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// PortfolioRepository portfolio data access interface
type PortfolioRepository interface {
	Create(portfolio *domain.Portfolio) error
	// FindByID loads regardless of the soft-delete flag (admin paths may
	// read soft-deleted rows by direct ID).
	FindByID(id uint) (*domain.Portfolio, error)
	FindActiveByID(id uint) (*domain.Portfolio, error)
	FindActiveByName(designName string) (*domain.Portfolio, error)
	ExistsActiveName(designName string) (bool, error)
	List(page, size int, search, orderClause string, exposedToCountry *uint) ([]*domain.Portfolio, int64, error)
	Update(portfolio *domain.Portfolio) error
	SoftDelete(id uint) error
	IncrementViews(id uint, date string) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(portfolio *domain.Portfolio) error {
	return r.db.Create(portfolio).Error
}

func (r *portfolioRepository) FindByID(id uint) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	err := r.db.First(&portfolio, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &portfolio, err
}

func (r *portfolioRepository) FindActiveByID(id uint) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &portfolio, err
}

func (r *portfolioRepository) FindActiveByName(designName string) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	err := r.db.Where("design_name = ? AND is_deleted = ?", designName, false).
		First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &portfolio, err
}

// ExistsActiveName checks design-name uniqueness among non-deleted rows
func (r *portfolioRepository) ExistsActiveName(designName string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Portfolio{}).
		Where("design_name = ? AND is_deleted = ?", designName, false).
		Count(&count).Error
	return count > 0, err
}

func (r *portfolioRepository) List(page, size int, search, orderClause string, exposedToCountry *uint) ([]*domain.Portfolio, int64, error) {
	var portfolios []*domain.Portfolio
	var total int64

	query := r.db.Model(&domain.Portfolio{}).Where("is_deleted = ?", false)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("design_name LIKE ? OR color_name LIKE ?", like, like)
	}
	if exposedToCountry != nil {
		id := *exposedToCountry
		query = query.Where(
			"exposed_countries = ? OR exposed_countries LIKE ? OR exposed_countries LIKE ? OR exposed_countries LIKE ?",
			csvExact(id), csvHead(id), csvMiddle(id), csvTail(id),
		)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&portfolios).Error
	return portfolios, total, err
}

func (r *portfolioRepository) Update(portfolio *domain.Portfolio) error {
	return r.db.Save(portfolio).Error
}

func (r *portfolioRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.Portfolio{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *portfolioRepository) IncrementViews(id uint, date string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Portfolio{}).
			Where("id = ? AND is_deleted = ?", id, false).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return upsertDailyView(tx, date, domain.ContentTypePortfolio, id)
	})
}
