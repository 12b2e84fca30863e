package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// CountryRepository country data access interface
type CountryRepository interface {
	Create(country *domain.Country) error
	FindByID(id uint) (*domain.Country, error)
	List(page, size int, search, orderClause string) ([]*domain.Country, int64, error)
	ListAll() ([]*domain.Country, error)
	ListByIDs(ids []uint) ([]*domain.Country, error)
	Update(country *domain.Country) error
	Delete(id uint) error
	Count() (int64, error)
	CountReferences(id uint) (int64, error)
	MoveRank(id uint, direction string) error
	BulkRank(entries []RankEntry) error
}

type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository creates a new CountryRepository
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

// Create inserts a country at the bottom of the rank order (max+1)
func (r *countryRepository) Create(country *domain.Country) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxRank int64
		if err := tx.Model(&domain.Country{}).
			Select("COALESCE(MAX(`rank`), 0)").Scan(&maxRank).Error; err != nil {
			return err
		}
		country.Rank = int(maxRank) + 1
		return tx.Create(country).Error
	})
}

func (r *countryRepository) FindByID(id uint) (*domain.Country, error) {
	var country domain.Country
	err := r.db.First(&country, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &country, err
}

func (r *countryRepository) List(page, size int, search, orderClause string) ([]*domain.Country, int64, error) {
	var countries []*domain.Country
	var total int64

	query := r.db.Model(&domain.Country{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR english_name LIKE ?", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&countries).Error
	return countries, total, err
}

func (r *countryRepository) ListAll() ([]*domain.Country, error) {
	var countries []*domain.Country
	err := r.db.Order("`rank` ASC").Find(&countries).Error
	return countries, err
}

func (r *countryRepository) ListByIDs(ids []uint) ([]*domain.Country, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var countries []*domain.Country
	err := r.db.Where("id IN ?", ids).Order("`rank` ASC").Find(&countries).Error
	return countries, err
}

func (r *countryRepository) Update(country *domain.Country) error {
	return r.db.Save(country).Error
}

// Delete hard-deletes the country and closes the rank gap
func (r *countryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var country domain.Country
		if err := tx.First(&country, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&country).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Country{}).
			Where("`rank` > ?", country.Rank).
			Update("rank", gorm.Expr("`rank` - 1")).Error
	})
}

func (r *countryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Country{}).Count(&count).Error
	return count, err
}

// CountReferences counts active portfolios exposing the country.
// exposed_countries is a CSV of decimal IDs; the four-pattern match
// guards against prefix collisions (id 1 vs 11).
func (r *countryRepository) CountReferences(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Portfolio{}).
		Where("is_deleted = ?", false).
		Where(
			"exposed_countries = ? OR exposed_countries LIKE ? OR exposed_countries LIKE ? OR exposed_countries LIKE ?",
			csvExact(id), csvHead(id), csvMiddle(id), csvTail(id),
		).Count(&count).Error
	return count, err
}

func (r *countryRepository) MoveRank(id uint, direction string) error {
	return moveRank(r.db, domain.Country{}.TableName(), id, direction)
}

func (r *countryRepository) BulkRank(entries []RankEntry) error {
	return bulkRank(r.db, domain.Country{}.TableName(), entries)
}
