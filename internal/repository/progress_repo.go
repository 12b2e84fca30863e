package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// ProgressRepository sample request data access interface
type ProgressRepository interface {
	Create(status *domain.ProgressStatus) error
	// CreateFromCart inserts the progress row and removes the cart row
	// in one transaction.
	CreateFromCart(status *domain.ProgressStatus, cartID uint) error
	FindByID(id uint) (*domain.ProgressStatus, error)
	List(page, size int, status, orderClause string) ([]*domain.ProgressStatus, int64, error)
	ListByUser(userID uint, page, size int) ([]*domain.ProgressStatus, int64, error)
	Update(status *domain.ProgressStatus) error
	UpdateStatuses(rows []*domain.ProgressStatus) error
	Delete(id uint) error
	StatusTallies() (map[string]int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(status *domain.ProgressStatus) error {
	return r.db.Create(status).Error
}

func (r *progressRepository) CreateFromCart(status *domain.ProgressStatus, cartID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(status).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Cart{}, cartID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

func (r *progressRepository) FindByID(id uint) (*domain.ProgressStatus, error) {
	var status domain.ProgressStatus
	err := r.db.First(&status, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &status, err
}

func (r *progressRepository) List(page, size int, status, orderClause string) ([]*domain.ProgressStatus, int64, error) {
	var rows []*domain.ProgressStatus
	var total int64

	query := r.db.Model(&domain.ProgressStatus{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (r *progressRepository) ListByUser(userID uint, page, size int) ([]*domain.ProgressStatus, int64, error) {
	var rows []*domain.ProgressStatus
	var total int64

	query := r.db.Model(&domain.ProgressStatus{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("requested_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (r *progressRepository) Update(status *domain.ProgressStatus) error {
	return r.db.Save(status).Error
}

// UpdateStatuses commits a batch of lateness transitions before the list
// response serializes
func (r *progressRepository) UpdateStatuses(rows []*domain.ProgressStatus) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Model(&domain.ProgressStatus{}).
				Where("id = ?", row.ID).
				Update("status", row.Status).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *progressRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.ProgressStatus{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *progressRepository) StatusTallies() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&domain.ProgressStatus{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	tallies := make(map[string]int64, len(rows))
	for _, row := range rows {
		tallies[row.Status] = row.Count
	}
	return tallies, nil
}
