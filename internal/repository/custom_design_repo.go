package repository

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// CustomDesignRepository custom design data access interface
type CustomDesignRepository interface {
	Create(design *domain.CustomDesign) error
	FindByID(id uint) (*domain.CustomDesign, error)
	FindByOwnerAndItem(userID uint, itemName string) (*domain.CustomDesign, error)
	FindLatestByOwner(userID uint) (*domain.CustomDesign, error)
	ListByOwner(userID uint, page, size int) ([]*domain.CustomDesign, int64, error)
	ListAll(page, size int, status, search, orderClause string) ([]*domain.CustomDesign, int64, error)
	Update(design *domain.CustomDesign) error
	Delete(id uint) error
	// Complete flips the design to status "3" and assigns the next
	// per-owner 4-digit item name inside one transaction.
	Complete(id uint) (*domain.CustomDesign, error)
	// RegenerateItemNames re-sequences an owner's completed designs
	// chronologically to 0001..N.
	RegenerateItemNames(userID uint) (int, error)
	StatusTallies() (map[string]int64, error)
}

type customDesignRepository struct {
	db *gorm.DB
}

// NewCustomDesignRepository creates a new CustomDesignRepository
func NewCustomDesignRepository(db *gorm.DB) CustomDesignRepository {
	return &customDesignRepository{db: db}
}

func (r *customDesignRepository) Create(design *domain.CustomDesign) error {
	return r.db.Create(design).Error
}

func (r *customDesignRepository) FindByID(id uint) (*domain.CustomDesign, error) {
	var design domain.CustomDesign
	err := r.db.First(&design, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &design, err
}

func (r *customDesignRepository) FindByOwnerAndItem(userID uint, itemName string) (*domain.CustomDesign, error) {
	var design domain.CustomDesign
	err := r.db.Where("user_id = ? AND item_name = ?", userID, itemName).
		First(&design).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &design, err
}

func (r *customDesignRepository) FindLatestByOwner(userID uint) (*domain.CustomDesign, error) {
	var design domain.CustomDesign
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&design).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &design, err
}

func (r *customDesignRepository) ListByOwner(userID uint, page, size int) ([]*domain.CustomDesign, int64, error) {
	var designs []*domain.CustomDesign
	var total int64

	query := r.db.Model(&domain.CustomDesign{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&designs).Error
	return designs, total, err
}

func (r *customDesignRepository) ListAll(page, size int, status, search, orderClause string) ([]*domain.CustomDesign, int64, error) {
	var designs []*domain.CustomDesign
	var total int64

	query := r.db.Model(&domain.CustomDesign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where("item_name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&designs).Error
	return designs, total, err
}

func (r *customDesignRepository) Update(design *domain.CustomDesign) error {
	return r.db.Save(design).Error
}

func (r *customDesignRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.CustomDesign{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *customDesignRepository) Complete(id uint) (*domain.CustomDesign, error) {
	var design domain.CustomDesign
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&design, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}
		if design.Status == domain.DesignStatusComplete {
			return nil
		}

		var completed int64
		if err := tx.Model(&domain.CustomDesign{}).
			Where("user_id = ? AND status = ?", design.UserID, domain.DesignStatusComplete).
			Count(&completed).Error; err != nil {
			return err
		}

		design.Status = domain.DesignStatusComplete
		design.ItemName = domain.FormatItemName(int(completed) + 1)
		return tx.Save(&design).Error
	})
	if err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *customDesignRepository) RegenerateItemNames(userID uint) (int, error) {
	var renamed int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var designs []*domain.CustomDesign
		if err := tx.Where("user_id = ? AND status = ?", userID, domain.DesignStatusComplete).
			Order("created_at ASC").
			Find(&designs).Error; err != nil {
			return err
		}
		for i, d := range designs {
			name := domain.FormatItemName(i + 1)
			if d.ItemName == name {
				continue
			}
			if err := tx.Model(&domain.CustomDesign{}).
				Where("id = ?", d.ID).
				Update("item_name", name).Error; err != nil {
				return err
			}
			renamed++
		}
		return nil
	})
	return renamed, err
}

func (r *customDesignRepository) StatusTallies() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&domain.CustomDesign{}).
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
