package repository

import (
	"gorm.io/gorm"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
)

// truncatableTables are the tables the database-management surface may
// wipe. Account and catalog tables stay off the list.
var truncatableTables = map[string]interface{}{
	domain.Cart{}.TableName():           &domain.Cart{},
	domain.Share{}.TableName():          &domain.Share{},
	domain.RealtimeUser{}.TableName():   &domain.RealtimeUser{},
	domain.DailyView{}.TableName():      &domain.DailyView{},
	domain.ProgressStatus{}.TableName(): &domain.ProgressStatus{},
	domain.CustomDesign{}.TableName():   &domain.CustomDesign{},
}

// TableCount is one table's row tally
type TableCount struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
}

// MaintenanceRepository backs the superadmin database-management surface
type MaintenanceRepository interface {
	// TableCounts tallies the truncatable tables
	TableCounts() ([]TableCount, error)
	// Truncate wipes one allowlisted table
	Truncate(table string) error
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) TableCounts() ([]TableCount, error) {
	out := make([]TableCount, 0, len(truncatableTables))
	for table, model := range truncatableTables {
		var count int64
		if err := r.db.Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		out = append(out, TableCount{Table: table, Count: count})
	}
	return out, nil
}

func (r *maintenanceRepository) Truncate(table string) error {
	model, ok := truncatableTables[table]
	if !ok {
		return common.ErrInvalidInput
	}
	return r.db.Where("1 = 1").Delete(model).Error
}
