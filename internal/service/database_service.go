package service

import (
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// DatabaseService is the superadmin-only database-management surface:
// row tallies, allowlisted truncation, and the item-name resequencer.
type DatabaseService interface {
	Tables() ([]repository.TableCount, error)
	Truncate(table string) error
	// RegenerateItemNames re-sequences a user's completed designs to
	// 0001..N chronologically, returning how many rows were renamed
	RegenerateItemNames(userID uint) (int, error)
}

type databaseService struct {
	maintenanceRepo repository.MaintenanceRepository
	designRepo      repository.CustomDesignRepository
}

// NewDatabaseService creates a new DatabaseService
func NewDatabaseService(maintenanceRepo repository.MaintenanceRepository, designRepo repository.CustomDesignRepository) DatabaseService {
	return &databaseService{maintenanceRepo: maintenanceRepo, designRepo: designRepo}
}

func (s *databaseService) Tables() ([]repository.TableCount, error) {
	return s.maintenanceRepo.TableCounts()
}

func (s *databaseService) Truncate(table string) error {
	return s.maintenanceRepo.Truncate(table)
}

func (s *databaseService) RegenerateItemNames(userID uint) (int, error) {
	return s.designRepo.RegenerateItemNames(userID)
}
