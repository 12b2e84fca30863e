package service

import (
	"testing"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDatabaseFixture(t *testing.T) (DatabaseService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Cart{},
		&domain.Share{},
		&domain.RealtimeUser{},
		&domain.DailyView{},
		&domain.ProgressStatus{},
		&domain.CustomDesign{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	svc := NewDatabaseService(
		repository.NewMaintenanceRepository(db),
		repository.NewCustomDesignRepository(db),
	)
	return svc, db
}

func TestDatabaseTables(t *testing.T) {
	svc, db := newDatabaseFixture(t)

	db.Create(&domain.Cart{UserID: 1, Category: domain.CategoryPortfolio, ItemName: "오로라 브라운"})
	db.Create(&domain.Cart{UserID: 1, Category: domain.CategoryPortfolio, ItemName: "썸머 그레이"})

	tables, err := svc.Tables()
	assert.NoError(t, err)
	assert.Len(t, tables, 6)

	counts := make(map[string]int64, len(tables))
	for _, tc := range tables {
		counts[tc.Table] = tc.Count
	}
	assert.Equal(t, int64(2), counts["carts"])
	assert.Equal(t, int64(0), counts["shares"])
	assert.Contains(t, counts, "progressstatus")
	assert.Contains(t, counts, "custom_designs")
}

func TestDatabaseTruncate(t *testing.T) {
	svc, db := newDatabaseFixture(t)

	db.Create(&domain.Cart{UserID: 1, Category: domain.CategoryPortfolio, ItemName: "오로라 브라운"})
	db.Create(&domain.User{Username: "ADMIN", Password: "x", Role: domain.RoleAdmin, AccountCode: "001"})

	t.Run("허용 목록 밖 테이블은 거부", func(t *testing.T) {
		assert.ErrorIs(t, svc.Truncate("account"), common.ErrInvalidInput)
		assert.ErrorIs(t, svc.Truncate("users; DROP TABLE account"), common.ErrInvalidInput)
	})

	t.Run("허용 테이블은 전체 삭제", func(t *testing.T) {
		assert.NoError(t, svc.Truncate("carts"))

		var carts, users int64
		db.Model(&domain.Cart{}).Count(&carts)
		db.Model(&domain.User{}).Count(&users)
		assert.Equal(t, int64(0), carts)
		assert.Equal(t, int64(1), users)
	})
}

func TestDatabaseRegenerateItemNames(t *testing.T) {
	svc, db := newDatabaseFixture(t)

	db.Create(&domain.CustomDesign{UserID: 7, ItemName: "0001", Status: domain.DesignStatusComplete})
	db.Create(&domain.CustomDesign{UserID: 7, ItemName: "0003", Status: domain.DesignStatusComplete})
	db.Create(&domain.CustomDesign{UserID: 7, ItemName: "0007", Status: domain.DesignStatusComplete})

	renamed, err := svc.RegenerateItemNames(7)
	assert.NoError(t, err)
	assert.Equal(t, 2, renamed)

	var names []string
	db.Model(&domain.CustomDesign{}).Where("user_id = ?", 7).Order("id").Pluck("item_name", &names)
	assert.Equal(t, []string{"0001", "0002", "0003"}, names)
}
