package service

import (
	"testing"
	"time"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newRankFixture(t *testing.T) (RankService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.DailyView{},
		&domain.Portfolio{},
		&domain.ReleasedProduct{},
		&domain.CustomDesign{},
		&domain.ProgressStatus{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	svc := NewRankService(
		repository.NewDailyViewRepository(db),
		repository.NewCustomDesignRepository(db),
		repository.NewProgressRepository(db),
	)
	return svc, db
}

func TestDashboardRanking(t *testing.T) {
	svc, db := newRankFixture(t)
	today := repository.Today()

	db.Create(&domain.Portfolio{UserID: 1, DesignName: "오로라 브라운"})
	db.Create(&domain.Portfolio{UserID: 1, DesignName: "썸머 그레이"})
	db.Create(&domain.Portfolio{UserID: 1, DesignName: "지워진 디자인", IsDeleted: true})

	db.Create(&domain.DailyView{ViewDate: today, ContentType: domain.ContentTypePortfolio, ContentID: 1, ViewCount: 3})
	db.Create(&domain.DailyView{ViewDate: today, ContentType: domain.ContentTypePortfolio, ContentID: 2, ViewCount: 7})
	db.Create(&domain.DailyView{ViewDate: today, ContentType: domain.ContentTypePortfolio, ContentID: 3, ViewCount: 99})
	// 어제 조회수는 오늘 순위에 들어가지 않는다
	db.Create(&domain.DailyView{ViewDate: "2000-01-01", ContentType: domain.ContentTypePortfolio, ContentID: 1, ViewCount: 100})

	dashboard, err := svc.Dashboard()
	assert.NoError(t, err)

	t.Run("오늘 조회수 내림차순, 논리 삭제 제외", func(t *testing.T) {
		assert.Len(t, dashboard.TopPortfolios, 2)
		assert.Equal(t, "썸머 그레이", dashboard.TopPortfolios[0].Name)
		assert.Equal(t, int64(7), dashboard.TopPortfolios[0].ViewCount)
		assert.Equal(t, "오로라 브라운", dashboard.TopPortfolios[1].Name)
	})

	t.Run("집계가 없으면 빈 순위", func(t *testing.T) {
		assert.Empty(t, dashboard.TopReleasedProducts)
	})
}

func TestDashboardTallies(t *testing.T) {
	svc, db := newRankFixture(t)

	db.Create(&domain.CustomDesign{UserID: 1, Status: domain.DesignStatusDraft})
	db.Create(&domain.CustomDesign{UserID: 1, Status: domain.DesignStatusDraft})
	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete})

	designID := uint(3)
	db.Create(&domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressLate,
		RequestedAt: time.Now(), ExpectedShippingDate: time.Now(),
	})

	dashboard, err := svc.Dashboard()
	assert.NoError(t, err)

	t.Run("디자인 상태 집계는 라벨별 건수와 합계", func(t *testing.T) {
		assert.Equal(t, int64(2), dashboard.CustomDesigns.Labels["wait"])
		assert.Equal(t, int64(1), dashboard.CustomDesigns.Labels["complet"])
		assert.Equal(t, int64(0), dashboard.CustomDesigns.Labels["reject"])
		assert.Equal(t, int64(3), dashboard.CustomDesigns.Total)
	})

	t.Run("의뢰 상태 집계", func(t *testing.T) {
		assert.Equal(t, int64(1), dashboard.SampleRequests.Labels["delay"])
		assert.Equal(t, int64(1), dashboard.SampleRequests.Total)
	})
}
