package service

import (
	"testing"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSampleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Cart{},
		&domain.CustomDesign{},
		&domain.Portfolio{},
		&domain.ProgressStatus{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newSampleFixture(t *testing.T) (*sampleService, *gorm.DB) {
	t.Helper()
	db := setupSampleTestDB(t)
	svc := NewSampleService(
		repository.NewProgressRepository(db),
		repository.NewCartRepository(db),
		repository.NewCustomDesignRepository(db),
		repository.NewPortfolioRepository(db),
		repository.NewUserRepository(db),
	).(*sampleService)
	return svc, db
}

func TestSampleRequestFromCart(t *testing.T) {
	svc, db := newSampleFixture(t)

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})
	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete, RequestMessage: "도트 패턴 강조"})
	db.Create(&domain.Cart{UserID: 1, ItemName: "0001", Category: domain.CategoryCustomDesign})

	t.Run("장바구니 항목이 대기 의뢰로 넘어간다", func(t *testing.T) {
		row, err := svc.Request(1, RequestSampleInput{
			ItemName:  "0001",
			Category:  domain.CategoryCustomDesign,
			Recipient: Recipient{Name: "김하나", Phone: "010-1234-5678", Address: "서울"},
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ProgressWaiting, row.Status)
		assert.NotNil(t, row.CustomDesignID)
		assert.Nil(t, row.PortfolioID)

		// 디자인에 저장된 요청 메시지가 최우선
		assert.Equal(t, "도트 패턴 강조", row.Notes)

		// 예상 출고일은 요청일 + 10일
		assert.Equal(t, row.RequestedAt.AddDate(0, 0, domain.ShippingLeadDays), row.ExpectedShippingDate)

		// 장바구니 행은 같은 트랜잭션에서 삭제된다
		var cartCount int64
		db.Model(&domain.Cart{}).Count(&cartCount)
		assert.Equal(t, int64(0), cartCount)
	})

	t.Run("장바구니에 없는 항목은 의뢰할 수 없다", func(t *testing.T) {
		_, err := svc.Request(1, RequestSampleInput{ItemName: "0001", Category: domain.CategoryCustomDesign})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestSampleRequestNotes(t *testing.T) {
	t.Run("디자인 메시지가 없으면 요청 노트를 쓴다", func(t *testing.T) {
		assert.Equal(t, "급하게 부탁드립니다", requestNotes(domain.CategoryPortfolio, "", "급하게 부탁드립니다"))
	})

	t.Run("둘 다 없으면 카테고리 기본 문구", func(t *testing.T) {
		assert.Equal(t, "포트폴리오 샘플 제작 요청", requestNotes(domain.CategoryPortfolio, "", ""))
	})

	t.Run("디자인 메시지가 항상 우선", func(t *testing.T) {
		assert.Equal(t, "저장된 메시지", requestNotes(domain.CategoryCustomDesign, "저장된 메시지", "무시될 노트"))
	})
}

func TestSampleRequestAll(t *testing.T) {
	svc, db := newSampleFixture(t)

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})
	db.Create(&domain.Portfolio{UserID: 1, DesignName: "오로라 브라운"})
	db.Create(&domain.Cart{UserID: 1, ItemName: "오로라 브라운", Category: domain.CategoryPortfolio})
	// 원본 포트폴리오가 사라진 장바구니 항목은 실패 목록으로 간다
	db.Create(&domain.Cart{UserID: 1, ItemName: "삭제된 디자인", Category: domain.CategoryPortfolio})

	result, err := svc.RequestAll(1, domain.CategoryPortfolio, "", Recipient{Name: "김하나"})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, []string{"삭제된 디자인"}, result.Failed)

	// 실패한 항목의 장바구니 행은 남는다
	var remaining int64
	db.Model(&domain.Cart{}).Count(&remaining)
	assert.Equal(t, int64(1), remaining)
}

func TestSampleLazyLateness(t *testing.T) {
	svc, db := newSampleFixture(t)
	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})

	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	designID := uint(1)
	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete})

	overdue := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressWaiting,
		RequestedAt:          now.AddDate(0, 0, -15),
		ExpectedShippingDate: now.AddDate(0, 0, -5),
	}
	onTime := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressWaiting,
		RequestedAt:          now,
		ExpectedShippingDate: now.AddDate(0, 0, domain.ShippingLeadDays),
	}
	shipped := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressShipped,
		RequestedAt:          now.AddDate(0, 0, -30),
		ExpectedShippingDate: now.AddDate(0, 0, -20),
	}
	db.Create(overdue)
	db.Create(onTime)
	db.Create(shipped)

	t.Run("목록 조회가 지연 건을 확정한다", func(t *testing.T) {
		views, total, err := svc.ListForManager(1, 10, "", "")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, views, 3)

		var persisted domain.ProgressStatus
		db.First(&persisted, overdue.ID)
		assert.Equal(t, domain.ProgressLate, persisted.Status)

		// 출고 완료 건은 지연으로 바뀌지 않는다
		persisted = domain.ProgressStatus{}
		db.First(&persisted, shipped.ID)
		assert.Equal(t, domain.ProgressShipped, persisted.Status)
	})

	t.Run("상태 필터 페이지에서 전환된 행은 빠지고 총계는 유지된다", func(t *testing.T) {
		late := &domain.ProgressStatus{
			UserID: 1, CustomDesignID: &designID, Status: domain.ProgressWaiting,
			RequestedAt:          now.AddDate(0, 0, -12),
			ExpectedShippingDate: now.AddDate(0, 0, -2),
		}
		db.Create(late)

		views, total, err := svc.ListForManager(1, 10, domain.ProgressWaiting, "")
		assert.NoError(t, err)
		// 조회 시점 기준 대기 2건이었으나 1건이 지연으로 전환되어 빠진다
		assert.Equal(t, int64(2), total)
		assert.Len(t, views, 1)
		assert.Equal(t, onTime.ID, views[0].ID)
	})
}

func TestSampleStatusTransitions(t *testing.T) {
	svc, db := newSampleFixture(t)
	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})

	designID := uint(1)
	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete})
	row := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressWaiting,
		RequestedAt:          time.Now(),
		ExpectedShippingDate: time.Now().AddDate(0, 0, domain.ShippingLeadDays),
	}
	db.Create(row)

	t.Run("대기에서 바로 출고는 불가", func(t *testing.T) {
		_, err := svc.SetStatus(row.ID, domain.ProgressShipped, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("대기 → 진행 → 출고, 송장번호 기록", func(t *testing.T) {
		_, err := svc.SetStatus(row.ID, domain.ProgressInProgress, "")
		assert.NoError(t, err)

		updated, err := svc.SetStatus(row.ID, domain.ProgressShipped, "CJ-1234567890")
		assert.NoError(t, err)
		assert.Equal(t, "CJ-1234567890", updated.StatusNote)
	})

	t.Run("출고 이후에는 어떤 전환도 불가", func(t *testing.T) {
		_, err := svc.SetStatus(row.ID, domain.ProgressInProgress, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestSampleDeleteOwn(t *testing.T) {
	svc, db := newSampleFixture(t)
	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})

	designID := uint(1)
	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete})

	waiting := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressWaiting,
		RequestedAt: time.Now(), ExpectedShippingDate: time.Now().AddDate(0, 0, 10),
	}
	inProgress := &domain.ProgressStatus{
		UserID: 1, CustomDesignID: &designID, Status: domain.ProgressInProgress,
		RequestedAt: time.Now(), ExpectedShippingDate: time.Now().AddDate(0, 0, 10),
	}
	db.Create(waiting)
	db.Create(inProgress)

	t.Run("남의 의뢰는 삭제할 수 없다", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteOwn(2, waiting.ID), common.ErrForbidden)
	})

	t.Run("진행 중 의뢰는 삭제할 수 없다", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteOwn(1, inProgress.ID), ErrRequestNotDeletable)
	})

	t.Run("대기 의뢰는 본인이 삭제할 수 있다", func(t *testing.T) {
		assert.NoError(t, svc.DeleteOwn(1, waiting.ID))
		_, err := svc.Get(waiting.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
