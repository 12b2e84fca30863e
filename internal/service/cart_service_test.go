package service

import (
	"testing"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Cart{}, &domain.CustomDesign{}, &domain.Portfolio{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewCustomDesignRepository(db),
		repository.NewPortfolioRepository(db),
	)
	return svc, db
}

func TestCartAdd(t *testing.T) {
	svc, db := newCartFixture(t)

	db.Create(&domain.CustomDesign{
		UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete,
		MainImageURL: "https://cdn.test/design.png",
	})
	db.Create(&domain.Portfolio{UserID: 9, DesignName: "오로라 브라운", MainImageURL: "https://cdn.test/pf.png"})

	t.Run("담는 시점의 대표 이미지를 스냅샷한다", func(t *testing.T) {
		item, err := svc.Add(1, "0001", domain.CategoryCustomDesign)
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.test/design.png", item.MainImageURL)
	})

	t.Run("같은 항목을 두 번 담을 수 없다", func(t *testing.T) {
		_, err := svc.Add(1, "0001", domain.CategoryCustomDesign)
		assert.ErrorIs(t, err, ErrCartDuplicate)
	})

	t.Run("카테고리가 다르면 같은 이름도 별개 항목", func(t *testing.T) {
		_, err := svc.Add(1, "오로라 브라운", domain.CategoryPortfolio)
		assert.NoError(t, err)
	})

	t.Run("카테고리에 없는 디자인은 담을 수 없다", func(t *testing.T) {
		_, err := svc.Add(1, "없는 디자인", domain.CategoryPortfolio)
		assert.ErrorIs(t, err, ErrInvalidCartItem)
	})

	t.Run("알 수 없는 카테고리 거부", func(t *testing.T) {
		_, err := svc.Add(1, "0001", "board")
		assert.ErrorIs(t, err, ErrInvalidCartItem)
	})
}

func TestCartListAndRemove(t *testing.T) {
	svc, db := newCartFixture(t)

	db.Create(&domain.CustomDesign{UserID: 1, ItemName: "0001", Status: domain.DesignStatusComplete})
	db.Create(&domain.Portfolio{UserID: 9, DesignName: "오로라 브라운"})

	_, err := svc.Add(1, "0001", domain.CategoryCustomDesign)
	assert.NoError(t, err)
	_, err = svc.Add(1, "오로라 브라운", domain.CategoryPortfolio)
	assert.NoError(t, err)

	t.Run("카테고리 필터", func(t *testing.T) {
		items, err := svc.List(1, domain.CategoryPortfolio)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "오로라 브라운", items[0].ItemName)
	})

	t.Run("필터 없이 전체", func(t *testing.T) {
		items, err := svc.List(1, "")
		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("삭제 후 다시 담을 수 있다", func(t *testing.T) {
		assert.NoError(t, svc.Remove(1, "0001", domain.CategoryCustomDesign))
		_, err := svc.Add(1, "0001", domain.CategoryCustomDesign)
		assert.NoError(t, err)
	})
}
