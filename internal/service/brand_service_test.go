package service

import (
	"context"
	"testing"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newBrandFixture(t *testing.T) (BrandService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Brand{}, &domain.ReleasedProduct{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewBrandService(repository.NewBrandRepository(db), &stubUploads{}), db
}

func brandRanks(t *testing.T, db *gorm.DB) map[string]int {
	t.Helper()
	var brands []*domain.Brand
	db.Find(&brands)
	out := make(map[string]int, len(brands))
	for _, b := range brands {
		out[b.Name] = b.Rank
	}
	return out
}

func TestBrandCreateAssignsNextRank(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, "클라렌", "", "", nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, a.Rank)

	b, err := svc.Create(ctx, "오렌즈", "", "", nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Rank)

	t.Run("중복 이름 거부", func(t *testing.T) {
		_, err := svc.Create(ctx, "클라렌", "", "", nil)
		assert.ErrorIs(t, err, ErrBrandNameTaken)
	})

	t.Run("빈 이름 거부", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "", "", nil)
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestBrandMoveRank(t *testing.T) {
	svc, db := newBrandFixture(t)
	ctx := context.Background()

	for _, name := range []string{"클라렌", "오렌즈", "렌즈미", "아이디스"} {
		_, err := svc.Create(ctx, name, "", "", nil)
		assert.NoError(t, err)
	}

	t.Run("up은 바로 위와 자리를 바꾼다", func(t *testing.T) {
		assert.NoError(t, svc.MoveRank(3, repository.RankMoveUp))
		ranks := brandRanks(t, db)
		assert.Equal(t, 2, ranks["렌즈미"])
		assert.Equal(t, 3, ranks["오렌즈"])
	})

	t.Run("top은 나머지를 한 칸씩 민다", func(t *testing.T) {
		assert.NoError(t, svc.MoveRank(4, repository.RankMoveTop))
		ranks := brandRanks(t, db)
		assert.Equal(t, 1, ranks["아이디스"])
		assert.Equal(t, 2, ranks["클라렌"])
		assert.Equal(t, 3, ranks["렌즈미"])
		assert.Equal(t, 4, ranks["오렌즈"])
	})

	t.Run("맨 위에서 up은 아무 일도 없다", func(t *testing.T) {
		before := brandRanks(t, db)
		assert.NoError(t, svc.MoveRank(4, repository.RankMoveUp))
		assert.Equal(t, before, brandRanks(t, db))
	})
}

func TestBrandBulkRank(t *testing.T) {
	svc, db := newBrandFixture(t)
	ctx := context.Background()

	for _, name := range []string{"클라렌", "오렌즈", "렌즈미"} {
		_, err := svc.Create(ctx, name, "", "", nil)
		assert.NoError(t, err)
	}

	t.Run("전체 순열을 한 번에 적용한다", func(t *testing.T) {
		err := svc.BulkRank([]repository.RankEntry{
			{ID: 1, Rank: 3}, {ID: 2, Rank: 1}, {ID: 3, Rank: 2},
		})
		assert.NoError(t, err)

		ranks := brandRanks(t, db)
		assert.Equal(t, 3, ranks["클라렌"])
		assert.Equal(t, 1, ranks["오렌즈"])
		assert.Equal(t, 2, ranks["렌즈미"])
	})

	t.Run("행 수와 다른 순열은 거부", func(t *testing.T) {
		err := svc.BulkRank([]repository.RankEntry{{ID: 1, Rank: 1}, {ID: 2, Rank: 2}})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("중복 순위는 거부", func(t *testing.T) {
		err := svc.BulkRank([]repository.RankEntry{
			{ID: 1, Rank: 1}, {ID: 2, Rank: 1}, {ID: 3, Rank: 3},
		})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestBrandDeleteGuard(t *testing.T) {
	svc, db := newBrandFixture(t)
	ctx := context.Background()

	brand, err := svc.Create(ctx, "클라렌", "", "", nil)
	assert.NoError(t, err)
	db.Create(&domain.ReleasedProduct{DesignName: "썸머 그레이", BrandID: &brand.ID})

	t.Run("출시제품이 참조하는 동안 삭제 불가", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, brand.ID), ErrBrandInUse)
	})

	t.Run("참조가 사라지면 삭제된다", func(t *testing.T) {
		db.Where("design_name = ?", "썸머 그레이").Delete(&domain.ReleasedProduct{})
		assert.NoError(t, svc.Delete(ctx, brand.ID))
	})
}
