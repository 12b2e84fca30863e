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

func newProductFixture(t *testing.T) (ReleasedProductService, *gorm.DB, *stubUploads) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.ReleasedProduct{},
		&domain.Brand{},
		&domain.Color{},
		&domain.Portfolio{},
		&domain.CustomDesign{},
		&domain.DailyView{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	uploads := &stubUploads{}
	svc := NewReleasedProductService(
		repository.NewReleasedProductRepository(db),
		repository.NewBrandRepository(db),
		repository.NewColorRepository(db),
		uploads,
	)
	return svc, db, uploads
}

func TestReleasedProductDetailResolvesRefs(t *testing.T) {
	svc, db, _ := newProductFixture(t)
	ctx := context.Background()

	db.Create(&domain.Brand{Name: "렌즈미", Rank: 1})
	db.Create(&domain.Color{Name: "브라운", Values: "120,72,48,0,40,60,53"})
	db.Create(&domain.Color{Name: "그레이", Values: "128,128,128"})

	brandID, brown, gray := uint(1), uint(1), uint(2)
	product, err := svc.Create(ctx, CreateReleasedProductRequest{
		DesignName: "어반 브라운", ColorName: "브라운",
		BrandID: &brandID, LineColorID: &brown, PupilColorID: &gray,
	})
	assert.NoError(t, err)

	detail, err := svc.Get(product.ID)
	assert.NoError(t, err)

	t.Run("브랜드와 레이어 색상이 채워진다", func(t *testing.T) {
		assert.Equal(t, "렌즈미", detail.Brand.Name)
		assert.Len(t, detail.Colors, 4)
		assert.Equal(t, "브라운", detail.Colors[0].ColorName)
		// 채널 값은 RGB 세 자리까지만 노출한다
		assert.Equal(t, "120,72,48", detail.Colors[0].ColorValues)
		assert.Nil(t, detail.Colors[1].ColorID)
		assert.Equal(t, "그레이", detail.Colors[3].ColorName)
	})

	t.Run("제품 이름 중복 거부", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateReleasedProductRequest{DesignName: "어반 브라운"})
		assert.ErrorIs(t, err, ErrProductNameTaken)
	})
}

func TestReleasedProductViewerBumpsViews(t *testing.T) {
	svc, db, _ := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, CreateReleasedProductRequest{DesignName: "데일리 클리어"})
	assert.NoError(t, err)

	detail, err := svc.GetForViewer("데일리 클리어")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views)

	var dv domain.DailyView
	assert.NoError(t, db.Where(
		"view_date = ? AND content_type = ? AND content_id = ?",
		repository.Today(), domain.ContentTypeReleasedProduct, product.ID,
	).First(&dv).Error)
	assert.Equal(t, int64(1), dv.ViewCount)

	_, err = svc.GetForViewer("없는 제품")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestReleasedProductDeleteCleansUpload(t *testing.T) {
	svc, _, uploads := newProductFixture(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, CreateReleasedProductRequest{
		DesignName: "썸머 클리어", Filename: "summer.png", ContentType: "image/png", Data: []byte{1},
	})
	assert.NoError(t, err)
	assert.Equal(t, "images/1.png", product.ObjectKey)

	assert.NoError(t, svc.Delete(ctx, product.ID))
	assert.Equal(t, []string{"images/1.png"}, uploads.deleted)

	_, err = svc.Get(product.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
