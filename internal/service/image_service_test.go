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

func newImageFixture(t *testing.T) (ImageService, *gorm.DB, *stubUploads) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Image{},
		&domain.Portfolio{},
		&domain.CustomDesign{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	uploads := &stubUploads{}
	svc := NewImageService(repository.NewImageRepository(db), uploads)
	return svc, db, uploads
}

func TestImageCreate(t *testing.T) {
	svc, _, uploads := newImageFixture(t)
	ctx := context.Background()

	t.Run("레이어 카테고리 검증", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateImageRequest{
			Category: "background", DisplayName: "별빛", Filename: "a.png", ContentType: "image/png",
		})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("이름 공백 거부", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateImageRequest{
			Category: domain.LayerLine, DisplayName: "   ", Filename: "a.png", ContentType: "image/png",
		})
		assert.ErrorIs(t, err, ErrImageNameMissing)
	})

	t.Run("업로드 결과와 썸네일 저장", func(t *testing.T) {
		image, err := svc.Create(ctx, CreateImageRequest{
			Category: domain.LayerLine, DisplayName: " 별빛 라인 ",
			Filename: "starline.png", ContentType: "image/png", Data: []byte{1},
		})
		assert.NoError(t, err)
		assert.Equal(t, "별빛 라인", image.DisplayName)
		assert.Equal(t, "images/1.png", image.ObjectKey)
		assert.Equal(t, "https://cdn.test/images/1.png", image.URL)
		assert.Equal(t, "https://cdn.test/images/1.png.thumb", image.ThumbnailURL)
		assert.Equal(t, []string{"starline.png"}, uploads.uploaded)
	})

	t.Run("카테고리 내 이름 중복 거부", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateImageRequest{
			Category: domain.LayerLine, DisplayName: "별빛 라인",
			Filename: "dup.png", ContentType: "image/png", Data: []byte{1},
		})
		assert.ErrorIs(t, err, ErrImageNameTaken)

		// 다른 레이어에서는 같은 이름을 쓸 수 있다
		_, err = svc.Create(ctx, CreateImageRequest{
			Category: domain.LayerPupil, DisplayName: "별빛 라인",
			Filename: "pupil.png", ContentType: "image/png", Data: []byte{1},
		})
		assert.NoError(t, err)
	})
}

func TestImageListForUser(t *testing.T) {
	svc, db, _ := newImageFixture(t)

	db.Create(&domain.Image{Category: domain.LayerLine, DisplayName: "공개 라인"})
	db.Create(&domain.Image{Category: domain.LayerLine, DisplayName: "전용 라인", ExposedUsers: "A01, B02"})
	db.Create(&domain.Image{Category: domain.LayerPupil, DisplayName: "공개 동공"})

	t.Run("노출 대상이면 제한 이미지도 보인다", func(t *testing.T) {
		images, err := svc.ListForUser(domain.LayerLine, "A01")
		assert.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("노출 대상이 아니면 공개 이미지만", func(t *testing.T) {
		images, err := svc.ListForUser(domain.LayerLine, "C03")
		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.Equal(t, "공개 라인", images[0].DisplayName)
	})

	t.Run("카테고리 필터", func(t *testing.T) {
		images, err := svc.ListForUser(domain.LayerPupil, "C03")
		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.Equal(t, "공개 동공", images[0].DisplayName)
	})
}

func TestImageDeleteGuard(t *testing.T) {
	svc, db, uploads := newImageFixture(t)
	ctx := context.Background()

	image, err := svc.Create(ctx, CreateImageRequest{
		Category: domain.LayerLine, DisplayName: "사용 중 라인",
		Filename: "inuse.png", ContentType: "image/png", Data: []byte{1},
	})
	assert.NoError(t, err)

	portfolio := &domain.Portfolio{UserID: 1, DesignName: "오로라 브라운", LineImageID: &image.ID}
	db.Create(portfolio)

	t.Run("디자인이 참조하는 동안은 거부", func(t *testing.T) {
		err := svc.Delete(ctx, image.ID)
		assert.ErrorIs(t, err, common.ErrHasDependents)
		assert.Contains(t, err.Error(), "포트폴리오에서 사용 중")
	})

	t.Run("논리 삭제된 포트폴리오는 참조로 치지 않는다", func(t *testing.T) {
		db.Model(portfolio).Update("is_deleted", true)

		assert.NoError(t, svc.Delete(ctx, image.ID))
		assert.Equal(t, []string{"images/1.png"}, uploads.deleted)

		_, err := svc.Get(image.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
