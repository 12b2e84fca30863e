package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/storage"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubUploads records calls without touching real object storage
type stubUploads struct {
	uploaded []string
	deleted  []string
}

func (s *stubUploads) Upload(_ context.Context, filename, _ string, _ []byte) (*storage.UploadResult, error) {
	s.uploaded = append(s.uploaded, filename)
	key := fmt.Sprintf("images/%d.png", len(s.uploaded))
	return &storage.UploadResult{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (s *stubUploads) UploadWithThumbnail(ctx context.Context, filename, contentType string, data []byte) (*storage.UploadResult, string, error) {
	result, err := s.Upload(ctx, filename, contentType, data)
	if err != nil {
		return nil, "", err
	}
	return result, result.URL + ".thumb", nil
}

func (s *stubUploads) UploadBase64PNG(ctx context.Context, _, _ string) (*storage.UploadResult, error) {
	return s.Upload(ctx, "base64.png", "image/png", nil)
}

func (s *stubUploads) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func setupDesignTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.CustomDesign{},
		&domain.ProgressStatus{},
		&domain.Image{},
		&domain.Color{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newDesignFixture(t *testing.T) (CustomDesignService, *gorm.DB, *stubUploads) {
	t.Helper()
	db := setupDesignTestDB(t)
	uploads := &stubUploads{}
	svc := NewCustomDesignService(
		repository.NewCustomDesignRepository(db),
		repository.NewProgressRepository(db),
		repository.NewUserRepository(db),
		repository.NewImageRepository(db),
		repository.NewColorRepository(db),
		uploads,
	)
	return svc, db, uploads
}

func TestCustomDesignCompletion(t *testing.T) {
	svc, db, _ := newDesignFixture(t)
	ctx := context.Background()

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})

	first, err := svc.Create(ctx, 1, SaveCustomDesignRequest{RequestMessage: "그라데이션 진하게"})
	assert.NoError(t, err)
	assert.Equal(t, domain.DesignStatusDraft, first.Status)
	assert.Empty(t, first.ItemName)

	t.Run("완료 시 품목명이 순번으로 부여된다", func(t *testing.T) {
		completed, err := svc.SetStatus(first.ID, domain.DesignStatusComplete)
		assert.NoError(t, err)
		assert.Equal(t, "0001", completed.ItemName)
	})

	t.Run("완료 시 샘플 의뢰가 디자인 메시지와 함께 열린다", func(t *testing.T) {
		var statuses []*domain.ProgressStatus
		db.Find(&statuses)
		assert.Len(t, statuses, 1)
		assert.Equal(t, domain.ProgressWaiting, statuses[0].Status)
		assert.Equal(t, "그라데이션 진하게", statuses[0].Notes)
		assert.Equal(t, first.ID, *statuses[0].CustomDesignID)
	})

	t.Run("재완료는 품목명과 의뢰를 다시 만들지 않는다", func(t *testing.T) {
		again, err := svc.SetStatus(first.ID, domain.DesignStatusComplete)
		assert.NoError(t, err)
		assert.Equal(t, "0001", again.ItemName)

		var count int64
		db.Model(&domain.ProgressStatus{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("다음 완료 디자인은 0002", func(t *testing.T) {
		second, err := svc.Create(ctx, 1, SaveCustomDesignRequest{})
		assert.NoError(t, err)
		completed, err := svc.SetStatus(second.ID, domain.DesignStatusComplete)
		assert.NoError(t, err)
		assert.Equal(t, "0002", completed.ItemName)
	})
}

func TestCustomDesignUpdateLock(t *testing.T) {
	svc, db, _ := newDesignFixture(t)
	ctx := context.Background()

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})
	design, err := svc.Create(ctx, 1, SaveCustomDesignRequest{RequestMessage: "초안"})
	assert.NoError(t, err)

	t.Run("초안은 소유자가 수정할 수 있다", func(t *testing.T) {
		updated, err := svc.Update(ctx, 1, design.ID, SaveCustomDesignRequest{RequestMessage: "수정본"})
		assert.NoError(t, err)
		assert.Equal(t, "수정본", updated.RequestMessage)
	})

	t.Run("남의 디자인은 수정할 수 없다", func(t *testing.T) {
		_, err := svc.Update(ctx, 2, design.ID, SaveCustomDesignRequest{})
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("완료된 디자인은 잠긴다", func(t *testing.T) {
		_, err := svc.SetStatus(design.ID, domain.DesignStatusComplete)
		assert.NoError(t, err)

		_, err = svc.Update(ctx, 1, design.ID, SaveCustomDesignRequest{})
		assert.ErrorIs(t, err, ErrDesignLocked)
	})

	t.Run("알 수 없는 상태 값 거부", func(t *testing.T) {
		_, err := svc.SetStatus(design.ID, "9")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestCustomDesignGetOwned(t *testing.T) {
	svc, db, _ := newDesignFixture(t)
	ctx := context.Background()

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})
	design, err := svc.Create(ctx, 1, SaveCustomDesignRequest{})
	assert.NoError(t, err)
	_, err = svc.SetStatus(design.ID, domain.DesignStatusComplete)
	assert.NoError(t, err)

	t.Run("품목명으로 조회", func(t *testing.T) {
		detail, err := svc.GetOwned(1, "0001")
		assert.NoError(t, err)
		assert.Equal(t, design.ID, detail.ID)
	})

	t.Run("숫자 세그먼트는 ID 폴백으로 조회", func(t *testing.T) {
		detail, err := svc.GetOwned(1, fmt.Sprintf("%d", design.ID))
		assert.NoError(t, err)
		assert.Equal(t, design.ID, detail.ID)
	})

	t.Run("남의 디자인은 ID로도 조회 불가", func(t *testing.T) {
		_, err := svc.GetOwned(2, fmt.Sprintf("%d", design.ID))
		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestCustomDesignRegenerateItemNames(t *testing.T) {
	svc, db, _ := newDesignFixture(t)
	ctx := context.Background()

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})

	var ids []uint
	for i := 0; i < 3; i++ {
		d, err := svc.Create(ctx, 1, SaveCustomDesignRequest{})
		assert.NoError(t, err)
		_, err = svc.SetStatus(d.ID, domain.DesignStatusComplete)
		assert.NoError(t, err)
		ids = append(ids, d.ID)
	}

	// 가운데 삭제로 0002가 비면 재생성이 순번을 당긴다
	assert.NoError(t, svc.Delete(ctx, 1, ids[1], false))

	renamed, err := svc.RegenerateItemNames(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, renamed)

	var last domain.CustomDesign
	db.First(&last, ids[2])
	assert.Equal(t, "0002", last.ItemName)
}

func TestCustomDesignDeleteCleansUpload(t *testing.T) {
	svc, db, uploads := newDesignFixture(t)
	ctx := context.Background()

	db.Create(&domain.User{Username: "hana", Password: "x", Role: domain.RoleEnduser})
	design, err := svc.Create(ctx, 1, SaveCustomDesignRequest{MainImageBase64: "aGVsbG8="})
	assert.NoError(t, err)
	assert.NotEmpty(t, design.ObjectKey)

	assert.NoError(t, svc.Delete(ctx, 1, design.ID, false))
	assert.Equal(t, []string{design.ObjectKey}, uploads.deleted)
}
