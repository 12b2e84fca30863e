package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubMailer captures outgoing mail
type stubMailer struct {
	sent []string
}

func (m *stubMailer) Send(_ context.Context, to, _, body string) error {
	m.sent = append(m.sent, to+"|"+body)
	return nil
}

func newShareFixture(t *testing.T) (ShareService, *gorm.DB, *stubMailer, *stubUploads) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Share{},
		&domain.CustomDesign{},
		&domain.Portfolio{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mail := &stubMailer{}
	uploads := &stubUploads{}
	svc := NewShareService(
		repository.NewShareRepository(db),
		repository.NewCustomDesignRepository(db),
		repository.NewPortfolioRepository(db),
		uploads,
		mail,
		"https://lenspick.example/",
	)
	return svc, db, mail, uploads
}

func TestSharePublish(t *testing.T) {
	svc, db, _, uploads := newShareFixture(t)
	ctx := context.Background()
	db.Create(&domain.Portfolio{UserID: 9, DesignName: "오로라 브라운", MainImageURL: "https://cdn.test/a.png", ObjectKey: "a.png"})

	t.Run("공개 이미지 ID는 md5 앞 12자", func(t *testing.T) {
		share, link, err := svc.Publish(ctx, 3, "오로라 브라운", domain.CategoryPortfolio, "", "", nil)
		assert.NoError(t, err)

		sum := md5.Sum([]byte(fmt.Sprintf("%d|%s|%s", 3, "오로라 브라운", domain.CategoryPortfolio)))
		assert.Equal(t, hex.EncodeToString(sum[:])[:12], share.ImageID)
		assert.Equal(t, "https://lenspick.example/share/"+share.ImageID, link)
		assert.Equal(t, "https://cdn.test/a.png", share.ImageURL)
	})

	t.Run("재공유는 같은 행을 돌려준다", func(t *testing.T) {
		first, _, err := svc.Publish(ctx, 3, "오로라 브라운", domain.CategoryPortfolio, "", "", nil)
		assert.NoError(t, err)
		second, _, err := svc.Publish(ctx, 3, "오로라 브라운", domain.CategoryPortfolio, "", "", nil)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		var count int64
		db.Model(&domain.Share{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("첨부한 이미지 바이트는 업로드해서 쓴다", func(t *testing.T) {
		share, _, err := svc.Publish(ctx, 4, "오로라 브라운", domain.CategoryPortfolio, "shot.png", "image/png", []byte{0x89, 0x50})
		assert.NoError(t, err)
		assert.Equal(t, []string{"shot.png"}, uploads.uploaded)
		assert.Equal(t, "https://cdn.test/images/1.png", share.ImageURL)
		assert.Equal(t, "images/1.png", share.ObjectKey)
	})

	t.Run("없는 디자인은 공유할 수 없다", func(t *testing.T) {
		_, _, err := svc.Publish(ctx, 3, "없는 디자인", domain.CategoryPortfolio, "", "", nil)
		assert.ErrorIs(t, err, ErrShareItemInvalid)
	})

	t.Run("잘못된 카테고리 거부", func(t *testing.T) {
		_, _, err := svc.Publish(ctx, 3, "오로라 브라운", "board", "", "", nil)
		assert.ErrorIs(t, err, ErrShareItemInvalid)
	})
}

func TestShareIDCollisionFallback(t *testing.T) {
	svc, db, _, _ := newShareFixture(t)
	db.Create(&domain.Portfolio{UserID: 9, DesignName: "썸머 그레이", MainImageURL: "https://cdn.test/b.png"})

	// 다른 사용자의 기존 공유가 md5 접두부를 선점한 상황
	sum := md5.Sum([]byte(fmt.Sprintf("%d|%s|%s", 3, "썸머 그레이", domain.CategoryPortfolio)))
	taken := hex.EncodeToString(sum[:])[:12]
	db.Create(&domain.Share{ImageID: taken, UserID: 8, ItemName: "다른 항목", Category: domain.CategoryPortfolio})

	share, _, err := svc.Publish(context.Background(), 3, "썸머 그레이", domain.CategoryPortfolio, "", "", nil)
	assert.NoError(t, err)
	assert.NotEqual(t, taken, share.ImageID)
	assert.Len(t, share.ImageID, 12)
}

func TestShareResolveAndMail(t *testing.T) {
	svc, db, mail, _ := newShareFixture(t)
	db.Create(&domain.Portfolio{UserID: 9, DesignName: "오로라 브라운", MainImageURL: "https://cdn.test/a.png"})

	share, link, err := svc.Publish(context.Background(), 3, "오로라 브라운", domain.CategoryPortfolio, "", "", nil)
	assert.NoError(t, err)

	t.Run("공개 ID로 조회", func(t *testing.T) {
		resolved, err := svc.Resolve(share.ImageID)
		assert.NoError(t, err)
		assert.Equal(t, share.ID, resolved.ID)
	})

	t.Run("모르는 ID는 404", func(t *testing.T) {
		_, err := svc.Resolve("ffffffffffff")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("메일 본문은 이미지 URL과 공유 링크를 담는다", func(t *testing.T) {
		assert.NoError(t, svc.SendMailForImageID(context.Background(), share.ImageID, "buyer@example.com"))
		assert.Len(t, mail.sent, 1)
		assert.Contains(t, mail.sent[0], "buyer@example.com")
		assert.Contains(t, mail.sent[0], share.ImageURL)
		assert.Contains(t, mail.sent[0], link)
	})
}
