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

func newColorFixture(t *testing.T) (ColorService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Color{},
		&domain.Portfolio{},
		&domain.CustomDesign{},
		&domain.ReleasedProduct{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewColorService(repository.NewColorRepository(db)), db
}

func colorNames(colors []*domain.Color) []string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.Name
	}
	return names
}

func TestColorNaturalSortList(t *testing.T) {
	svc, _ := newColorFixture(t)

	for _, name := range []string{"BR10", "BR2", "G1", "2", "misty rose"} {
		_, err := svc.Create(name, "10,20,30")
		assert.NoError(t, err)
	}

	t.Run("색상 이름 정렬은 숫자 구간을 값으로 비교한다", func(t *testing.T) {
		colors, total, err := svc.List(1, 10, "", "color_name asc")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		// 숫자만 < 한 글자 접두사 < 두 글자 접두사 < 패턴 밖 텍스트
		assert.Equal(t, []string{"2", "G1", "BR2", "BR10", "misty rose"}, colorNames(colors))
	})

	t.Run("페이지 슬라이스는 정렬 후에 적용된다", func(t *testing.T) {
		colors, total, err := svc.List(2, 2, "", "color_name asc")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Equal(t, []string{"BR2", "BR10"}, colorNames(colors))
	})

	t.Run("검색은 대소문자를 가리지 않는다", func(t *testing.T) {
		colors, total, err := svc.List(1, 10, "br", "color_name asc")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []string{"BR2", "BR10"}, colorNames(colors))
	})
}

func TestColorUniqueness(t *testing.T) {
	svc, _ := newColorFixture(t)

	_, err := svc.Create("gray", "10,20,30")
	assert.NoError(t, err)

	t.Run("빈 이름 거부", func(t *testing.T) {
		_, err := svc.Create("   ", "1,2,3")
		assert.ErrorIs(t, err, ErrColorNameRequired)
	})

	t.Run("중복 이름 거부", func(t *testing.T) {
		_, err := svc.Create("gray", "1,2,3")
		assert.ErrorIs(t, err, ErrColorNameTaken)
	})

	t.Run("수정으로도 다른 색의 이름을 뺏을 수 없다", func(t *testing.T) {
		second, err := svc.Create("brown", "5,6,7")
		assert.NoError(t, err)
		_, err = svc.Update(second.ID, "gray", "")
		assert.ErrorIs(t, err, ErrColorNameTaken)
	})
}

func TestColorDeleteGuard(t *testing.T) {
	svc, db := newColorFixture(t)

	color, err := svc.Create("gray", "10,20,30")
	assert.NoError(t, err)

	t.Run("포트폴리오가 참조하면 한국어 메시지로 거부", func(t *testing.T) {
		db.Create(&domain.Portfolio{UserID: 1, DesignName: "오로라 브라운", LineColorID: &color.ID})

		err := svc.Delete(color.ID)
		assert.ErrorIs(t, err, common.ErrHasDependents)
		assert.Contains(t, err.Error(), "포트폴리오에서 사용 중")
	})

	t.Run("논리 삭제된 포트폴리오는 참조로 치지 않는다", func(t *testing.T) {
		db.Model(&domain.Portfolio{}).Where("design_name = ?", "오로라 브라운").Update("is_deleted", true)
		assert.NoError(t, svc.Delete(color.ID))
	})
}
