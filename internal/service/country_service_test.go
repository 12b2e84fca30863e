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

// stubTranslator maps fixed pairs and counts calls
type stubTranslator struct {
	dict          map[string]string
	calls         int
	invalidations int
}

func (s *stubTranslator) Translate(_ context.Context, text, _, _ string) string {
	s.calls++
	if out, ok := s.dict[text]; ok {
		return out
	}
	return text
}

func (s *stubTranslator) Invalidate() { s.invalidations++ }

func newCountryFixture(t *testing.T) (CountryService, *gorm.DB, *stubTranslator) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Country{}, &domain.Portfolio{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	translate := &stubTranslator{dict: map[string]string{"대한민국": "South Korea"}}
	return NewCountryService(repository.NewCountryRepository(db), translate), db, translate
}

func TestCountryLocalization(t *testing.T) {
	svc, db, translate := newCountryFixture(t)
	ctx := context.Background()

	_, err := svc.Create("대한민국")
	assert.NoError(t, err)
	_, err = svc.Create("일본")
	assert.NoError(t, err)

	t.Run("한국어 요청은 원래 이름 그대로", func(t *testing.T) {
		views, err := svc.SortedForLanguage(ctx, domain.LanguageKorean)
		assert.NoError(t, err)
		assert.Equal(t, "대한민국", views[0].Name)
		assert.Zero(t, translate.calls)
	})

	t.Run("영어 요청은 번역을 채워서 저장한다", func(t *testing.T) {
		views, err := svc.SortedForLanguage(ctx, domain.LanguageEnglish)
		assert.NoError(t, err)
		assert.Equal(t, "South Korea", views[0].Name)

		var saved domain.Country
		db.Where("name = ?", "대한민국").First(&saved)
		assert.Equal(t, "South Korea", saved.EnglishName)
	})

	t.Run("채워진 번역은 다시 요청하지 않는다", func(t *testing.T) {
		before := translate.calls
		_, err := svc.SortedForLanguage(ctx, domain.LanguageEnglish)
		assert.NoError(t, err)
		// 번역 실패로 원문이 돌아온 "일본"만 다시 시도된다
		assert.Equal(t, before+1, translate.calls)
	})

	t.Run("번역 실패 시 원래 이름으로 폴백", func(t *testing.T) {
		views, err := svc.SortedForLanguage(ctx, domain.LanguageEnglish)
		assert.NoError(t, err)
		assert.Equal(t, "일본", views[1].Name)
	})
}

func TestCountryExposedSorted(t *testing.T) {
	svc, _, _ := newCountryFixture(t)
	ctx := context.Background()

	for _, name := range []string{"대한민국", "일본", "싱가포르"} {
		_, err := svc.Create(name)
		assert.NoError(t, err)
	}

	t.Run("CSV에 지정된 국가만 순위 순으로", func(t *testing.T) {
		views, err := svc.ExposedSorted(ctx, "3,1", domain.LanguageKorean)
		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, "대한민국", views[0].Name)
		assert.Equal(t, "싱가포르", views[1].Name)
	})

	t.Run("깨진 세그먼트는 건너뛴다", func(t *testing.T) {
		views, err := svc.ExposedSorted(ctx, "1,abc,", domain.LanguageKorean)
		assert.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("빈 CSV는 빈 목록", func(t *testing.T) {
		views, err := svc.ExposedSorted(ctx, "", domain.LanguageKorean)
		assert.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestCountryBulkRank(t *testing.T) {
	svc, db, _ := newCountryFixture(t)

	for _, name := range []string{"대한민국", "일본", "싱가포르"} {
		_, err := svc.Create(name)
		assert.NoError(t, err)
	}

	t.Run("전체 순열을 한 번에 적용한다", func(t *testing.T) {
		err := svc.BulkRank([]repository.RankEntry{
			{ID: 1, Rank: 3}, {ID: 2, Rank: 1}, {ID: 3, Rank: 2},
		})
		assert.NoError(t, err)

		var first domain.Country
		db.Where("`rank` = ?", 1).First(&first)
		assert.Equal(t, "일본", first.Name)
	})

	t.Run("행 수와 다른 순열은 거부", func(t *testing.T) {
		err := svc.BulkRank([]repository.RankEntry{{ID: 1, Rank: 1}, {ID: 2, Rank: 2}})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestCountryDeleteGuard(t *testing.T) {
	svc, db, _ := newCountryFixture(t)

	country, err := svc.Create("대한민국")
	assert.NoError(t, err)

	db.Create(&domain.Portfolio{UserID: 1, DesignName: "오로라 브라운", ExposedCountries: "2,1"})

	t.Run("노출 국가로 쓰이는 동안 삭제 불가", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(country.ID), ErrCountryInUse)
	})

	t.Run("참조가 사라지면 삭제된다", func(t *testing.T) {
		db.Model(&domain.Portfolio{}).Where("design_name = ?", "오로라 브라운").Update("exposed_countries", "2")
		assert.NoError(t, svc.Delete(country.ID))
	})
}
