package service

import (
	"context"
	"testing"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/cache"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubLocaleCache is an in-memory stand-in for the redis locale cache
type stubLocaleCache struct {
	data map[string]string
	gets int
}

func (c *stubLocaleCache) GetLocale(_ context.Context, username string) (string, error) {
	c.gets++
	if lang, ok := c.data[username]; ok {
		return lang, nil
	}
	return "", cache.ErrMiss
}

func (c *stubLocaleCache) SetLocale(_ context.Context, username, language string) error {
	c.data[username] = language
	return nil
}

func (c *stubLocaleCache) InvalidateLocale(_ context.Context, username string) error {
	delete(c.data, username)
	return nil
}

func newLocaleFixture(t *testing.T) (LocaleService, *gorm.DB, *stubLocaleCache) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	localeCache := &stubLocaleCache{data: map[string]string{}}
	return NewLocaleService(repository.NewUserRepository(db), localeCache), db, localeCache
}

func TestLocaleCurrent(t *testing.T) {
	svc, db, localeCache := newLocaleFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "A01", Password: "x", Role: domain.RoleEnduser, AccountCode: "101", Language: domain.LanguageEnglish}
	db.Create(user)

	t.Run("캐시 미스는 DB로 폴백하고 캐시를 채운다", func(t *testing.T) {
		lang, err := svc.Current(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, domain.LanguageEnglish, lang)
		assert.Equal(t, domain.LanguageEnglish, localeCache.data["A01"])
	})

	t.Run("캐시 히트는 DB를 거치지 않는다", func(t *testing.T) {
		db.Model(user).Update("language", domain.LanguageKorean)

		lang, err := svc.Current(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, domain.LanguageEnglish, lang)
	})
}

func TestLocaleSet(t *testing.T) {
	svc, db, localeCache := newLocaleFixture(t)
	ctx := context.Background()

	user := &domain.User{Username: "A01", Password: "x", Role: domain.RoleEnduser, AccountCode: "101", Language: domain.LanguageKorean}
	db.Create(user)

	t.Run("언어 변경은 DB와 캐시에 함께 반영된다", func(t *testing.T) {
		assert.NoError(t, svc.Set(ctx, user, domain.LanguageEnglish))

		var fresh domain.User
		db.First(&fresh, user.ID)
		assert.Equal(t, domain.LanguageEnglish, fresh.Language)
		assert.Equal(t, domain.LanguageEnglish, localeCache.data["A01"])
	})

	t.Run("알 수 없는 언어는 한국어로 정규화", func(t *testing.T) {
		assert.NoError(t, svc.Set(ctx, user, "jp"))

		var fresh domain.User
		db.First(&fresh, user.ID)
		assert.Equal(t, domain.LanguageKorean, fresh.Language)
	})
}

func TestLocaleWithoutCache(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	svc := NewLocaleService(repository.NewUserRepository(db), nil)

	user := &domain.User{Username: "A01", Password: "x", Role: domain.RoleEnduser, AccountCode: "101", Language: domain.LanguageKorean}
	db.Create(user)

	// Redis가 내려가 있어도 언어 전환은 동작해야 한다
	assert.NoError(t, svc.Set(context.Background(), user, domain.LanguageEnglish))

	lang, err := svc.Current(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, domain.LanguageEnglish, lang)
}
