package service

import (
	"context"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/cache"
)

// LocaleService per-user language preference interface. Redis is the
// fast path; the account row stays authoritative.
type LocaleService interface {
	// Current returns the user's language, falling back to the
	// database on a cache miss
	Current(ctx context.Context, user *domain.User) (string, error)
	// Set persists the language and refreshes the cache
	Set(ctx context.Context, user *domain.User, language string) error
}

type localeService struct {
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewLocaleService creates a new LocaleService
func NewLocaleService(userRepo repository.UserRepository, cacheSvc cache.Service) LocaleService {
	return &localeService{userRepo: userRepo, cache: cacheSvc}
}

func (s *localeService) Current(ctx context.Context, user *domain.User) (string, error) {
	if s.cache != nil {
		// 캐시 미스와 캐시 장애 모두 DB로 폴백
		if lang, err := s.cache.GetLocale(ctx, user.Username); err == nil && lang != "" {
			return lang, nil
		}
	}

	fresh, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		_ = s.cache.SetLocale(ctx, user.Username, fresh.Language)
	}
	return fresh.Language, nil
}

func (s *localeService) Set(ctx context.Context, user *domain.User, language string) error {
	if language != domain.LanguageKorean && language != domain.LanguageEnglish {
		language = domain.LanguageKorean
	}
	if err := s.userRepo.UpdateLanguage(user.ID, language); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.SetLocale(ctx, user.Username, language)
	}
	return nil
}
