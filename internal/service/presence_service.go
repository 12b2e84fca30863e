package service

import (
	"errors"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 실시간 접속 에러 정의
var (
	ErrInvalidContentType = errors.New("유효하지 않은 콘텐츠 유형입니다")
)

// PresenceService tracks who is looking at a design detail right now.
// Entries expire lazily: every operation sweeps rows older than the TTL
// before reading or writing.
type PresenceService interface {
	// Enter registers (or refreshes) the viewer on the content and
	// returns the live viewer count. Unknown content counts zero.
	Enter(userID uint, contentType, nameOrID string) (int64, error)
	// Leave removes the viewer immediately instead of waiting for
	// expiry and returns the remaining count
	Leave(userID uint, contentType, nameOrID string) (int64, error)
	// Count returns the live viewer count. Unknown content counts zero.
	Count(contentType, nameOrID string) (int64, error)
}

type presenceService struct {
	realtimeRepo  repository.RealtimeRepository
	portfolioRepo repository.PortfolioRepository
	productRepo   repository.ReleasedProductRepository
	now           func() time.Time
}

// NewPresenceService creates a new PresenceService
func NewPresenceService(
	realtimeRepo repository.RealtimeRepository,
	portfolioRepo repository.PortfolioRepository,
	productRepo repository.ReleasedProductRepository,
) PresenceService {
	return &presenceService{
		realtimeRepo:  realtimeRepo,
		portfolioRepo: portfolioRepo,
		productRepo:   productRepo,
		now:           time.Now,
	}
}

func (s *presenceService) Enter(userID uint, contentType, nameOrID string) (int64, error) {
	contentID, contentName, err := s.resolve(contentType, nameOrID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	now := s.now()
	if err := s.realtimeRepo.SweepExpired(now); err != nil {
		return 0, err
	}
	if err := s.realtimeRepo.Upsert(userID, contentType, contentID, contentName, now); err != nil {
		return 0, err
	}
	return s.realtimeRepo.Count(contentType, contentID)
}

func (s *presenceService) Leave(userID uint, contentType, nameOrID string) (int64, error) {
	contentID, _, err := s.resolve(contentType, nameOrID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if err := s.realtimeRepo.SweepExpired(s.now()); err != nil {
		return 0, err
	}
	if err := s.realtimeRepo.Delete(userID, contentType, contentID); err != nil {
		return 0, err
	}
	return s.realtimeRepo.Count(contentType, contentID)
}

func (s *presenceService) Count(contentType, nameOrID string) (int64, error) {
	contentID, _, err := s.resolve(contentType, nameOrID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if err := s.realtimeRepo.SweepExpired(s.now()); err != nil {
		return 0, err
	}
	return s.realtimeRepo.Count(contentType, contentID)
}

// resolve maps a content-type plus name-or-ID segment to the concrete
// content row
func (s *presenceService) resolve(contentType, nameOrID string) (uint, string, error) {
	switch contentType {
	case domain.ContentTypePortfolio:
		portfolio, err := findByNameOrID(nameOrID, s.portfolioRepo.FindActiveByName, s.portfolioRepo.FindActiveByID)
		if err != nil {
			return 0, "", err
		}
		return portfolio.ID, portfolio.DesignName, nil
	case domain.ContentTypeReleasedProduct:
		product, err := findByNameOrID(nameOrID, s.productRepo.FindByName, s.productRepo.FindByID)
		if err != nil {
			return 0, "", err
		}
		return product.ID, product.DesignName, nil
	}
	return 0, "", ErrInvalidContentType
}
