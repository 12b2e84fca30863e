package service

import (
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 장바구니 에러 정의
var (
	ErrCartDuplicate   = errors.New("이미 장바구니에 담긴 디자인입니다")
	ErrInvalidCartItem = errors.New("유효하지 않은 카테고리 또는 디자인입니다")
)

// CartService sample-request candidate basket interface
type CartService interface {
	// Add snapshots the design's main image and stores the basket row.
	// The item must exist under the category and not be in the basket yet.
	Add(userID uint, itemName, category string) (*domain.Cart, error)
	List(userID uint, category string) ([]*domain.Cart, error)
	Remove(userID uint, itemName, category string) error
}

type cartService struct {
	cartRepo      repository.CartRepository
	designRepo    repository.CustomDesignRepository
	portfolioRepo repository.PortfolioRepository
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo repository.CartRepository,
	designRepo repository.CustomDesignRepository,
	portfolioRepo repository.PortfolioRepository,
) CartService {
	return &cartService{
		cartRepo:      cartRepo,
		designRepo:    designRepo,
		portfolioRepo: portfolioRepo,
	}
}

func (s *cartService) Add(userID uint, itemName, category string) (*domain.Cart, error) {
	if !domain.ValidCategory(category) || itemName == "" {
		return nil, ErrInvalidCartItem
	}

	exists, err := s.cartRepo.Exists(userID, itemName, category)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCartDuplicate
	}

	imageURL, err := s.resolveMainImage(userID, itemName, category)
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{
		UserID:       userID,
		ItemName:     itemName,
		Category:     category,
		MainImageURL: imageURL,
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// resolveMainImage verifies the item exists under the category and
// returns its main-image URL for the basket snapshot
func (s *cartService) resolveMainImage(userID uint, itemName, category string) (string, error) {
	switch category {
	case domain.CategoryCustomDesign:
		design, err := s.designRepo.FindByOwnerAndItem(userID, itemName)
		if errors.Is(err, common.ErrNotFound) {
			return "", ErrInvalidCartItem
		}
		if err != nil {
			return "", err
		}
		return design.MainImageURL, nil
	case domain.CategoryPortfolio:
		portfolio, err := s.portfolioRepo.FindActiveByName(itemName)
		if errors.Is(err, common.ErrNotFound) {
			return "", ErrInvalidCartItem
		}
		if err != nil {
			return "", err
		}
		return portfolio.MainImageURL, nil
	}
	return "", ErrInvalidCartItem
}

func (s *cartService) List(userID uint, category string) ([]*domain.Cart, error) {
	if category != "" && !domain.ValidCategory(category) {
		return nil, ErrInvalidCartItem
	}
	return s.cartRepo.ListByUser(userID, category)
}

func (s *cartService) Remove(userID uint, itemName, category string) error {
	return s.cartRepo.Delete(userID, itemName, category)
}
