package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/naturalsort"
)

// 색상 에러 정의
var (
	ErrColorNameRequired = errors.New("색상 이름은 필수입니다")
	ErrColorNameTaken    = errors.New("이미 존재하는 색상 이름입니다")
)

var colorOrderColumns = map[string]bool{
	"color_name": true, "created_at": true,
}

// ColorService color catalog interface
type ColorService interface {
	List(page, size int, search, orderBy string) ([]*domain.Color, int64, error)
	ListAll() ([]*domain.Color, error)
	Get(id uint) (*domain.Color, error)
	Create(name, values string) (*domain.Color, error)
	Update(id uint, name, values string) (*domain.Color, error)
	Delete(id uint) error
}

type colorService struct {
	colorRepo repository.ColorRepository
}

// NewColorService creates a new ColorService
func NewColorService(colorRepo repository.ColorRepository) ColorService {
	return &colorService{colorRepo: colorRepo}
}

// List paginates colors. Ordering by color_name uses the natural
// catalog collation instead of plain lexicographic order, so the sort
// is applied in memory over the full set before slicing the page.
func (s *colorService) List(page, size int, search, orderBy string) ([]*domain.Color, int64, error) {
	order := common.ParseOrderBy(orderBy, colorOrderColumns, "color_name", false)
	if order.Column != "color_name" {
		return s.colorRepo.List(page, size, search, orderClause(order))
	}

	colors, err := s.colorRepo.ListAll()
	if err != nil {
		return nil, 0, err
	}
	if search != "" {
		filtered := colors[:0]
		for _, c := range colors {
			if strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
				filtered = append(filtered, c)
			}
		}
		colors = filtered
	}
	naturalsort.SortBy(colors, func(c *domain.Color) string { return c.Name }, order.Desc)

	total := int64(len(colors))
	offset := (page - 1) * size
	if offset >= len(colors) {
		return []*domain.Color{}, total, nil
	}
	end := offset + size
	if end > len(colors) {
		end = len(colors)
	}
	return colors[offset:end], total, nil
}

func (s *colorService) ListAll() ([]*domain.Color, error) {
	colors, err := s.colorRepo.ListAll()
	if err != nil {
		return nil, err
	}
	naturalsort.SortBy(colors, func(c *domain.Color) string { return c.Name }, false)
	return colors, nil
}

func (s *colorService) Get(id uint) (*domain.Color, error) {
	return s.colorRepo.FindByID(id)
}

func (s *colorService) Create(name, values string) (*domain.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrColorNameRequired
	}
	existing, err := s.colorRepo.FindByName(name)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrColorNameTaken
	}
	color := &domain.Color{Name: name, Values: values}
	if err := s.colorRepo.Create(color); err != nil {
		return nil, err
	}
	return color, nil
}

func (s *colorService) Update(id uint, name, values string) (*domain.Color, error) {
	color, err := s.colorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrColorNameRequired
		}
		if name != color.Name {
			existing, err := s.colorRepo.FindByName(name)
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, ErrColorNameTaken
			}
			color.Name = name
		}
	}
	if values != "" {
		color.Values = values
	}
	if err := s.colorRepo.Update(color); err != nil {
		return nil, err
	}
	return color, nil
}

// Delete refuses when any design layer still references the color and
// reports which category holds the reference.
func (s *colorService) Delete(id uint) error {
	label, count, err := s.colorRepo.FindDependent(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%s에서 사용 중: %w", label, common.ErrHasDependents)
	}
	return s.colorRepo.Delete(id)
}
