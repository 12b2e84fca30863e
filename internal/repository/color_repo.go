package repository

import (
	"errors"
	"fmt"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// ColorRepository color swatch data access interface
type ColorRepository interface {
	Create(color *domain.Color) error
	FindByID(id uint) (*domain.Color, error)
	FindByName(name string) (*domain.Color, error)
	FindByIDs(ids []uint) (map[uint]*domain.Color, error)
	List(page, size int, search, orderClause string) ([]*domain.Color, int64, error)
	ListAll() ([]*domain.Color, error)
	Update(color *domain.Color) error
	Delete(id uint) error
	FindDependent(id uint) (string, int64, error)
}

type colorRepository struct {
	db *gorm.DB
}

// NewColorRepository creates a new ColorRepository
func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(color *domain.Color) error {
	return r.db.Create(color).Error
}

func (r *colorRepository) FindByID(id uint) (*domain.Color, error) {
	var color domain.Color
	err := r.db.First(&color, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &color, err
}

func (r *colorRepository) FindByName(name string) (*domain.Color, error) {
	var color domain.Color
	err := r.db.Where("name = ?", name).First(&color).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &color, err
}

// FindByIDs range-loads colors into a map for batched layer hydration
func (r *colorRepository) FindByIDs(ids []uint) (map[uint]*domain.Color, error) {
	result := make(map[uint]*domain.Color, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var colors []*domain.Color
	if err := r.db.Where("id IN ?", ids).Find(&colors).Error; err != nil {
		return nil, err
	}
	for _, c := range colors {
		result[c.ID] = c
	}
	return result, nil
}

func (r *colorRepository) List(page, size int, search, orderClause string) ([]*domain.Color, int64, error) {
	var colors []*domain.Color
	var total int64

	query := r.db.Model(&domain.Color{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&colors).Error
	return colors, total, err
}

func (r *colorRepository) ListAll() ([]*domain.Color, error) {
	var colors []*domain.Color
	err := r.db.Order("created_at DESC").Find(&colors).Error
	return colors, err
}

func (r *colorRepository) Update(color *domain.Color) error {
	return r.db.Save(color).Error
}

func (r *colorRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Color{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// colorRefColumns are the layer color columns each design table carries
var colorRefColumns = []string{"line_color_id", "base1_color_id", "base2_color_id", "pupil_color_id"}

// FindDependent returns the first dependent table (Korean display name)
// still referencing the color, with its row count. Empty table name means
// the color is free to delete.
func (r *colorRepository) FindDependent(id uint) (string, int64, error) {
	targets := []struct {
		label string
		model interface{}
		alive string
	}{
		{"포트폴리오", &domain.Portfolio{}, "is_deleted = 0"},
		{"커스텀디자인", &domain.CustomDesign{}, ""},
		{"출시제품", &domain.ReleasedProduct{}, ""},
	}

	for _, t := range targets {
		query := r.db.Model(t.model)
		if t.alive != "" {
			query = query.Where(t.alive)
		}
		cond := ""
		args := make([]interface{}, 0, len(colorRefColumns))
		for i, col := range colorRefColumns {
			if i > 0 {
				cond += " OR "
			}
			cond += fmt.Sprintf("%s = ?", col)
			args = append(args, id)
		}
		var count int64
		if err := query.Where(cond, args...).Count(&count).Error; err != nil {
			return "", 0, err
		}
		if count > 0 {
			return t.label, count, nil
		}
	}
	return "", 0, nil
}
