package repository

import (
	"errors"
	"fmt"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// ImageRepository design asset data access interface
type ImageRepository interface {
	Create(image *domain.Image) error
	FindByID(id uint) (*domain.Image, error)
	FindByIDs(ids []uint) (map[uint]*domain.Image, error)
	ExistsInCategory(category, displayName string) (bool, error)
	List(page, size int, category, search, orderClause string) ([]*domain.Image, int64, error)
	Update(image *domain.Image) error
	Delete(id uint) error
	FindDependent(id uint) (string, int64, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(image *domain.Image) error {
	return r.db.Create(image).Error
}

func (r *imageRepository) FindByID(id uint) (*domain.Image, error) {
	var image domain.Image
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	return &image, err
}

// FindByIDs range-loads images into a map for batched layer hydration
func (r *imageRepository) FindByIDs(ids []uint) (map[uint]*domain.Image, error) {
	result := make(map[uint]*domain.Image, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var images []*domain.Image
	if err := r.db.Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	for _, img := range images {
		result[img.ID] = img
	}
	return result, nil
}

func (r *imageRepository) ExistsInCategory(category, displayName string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Image{}).
		Where("category = ? AND display_name = ?", category, displayName).
		Count(&count).Error
	return count > 0, err
}

func (r *imageRepository) List(page, size int, category, search, orderClause string) ([]*domain.Image, int64, error) {
	var images []*domain.Image
	var total int64

	query := r.db.Model(&domain.Image{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("display_name LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(orderClause).
		Offset((page - 1) * size).Limit(size).
		Find(&images).Error
	return images, total, err
}

func (r *imageRepository) Update(image *domain.Image) error {
	return r.db.Save(image).Error
}

func (r *imageRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Image{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// imageRefColumns are the layer image columns of the design tables
var imageRefColumns = []string{"line_image_id", "base1_image_id", "base2_image_id", "pupil_image_id"}

// FindDependent returns the first dependent design table (Korean display
// name) still referencing the image, with its row count
func (r *imageRepository) FindDependent(id uint) (string, int64, error) {
	targets := []struct {
		label string
		model interface{}
		alive string
	}{
		{"포트폴리오", &domain.Portfolio{}, "is_deleted = 0"},
		{"커스텀디자인", &domain.CustomDesign{}, ""},
	}

	for _, t := range targets {
		query := r.db.Model(t.model)
		if t.alive != "" {
			query = query.Where(t.alive)
		}
		cond := ""
		args := make([]interface{}, 0, len(imageRefColumns))
		for i, col := range imageRefColumns {
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
