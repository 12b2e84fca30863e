package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 이미지 에러 정의
var (
	ErrImageNameTaken   = errors.New("해당 카테고리에 이미 존재하는 이미지 이름입니다")
	ErrInvalidCategory  = errors.New("유효하지 않은 레이어 카테고리입니다")
	ErrImageNameMissing = errors.New("이미지 이름은 필수입니다")
)

var imageOrderColumns = map[string]bool{
	"display_name": true, "category": true, "created_at": true,
}

// CreateImageRequest is the ingest payload for a design asset
type CreateImageRequest struct {
	Category     string
	DisplayName  string
	ExposedUsers string
	Filename     string
	ContentType  string
	Data         []byte
}

// ImageService design asset management interface
type ImageService interface {
	List(page, size int, category, search, orderBy string) ([]*domain.Image, int64, error)
	// ListForUser filters restricted images to those exposed to the
	// requesting username, keeping unrestricted images visible to all.
	ListForUser(category, username string) ([]*domain.Image, error)
	Get(id uint) (*domain.Image, error)
	Create(ctx context.Context, req CreateImageRequest) (*domain.Image, error)
	Update(ctx context.Context, id uint, displayName, exposedUsers string, filename, contentType string, data []byte) (*domain.Image, error)
	Delete(ctx context.Context, id uint) error
}

type imageService struct {
	imageRepo repository.ImageRepository
	uploads   UploadService
}

// NewImageService creates a new ImageService
func NewImageService(imageRepo repository.ImageRepository, uploads UploadService) ImageService {
	return &imageService{imageRepo: imageRepo, uploads: uploads}
}

func (s *imageService) List(page, size int, category, search, orderBy string) ([]*domain.Image, int64, error) {
	order := common.ParseOrderBy(orderBy, imageOrderColumns, "created_at", true)
	return s.imageRepo.List(page, size, category, search, orderClause(order))
}

func (s *imageService) ListForUser(category, username string) ([]*domain.Image, error) {
	images, _, err := s.imageRepo.List(1, common.MaxPageSize*10, category, "", "created_at desc")
	if err != nil {
		return nil, err
	}
	visible := make([]*domain.Image, 0, len(images))
	for _, img := range images {
		if img.ExposedUsers == "" || csvContains(img.ExposedUsers, username) {
			visible = append(visible, img)
		}
	}
	return visible, nil
}

func (s *imageService) Get(id uint) (*domain.Image, error) {
	return s.imageRepo.FindByID(id)
}

func (s *imageService) Create(ctx context.Context, req CreateImageRequest) (*domain.Image, error) {
	if !validLayerCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		return nil, ErrImageNameMissing
	}

	taken, err := s.imageRepo.ExistsInCategory(req.Category, req.DisplayName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrImageNameTaken
	}

	result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, req.Filename, req.ContentType, req.Data)
	if err != nil {
		return nil, err
	}

	image := &domain.Image{
		Category:     req.Category,
		DisplayName:  req.DisplayName,
		ObjectKey:    result.Key,
		URL:          result.URL,
		ThumbnailURL: thumbURL,
		ExposedUsers: req.ExposedUsers,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *imageService) Update(ctx context.Context, id uint, displayName, exposedUsers string, filename, contentType string, data []byte) (*domain.Image, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if displayName != "" && displayName != image.DisplayName {
		taken, err := s.imageRepo.ExistsInCategory(image.Category, displayName)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrImageNameTaken
		}
		image.DisplayName = displayName
	}
	if exposedUsers != "" {
		image.ExposedUsers = exposedUsers
	}
	if len(data) > 0 {
		result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, filename, contentType, data)
		if err != nil {
			return nil, err
		}
		if image.ObjectKey != "" {
			_ = s.uploads.Delete(ctx, image.ObjectKey)
		}
		image.ObjectKey = result.Key
		image.URL = result.URL
		image.ThumbnailURL = thumbURL
	}

	if err := s.imageRepo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete refuses while any design layer still references the image
func (s *imageService) Delete(ctx context.Context, id uint) error {
	label, count, err := s.imageRepo.FindDependent(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%s에서 사용 중: %w", label, common.ErrHasDependents)
	}

	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.imageRepo.Delete(id); err != nil {
		return err
	}
	if image.ObjectKey != "" {
		_ = s.uploads.Delete(ctx, image.ObjectKey)
	}
	return nil
}

func validLayerCategory(category string) bool {
	for _, name := range domain.LayerNames {
		if category == name {
			return true
		}
	}
	return false
}

// csvContains checks membership of value in a comma-separated list
func csvContains(csv, value string) bool {
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == value {
			return true
		}
	}
	return false
}
