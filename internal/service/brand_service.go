package service

import (
	"context"
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 브랜드 에러 정의
var (
	ErrBrandInUse     = errors.New("출시제품에서 사용 중")
	ErrBrandNameTaken = errors.New("이미 존재하는 브랜드 이름입니다")
)

// brand 목록 정렬 가능 컬럼
var brandOrderColumns = map[string]bool{
	"name": true, "rank": true, "created_at": true,
}

// BrandService brand catalog interface
type BrandService interface {
	List(page, size int, search, orderBy string) ([]*domain.Brand, int64, error)
	ListAll() ([]*domain.Brand, error)
	Create(ctx context.Context, name, filename, contentType string, data []byte) (*domain.Brand, error)
	Update(ctx context.Context, id uint, name string, filename, contentType string, data []byte) (*domain.Brand, error)
	Delete(ctx context.Context, id uint) error
	MoveRank(id uint, direction string) error
	BulkRank(entries []repository.RankEntry) error
}

type brandService struct {
	brandRepo repository.BrandRepository
	uploads   UploadService
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo repository.BrandRepository, uploads UploadService) BrandService {
	return &brandService{brandRepo: brandRepo, uploads: uploads}
}

func (s *brandService) List(page, size int, search, orderBy string) ([]*domain.Brand, int64, error) {
	order := common.ParseOrderBy(orderBy, brandOrderColumns, "rank", false)
	return s.brandRepo.List(page, size, search, orderClause(order))
}

func (s *brandService) ListAll() ([]*domain.Brand, error) {
	return s.brandRepo.ListAll()
}

func (s *brandService) Create(ctx context.Context, name, filename, contentType string, data []byte) (*domain.Brand, error) {
	if name == "" {
		return nil, common.ErrInvalidInput
	}
	if existing, err := s.brandRepo.FindByName(name); err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrBrandNameTaken
	}

	brand := &domain.Brand{Name: name}
	if len(data) > 0 {
		result, err := s.uploads.Upload(ctx, filename, contentType, data)
		if err != nil {
			return nil, err
		}
		brand.ImageURL = result.URL
		brand.ObjectKey = result.Key
	}

	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) Update(ctx context.Context, id uint, name string, filename, contentType string, data []byte) (*domain.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != brand.Name {
		if existing, err := s.brandRepo.FindByName(name); err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, err
		} else if existing != nil {
			return nil, ErrBrandNameTaken
		}
		brand.Name = name
	}
	if len(data) > 0 {
		result, err := s.uploads.Upload(ctx, filename, contentType, data)
		if err != nil {
			return nil, err
		}
		// 이전 객체는 남겨두지 않는다
		if brand.ObjectKey != "" {
			_ = s.uploads.Delete(ctx, brand.ObjectKey)
		}
		brand.ImageURL = result.URL
		brand.ObjectKey = result.Key
	}

	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete refuses while any released product references the brand
func (s *brandService) Delete(ctx context.Context, id uint) error {
	refs, err := s.brandRepo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrBrandInUse
	}

	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.brandRepo.Delete(id); err != nil {
		return err
	}
	if brand.ObjectKey != "" {
		_ = s.uploads.Delete(ctx, brand.ObjectKey)
	}
	return nil
}

func (s *brandService) MoveRank(id uint, direction string) error {
	return s.brandRepo.MoveRank(id, direction)
}

func (s *brandService) BulkRank(entries []repository.RankEntry) error {
	if err := repository.ValidatePermutation(entries); err != nil {
		return err
	}
	total, err := s.brandRepo.Count()
	if err != nil {
		return err
	}
	if int64(len(entries)) != total {
		return common.ErrInvalidInput
	}
	return s.brandRepo.BulkRank(entries)
}

// orderClause renders the shared OrderBy as SQL
func orderClause(o common.OrderBy) string {
	col := o.Column
	if col == "rank" {
		col = "`rank`"
	}
	dir := "asc"
	if o.Desc {
		dir = "desc"
	}
	return col + " " + dir
}
