package service

import (
	"context"
	"errors"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 출시제품 에러 정의
var (
	ErrProductNameTaken = errors.New("이미 존재하는 제품 이름입니다")
)

var productOrderColumns = map[string]bool{
	"design_name": true, "views": true, "created_at": true,
}

// ReleasedProductDetail is the detail read-model with colors resolved
type ReleasedProductDetail struct {
	*domain.ReleasedProduct
	Brand  *domain.Brand          `json:"brand"`
	Colors []domain.HydratedLayer `json:"colors"`
}

// CreateReleasedProductRequest admin catalog input
type CreateReleasedProductRequest struct {
	DesignName      string
	ColorName       string
	BrandID         *uint
	LineColorID     *uint
	Base1ColorID    *uint
	Base2ColorID    *uint
	PupilColorID    *uint
	GraphicDiameter string
	OpticZone       string
	DIA             string
	BaseCurve       string
	Filename        string
	ContentType     string
	Data            []byte
}

// ReleasedProductService released product catalog interface
type ReleasedProductService interface {
	List(page, size int, search, orderBy string, brandID *uint) ([]*domain.ReleasedProduct, int64, error)
	Get(id uint) (*ReleasedProductDetail, error)
	// GetForViewer resolves by name or ID and bumps the view counters.
	// End-user detail reads only.
	GetForViewer(nameOrID string) (*ReleasedProductDetail, error)
	Create(ctx context.Context, req CreateReleasedProductRequest) (*domain.ReleasedProduct, error)
	Update(ctx context.Context, id uint, req CreateReleasedProductRequest) (*domain.ReleasedProduct, error)
	Delete(ctx context.Context, id uint) error
}

type releasedProductService struct {
	productRepo repository.ReleasedProductRepository
	brandRepo   repository.BrandRepository
	colorRepo   repository.ColorRepository
	uploads     UploadService
}

// NewReleasedProductService creates a new ReleasedProductService
func NewReleasedProductService(
	productRepo repository.ReleasedProductRepository,
	brandRepo repository.BrandRepository,
	colorRepo repository.ColorRepository,
	uploads UploadService,
) ReleasedProductService {
	return &releasedProductService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		colorRepo:   colorRepo,
		uploads:     uploads,
	}
}

func (s *releasedProductService) List(page, size int, search, orderBy string, brandID *uint) ([]*domain.ReleasedProduct, int64, error) {
	order := common.ParseOrderBy(orderBy, productOrderColumns, "created_at", true)
	return s.productRepo.List(page, size, search, orderClause(order), brandID)
}

func (s *releasedProductService) Get(id uint) (*ReleasedProductDetail, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.detail(product)
}

func (s *releasedProductService) GetForViewer(nameOrID string) (*ReleasedProductDetail, error) {
	product, err := findByNameOrID(nameOrID, s.productRepo.FindByName, s.productRepo.FindByID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.IncrementViews(product.ID, repository.Today()); err != nil {
		return nil, err
	}
	product.Views++
	return s.detail(product)
}

// detail resolves the brand and the four layer colors
func (s *releasedProductService) detail(product *domain.ReleasedProduct) (*ReleasedProductDetail, error) {
	out := &ReleasedProductDetail{ReleasedProduct: product}

	if product.BrandID != nil {
		brand, err := s.brandRepo.FindByID(*product.BrandID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		out.Brand = brand
	}

	ids := make([]uint, 0, 4)
	for _, ref := range product.ColorIDs() {
		if ref != nil {
			ids = append(ids, *ref)
		}
	}
	colors, err := s.colorRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	out.Colors = make([]domain.HydratedLayer, 0, 4)
	for _, ref := range product.ColorIDs() {
		hl := domain.HydratedLayer{ColorID: ref, Opacity: domain.DefaultOpacity, Size: domain.DefaultOpacity}
		if ref != nil {
			if col, ok := colors[*ref]; ok {
				hl.ColorName = col.Name
				hl.ColorValues = col.RGB()
			}
		}
		out.Colors = append(out.Colors, hl)
	}
	return out, nil
}

func (s *releasedProductService) Create(ctx context.Context, req CreateReleasedProductRequest) (*domain.ReleasedProduct, error) {
	if req.DesignName == "" {
		return nil, common.ErrInvalidInput
	}
	taken, err := s.productRepo.ExistsName(req.DesignName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrProductNameTaken
	}

	product := &domain.ReleasedProduct{
		DesignName:      req.DesignName,
		ColorName:       req.ColorName,
		BrandID:         req.BrandID,
		LineColorID:     req.LineColorID,
		Base1ColorID:    req.Base1ColorID,
		Base2ColorID:    req.Base2ColorID,
		PupilColorID:    req.PupilColorID,
		GraphicDiameter: req.GraphicDiameter,
		OpticZone:       req.OpticZone,
		DIA:             req.DIA,
		BaseCurve:       req.BaseCurve,
	}
	if len(req.Data) > 0 {
		result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, req.Filename, req.ContentType, req.Data)
		if err != nil {
			return nil, err
		}
		product.MainImageURL = result.URL
		product.ThumbnailURL = thumbURL
		product.ObjectKey = result.Key
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *releasedProductService) Update(ctx context.Context, id uint, req CreateReleasedProductRequest) (*domain.ReleasedProduct, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.DesignName != "" && req.DesignName != product.DesignName {
		taken, err := s.productRepo.ExistsName(req.DesignName)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrProductNameTaken
		}
		product.DesignName = req.DesignName
	}
	if req.ColorName != "" {
		product.ColorName = req.ColorName
	}
	if req.BrandID != nil {
		product.BrandID = req.BrandID
	}
	if req.LineColorID != nil {
		product.LineColorID = req.LineColorID
	}
	if req.Base1ColorID != nil {
		product.Base1ColorID = req.Base1ColorID
	}
	if req.Base2ColorID != nil {
		product.Base2ColorID = req.Base2ColorID
	}
	if req.PupilColorID != nil {
		product.PupilColorID = req.PupilColorID
	}
	if req.GraphicDiameter != "" {
		product.GraphicDiameter = req.GraphicDiameter
	}
	if req.OpticZone != "" {
		product.OpticZone = req.OpticZone
	}
	if req.DIA != "" {
		product.DIA = req.DIA
	}
	if req.BaseCurve != "" {
		product.BaseCurve = req.BaseCurve
	}
	if len(req.Data) > 0 {
		result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, req.Filename, req.ContentType, req.Data)
		if err != nil {
			return nil, err
		}
		if product.ObjectKey != "" {
			_ = s.uploads.Delete(ctx, product.ObjectKey)
		}
		product.MainImageURL = result.URL
		product.ThumbnailURL = thumbURL
		product.ObjectKey = result.Key
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *releasedProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if product.ObjectKey != "" {
		_ = s.uploads.Delete(ctx, product.ObjectKey)
	}
	return nil
}
