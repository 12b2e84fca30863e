package service

import (
	"context"
	"errors"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 포트폴리오 에러 정의
var (
	ErrPortfolioNameTaken = errors.New("이미 존재하는 디자인 이름입니다")
)

var portfolioOrderColumns = map[string]bool{
	"design_name": true, "views": true, "created_at": true,
}

// PortfolioDetail is the detail read-model with layers hydrated and the
// owner's account code attached
type PortfolioDetail struct {
	*domain.Portfolio
	AccountCode      string                `json:"account_code"`
	Layers           domain.HydratedLayers `json:"layers"`
	ExposedCountries []CountryView         `json:"exposed_countries_sorted"`
}

// SavePortfolioRequest admin portfolio input. Layer references follow the
// fixed line/base1/base2/pupil order.
type SavePortfolioRequest struct {
	DesignName       string
	ColorName        string
	ExposedCountries string
	IsFixedAxis      string
	LineImageID      *uint
	LineColorID      *uint
	Base1ImageID     *uint
	Base1ColorID     *uint
	Base2ImageID     *uint
	Base2ColorID     *uint
	PupilImageID     *uint
	PupilColorID     *uint
	GraphicDiameter  string
	OpticZone        string
	DIA              string
	BaseCurve        string
	Filename         string
	ContentType      string
	Data             []byte
}

// PortfolioService portfolio catalog interface
type PortfolioService interface {
	List(page, size int, search, orderBy string, exposedToCountry *uint) ([]*domain.Portfolio, int64, error)
	Get(ctx context.Context, id uint) (*PortfolioDetail, error)
	// GetForViewer resolves by name or ID among active portfolios and
	// bumps the view counters. End-user detail reads only.
	GetForViewer(ctx context.Context, nameOrID, language string) (*PortfolioDetail, error)
	// Create stores the portfolio and opens its sample work item in
	// waiting state.
	Create(ctx context.Context, userID uint, req SavePortfolioRequest) (*domain.Portfolio, error)
	Update(ctx context.Context, id uint, req SavePortfolioRequest) (*domain.Portfolio, error)
	Delete(id uint) error
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	progressRepo  repository.ProgressRepository
	designRepo    repository.CustomDesignRepository
	userRepo      repository.UserRepository
	countries     CountryService
	hydrator      *layerHydrator
	uploads       UploadService
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(
	portfolioRepo repository.PortfolioRepository,
	progressRepo repository.ProgressRepository,
	designRepo repository.CustomDesignRepository,
	userRepo repository.UserRepository,
	imageRepo repository.ImageRepository,
	colorRepo repository.ColorRepository,
	countries CountryService,
	uploads UploadService,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		progressRepo:  progressRepo,
		designRepo:    designRepo,
		userRepo:      userRepo,
		countries:     countries,
		hydrator:      newLayerHydrator(imageRepo, colorRepo),
		uploads:       uploads,
	}
}

func (s *portfolioService) List(page, size int, search, orderBy string, exposedToCountry *uint) ([]*domain.Portfolio, int64, error) {
	order := common.ParseOrderBy(orderBy, portfolioOrderColumns, "created_at", true)
	return s.portfolioRepo.List(page, size, search, orderClause(order), exposedToCountry)
}

func (s *portfolioService) Get(ctx context.Context, id uint) (*PortfolioDetail, error) {
	portfolio, err := s.portfolioRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, portfolio, domain.LanguageKorean)
}

func (s *portfolioService) GetForViewer(ctx context.Context, nameOrID, language string) (*PortfolioDetail, error) {
	portfolio, err := findByNameOrID(nameOrID, s.portfolioRepo.FindActiveByName, s.portfolioRepo.FindActiveByID)
	if err != nil {
		return nil, err
	}
	if err := s.portfolioRepo.IncrementViews(portfolio.ID, repository.Today()); err != nil {
		return nil, err
	}
	portfolio.Views++
	return s.detail(ctx, portfolio, language)
}

func (s *portfolioService) detail(ctx context.Context, portfolio *domain.Portfolio, language string) (*PortfolioDetail, error) {
	layers, err := s.hydrator.HydrateOne(portfolio.Layers())
	if err != nil {
		return nil, err
	}

	out := &PortfolioDetail{Portfolio: portfolio, Layers: layers}

	owner, err := s.userRepo.FindByID(portfolio.UserID)
	if err == nil {
		out.AccountCode = owner.AccountCode
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if portfolio.ExposedCountries != "" {
		views, err := s.countries.ExposedSorted(ctx, portfolio.ExposedCountries, language)
		if err != nil {
			return nil, err
		}
		out.ExposedCountries = views
	}
	return out, nil
}

func (s *portfolioService) Create(ctx context.Context, userID uint, req SavePortfolioRequest) (*domain.Portfolio, error) {
	if req.DesignName == "" {
		return nil, common.ErrInvalidInput
	}
	taken, err := s.portfolioRepo.ExistsActiveName(req.DesignName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPortfolioNameTaken
	}

	portfolio := &domain.Portfolio{
		UserID:           userID,
		DesignName:       req.DesignName,
		ColorName:        req.ColorName,
		ExposedCountries: req.ExposedCountries,
		IsFixedAxis:      normalizeFixedAxis(req.IsFixedAxis),
		LineImageID:      req.LineImageID,
		LineColorID:      req.LineColorID,
		Base1ImageID:     req.Base1ImageID,
		Base1ColorID:     req.Base1ColorID,
		Base2ImageID:     req.Base2ImageID,
		Base2ColorID:     req.Base2ColorID,
		PupilImageID:     req.PupilImageID,
		PupilColorID:     req.PupilColorID,
		GraphicDiameter:  req.GraphicDiameter,
		OpticZone:        req.OpticZone,
		DIA:              req.DIA,
		BaseCurve:        req.BaseCurve,
	}
	if len(req.Data) > 0 {
		result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, req.Filename, req.ContentType, req.Data)
		if err != nil {
			return nil, err
		}
		portfolio.MainImageURL = result.URL
		portfolio.ThumbnailURL = thumbURL
		portfolio.ObjectKey = result.Key
	}

	if err := s.portfolioRepo.Create(portfolio); err != nil {
		return nil, err
	}

	// 포트폴리오 등록과 동시에 등록자의 최신 커스텀디자인에 대한
	// 샘플 제작 건이 열린다. 디자인이 없으면 건을 열지 않는다.
	latest, err := s.designRepo.FindLatestByOwner(userID)
	if errors.Is(err, common.ErrNotFound) {
		return portfolio, nil
	}
	if err != nil {
		return nil, err
	}
	now := time.Now()
	status := &domain.ProgressStatus{
		UserID:               userID,
		Status:               domain.ProgressWaiting,
		RequestedAt:          now,
		ExpectedShippingDate: now.AddDate(0, 0, domain.ShippingLeadDays),
	}
	status.SetSubject(domain.Subject{Kind: domain.SubjectCustomDesign, ID: latest.ID})
	if err := s.progressRepo.Create(status); err != nil {
		return nil, err
	}
	return portfolio, nil
}

func (s *portfolioService) Update(ctx context.Context, id uint, req SavePortfolioRequest) (*domain.Portfolio, error) {
	portfolio, err := s.portfolioRepo.FindActiveByID(id)
	if err != nil {
		return nil, err
	}

	if req.DesignName != "" && req.DesignName != portfolio.DesignName {
		taken, err := s.portfolioRepo.ExistsActiveName(req.DesignName)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPortfolioNameTaken
		}
		portfolio.DesignName = req.DesignName
	}
	if req.ColorName != "" {
		portfolio.ColorName = req.ColorName
	}
	if req.ExposedCountries != "" {
		portfolio.ExposedCountries = req.ExposedCountries
	}
	if req.IsFixedAxis != "" {
		portfolio.IsFixedAxis = normalizeFixedAxis(req.IsFixedAxis)
	}
	applyLayerIDs(portfolio, req)
	if req.GraphicDiameter != "" {
		portfolio.GraphicDiameter = req.GraphicDiameter
	}
	if req.OpticZone != "" {
		portfolio.OpticZone = req.OpticZone
	}
	if req.DIA != "" {
		portfolio.DIA = req.DIA
	}
	if req.BaseCurve != "" {
		portfolio.BaseCurve = req.BaseCurve
	}
	if len(req.Data) > 0 {
		result, thumbURL, err := s.uploads.UploadWithThumbnail(ctx, req.Filename, req.ContentType, req.Data)
		if err != nil {
			return nil, err
		}
		if portfolio.ObjectKey != "" {
			_ = s.uploads.Delete(ctx, portfolio.ObjectKey)
		}
		portfolio.MainImageURL = result.URL
		portfolio.ThumbnailURL = thumbURL
		portfolio.ObjectKey = result.Key
	}

	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Delete is logical; detail reads by ID on admin paths keep working
func (s *portfolioService) Delete(id uint) error {
	return s.portfolioRepo.SoftDelete(id)
}

func applyLayerIDs(p *domain.Portfolio, req SavePortfolioRequest) {
	if req.LineImageID != nil {
		p.LineImageID = req.LineImageID
	}
	if req.LineColorID != nil {
		p.LineColorID = req.LineColorID
	}
	if req.Base1ImageID != nil {
		p.Base1ImageID = req.Base1ImageID
	}
	if req.Base1ColorID != nil {
		p.Base1ColorID = req.Base1ColorID
	}
	if req.Base2ImageID != nil {
		p.Base2ImageID = req.Base2ImageID
	}
	if req.Base2ColorID != nil {
		p.Base2ColorID = req.Base2ColorID
	}
	if req.PupilImageID != nil {
		p.PupilImageID = req.PupilImageID
	}
	if req.PupilColorID != nil {
		p.PupilColorID = req.PupilColorID
	}
}

func normalizeFixedAxis(v string) string {
	if v == domain.FixedAxisYes {
		return domain.FixedAxisYes
	}
	return domain.FixedAxisNo
}
