package service

import (
	"context"
	"errors"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 커스텀 디자인 에러 정의
var (
	ErrDesignLocked  = errors.New("완료된 디자인은 수정할 수 없습니다")
	ErrInvalidStatus = errors.New("유효하지 않은 상태 값입니다")
)

var designOrderColumns = map[string]bool{
	"item_name": true, "status": true, "created_at": true,
}

var validDesignStatuses = map[string]bool{
	domain.DesignStatusDraft:       true,
	domain.DesignStatusReject:      true,
	domain.DesignStatusUnderReview: true,
	domain.DesignStatusComplete:    true,
}

// LayerInput is one layer of a design save payload
type LayerInput struct {
	ImageID      *uint  `json:"image_id"`
	ColorID      *uint  `json:"color_id"`
	Transparency string `json:"transparency"`
	Size         string `json:"size"`
}

// SaveCustomDesignRequest end-user design save input. MainImage is the
// composed preview as a base64 blob.
type SaveCustomDesignRequest struct {
	RequestMessage   string
	MainImageBase64  string
	ImageContentType string
	Line             LayerInput
	Base1            LayerInput
	Base2            LayerInput
	Pupil            LayerInput
	GraphicDiameter  string
	OpticZone        string
	DIA              string
	BaseCurve        string
}

// CustomDesignDetail is the detail read-model with layers hydrated
type CustomDesignDetail struct {
	*domain.CustomDesign
	Layers   domain.HydratedLayers `json:"layers"`
	Username string                `json:"username,omitempty"`
}

// CustomDesignService custom design lifecycle interface
type CustomDesignService interface {
	// Create stores a new draft for the user
	Create(ctx context.Context, userID uint, req SaveCustomDesignRequest) (*domain.CustomDesign, error)
	// Update rewrites a design the user still owns and that has not
	// completed yet
	Update(ctx context.Context, userID, id uint, req SaveCustomDesignRequest) (*domain.CustomDesign, error)
	Get(id uint) (*CustomDesignDetail, error)
	// GetOwned resolves a design by its per-owner item name or ID
	GetOwned(userID uint, itemNameOrID string) (*CustomDesignDetail, error)
	Latest(userID uint) (*CustomDesignDetail, error)
	ListByOwner(userID uint, page, size int) ([]*domain.CustomDesign, int64, error)
	ListAll(page, size int, status, search, orderBy string) ([]*CustomDesignDetail, int64, error)
	// SetStatus moves the review pipeline. Moving to complete assigns
	// the per-owner item name and opens the sample work item.
	SetStatus(id uint, status string) (*domain.CustomDesign, error)
	Delete(ctx context.Context, userID, id uint, asManager bool) error
	// RegenerateItemNames re-sequences a user's completed designs after
	// deletions left gaps
	RegenerateItemNames(userID uint) (int, error)
}

type customDesignService struct {
	designRepo   repository.CustomDesignRepository
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	hydrator     *layerHydrator
	uploads      UploadService
}

// NewCustomDesignService creates a new CustomDesignService
func NewCustomDesignService(
	designRepo repository.CustomDesignRepository,
	progressRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
	imageRepo repository.ImageRepository,
	colorRepo repository.ColorRepository,
	uploads UploadService,
) CustomDesignService {
	return &customDesignService{
		designRepo:   designRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		hydrator:     newLayerHydrator(imageRepo, colorRepo),
		uploads:      uploads,
	}
}

func (s *customDesignService) Create(ctx context.Context, userID uint, req SaveCustomDesignRequest) (*domain.CustomDesign, error) {
	design := &domain.CustomDesign{
		UserID: userID,
		Status: domain.DesignStatusDraft,
	}
	if err := s.apply(ctx, design, req); err != nil {
		return nil, err
	}
	if err := s.designRepo.Create(design); err != nil {
		return nil, err
	}
	return design, nil
}

func (s *customDesignService) Update(ctx context.Context, userID, id uint, req SaveCustomDesignRequest) (*domain.CustomDesign, error) {
	design, err := s.designRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if design.UserID != userID {
		return nil, common.ErrForbidden
	}
	if design.Status == domain.DesignStatusComplete {
		return nil, ErrDesignLocked
	}
	if err := s.apply(ctx, design, req); err != nil {
		return nil, err
	}
	if err := s.designRepo.Update(design); err != nil {
		return nil, err
	}
	return design, nil
}

// apply copies the save payload onto the row, uploading the composed
// preview when one is included
func (s *customDesignService) apply(ctx context.Context, design *domain.CustomDesign, req SaveCustomDesignRequest) error {
	design.RequestMessage = req.RequestMessage
	design.LineImageID, design.LineColorID = req.Line.ImageID, req.Line.ColorID
	design.LineTransparency, design.LineSize = req.Line.Transparency, req.Line.Size
	design.Base1ImageID, design.Base1ColorID = req.Base1.ImageID, req.Base1.ColorID
	design.Base1Transparency, design.Base1Size = req.Base1.Transparency, req.Base1.Size
	design.Base2ImageID, design.Base2ColorID = req.Base2.ImageID, req.Base2.ColorID
	design.Base2Transparency, design.Base2Size = req.Base2.Transparency, req.Base2.Size
	design.PupilImageID, design.PupilColorID = req.Pupil.ImageID, req.Pupil.ColorID
	design.PupilTransparency, design.PupilSize = req.Pupil.Transparency, req.Pupil.Size
	design.GraphicDiameter = req.GraphicDiameter
	design.OpticZone = req.OpticZone
	design.DIA = req.DIA
	design.BaseCurve = req.BaseCurve

	if req.MainImageBase64 != "" {
		contentType := req.ImageContentType
		if contentType == "" {
			contentType = "image/png"
		}
		result, err := s.uploads.UploadBase64PNG(ctx, contentType, req.MainImageBase64)
		if err != nil {
			return err
		}
		if design.ObjectKey != "" {
			_ = s.uploads.Delete(ctx, design.ObjectKey)
		}
		design.MainImageURL = result.URL
		design.ObjectKey = result.Key
	}
	return nil
}

func (s *customDesignService) Get(id uint) (*CustomDesignDetail, error) {
	design, err := s.designRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.detail(design)
}

func (s *customDesignService) GetOwned(userID uint, itemNameOrID string) (*CustomDesignDetail, error) {
	design, err := findByNameOrID(itemNameOrID,
		func(name string) (*domain.CustomDesign, error) {
			return s.designRepo.FindByOwnerAndItem(userID, name)
		},
		s.designRepo.FindByID,
	)
	if err != nil {
		return nil, err
	}
	if design.UserID != userID {
		return nil, common.ErrForbidden
	}
	return s.detail(design)
}

func (s *customDesignService) Latest(userID uint) (*CustomDesignDetail, error) {
	design, err := s.designRepo.FindLatestByOwner(userID)
	if err != nil {
		return nil, err
	}
	return s.detail(design)
}

func (s *customDesignService) detail(design *domain.CustomDesign) (*CustomDesignDetail, error) {
	layers, err := s.hydrator.HydrateOne(design.Layers())
	if err != nil {
		return nil, err
	}
	return &CustomDesignDetail{CustomDesign: design, Layers: layers}, nil
}

func (s *customDesignService) ListByOwner(userID uint, page, size int) ([]*domain.CustomDesign, int64, error) {
	return s.designRepo.ListByOwner(userID, page, size)
}

// ListAll is the admin review queue, with owner usernames and hydrated
// layers resolved per page
func (s *customDesignService) ListAll(page, size int, status, search, orderBy string) ([]*CustomDesignDetail, int64, error) {
	order := common.ParseOrderBy(orderBy, designOrderColumns, "created_at", true)
	designs, total, err := s.designRepo.ListAll(page, size, status, search, orderClause(order))
	if err != nil {
		return nil, 0, err
	}

	pages := make([]map[string]domain.LayerRef, len(designs))
	for i, d := range designs {
		pages[i] = d.Layers()
	}
	hydrated, err := s.hydrator.HydrateMany(pages)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*CustomDesignDetail, len(designs))
	for i, d := range designs {
		out[i] = &CustomDesignDetail{CustomDesign: d, Layers: hydrated[i]}
		if owner, err := s.userRepo.FindByID(d.UserID); err == nil {
			out[i].Username = owner.Username
		}
	}
	return out, total, nil
}

func (s *customDesignService) SetStatus(id uint, status string) (*domain.CustomDesign, error) {
	if !validDesignStatuses[status] {
		return nil, ErrInvalidStatus
	}
	if status == domain.DesignStatusComplete {
		return s.complete(id)
	}

	design, err := s.designRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	design.Status = status
	if err := s.designRepo.Update(design); err != nil {
		return nil, err
	}
	return design, nil
}

// complete assigns the next per-owner item name and opens the sample
// work item. Re-completing an already complete design is a no-op.
func (s *customDesignService) complete(id uint) (*domain.CustomDesign, error) {
	before, err := s.designRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	alreadyComplete := before.Status == domain.DesignStatusComplete

	design, err := s.designRepo.Complete(id)
	if err != nil {
		return nil, err
	}
	if alreadyComplete {
		return design, nil
	}

	now := time.Now()
	status := &domain.ProgressStatus{
		UserID:               design.UserID,
		Status:               domain.ProgressWaiting,
		Notes:                design.RequestMessage,
		RequestedAt:          now,
		ExpectedShippingDate: now.AddDate(0, 0, domain.ShippingLeadDays),
	}
	status.SetSubject(domain.Subject{Kind: domain.SubjectCustomDesign, ID: design.ID})
	if err := s.progressRepo.Create(status); err != nil {
		return nil, err
	}
	return design, nil
}

func (s *customDesignService) Delete(ctx context.Context, userID, id uint, asManager bool) error {
	design, err := s.designRepo.FindByID(id)
	if err != nil {
		return err
	}
	if !asManager && design.UserID != userID {
		return common.ErrForbidden
	}
	if err := s.designRepo.Delete(id); err != nil {
		return err
	}
	if design.ObjectKey != "" {
		_ = s.uploads.Delete(ctx, design.ObjectKey)
	}
	return nil
}

func (s *customDesignService) RegenerateItemNames(userID uint) (int, error) {
	return s.designRepo.RegenerateItemNames(userID)
}
