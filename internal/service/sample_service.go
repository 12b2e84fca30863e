package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// 샘플 의뢰 에러 정의
var (
	ErrRequestNotDeletable = errors.New("대기 상태의 의뢰만 삭제할 수 있습니다")
	ErrInvalidTransition   = errors.New("허용되지 않는 상태 전환입니다")
)

var progressOrderColumns = map[string]bool{
	"status": true, "requested_at": true, "expected_shipping_date": true,
}

// Recipient is the shipping destination of a sample request
type Recipient struct {
	Name    string `json:"recipient_name"`
	Phone   string `json:"recipient_phone"`
	Address string `json:"recipient_address"`
}

// RequestSampleInput materializes one cart entry into a sample request
type RequestSampleInput struct {
	ItemName  string
	Category  string
	Note      string
	Recipient Recipient
}

// BulkRequestResult reports a bulk materialization outcome. Failures
// never abort the iteration.
type BulkRequestResult struct {
	SuccessCount int      `json:"success_count"`
	Failed       []string `json:"failed"`
}

// SampleRequestView is the read-model of one sample work item
type SampleRequestView struct {
	*domain.ProgressStatus
	ItemName       string `json:"item_name"`
	Category       string `json:"category"`
	MainImageURL   string `json:"main_image_url"`
	Username       string `json:"username,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	RequestNote    string `json:"request_note"`
}

// SampleService sample-manufacturing workflow interface
type SampleService interface {
	// Request materializes one cart entry into a waiting work item,
	// deleting the cart row atomically.
	Request(userID uint, input RequestSampleInput) (*domain.ProgressStatus, error)
	// RequestAll materializes every cart entry of the category
	RequestAll(userID uint, category, note string, recipient Recipient) (*BulkRequestResult, error)
	// ListForManager pages all work items. Rows past their expected
	// shipping date in waiting/in-progress flip to late before the
	// response; with a status filter, flipped rows drop from the page
	// while total_count keeps the pre-flip tally.
	ListForManager(page, size int, status, orderBy string) ([]*SampleRequestView, int64, error)
	ListForUser(userID uint, page, size int) ([]*SampleRequestView, int64, error)
	Get(id uint) (*SampleRequestView, error)
	// SetStatus moves the pipeline. statusNote carries the tracking
	// number when shipping.
	SetStatus(id uint, status, statusNote string) (*domain.ProgressStatus, error)
	// DeleteOwn removes the user's own request, waiting state only
	DeleteOwn(userID, id uint) error
	Delete(id uint) error
}

type sampleService struct {
	progressRepo  repository.ProgressRepository
	cartRepo      repository.CartRepository
	designRepo    repository.CustomDesignRepository
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

// NewSampleService creates a new SampleService
func NewSampleService(
	progressRepo repository.ProgressRepository,
	cartRepo repository.CartRepository,
	designRepo repository.CustomDesignRepository,
	portfolioRepo repository.PortfolioRepository,
	userRepo repository.UserRepository,
) SampleService {
	return &sampleService{
		progressRepo:  progressRepo,
		cartRepo:      cartRepo,
		designRepo:    designRepo,
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (s *sampleService) Request(userID uint, input RequestSampleInput) (*domain.ProgressStatus, error) {
	cart, err := s.cartRepo.Find(userID, input.ItemName, input.Category)
	if err != nil {
		return nil, err
	}
	return s.materialize(userID, cart, input.Note, input.Recipient)
}

func (s *sampleService) RequestAll(userID uint, category, note string, recipient Recipient) (*BulkRequestResult, error) {
	carts, err := s.cartRepo.ListByUser(userID, category)
	if err != nil {
		return nil, err
	}

	result := &BulkRequestResult{Failed: []string{}}
	for _, cart := range carts {
		if _, err := s.materialize(userID, cart, note, recipient); err != nil {
			result.Failed = append(result.Failed, cart.ItemName)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

// materialize builds the waiting work item from a cart row and commits
// insert-plus-cart-delete in one transaction
func (s *sampleService) materialize(userID uint, cart *domain.Cart, note string, recipient Recipient) (*domain.ProgressStatus, error) {
	subject, designMessage, err := s.resolveSubject(userID, cart.ItemName, cart.Category)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := &domain.ProgressStatus{
		UserID:               userID,
		Status:               domain.ProgressWaiting,
		Notes:                requestNotes(cart.Category, designMessage, note),
		RecipientName:        recipient.Name,
		RecipientPhone:       recipient.Phone,
		RecipientAddress:     recipient.Address,
		RequestedAt:          now,
		ExpectedShippingDate: now.AddDate(0, 0, domain.ShippingLeadDays),
	}
	status.SetSubject(subject)

	if err := s.progressRepo.CreateFromCart(status, cart.ID); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *sampleService) resolveSubject(userID uint, itemName, category string) (domain.Subject, string, error) {
	switch category {
	case domain.CategoryCustomDesign:
		design, err := s.designRepo.FindByOwnerAndItem(userID, itemName)
		if err != nil {
			return domain.Subject{}, "", err
		}
		return domain.Subject{Kind: domain.SubjectCustomDesign, ID: design.ID}, design.RequestMessage, nil
	case domain.CategoryPortfolio:
		portfolio, err := s.portfolioRepo.FindActiveByName(itemName)
		if err != nil {
			return domain.Subject{}, "", err
		}
		return domain.Subject{Kind: domain.SubjectPortfolio, ID: portfolio.ID}, "", nil
	}
	return domain.Subject{}, "", common.ErrInvalidInput
}

// requestNotes prefers the design's saved request message, then the
// caller's note, then a category-named default
func requestNotes(category, designMessage, note string) string {
	if designMessage != "" {
		return designMessage
	}
	if note != "" {
		return note
	}
	return fmt.Sprintf("%s 샘플 제작 요청", category)
}

func (s *sampleService) ListForManager(page, size int, status, orderBy string) ([]*SampleRequestView, int64, error) {
	order := common.ParseOrderBy(orderBy, progressOrderColumns, "requested_at", true)
	rows, total, err := s.progressRepo.List(page, size, status, orderClause(order))
	if err != nil {
		return nil, 0, err
	}

	// 지연 건은 목록을 읽는 시점에 확정된다
	today := s.now()
	flipped := make([]*domain.ProgressStatus, 0)
	for _, row := range rows {
		if row.IsOverdue(today) {
			row.Status = domain.ProgressLate
			flipped = append(flipped, row)
		}
	}
	if len(flipped) > 0 {
		if err := s.progressRepo.UpdateStatuses(flipped); err != nil {
			return nil, 0, err
		}
	}

	// 상태 필터가 있으면 전환으로 벗어난 행은 응답에서 빠진다.
	// total_count는 전환 전 조회 기준을 유지한다.
	if status != "" {
		kept := rows[:0]
		for _, row := range rows {
			if row.Status == status {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	views, err := s.views(rows, true)
	return views, total, err
}

func (s *sampleService) ListForUser(userID uint, page, size int) ([]*SampleRequestView, int64, error) {
	rows, total, err := s.progressRepo.ListByUser(userID, page, size)
	if err != nil {
		return nil, 0, err
	}
	views, err := s.views(rows, false)
	return views, total, err
}

func (s *sampleService) Get(id uint) (*SampleRequestView, error) {
	row, err := s.progressRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	views, err := s.views([]*domain.ProgressStatus{row}, true)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// views joins each work item back to its design and owner
func (s *sampleService) views(rows []*domain.ProgressStatus, withUsername bool) ([]*SampleRequestView, error) {
	out := make([]*SampleRequestView, 0, len(rows))
	for _, row := range rows {
		view := &SampleRequestView{ProgressStatus: row, RequestNote: row.Notes}
		if row.Status == domain.ProgressShipped {
			view.TrackingNumber = row.StatusNote
		}

		switch subject := row.Subject(); subject.Kind {
		case domain.SubjectCustomDesign:
			view.Category = domain.CategoryCustomDesign
			if design, err := s.designRepo.FindByID(subject.ID); err == nil {
				view.ItemName = design.ItemName
				view.MainImageURL = design.MainImageURL
			}
		case domain.SubjectPortfolio:
			view.Category = domain.CategoryPortfolio
			if portfolio, err := s.portfolioRepo.FindByID(subject.ID); err == nil {
				view.ItemName = portfolio.DesignName
				view.MainImageURL = portfolio.MainImageURL
			}
		}

		if withUsername {
			if owner, err := s.userRepo.FindByID(row.UserID); err == nil {
				view.Username = owner.Username
			}
		}
		out = append(out, view)
	}
	return out, nil
}

// progressTransitions lists the allowed admin moves per current status
var progressTransitions = map[string][]string{
	domain.ProgressWaiting:    {domain.ProgressInProgress, domain.ProgressLate},
	domain.ProgressInProgress: {domain.ProgressLate, domain.ProgressShipped},
	domain.ProgressLate:       {domain.ProgressShipped},
	domain.ProgressShipped:    {},
}

func (s *sampleService) SetStatus(id uint, status, statusNote string) (*domain.ProgressStatus, error) {
	row, err := s.progressRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range progressTransitions[row.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	row.Status = status
	if status == domain.ProgressShipped {
		row.StatusNote = statusNote
	}
	if err := s.progressRepo.Update(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *sampleService) DeleteOwn(userID, id uint) error {
	row, err := s.progressRepo.FindByID(id)
	if err != nil {
		return err
	}
	if row.UserID != userID {
		return common.ErrForbidden
	}
	if row.Status != domain.ProgressWaiting {
		return ErrRequestNotDeletable
	}
	return s.progressRepo.Delete(id)
}

func (s *sampleService) Delete(id uint) error {
	return s.progressRepo.Delete(id)
}
