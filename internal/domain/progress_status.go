package domain

import "time"

// 샘플 제작 진행 상태 (한 글자 문자열로 저장)
const (
	ProgressWaiting    = "0"
	ProgressInProgress = "1"
	ProgressLate       = "2"
	ProgressShipped    = "3"
)

// ShippingLeadDays: expected_shipping_date = request date + 10 days
const ShippingLeadDays = 10

// SubjectKind tags which design kind a sample request targets
type SubjectKind string

// Subject kinds
const (
	SubjectCustomDesign SubjectKind = "custom_design"
	SubjectPortfolio    SubjectKind = "portfolio"
)

// Subject is the tagged variant behind the two nullable reference columns
type Subject struct {
	Kind SubjectKind
	ID   uint
}

// ProgressStatus is a sample-manufacturing work item derived from a cart
// entry or a completed custom design. Exactly one of CustomDesignID /
// PortfolioID is set at any time; the schema keeps both columns and the
// application upholds the XOR.
type ProgressStatus struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uint      `gorm:"not null;index" json:"user_id"`
	CustomDesignID       *uint     `gorm:"index" json:"custom_design_id"`
	PortfolioID          *uint     `gorm:"index" json:"portfolio_id"`
	Status               string    `gorm:"type:char(1);not null;default:0;index" json:"status"`
	Notes                string    `gorm:"type:text" json:"notes"`
	RecipientName        string    `gorm:"type:varchar(50)" json:"recipient_name"`
	RecipientPhone       string    `gorm:"type:varchar(30)" json:"recipient_phone"`
	RecipientAddress     string    `gorm:"type:varchar(300)" json:"recipient_address"`
	StatusNote           string    `gorm:"type:varchar(200)" json:"status_note"` // tracking number when shipped
	RequestedAt          time.Time `gorm:"not null" json:"requested_at"`
	ExpectedShippingDate time.Time `gorm:"not null" json:"expected_shipping_date"`
}

// TableName 테이블명 지정
func (ProgressStatus) TableName() string {
	return "progressstatus"
}

// Subject returns the tagged design reference. Zero-value Subject means
// the row violates the XOR invariant.
func (p *ProgressStatus) Subject() Subject {
	if p.CustomDesignID != nil {
		return Subject{Kind: SubjectCustomDesign, ID: *p.CustomDesignID}
	}
	if p.PortfolioID != nil {
		return Subject{Kind: SubjectPortfolio, ID: *p.PortfolioID}
	}
	return Subject{}
}

// SetSubject assigns exactly one reference column from the tagged variant
func (p *ProgressStatus) SetSubject(s Subject) {
	p.CustomDesignID = nil
	p.PortfolioID = nil
	switch s.Kind {
	case SubjectCustomDesign:
		p.CustomDesignID = &s.ID
	case SubjectPortfolio:
		p.PortfolioID = &s.ID
	}
}

// IsOverdue reports whether an unshipped row is past its expected date
func (p *ProgressStatus) IsOverdue(today time.Time) bool {
	if p.Status != ProgressWaiting && p.Status != ProgressInProgress {
		return false
	}
	y, m, d := today.UTC().Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return p.ExpectedShippingDate.Before(dayStart)
}
