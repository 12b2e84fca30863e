package domain

import "time"

// 실시간 접속 대상 콘텐츠 타입
const (
	ContentTypePortfolio       = "portfolio"
	ContentTypeReleasedProduct = "released_product"
)

// PresenceTTL: rows whose entered_at is older than this are
// conceptually absent and swept lazily.
const PresenceTTL = 60 * time.Second

// RealtimeUser is ephemeral presence of a user on a content detail page.
// Keyed by (user, content_type, content_id); the content name is
// denormalized for response payloads.
type RealtimeUser struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uq_realtime_users_key,priority:1" json:"user_id"`
	ContentType string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_realtime_users_key,priority:2" json:"content_type"`
	ContentID   uint      `gorm:"not null;uniqueIndex:uq_realtime_users_key,priority:3" json:"content_id"`
	ContentName string    `gorm:"type:varchar(100)" json:"content_name"`
	EnteredAt   time.Time `gorm:"not null;index" json:"entered_at"`
}

// TableName 테이블명 지정
func (RealtimeUser) TableName() string {
	return "realtime_users"
}
