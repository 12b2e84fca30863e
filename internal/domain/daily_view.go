package domain

// DailyView is the per-day view tally of one content row, keyed by
// (view_date, content_type, content_id). Created with count 1 and
// incremented on conflict, atomically with the read it is attributed to.
type DailyView struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ViewDate    string `gorm:"type:char(10);not null;uniqueIndex:uq_daily_views_key,priority:1" json:"view_date"` // YYYY-MM-DD
	ContentType string `gorm:"type:varchar(30);not null;uniqueIndex:uq_daily_views_key,priority:2" json:"content_type"`
	ContentID   uint   `gorm:"not null;uniqueIndex:uq_daily_views_key,priority:3" json:"content_id"`
	ViewCount   int64  `gorm:"not null;default:1" json:"view_count"`
}

// TableName 테이블명 지정
func (DailyView) TableName() string {
	return "daily_views"
}
