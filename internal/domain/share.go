package domain

import "time"

// Share is a publicly resolvable pointer to an uploaded image, deduplicated
// on (user, item, category). ImageID is the stable 12-char public id:
// md5(user|item|category) prefix, replaced by random ids on collision.
type Share struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageID   string    `gorm:"type:varchar(12);not null;uniqueIndex" json:"image_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uq_shares_user_item_category,priority:1" json:"user_id"`
	ItemName  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_shares_user_item_category,priority:2" json:"item_name"`
	Category  string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_shares_user_item_category,priority:3" json:"category"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	ObjectKey string    `gorm:"type:varchar(500)" json:"object_key"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Share) TableName() string {
	return "shares"
}
