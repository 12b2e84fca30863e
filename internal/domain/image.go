package domain

import "time"

// Image is an uploaded design asset. DisplayName is unique per category.
// ExposedUsers is a CSV of usernames allowed to see a restricted image.
type Image struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Category     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_images_category_name,priority:1" json:"category"`
	DisplayName  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_images_category_name,priority:2" json:"display_name"`
	ObjectKey    string    `gorm:"type:varchar(500)" json:"object_key"`
	URL          string    `gorm:"type:varchar(500)" json:"url"`
	ThumbnailURL string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ExposedUsers string    `gorm:"type:text" json:"exposed_users"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Image) TableName() string {
	return "images"
}
