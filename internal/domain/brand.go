package domain

import "time"

// Brand is a lens brand with a 1-based catalog rank (1 = top)
type Brand struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	ObjectKey string    `gorm:"type:varchar(500)" json:"object_key"`
	Rank      int       `gorm:"not null;index" json:"rank"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Brand) TableName() string {
	return "brands"
}
