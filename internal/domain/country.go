package domain

import "time"

// Country is an exposure target country. EnglishName is filled lazily
// through the translator when first requested.
type Country struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	EnglishName string    `gorm:"type:varchar(100)" json:"english_name"`
	Rank        int       `gorm:"not null;index" json:"rank"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Country) TableName() string {
	return "countries"
}
