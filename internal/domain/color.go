package domain

import (
	"strings"
	"time"
)

// Color is a swatch. Values is an opaque comma-separated channel string,
// R,G,B optionally followed by C,M,Y,K.
type Color struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Values     string    `gorm:"type:varchar(100)" json:"values"`
	Monochrome string    `gorm:"type:varchar(10)" json:"monochrome"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Color) TableName() string {
	return "colors"
}

// RGB returns the first three channels only, as hydrated layers expose them
func (c *Color) RGB() string {
	parts := strings.Split(c.Values, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ",")
}
