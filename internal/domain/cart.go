package domain

import "time"

// 장바구니/공유 카테고리 (한국어 리터럴로 저장)
const (
	CategoryCustomDesign = "커스텀디자인"
	CategoryPortfolio    = "포트폴리오"
)

// ValidCategory reports whether the category literal is known
func ValidCategory(category string) bool {
	return category == CategoryCustomDesign || category == CategoryPortfolio
}

// Cart is a per-user sample-request candidate. The main-image URL is a
// snapshot taken when the item is added.
type Cart struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uq_carts_user_item_category,priority:1" json:"user_id"`
	ItemName     string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_carts_user_item_category,priority:2" json:"item_name"`
	Category     string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_carts_user_item_category,priority:3" json:"category"`
	MainImageURL string    `gorm:"type:varchar(500)" json:"main_image_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Cart) TableName() string {
	return "carts"
}
