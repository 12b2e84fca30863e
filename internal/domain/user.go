package domain

import "time"

// 계정 역할
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
	RoleEnduser    = "enduser"
)

// 언어 설정
const (
	LanguageKorean  = "ko"
	LanguageEnglish = "en"
)

// User is an account row. Admins create every account; deletion is logical.
// AccountCode is a short 2-3 digit tenant tag, stored uppercased and
// compared case-insensitively.
type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Password     string     `gorm:"type:varchar(100);not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:enduser" json:"role"`
	AccountCode  string     `gorm:"type:varchar(3);index" json:"account_code"`
	Company      string     `gorm:"type:varchar(100)" json:"company"`
	ContactName  string     `gorm:"type:varchar(50)" json:"contact_name"`
	ContactPhone string     `gorm:"type:varchar(30)" json:"contact_phone"`
	Email        string     `gorm:"type:varchar(100)" json:"email"` // non-unique, may be absent
	Language     string     `gorm:"type:varchar(2);not null;default:ko" json:"language"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

// TableName 테이블명 지정
func (User) TableName() string {
	return "account"
}

// IsManager reports whether the role may use the Manager tree
func (u *User) IsManager() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}
