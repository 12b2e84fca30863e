package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository account data access interface
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	ExistsUsername(username string) (bool, error)
	ExistsAccountCode(code string) (bool, error)
	Update(user *domain.User) error
	SoftDelete(id uint) error
	List(page, size int, role, search string) ([]*domain.User, int64, error)
	TouchLogin(id uint, at time.Time) error
	UpdateLanguage(id uint, language string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	user.AccountCode = strings.ToUpper(strings.TrimSpace(user.AccountCode))
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	return &user, err
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrUserNotFound
	}
	return &user, err
}

func (r *userRepository) ExistsUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// ExistsAccountCode compares case-insensitively; codes are stored uppercased
func (r *userRepository) ExistsAccountCode(code string) (bool, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false, nil
	}
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("UPPER(account_code) = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(user *domain.User) error {
	user.AccountCode = strings.ToUpper(strings.TrimSpace(user.AccountCode))
	return r.db.Save(user).Error
}

func (r *userRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) List(page, size int, role, search string) ([]*domain.User, int64, error) {
	var users []*domain.User
	var total int64

	query := r.db.Model(&domain.User{}).Where("is_deleted = ?", false)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR company LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&users).Error
	return users, total, err
}

func (r *userRepository) TouchLogin(id uint, at time.Time) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_login_at": at,
			"language":      domain.LanguageKorean,
		}).Error
}

func (r *userRepository) UpdateLanguage(id uint, language string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Update("language", language).Error
}
