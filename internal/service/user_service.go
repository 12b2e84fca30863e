package service

import (
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// UpdateUserRequest admin account update input
type UpdateUserRequest struct {
	Company      *string `json:"company"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	Email        *string `json:"email"`
	Role         *string `json:"role" binding:"omitempty,oneof=admin superadmin enduser"`
}

// UserService admin-side account management interface
type UserService interface {
	List(page, size int, role, search string) ([]*domain.User, int64, error)
	Get(id uint) (*domain.User, error)
	Update(id uint, req *UpdateUserRequest) (*domain.User, error)
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(page, size int, role, search string) ([]*domain.User, int64, error) {
	return s.userRepo.List(page, size, role, search)
}

func (s *userService) Get(id uint) (*domain.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) Update(id uint, req *UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.ContactName != nil {
		user.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		user.ContactPhone = *req.ContactPhone
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete is logical; the row stays for audit and item-name history
func (s *userService) Delete(id uint) error {
	return s.userRepo.SoftDelete(id)
}
