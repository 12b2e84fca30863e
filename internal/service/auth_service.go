package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/cache"
	"github.com/lenspick/lenspick-backend/pkg/jwt"
	"github.com/lenspick/lenspick-backend/pkg/translator"
	"golang.org/x/crypto/bcrypt"
)

// account_code는 2~3자리 숫자
var accountCodePattern = regexp.MustCompile(`^[0-9]{2,3}$`)

// RegisterRequest admin-only account creation input
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=4"`
	Role         string `json:"role" binding:"required,oneof=admin superadmin enduser"`
	AccountCode  string `json:"account_code" binding:"required"`
	Company      string `json:"company"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}

// LoginRequest credential input
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token pair plus account context
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	AccountCode  string `json:"account_code"`
	Language     string `json:"language"`
}

// AuthService authentication and identity interface
type AuthService interface {
	Register(req *RegisterRequest) (*domain.User, error)
	// Login verifies credentials. managerOnly rejects non-admin roles
	// with ErrForbidden (the Manager tree's login gate).
	Login(req *LoginRequest, managerOnly bool) (*LoginResponse, error)
	// Refresh validates a refresh token and re-mints both tokens (rotation)
	Refresh(refreshToken string) (*LoginResponse, error)
	CurrentUser(username string) (*domain.User, error)
	UsernameExists(username string) (bool, error)
	AccountCodeExists(code string) (bool, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtManager  *jwt.Manager
	localeCache cache.Service
	translate   translator.Translator
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager, localeCache cache.Service, translate translator.Translator) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		localeCache: localeCache,
		translate:   translate,
	}
}

// Register creates an account. Username and account_code (case-insensitive)
// must both be free; the password is stored as a bcrypt hash.
func (s *authService) Register(req *RegisterRequest) (*domain.User, error) {
	code := strings.ToUpper(strings.TrimSpace(req.AccountCode))
	if !accountCodePattern.MatchString(code) {
		return nil, common.ErrInvalidInput
	}

	if taken, err := s.userRepo.ExistsUsername(req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, common.ErrUsernameTaken
	}
	if taken, err := s.userRepo.ExistsAccountCode(code); err != nil {
		return nil, err
	} else if taken {
		return nil, common.ErrAccountCodeTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Password:     string(hashed),
		Role:         req.Role,
		AccountCode:  code,
		Company:      req.Company,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Email:        req.Email,
		Language:     domain.LanguageKorean,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(req *LoginRequest, managerOnly bool) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}
	if managerOnly && !user.IsManager() {
		return nil, common.ErrForbidden
	}

	// 로그인 시 last_login_at 갱신, 언어는 ko로 초기화
	if err := s.userRepo.TouchLogin(user.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	// 언어가 바뀌었으므로 로캘 캐시와 번역 LRU도 함께 갱신
	if s.localeCache != nil {
		_ = s.localeCache.SetLocale(context.Background(), user.Username, domain.LanguageKorean)
	}
	if s.translate != nil {
		s.translate.Invalidate()
	}

	return s.mintTokens(user.Username, user.AccountCode, domain.LanguageKorean)
}

func (s *authService) Refresh(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByUsername(claims.Username())
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	return s.mintTokens(user.Username, user.AccountCode, user.Language)
}

func (s *authService) mintTokens(username, accountCode, language string) (*LoginResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(username)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	return &LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		AccountCode:  accountCode,
		Language:     language,
	}, nil
}

func (s *authService) CurrentUser(username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

func (s *authService) UsernameExists(username string) (bool, error) {
	return s.userRepo.ExistsUsername(username)
}

// AccountCodeExists trims whitespace and compares uppercased
func (s *authService) AccountCodeExists(code string) (bool, error) {
	return s.userRepo.ExistsAccountCode(code)
}
