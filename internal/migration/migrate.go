package migration

import (
	"fmt"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run migrates every table. Unique indexes declared on the models are
// the concurrency defense for name and cart duplicates, so the schema
// must exist before the server accepts traffic.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Brand{},
		&domain.Country{},
		&domain.Color{},
		&domain.Image{},
		&domain.ReleasedProduct{},
		&domain.Portfolio{},
		&domain.CustomDesign{},
		&domain.Cart{},
		&domain.ProgressStatus{},
		&domain.Share{},
		&domain.RealtimeUser{},
		&domain.DailyView{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedSuperadmin creates the bootstrap superadmin account when no
// account exists yet. Dev convenience only; prod accounts come from
// the /admins surface.
func SeedSuperadmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	seed := &domain.User{
		Username:    username,
		Password:    string(hash),
		Role:        domain.RoleSuperadmin,
		AccountCode: "000",
		Language:    domain.LanguageKorean,
	}
	if err := db.Create(seed).Error; err != nil {
		return fmt.Errorf("create superadmin: %w", err)
	}

	log.Info().Str("username", username).Msg("superadmin 계정 시드 완료")
	return nil
}
