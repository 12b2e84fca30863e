package repository

import (
	"time"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RealtimeRepository presence data access interface.
// Every operation begins with a lazy sweep of rows past the TTL, so no
// background task is needed; each call pays O(expired) work.
type RealtimeRepository interface {
	SweepExpired(now time.Time) error
	Upsert(userID uint, contentType string, contentID uint, contentName string, now time.Time) error
	Delete(userID uint, contentType string, contentID uint) error
	Count(contentType string, contentID uint) (int64, error)
}

type realtimeRepository struct {
	db *gorm.DB
}

// NewRealtimeRepository creates a new RealtimeRepository
func NewRealtimeRepository(db *gorm.DB) RealtimeRepository {
	return &realtimeRepository{db: db}
}

func (r *realtimeRepository) SweepExpired(now time.Time) error {
	cutoff := now.Add(-domain.PresenceTTL)
	return r.db.Where("entered_at < ?", cutoff).
		Delete(&domain.RealtimeUser{}).Error
}

// Upsert refreshes entered_at when the (user, type, content) row exists,
// inserts otherwise. The unique key makes concurrent enters collapse.
func (r *realtimeRepository) Upsert(userID uint, contentType string, contentID uint, contentName string, now time.Time) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "content_type"}, {Name: "content_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"entered_at": now,
		}),
	}).Create(&domain.RealtimeUser{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		ContentName: contentName,
		EnteredAt:   now,
	}).Error
}

func (r *realtimeRepository) Delete(userID uint, contentType string, contentID uint) error {
	return r.db.Where("user_id = ? AND content_type = ? AND content_id = ?",
		userID, contentType, contentID).
		Delete(&domain.RealtimeUser{}).Error
}

func (r *realtimeRepository) Count(contentType string, contentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.RealtimeUser{}).
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Count(&count).Error
	return count, err
}
