package repository

import (
	"time"

	"github.com/lenspick/lenspick-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ViewDateFormat is the daily_views date key layout
const ViewDateFormat = "2006-01-02"

// Today returns the UTC date key for now
func Today() string {
	return time.Now().UTC().Format(ViewDateFormat)
}

// RankedContent is one ranking row: content joined with today's tally
type RankedContent struct {
	ContentID uint   `json:"content_id"`
	Name      string `json:"name"`
	ViewCount int64  `json:"view_count"`
}

// DailyViewRepository daily view tally data access interface
type DailyViewRepository interface {
	TopPortfolios(date string, limit int) ([]RankedContent, error)
	TopReleasedProducts(date string, limit int) ([]RankedContent, error)
}

type dailyViewRepository struct {
	db *gorm.DB
}

// NewDailyViewRepository creates a new DailyViewRepository
func NewDailyViewRepository(db *gorm.DB) DailyViewRepository {
	return &dailyViewRepository{db: db}
}

// upsertDailyView creates-or-increments the (date, type, id) tally inside
// the caller's transaction. The unique index makes concurrent upserts safe.
func upsertDailyView(tx *gorm.DB, date, contentType string, contentID uint) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "view_date"}, {Name: "content_type"}, {Name: "content_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"view_count": gorm.Expr("view_count + 1"),
		}),
	}).Create(&domain.DailyView{
		ViewDate:    date,
		ContentType: contentType,
		ContentID:   contentID,
		ViewCount:   1,
	}).Error
}

func (r *dailyViewRepository) TopPortfolios(date string, limit int) ([]RankedContent, error) {
	var rows []RankedContent
	err := r.db.Table("daily_views dv").
		Select("dv.content_id AS content_id, p.design_name AS name, dv.view_count AS view_count").
		Joins("JOIN portfolios p ON p.id = dv.content_id").
		Where("dv.view_date = ? AND dv.content_type = ? AND p.is_deleted = ?",
			date, domain.ContentTypePortfolio, false).
		Order("dv.view_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dailyViewRepository) TopReleasedProducts(date string, limit int) ([]RankedContent, error) {
	var rows []RankedContent
	err := r.db.Table("daily_views dv").
		Select("dv.content_id AS content_id, rp.design_name AS name, dv.view_count AS view_count").
		Joins("JOIN releasedproducts rp ON rp.id = dv.content_id").
		Where("dv.view_date = ? AND dv.content_type = ?", date, domain.ContentTypeReleasedProduct).
		Order("dv.view_count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
