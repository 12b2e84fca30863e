package domain

import "time"

// is_fixed_axis values
const (
	FixedAxisYes = "Y"
	FixedAxisNo  = "N"
)

// Portfolio is an admin-curated, publishable composed design.
// DesignName is unique among non-deleted rows; deletion is logical and
// soft-deleted rows stay readable by ID on admin paths only.
// ExposedCountries is a CSV of country IDs.
type Portfolio struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	DesignName       string    `gorm:"type:varchar(100);not null;index" json:"design_name"`
	ColorName        string    `gorm:"type:varchar(50)" json:"color_name"`
	ExposedCountries string    `gorm:"type:text" json:"exposed_countries"`
	IsFixedAxis      string    `gorm:"type:char(1);not null;default:N" json:"is_fixed_axis"`
	MainImageURL     string    `gorm:"type:varchar(500)" json:"main_image_url"`
	ThumbnailURL     string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ObjectKey        string    `gorm:"type:varchar(500)" json:"object_key"`
	LineImageID      *uint     `json:"line_image_id"`
	LineColorID      *uint     `json:"line_color_id"`
	Base1ImageID     *uint     `json:"base1_image_id"`
	Base1ColorID     *uint     `json:"base1_color_id"`
	Base2ImageID     *uint     `json:"base2_image_id"`
	Base2ColorID     *uint     `json:"base2_color_id"`
	PupilImageID     *uint     `json:"pupil_image_id"`
	PupilColorID     *uint     `json:"pupil_color_id"`
	GraphicDiameter  string    `gorm:"type:varchar(20)" json:"graphic_diameter"`
	OpticZone        string    `gorm:"type:varchar(20)" json:"optic_zone"`
	DIA              string    `gorm:"type:varchar(20);column:dia" json:"dia"`
	BaseCurve        string    `gorm:"type:varchar(20)" json:"base_curve"`
	Views            int64     `gorm:"not null;default:0" json:"views"`
	IsDeleted        bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (Portfolio) TableName() string {
	return "portfolios"
}

// Layers returns the fixed four-layer tuple. Portfolios carry no
// per-layer transparency/size; both hydrate as 100.
func (p *Portfolio) Layers() map[string]LayerRef {
	return map[string]LayerRef{
		LayerLine:  {ImageID: p.LineImageID, ColorID: p.LineColorID},
		LayerBase1: {ImageID: p.Base1ImageID, ColorID: p.Base1ColorID},
		LayerBase2: {ImageID: p.Base2ImageID, ColorID: p.Base2ColorID},
		LayerPupil: {ImageID: p.PupilImageID, ColorID: p.PupilColorID},
	}
}
