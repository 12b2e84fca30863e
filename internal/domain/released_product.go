package domain

import "time"

// ReleasedProduct is a shipped catalog product. The four color references
// follow the fixed layer order; released products carry no per-layer images.
type ReleasedProduct struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DesignName       string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"design_name"`
	ColorName        string    `gorm:"type:varchar(50)" json:"color_name"`
	BrandID          *uint     `gorm:"index" json:"brand_id"`
	MainImageURL     string    `gorm:"type:varchar(500)" json:"main_image_url"`
	ThumbnailURL     string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ObjectKey        string    `gorm:"type:varchar(500)" json:"object_key"`
	LineColorID      *uint     `json:"line_color_id"`
	Base1ColorID     *uint     `json:"base1_color_id"`
	Base2ColorID     *uint     `json:"base2_color_id"`
	PupilColorID     *uint     `json:"pupil_color_id"`
	GraphicDiameter  string    `gorm:"type:varchar(20)" json:"graphic_diameter"`
	OpticZone        string    `gorm:"type:varchar(20)" json:"optic_zone"`
	DIA              string    `gorm:"type:varchar(20);column:dia" json:"dia"`
	BaseCurve        string    `gorm:"type:varchar(20)" json:"base_curve"`
	Views            int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (ReleasedProduct) TableName() string {
	return "releasedproducts"
}

// ColorIDs returns the layer-ordered color references
func (p *ReleasedProduct) ColorIDs() []*uint {
	return []*uint{p.LineColorID, p.Base1ColorID, p.Base2ColorID, p.PupilColorID}
}
