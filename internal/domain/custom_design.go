package domain

import (
	"fmt"
	"time"
)

// 커스텀 디자인 상태 (한 글자 문자열로 저장)
const (
	DesignStatusDraft       = "0"
	DesignStatusReject      = "1"
	DesignStatusUnderReview = "2"
	DesignStatusComplete    = "3"
)

// CustomDesign is an end-user-authored composed design. ItemName is a
// per-owner sequential 4-digit name ("0001"...), assigned once when the
// design reaches status "3"; until then it is empty.
type CustomDesign struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	// (user_id, item_name) is the per-owner design key; drafts hold an
	// empty item_name until completion, so uniqueness is enforced at
	// assignment time rather than by a unique index.
	UserID   uint   `gorm:"not null;index:idx_custom_designs_owner_item,priority:1" json:"user_id"`
	ItemName string `gorm:"type:varchar(10);index:idx_custom_designs_owner_item,priority:2" json:"item_name"`
	Status            string    `gorm:"type:char(1);not null;default:0" json:"status"`
	RequestMessage    string    `gorm:"type:text" json:"request_message"`
	MainImageURL      string    `gorm:"type:varchar(500)" json:"main_image_url"`
	ObjectKey         string    `gorm:"type:varchar(500)" json:"object_key"`
	LineImageID       *uint     `json:"line_image_id"`
	LineColorID       *uint     `json:"line_color_id"`
	LineTransparency  string    `gorm:"type:varchar(3)" json:"line_transparency"`
	LineSize          string    `gorm:"type:varchar(3)" json:"line_size"`
	Base1ImageID      *uint     `json:"base1_image_id"`
	Base1ColorID      *uint     `json:"base1_color_id"`
	Base1Transparency string    `gorm:"type:varchar(3)" json:"base1_transparency"`
	Base1Size         string    `gorm:"type:varchar(3)" json:"base1_size"`
	Base2ImageID      *uint     `json:"base2_image_id"`
	Base2ColorID      *uint     `json:"base2_color_id"`
	Base2Transparency string    `gorm:"type:varchar(3)" json:"base2_transparency"`
	Base2Size         string    `gorm:"type:varchar(3)" json:"base2_size"`
	PupilImageID      *uint     `json:"pupil_image_id"`
	PupilColorID      *uint     `json:"pupil_color_id"`
	PupilTransparency string    `gorm:"type:varchar(3)" json:"pupil_transparency"`
	PupilSize         string    `gorm:"type:varchar(3)" json:"pupil_size"`
	GraphicDiameter   string    `gorm:"type:varchar(20)" json:"graphic_diameter"`
	OpticZone         string    `gorm:"type:varchar(20)" json:"optic_zone"`
	DIA               string    `gorm:"type:varchar(20);column:dia" json:"dia"`
	BaseCurve         string    `gorm:"type:varchar(20)" json:"base_curve"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 테이블명 지정
func (CustomDesign) TableName() string {
	return "custom_designs"
}

// Layers returns the fixed four-layer tuple
func (d *CustomDesign) Layers() map[string]LayerRef {
	return map[string]LayerRef{
		LayerLine:  {ImageID: d.LineImageID, ColorID: d.LineColorID, Transparency: d.LineTransparency, Size: d.LineSize},
		LayerBase1: {ImageID: d.Base1ImageID, ColorID: d.Base1ColorID, Transparency: d.Base1Transparency, Size: d.Base1Size},
		LayerBase2: {ImageID: d.Base2ImageID, ColorID: d.Base2ColorID, Transparency: d.Base2Transparency, Size: d.Base2Size},
		LayerPupil: {ImageID: d.PupilImageID, ColorID: d.PupilColorID, Transparency: d.PupilTransparency, Size: d.PupilSize},
	}
}

// FormatItemName renders a 1-based sequence as a 4-digit item name
func FormatItemName(seq int) string {
	return fmt.Sprintf("%04d", seq)
}
