package domain

// 디자인 레이어 이름 (고정 4종)
const (
	LayerLine  = "line"
	LayerBase1 = "base1"
	LayerBase2 = "base2"
	LayerPupil = "pupil"
)

// LayerNames is the fixed layer order of every composed design
var LayerNames = []string{LayerLine, LayerBase1, LayerBase2, LayerPupil}

// DefaultOpacity applies when a design type carries no per-layer
// transparency/size (portfolios)
const DefaultOpacity = "100"

// LayerRef is one layer's raw references. Transparency and Size are
// integers 0-100 stored as text; empty means the layer is unset.
type LayerRef struct {
	ImageID      *uint
	ColorID      *uint
	Transparency string
	Size         string
}

// IsSet reports whether the layer is populated at all
func (l LayerRef) IsSet() bool {
	return l.ImageID != nil || l.ColorID != nil
}

// HydratedLayer is the read-model of a layer with image/color lookups applied
type HydratedLayer struct {
	ImageID     *uint  `json:"image_id"`
	ImageURL    string `json:"image_url"`
	ImageName   string `json:"image_name"`
	ColorID     *uint  `json:"color_id"`
	ColorValues string `json:"color_values"` // first 3 channels only
	ColorName   string `json:"color_name"`
	Size        string `json:"size"`
	Opacity     string `json:"opacity"`
}

// HydratedLayers maps layer name to its hydrated read-model
type HydratedLayers map[string]HydratedLayer
