package layout

// Geometric ratios between adjacent tiers.
const (
	PadRatio  = 1.5
	FontRatio = 1.33
)

// Factors are the per-device fractions of viewport width that root each scale chain.
type Factors struct {
	Pad     float64 // xs padding
	Font    float64 // sm font
	Tile    float64 // tile edge
	Columns int     // gallery columns
}

// Literals holds the design constants for each device. Treat as read-only.
//
//nolint:gochecknoglobals // immutable design table.
var Literals = map[Device]Factors{
	Desktop: {Pad: 0.014, Font: 0.011, Tile: 0.28, Columns: 3},
	Phone:   {Pad: 0.05, Font: 0.04, Tile: 0.84, Columns: 1},
}

// Padding tiers in pixels.
type Padding struct {
	XS  float64 `json:"xs"`
	SM  float64 `json:"sm"`
	MD  float64 `json:"md"`
	LG  float64 `json:"lg"`
	XL  float64 `json:"xl"`
	XXL float64 `json:"xxl"`
}

// Fonts tiers in pixels.
type Fonts struct {
	SM  float64 `json:"sm"`
	MD  float64 `json:"md"`
	LG  float64 `json:"lg"`
	XL  float64 `json:"xl"`
	XXL float64 `json:"xxl"`
}

// Scale is every width-derived dimension for one viewport.
type Scale struct {
	Device  Device  `json:"device"`
	Width   float64 `json:"width"`
	Pad     Padding `json:"padding"`
	Font    Fonts   `json:"font"`
	Tile    float64 `json:"tile"`
	Columns int     `json:"columns"`
}

// NewScale derives the scale chain for width. It recomputes from scratch on every call.
func NewScale(width, height float64) Scale {
	d := Classify(width, height)
	f := Literals[d]

	xs := width * f.Pad
	pad := Padding{XS: xs}
	pad.SM = pad.XS * PadRatio
	pad.MD = pad.SM * PadRatio
	pad.LG = pad.MD * PadRatio
	pad.XL = pad.LG * PadRatio
	pad.XXL = pad.XL * PadRatio

	sm := width * f.Font
	font := Fonts{SM: sm}
	font.MD = font.SM * FontRatio
	font.LG = font.MD * FontRatio
	font.XL = font.LG * FontRatio
	font.XXL = font.XL * FontRatio

	return Scale{
		Device:  d,
		Width:   width,
		Pad:     pad,
		Font:    font,
		Tile:    width * f.Tile,
		Columns: f.Columns,
	}
}
