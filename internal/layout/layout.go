// Package layout classifies the viewport and derives every pixel dimension of the page from its width.
package layout

import "fmt"

// PhoneMaxWidth is the first width, in pixels, that renders as Desktop.
const PhoneMaxWidth = 700

// ScreenSize is the viewport in CSS pixels.
type ScreenSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Device is the discrete layout mode.
type Device int

const (
	Desktop Device = iota
	Phone
)

func (d Device) String() string {
	switch d {
	case Desktop:
		return "desktop"
	case Phone:
		return "phone"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// Classify maps a viewport to its device class. Height does not participate.
func Classify(width, _ float64) Device {
	if width < PhoneMaxWidth {
		return Phone
	}
	return Desktop
}

// MarshalText renders the device by name.
func (d Device) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
