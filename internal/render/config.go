package render

import "image/color"

// Palette used by the device firmware's display lambda.
var (
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Red       = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	Green     = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	Blue      = color.RGBA{R: 0x00, G: 0x78, B: 0xFF, A: 0xFF}
	Orange    = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	Gray      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	DarkGray  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	LightGray = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF}
	DarkRed   = color.RGBA{R: 0x50, G: 0x00, B: 0x00, A: 0xFF}
)

// Logical canvas size (ILI9341 in landscape mode).
const (
	CanvasWidth  = 320
	CanvasHeight = 240
)

// GraphRange is the half-height of a zone graph in degrees C: the panel
// spans setpoint +/- GraphRange.
const GraphRange = 6.0

// Thresholds holds the sensor-driver constants that affect visible state.
// The defaults come from the controller firmware; they are surfaced here
// rather than hard-coded in drawing logic so the config file can override
// them if the sensor driver convention ever changes.
type Thresholds struct {
	// FaultBandLow..FaultBandHigh is the reserved out-of-range sentinel
	// region the sensor driver reports on a wiring fault.
	FaultBandLow  float64
	FaultBandHigh float64
	// SafetyScore is the error score at which a zone is flagged.
	SafetyScore int
	// HistoryMin/HistoryMax bound plausible history samples; anything
	// outside is dropped from the trace.
	HistoryMin float64
	HistoryMax float64
}

// DefaultThresholds mirrors the firmware constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FaultBandLow:  84.5,
		FaultBandHigh: 85.5,
		SafetyScore:   50,
		HistoryMin:    0,
		HistoryMax:    100,
	}
}
