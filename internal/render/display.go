package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/samber/lo"

	"github.com/heatwell/zonedisplay/internal/render/layout"
	"github.com/heatwell/zonedisplay/internal/state"
)

// Display renders one controller frame onto a Drawer. It holds only the
// firmware thresholds; all other inputs arrive with the frame.
type Display struct {
	th Thresholds
}

func NewDisplay(th Thresholds) *Display { return &Display{th: th} }

// Render walks the fixed screen regions in order: zone columns, pump box,
// status bar. It keeps no state between calls and never reads back from
// the drawer; rendering the same frame twice onto fresh surfaces produces
// identical output.
func (dp *Display) Render(frame state.Controller, d Drawer) {
	for i := range frame.Zones {
		dp.drawZoneBox(d, i, frame.Zones[i], frame.Hysteresis)
	}
	dp.drawPumpBox(d, frame)
	dp.drawStatusBar(d, frame)
}

// boxStyle is the resolved visual state of a zone box.
type boxStyle struct {
	bg      color.Color
	outline color.Color
	text    color.Color
	badge   bool // "DIS" marker
}

// statusRule pairs a zone condition with the style it forces. The rules
// are evaluated top to bottom and the first match wins; a later condition
// never overrides an earlier one, which keeps the precedence auditable
// separately from the drawing code.
type statusRule struct {
	name  string
	match func(z state.Zone, th Thresholds) bool
	apply func(s *boxStyle)
}

var statusRules = []statusRule{
	{
		name:  "disabled",
		match: func(z state.Zone, th Thresholds) bool { return z.Disabled },
		apply: func(s *boxStyle) { s.bg = DarkRed; s.outline = Red; s.badge = true },
	},
	{
		name:  "sensor-missing",
		match: func(z state.Zone, th Thresholds) bool { return z.Temperature == nil },
		apply: func(s *boxStyle) { s.outline = Gray; s.text = Gray },
	},
	{
		name: "sensor-fault",
		match: func(z state.Zone, th Thresholds) bool {
			return z.Temperature != nil && *z.Temperature >= th.FaultBandLow && *z.Temperature <= th.FaultBandHigh
		},
		apply: func(s *boxStyle) { s.outline = Red },
	},
	{
		name:  "safety-error",
		match: func(z state.Zone, th Thresholds) bool { return z.ErrorScore >= th.SafetyScore },
		apply: func(s *boxStyle) { s.bg = Red },
	},
	{
		name:  "heating",
		match: func(z state.Zone, th Thresholds) bool { return z.Heating },
		apply: func(s *boxStyle) { s.bg = Orange },
	},
}

func zoneBoxStyle(z state.Zone, th Thresholds) boxStyle {
	s := boxStyle{bg: DarkGray, outline: White, text: White}
	for _, r := range statusRules {
		if r.match(z, th) {
			r.apply(&s)
			break
		}
	}
	return s
}

func (dp *Display) drawZoneBox(d Drawer, i int, z state.Zone, hysteresis float64) {
	box := layout.ZoneBox(i)
	x := box.Min.X
	s := zoneBoxStyle(z, dp.th)

	d.StrokeRect(box, s.bg, s.outline)
	d.DrawText(x+2, 1, fmt.Sprintf("Z%d", i+1), s.text, FontTiny)
	if s.badge {
		d.DrawText(x+22, 1, "DIS", Red, FontTiny)
	}

	if z.Temperature != nil {
		d.DrawText(x+3, 10, fmt.Sprintf("%.0f", *z.Temperature), s.text, FontXLarge)
	} else {
		d.DrawText(x+8, 14, "--", Gray, FontLarge)
	}
	d.DrawText(x+2, 32, fmt.Sprintf("set:%.0f", z.Setpoint), s.text, FontSmall)

	drawIndicator(d, x, 48, "HEAT", z.Heating, Red)
	drawIndicator(d, x, 62, "VALV", z.ValveOpen, Blue)

	dp.drawZoneGraph(d, i, z, hysteresis)
}

// drawIndicator draws the disc+label pair shared by all status lights: a
// filled disc in the lit color when on, an unlit gray outline otherwise.
func drawIndicator(d Drawer, x, y int, label string, on bool, lit color.Color) {
	disc := image.Rect(x+3, y+1, x+10, y+8)
	c := lo.Ternary[color.Color](on, lit, Gray)
	d.DrawEllipse(disc, c, on)
	d.DrawText(x+12, y, label, c, FontTiny)
}

func (dp *Display) drawZoneGraph(d Drawer, i int, z state.Zone, hysteresis float64) {
	panel := layout.GraphPanel(i)

	// A sensorless graph stays empty; dim its outline to de-emphasize it.
	outline := lo.Ternary[color.Color](z.Temperature == nil, DarkGray, LightGray)
	d.StrokeRect(panel, Black, outline)
	if z.Temperature == nil || len(z.History) == 0 {
		return
	}

	gx, gy := panel.Min.X, panel.Min.Y
	gw, gh := panel.Dx(), panel.Dy()

	// Solid setpoint reference through the vertical center.
	spY := gy + gh/2
	d.DrawPolyline([]image.Point{{X: gx + 1, Y: spY}, {X: gx + gw - 2, Y: spY}}, Gray)

	// Dotted hysteresis guides, each clipped to the panel independently;
	// a guide entirely outside the band is simply not drawn.
	upperY := gy + valueY(z.Setpoint+hysteresis, z.Setpoint, GraphRange, gh)
	lowerY := gy + valueY(z.Setpoint-hysteresis, z.Setpoint, GraphRange, gh)
	for px := gx + 2; px < gx+gw-2; px += 3 {
		if upperY >= gy && upperY < gy+gh {
			d.DrawPoint(image.Point{X: px, Y: upperY}, LightGray)
		}
		if lowerY >= gy && lowerY < gy+gh {
			d.DrawPoint(image.Point{X: px, Y: lowerY}, LightGray)
		}
	}

	pts := tracePoints(z.History, z.Setpoint, dp.th, gw, gh)
	if len(pts) < 2 {
		return
	}
	abs := make([]image.Point, len(pts))
	for j, p := range pts {
		abs[j] = p.Add(panel.Min)
	}
	d.DrawPolyline(abs, Green)
}

func (dp *Display) drawPumpBox(d Drawer, frame state.Controller) {
	box := layout.PumpBox()
	x := box.Min.X

	d.StrokeRect(box, lo.Ternary[color.Color](frame.PumpOn, Blue, DarkGray), White)
	d.DrawText(x+4, 2, "PUMP", White, FontSmall)
	if frame.PumpOn {
		d.DrawText(x+6, 18, "ON", White, FontLarge)
	} else {
		d.DrawText(x+6, 18, "OFF", Gray, FontLarge)
	}

	drawIndicator(d, x, 48, "DMD", frame.PumpDemand, Orange)
	drawIndicator(d, x, 62, "RLY", frame.PumpOn, Green)

	// Relay history: a vertical bar per on-sample, blank columns for off.
	panel := layout.GraphPanel(layout.PumpColumn)
	d.StrokeRect(panel, Black, LightGray)
	gy, gh := panel.Min.Y, panel.Dy()
	for s, on := range lastN(frame.PumpHistory, GraphSamples) {
		if !on {
			continue
		}
		px := panel.Min.X + sampleX(s, panel.Dx())
		d.DrawPolyline([]image.Point{{X: px, Y: gy + 2}, {X: px, Y: gy + gh - 3}}, Blue)
	}
}

func (dp *Display) drawStatusBar(d Drawer, frame state.Controller) {
	y := layout.StatusLine(0)
	d.DrawText(5, y, "Net:", White, FontSmall)
	if frame.WiFiConnected {
		d.DrawText(30, y, frame.IPAddress, Green, FontSmall)
		d.DrawText(145, y, fmt.Sprintf("RSSI:%d", frame.RSSI), Gray, FontTiny)
	} else {
		d.DrawText(30, y, "DISCONNECTED", Red, FontSmall)
	}

	y = layout.StatusLine(1)
	d.DrawText(5, y, frame.Timestamp, White, FontSmall)
	d.DrawText(200, y, fmt.Sprintf("Set:%.1fC", frame.GlobalSetpoint), White, FontSmall)

	y = layout.StatusLine(2)
	d.DrawText(5, y, "Demand:", White, FontSmall)
	if frame.PumpDemand {
		d.DrawText(55, y, "ACTIVE", Orange, FontSmall)
	} else {
		d.DrawText(55, y, "idle", Gray, FontSmall)
	}

	d.DrawText(120, y, "Valves:", White, FontSmall)
	if lo.ContainsBy(frame.Zones[:], func(z state.Zone) bool { return z.ValveOpen }) {
		d.DrawText(170, y, "OPEN", Green, FontSmall)
	} else {
		d.DrawText(170, y, "closed", Gray, FontSmall)
	}

	heating := lo.CountBy(frame.Zones[:], func(z state.Zone) bool { return z.Heating })
	zonesColor := lo.Ternary[color.Color](heating > 0, Orange, Gray)
	d.DrawText(240, y, fmt.Sprintf("Zones:%d", heating), zonesColor, FontSmall)
}
