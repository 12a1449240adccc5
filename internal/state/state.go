package state

// ZoneCount is the number of heating zones on the controller.
const ZoneCount = 7

// HistorySamples is the number of history samples shown per graph.
const HistorySamples = 40

// Zone is the displayed state of a single heating zone.
type Zone struct {
	// Temperature is the current reading; nil means the sensor is missing.
	Temperature *float64
	Setpoint    float64
	Heating     bool
	ValveOpen   bool
	// ErrorScore accumulates safety faults; the display flags it at 50.
	ErrorScore int
	Disabled   bool
	// History holds temperature samples, most recent last. NaN marks an
	// invalid sample. Only the last HistorySamples entries are rendered.
	History []float64
}

// Controller is one complete display frame. It is built once per render and
// consumed read-only; the renderer never mutates it.
type Controller struct {
	Zones      [ZoneCount]Zone
	PumpOn     bool
	PumpDemand bool
	// PumpHistory holds relay states, most recent last, same window as
	// the zone histories.
	PumpHistory    []bool
	GlobalSetpoint float64
	Hysteresis     float64
	IPAddress      string
	RSSI           int
	WiFiConnected  bool
	// Timestamp is pre-formatted by the caller; the renderer treats it as
	// an opaque string.
	Timestamp string
}

// Float returns a pointer to v, for populating optional temperatures.
func Float(v float64) *float64 { return &v }
