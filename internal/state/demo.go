package state

import "math/rand"

// Frame pairs a scripted controller state with its output file name.
type Frame struct {
	Name  string
	State Controller
}

// DemoFrames returns the scripted documentation frames in a fixed order.
// The same rng seed reproduces the same frames.
func DemoFrames(rng *rand.Rand) []Frame {
	return []Frame{
		{Name: "display_idle", State: IdleFrame(rng)},
		{Name: "display_heating", State: HeatingFrame(rng)},
		{Name: "display_error", State: ErrorFrame(rng)},
		{Name: "display_mixed", State: MixedFrame(rng)},
	}
}

// IdleFrame shows normal operation: two zones with sensors near setpoint,
// the rest unpopulated.
func IdleFrame(rng *rand.Rand) Controller {
	f := baseFrame()
	for i := range f.Zones {
		f.Zones[i] = Zone{Setpoint: 20.0}
		if i < 2 {
			t := 20.5 + (rng.Float64() - 0.5)
			f.Zones[i].Temperature = Float(t)
			f.Zones[i].History = trendHistory(rng, t, false)
		}
	}
	return f
}

// HeatingFrame shows one zone actively heating with the pump running.
func HeatingFrame(rng *rand.Rand) Controller {
	f := baseFrame()
	f.Zones[0] = Zone{
		Temperature: Float(19.2),
		Setpoint:    20.0,
		Heating:     true,
		ValveOpen:   true,
		History:     trendHistory(rng, 19.2, true),
	}
	f.Zones[1] = Zone{
		Temperature: Float(20.3),
		Setpoint:    20.0,
		History:     trendHistory(rng, 20.3, false),
	}
	for i := 2; i < ZoneCount; i++ {
		f.Zones[i] = Zone{Setpoint: 20.0}
	}
	f.PumpOn = true
	f.PumpDemand = true
	f.PumpHistory = boolRuns(20, 20)
	return f
}

// ErrorFrame shows a zone disabled by its error score next to one still
// heating with a safety error.
func ErrorFrame(rng *rand.Rand) Controller {
	f := baseFrame()
	f.Zones[0] = Zone{
		Temperature: Float(18.5),
		Setpoint:    20.0,
		Disabled:    true,
		ErrorScore:  100,
		History:     trendHistory(rng, 18.5, false),
	}
	f.Zones[1] = Zone{
		Temperature: Float(19.0),
		Setpoint:    20.0,
		Heating:     true,
		ErrorScore:  65,
		History:     trendHistory(rng, 19.0, true),
	}
	for i := 2; i < ZoneCount; i++ {
		f.Zones[i] = Zone{Setpoint: 20.0}
	}
	return f
}

// MixedFrame exercises every visual state at once, for the README matrix.
func MixedFrame(rng *rand.Rand) Controller {
	f := baseFrame()
	f.Zones[0] = Zone{
		Temperature: Float(19.5),
		Setpoint:    20.0,
		Heating:     true,
		ValveOpen:   true,
		History:     trendHistory(rng, 19.5, true),
	}
	f.Zones[1] = Zone{
		Temperature: Float(20.8),
		Setpoint:    21.0,
		History:     trendHistory(rng, 20.8, false),
	}
	f.Zones[2] = Zone{Setpoint: 20.0}
	f.Zones[3] = Zone{
		Temperature: Float(85.0),
		Setpoint:    20.0,
		History:     flatHistory(85.0),
	}
	f.Zones[4] = Zone{
		Temperature: Float(18.0),
		Setpoint:    20.0,
		Heating:     true,
		ValveOpen:   true,
		ErrorScore:  55,
		History:     trendHistory(rng, 18.0, true),
	}
	f.Zones[5] = Zone{
		Temperature: Float(17.5),
		Setpoint:    20.0,
		Disabled:    true,
		ErrorScore:  100,
		History:     trendHistory(rng, 17.5, false),
	}
	f.Zones[6] = Zone{Setpoint: 20.0}
	f.PumpOn = true
	f.PumpDemand = true
	f.PumpHistory = boolRuns(10, 30)
	return f
}

func baseFrame() Controller {
	return Controller{
		GlobalSetpoint: 20.0,
		Hysteresis:     0.5,
		IPAddress:      "192.168.1.43",
		RSSI:           -65,
		WiFiConnected:  true,
		Timestamp:      "2025-01-02 14:30:00",
		PumpHistory:    make([]bool, HistorySamples),
	}
}

// trendHistory synthesizes a plausible history: a slow climb from below
// setpoint when heating, small jitter around the reading when idle.
func trendHistory(rng *rand.Rand, base float64, heating bool) []float64 {
	h := make([]float64, 0, HistorySamples)
	temp := base + 0.5
	if heating {
		temp = base - 1.0
	}
	for i := 0; i < HistorySamples; i++ {
		if heating {
			temp += 0.02 + rng.Float64()*0.06
		} else {
			temp += -0.03 + rng.Float64()*0.06
		}
		h = append(h, temp)
	}
	return h
}

func flatHistory(v float64) []float64 {
	h := make([]float64, HistorySamples)
	for i := range h {
		h[i] = v
	}
	return h
}

// boolRuns builds a pump history of off samples followed by on samples.
func boolRuns(off, on int) []bool {
	h := make([]bool, 0, off+on)
	for i := 0; i < off; i++ {
		h = append(h, false)
	}
	for i := 0; i < on; i++ {
		h = append(h, true)
	}
	return h
}
