package types

import "fmt"

// Hertz is a float64 wrapper representing a frequency in Hz.
type Hertz float64

// Humanized returns a human-readable string with automatic unit (Hz, kHz, MHz, GHz).
func (h Hertz) Humanized() string {
	v := float64(h)
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.3f GHz", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.3f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.3f kHz", v/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", v)
	}
}

// KHz returns the frequency in kilohertz.
func (h Hertz) KHz() float64 { return float64(h) / 1e3 }

// MHz returns the frequency in megahertz.
func (h Hertz) MHz() float64 { return float64(h) / 1e6 }

// Watts is a float64 wrapper representing a power in W.
type Watts float64

// Humanized returns a human-readable string with automatic unit (µW, mW, W, kW).
func (w Watts) Humanized() string {
	v := float64(w)
	av := v
	if av < 0 {
		av = -av
	}
	switch {
	case av >= 1e3:
		return fmt.Sprintf("%.3f kW", v/1e3)
	case av >= 1:
		return fmt.Sprintf("%.3f W", v)
	case av >= 1e-3:
		return fmt.Sprintf("%.3f mW", v*1e3)
	default:
		return fmt.Sprintf("%.3f µW", v*1e6)
	}
}

// MW returns the power in milliwatts.
func (w Watts) MW() float64 { return float64(w) * 1e3 }

// Henry is a float64 wrapper representing an inductance in H.
type Henry float64

// Humanized returns a human-readable string with automatic unit (nH, µH, mH, H).
func (h Henry) Humanized() string {
	v := float64(h)
	switch {
	case v >= 1:
		return fmt.Sprintf("%.3f H", v)
	case v >= 1e-3:
		return fmt.Sprintf("%.3f mH", v*1e3)
	case v >= 1e-6:
		return fmt.Sprintf("%.3f µH", v*1e6)
	default:
		return fmt.Sprintf("%.3f nH", v*1e9)
	}
}

// UH returns the inductance in microhenries.
func (h Henry) UH() float64 { return float64(h) * 1e6 }
