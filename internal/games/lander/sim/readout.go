package sim

import "fmt"

// Readouts are the instrument values shown to the pilot, two decimals each.
type Readouts struct {
	VerticalSpeed   string
	HorizontalSpeed string
	Altitude        string
	Tilt            string
	Fuel            string
}

// Readouts formats the ship's instruments.
func (s Ship) Readouts() Readouts {
	return Readouts{
		VerticalSpeed:   format2(s.VerticalSpeed),
		HorizontalSpeed: format2(s.HorizontalSpeed),
		Altitude:        format2(s.Y),
		Tilt:            format2(s.Tilt),
		Fuel:            format2(s.Fuel),
	}
}

func format2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
