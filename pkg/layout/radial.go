package layout

import "math"

// Radial maps (radius, angle) value pairs into Cartesian coordinates for
// circular layouts. The radius input is rescaled linearly from RadiusDomain
// to [0, 1], the angle input from AngleDomain to [0, 2π]; Offset is added to
// the angle before conversion.
//
// Reversing a domain (first bound greater than the second) reverses the
// mapping - a dendrogram passes a reversed radius domain so the root lands
// at the center. A zero-width domain maps every input to the midpoint of the
// output range instead of dividing by zero. Non-finite inputs propagate as
// NaN coordinates; nothing is clamped.
type Radial struct {
	RadiusDomain [2]float64
	AngleDomain  [2]float64
	Offset       float64
}

// Transform converts one (radius, angle) pair to Cartesian (x, y).
func (t Radial) Transform(radius, angle float64) (x, y float64) {
	r := rescale(radius, t.RadiusDomain, 0, 1)
	theta := rescale(angle, t.AngleDomain, 0, 2*math.Pi) + t.Offset
	return r * math.Cos(theta), r * math.Sin(theta)
}

// rescale maps v linearly from the given domain onto [lo, hi].
// A zero-width domain maps everything to the midpoint of [lo, hi].
func rescale(v float64, domain [2]float64, lo, hi float64) float64 {
	span := domain[1] - domain[0]
	if span == 0 {
		return (lo + hi) / 2
	}
	return lo + (v-domain[0])/span*(hi-lo)
}
