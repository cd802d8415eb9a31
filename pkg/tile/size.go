package tile

// Unit tags a Size value as a percentage of its parent or an absolute
// pixel count.
type Unit string

// Size units.
const (
	UnitPercent Unit = "percent"
	UnitPixel   Unit = "pixel"
)

// Size is a magnitude with a unit. Sibling rows within a grid and
// sibling columns within a row each sum proportionally; Redistribute
// converts between units when siblings mix them.
type Size struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Percent returns a percentage-of-parent size.
func Percent(v float64) Size { return Size{Value: v, Unit: UnitPercent} }

// Pixels returns an absolute pixel size.
func Pixels(v float64) Size { return Size{Value: v, Unit: UnitPixel} }

// IsZero reports whether the size is the zero value (no unit set).
func (s Size) IsZero() bool { return s.Unit == "" && s.Value == 0 }

// pixels converts the size to pixels against the given container basis.
func (s Size) pixels(basis float64) float64 {
	if s.Unit == UnitPercent {
		return s.Value / 100 * basis
	}
	return s.Value
}

// sizeFromPixels converts a pixel magnitude back into the given unit.
func sizeFromPixels(px, basis float64, unit Unit) Size {
	if unit == UnitPercent {
		if basis == 0 {
			return Size{Value: 0, Unit: UnitPercent}
		}
		return Size{Value: px / basis * 100, Unit: UnitPercent}
	}
	return Size{Value: px, Unit: UnitPixel}
}

// Redistribute distributes a freed magnitude (from a removed sibling,
// in the removed sibling's unit) across the remaining siblings in
// proportion to each sibling's current share of the total. The returned
// slice is a new slice; the input is not modified.
//
// When all siblings share the freed size's unit the arithmetic happens
// directly in that unit. Mixed-unit siblings are resized in a common
// pixel space computed against basis (the container's current pixel
// extent) and converted back to their own unit afterwards.
//
// If the remaining siblings sum to zero the redistribution is skipped
// rather than dividing by zero, and the input sizes are returned
// unchanged.
func Redistribute(siblings []Size, freed Size, basis float64) []Size {
	out := append([]Size(nil), siblings...)
	if len(out) == 0 || freed.Value == 0 {
		return out
	}

	uniform := true
	for _, s := range out {
		if s.Unit != freed.Unit {
			uniform = false
			break
		}
	}

	if uniform {
		var total float64
		for _, s := range out {
			total += s.Value
		}
		if total == 0 {
			return out
		}
		for i := range out {
			out[i].Value += out[i].Value / total * freed.Value
		}
		return out
	}

	freedPx := freed.pixels(basis)
	var totalPx float64
	px := make([]float64, len(out))
	for i, s := range out {
		px[i] = s.pixels(basis)
		totalPx += px[i]
	}
	if totalPx == 0 {
		return out
	}
	for i := range out {
		newPx := px[i] + px[i]/totalPx*freedPx
		out[i] = sizeFromPixels(newPx, basis, out[i].Unit)
	}
	return out
}
