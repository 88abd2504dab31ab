// Package measure provides the units of measure used in recipe
// documents: weights stored as milligrams and volumes stored as
// thousandths of a millilitre, both as unsigned 64-bit integers.
//
// Every quantity carries a display system next to its canonical value.
// Converting between Metric and Imperial only swaps the display
// system; the stored value never changes. Rendering walks an ordered
// breakpoint table, so every representable value has exactly one
// textual form.
package measure

// System selects how a quantity renders. It has no effect on the
// stored canonical value.
type System uint8

const (
	Metric System = iota
	Imperial
)

// String returns the system's display name.
func (s System) String() string {
	if s == Imperial {
		return "Imperial"
	}
	return "Metric"
}

// Conversion factors into canonical units: milligrams for weight,
// thousandths of a millilitre for volume.
const (
	Ounce uint64 = 28_349
	Pound uint64 = 453_592

	Teaspoon   uint64 = 4_928
	Tablespoon uint64 = 14_786
	FluidOunce uint64 = 29_573
	RiceCup    uint64 = 180_000
	Cup        uint64 = 236_588
	Quart      uint64 = 946_353
)

// Quantity is a measured amount of an ingredient: either a Weight or a
// Volume. These two are the only implementations, so callers may
// type-switch over them exhaustively.
type Quantity interface {
	// String renders the quantity for its current display system.
	String() string
	// Get returns the canonical value: milligrams for weights,
	// thousandths of a millilitre for volumes.
	Get() uint64
	// System returns the display system the quantity is tagged with.
	System() System

	isQuantity()
}

var (
	_ Quantity = Weight{}
	_ Quantity = Volume{}
)

// Weight is a canonical milligram count tagged with a display system.
type Weight struct {
	mg  uint64
	sys System
}

// NewWeight returns a Metric-tagged weight of mg milligrams.
func NewWeight(mg uint64) Weight {
	return Weight{mg: mg}
}

// Get returns the weight in milligrams.
func (w Weight) Get() uint64 { return w.mg }

// System returns the display system the weight is tagged with.
func (w Weight) System() System { return w.sys }

// AsMetric re-tags the weight for metric display, leaving the
// milligram value untouched.
func (w Weight) AsMetric() Weight {
	w.sys = Metric
	return w
}

// AsImperial re-tags the weight for imperial display, leaving the
// milligram value untouched.
func (w Weight) AsImperial() Weight {
	w.sys = Imperial
	return w
}

func (Weight) isQuantity() {}

// Volume is a canonical count of thousandths of a millilitre tagged
// with a display system.
type Volume struct {
	uml uint64
	sys System
}

// NewVolume returns a Metric-tagged volume of uml thousandths of a
// millilitre.
func NewVolume(uml uint64) Volume {
	return Volume{uml: uml}
}

// Get returns the volume in thousandths of a millilitre.
func (v Volume) Get() uint64 { return v.uml }

// System returns the display system the volume is tagged with.
func (v Volume) System() System { return v.sys }

// AsMetric re-tags the volume for metric display, leaving the stored
// value untouched.
func (v Volume) AsMetric() Volume {
	v.sys = Metric
	return v
}

// AsImperial re-tags the volume for imperial display, leaving the
// stored value untouched.
func (v Volume) AsImperial() Volume {
	v.sys = Imperial
	return v
}

func (Volume) isQuantity() {}

// Convert re-tags q for the given display system. The canonical value
// is never modified. A nil quantity stays nil.
func Convert(q Quantity, sys System) Quantity {
	switch t := q.(type) {
	case Weight:
		if sys == Imperial {
			return t.AsImperial()
		}
		return t.AsMetric()
	case Volume:
		if sys == Imperial {
			return t.AsImperial()
		}
		return t.AsMetric()
	}
	return q
}
