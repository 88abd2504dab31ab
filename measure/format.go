package measure

import "fmt"

// Breakpoints derived from the conversion factors. Each names the
// value where its display band ends.
const (
	ounceLimit = Ounce * 8
	poundLimit = Pound * 4

	dropLimit            = Teaspoon / 15
	eighthTspLimit       = Teaspoon * 12 / 80
	quarterTspLimit      = Teaspoon * 12 / 40
	halfTspLimit         = Teaspoon * 12 / 20
	threeQuarterTspLimit = Teaspoon * 120_000 / 133_333
	tspLimit             = Teaspoon * 12 / 10
	halfTbspLimit        = Tablespoon * 12 / 20
	tbspLimit            = Tablespoon * 12 / 10
	flozLimit            = FluidOunce * 8
	cupLimit             = Quart * 190 / 200
	quartLimit           = Quart * 5
)

// A tier renders every value below its limit that the tiers before it
// passed over. Tables are ordered ascending and end with a catch-all
// tier whose limit is ignored, so rendering is total over uint64.
type tier struct {
	limit  uint64
	render func(v uint64) string
}

func renderTiers(v uint64, tiers []tier) string {
	last := len(tiers) - 1
	for _, t := range tiers[:last] {
		if v < t.limit {
			return t.render(v)
		}
	}
	return tiers[last].render(v)
}

// fixed renders the same text for every value in the band.
func fixed(s string) func(uint64) string {
	return func(uint64) string { return s }
}

// whole renders the value integer-divided by div.
func whole(div uint64, unit string) func(uint64) string {
	return func(v uint64) string { return fmt.Sprintf("%d %s", v/div, unit) }
}

// tenth renders the value divided by div to one decimal place.
func tenth(div uint64, unit string) func(uint64) string {
	return func(v uint64) string {
		return fmt.Sprintf("%.1f %s", float64(v)/float64(div), unit)
	}
}

var weightMetric = []tier{
	{1, fixed("0 g")},
	{1_000, whole(1, "mg")},
	{1_000_000, whole(1_000, "g")},
	{10_000_000, tenth(1_000_000, "kg")},
	{render: whole(1_000_000, "kg")},
}

var weightImperial = []tier{
	{250, fixed("0 oz")},
	{500, fixed("1/8 tsp")},
	{1_000, fixed("1/4 tsp")},
	{2_000, fixed("1/2 tsp")},
	{4_000, fixed("1 tsp")},
	{8_000, fixed("1/2 tbsp")},
	{12_000, fixed("1 tbsp")},
	{Ounce, tenth(Ounce, "oz")},
	{ounceLimit, tenth(Ounce, "g")},
	{poundLimit, tenth(Pound, "g")},
	{render: whole(Pound, "g")},
}

var volumeMetric = []tier{
	{500, fixed("0 ml")},
	{500_000, whole(1_000, "ml")},
	{5_000_000, tenth(1_000_000, "l")},
	{render: whole(1_000_000, "l")},
}

var volumeImperial = []tier{
	{dropLimit, fixed("0 tsp")},
	{eighthTspLimit, fixed("1/8 tsp")},
	{quarterTspLimit, fixed("1/4 tsp")},
	{halfTspLimit, fixed("1/2 tsp")},
	{threeQuarterTspLimit, fixed("3/4 tsp")},
	{tspLimit, fixed("1 tsp")},
	{halfTbspLimit, fixed("1/2 tbsp")},
	{tbspLimit, fixed("1 tbsp")},
	{flozLimit, tenth(FluidOunce, "floz")},
	{cupLimit, tenth(Cup, "cups")},
	{quartLimit, tenth(Quart, "quarts")},
	{render: whole(Quart, "quarts")},
}

// String renders the weight for its display system.
func (w Weight) String() string {
	if w.sys == Imperial {
		return renderTiers(w.mg, weightImperial)
	}
	return renderTiers(w.mg, weightMetric)
}

// String renders the volume for its display system.
func (v Volume) String() string {
	if v.sys == Imperial {
		return renderTiers(v.uml, volumeImperial)
	}
	return renderTiers(v.uml, volumeMetric)
}
