package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse errors. Quantity parsing never panics; every failure is one of
// these or a wrapped numeric error.
var (
	ErrEmptyString   = errors.New("string is empty")
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrInvalidFormat = errors.New("invalid format")
)

var weightUnits = map[string]uint64{
	"mg": 1, "milligram": 1,
	"cg": 10, "centigram": 10,
	"dg": 100, "decigram": 100,
	"g": 1_000, "gram": 1_000,
	"kg": 1_000_000, "kilogram": 1_000_000,
	"oz": Ounce, "ounce": Ounce,
	"lb": Pound, "pound": Pound,
}

var volumeUnits = map[string]uint64{
	"ml": 1_000, "milliliter": 1_000, "millilitre": 1_000,
	"cl": 10_000, "centiliter": 10_000, "centilitre": 10_000,
	"dl": 100_000, "deciliter": 100_000, "decilitre": 100_000,
	"l": 1_000_000, "liter": 1_000_000, "litre": 1_000_000,
	"tsp": Teaspoon, "tbsp": Tablespoon, "floz": FluidOunce,
	"cup": Cup, "quart": Quart,
}

// splitQuantity cuts s into a numeric amount and a normalized unit
// token: the first space-separated field parsed as a float, and the
// second field trimmed, lowercased, with any plural "s" trimmed off
// the end. Anything after the unit token is ignored.
func splitQuantity(s string) (float64, string, error) {
	if s == "" {
		return 0, "", ErrEmptyString
	}
	amountTok, rest, ok := strings.Cut(s, " ")
	if !ok {
		return 0, "", ErrInvalidFormat
	}
	unitTok, _, _ := strings.Cut(rest, " ")
	unit := strings.TrimRight(strings.ToLower(strings.TrimSpace(unitTok)), "s")
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountTok), 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse amount: %w", err)
	}
	return amount, unit, nil
}

// clampUint64 truncates f to a uint64, clamping NaN and negative
// values to 0 and values beyond the range to the maximum.
func clampUint64(f float64) uint64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= 1<<64 {
		return math.MaxUint64
	}
	return uint64(f)
}

// ParseWeight parses text like "250 g" or "1.5 pounds shoulder" into a
// Metric-tagged weight. The unit may be followed by arbitrary text.
func ParseWeight(s string) (Weight, error) {
	amount, unit, err := splitQuantity(s)
	if err != nil {
		return Weight{}, err
	}
	factor, ok := weightUnits[unit]
	if !ok {
		return Weight{}, ErrUnknownUnit
	}
	return NewWeight(clampUint64(amount * float64(factor))), nil
}

// ParseVolume parses text like "250 ml" or "2 cups stock" into a
// Metric-tagged volume. "rice" counts as a unit only when the input
// also mentions "cup", as in "1 rice cup".
func ParseVolume(s string) (Volume, error) {
	amount, unit, err := splitQuantity(s)
	if err != nil {
		return Volume{}, err
	}
	factor, ok := volumeUnits[unit]
	if unit == "rice" && strings.Contains(s, "cup") {
		factor, ok = RiceCup, true
	}
	if !ok {
		return Volume{}, ErrUnknownUnit
	}
	return NewVolume(clampUint64(amount * float64(factor))), nil
}

// ParseQuantity parses an amount-and-unit string as a weight first,
// then as a volume. Results are Metric-tagged; pick a display system
// afterwards with Convert.
func ParseQuantity(s string) (Quantity, error) {
	if w, err := ParseWeight(s); err == nil {
		return w, nil
	}
	v, err := ParseVolume(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}
