package concrete

import (
	"errors"
	"math"
	"testing"

	"github.com/buildwise/buildwise/internal/units"
)

func nearlyEqual(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

func TestCalculateVolumeWithFeet(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(10, 10, 0.5, units.Feet)

	nearlyEqual(t, "cubic yards", v.CubicYards, 1.85, 0.01)
	nearlyEqual(t, "cubic meters", v.CubicMeters, 1.42, 0.01)
	nearlyEqual(t, "raw cubic feet", v.RawCubicFeet, 50, 1e-9)
}

func TestCalculateVolumeWithMeters(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(3, 3, 0.15, units.Meters)

	nearlyEqual(t, "cubic yards", v.CubicYards, 1.77, 0.01)
	nearlyEqual(t, "cubic meters", v.CubicMeters, 1.35, 0.01)
}

func TestYardMeterRatioHolds(t *testing.T) {
	c := NewCalculator()
	dims := [][3]float64{{10, 10, 0.5}, {12, 8, 1}, {4.5, 3.2, 0.25}, {100, 40, 2}}

	for _, d := range dims {
		for _, unit := range []units.LengthUnit{units.Feet, units.Meters} {
			v := c.CalculateVolume(d[0], d[1], d[2], unit)
			if v.CubicMeters == 0 {
				continue
			}
			ratio := v.CubicYards / v.CubicMeters
			// yd³ per m³, within the tolerance the 2-decimal rounding allows.
			nearlyEqual(t, "yard/meter ratio", ratio, 1.30795, 0.02)
		}
	}
}

func TestZeroAndNegativeDimensionsAreNotRejected(t *testing.T) {
	c := NewCalculator()

	zero := c.CalculateVolume(10, 10, 0, units.Feet)
	if zero.RawCubicFeet != 0 {
		t.Fatalf("expected zero volume, got %v", zero.RawCubicFeet)
	}

	neg := c.CalculateVolume(10, 10, -0.5, units.Feet)
	if neg.RawCubicFeet >= 0 {
		t.Fatalf("expected negative volume to pass through, got %v", neg.RawCubicFeet)
	}
}

func TestCalculateCost(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(10, 10, 0.5, units.Feet)

	cost, err := c.CalculateCost(v, 150, PerCubicYard)
	if err != nil {
		t.Fatalf("CalculateCost: %v", err)
	}
	nearlyEqual(t, "cost per cubic yard", cost, 277.78, 0.01)

	metric, err := c.CalculateCost(v, 150, PerCubicMeter)
	if err != nil {
		t.Fatalf("CalculateCost metric: %v", err)
	}
	nearlyEqual(t, "cost per cubic meter", metric, 212.38, 0.01)
}

func TestCalculateCostRejectsUnknownUnit(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(10, 10, 0.5, units.Feet)

	if _, err := c.CalculateCost(v, 150, PricingUnit("cubic_furlong")); !errors.Is(err, ErrUnsupportedUnit) {
		t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
	}
}

func TestBagsNeeded(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(10, 10, 0.5, units.Feet) // 50 ft³

	bags80 := c.BagsNeeded(v, 80, units.Pounds)
	if bags80 != 84 { // 50 / 0.6 = 83.3 -> 84
		t.Fatalf("80 lb bags = %d, want 84", bags80)
	}

	bags60 := c.BagsNeeded(v, 60, units.Pounds)
	if bags60 != 112 { // 50 / 0.45 = 111.1 -> 112
		t.Fatalf("60 lb bags = %d, want 112", bags60)
	}

	bags50kg := c.BagsNeeded(v, 50, units.Kilograms)
	if bags50kg != 100 { // 50 / 0.5 = 100
		t.Fatalf("50 kg bags = %d, want 100", bags50kg)
	}
}

func TestBagsNeededMonotonicInBagSize(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(12, 10, 0.4, units.Feet)

	prev := math.MaxInt
	for _, size := range []float64{40, 60, 80, 90} {
		bags := c.BagsNeeded(v, size, units.Pounds)
		if bags > prev {
			t.Fatalf("bags increased from %d to %d as bag size grew to %v", prev, bags, size)
		}
		prev = bags
	}
}

func TestBagsNeededNonPositiveBagSize(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(10, 10, 0.5, units.Feet)

	// Zero coverage must not leak an overflowed division into the count.
	for _, size := range []float64{0, -40} {
		for _, unit := range []units.WeightUnit{units.Pounds, units.Kilograms} {
			if bags := c.BagsNeeded(v, size, unit); bags != 0 {
				t.Fatalf("bag size %v %s: bags = %d, want 0", size, unit, bags)
			}
		}
	}
}

func TestBagsNeededScalesNonStandardSizes(t *testing.T) {
	c := NewCalculator()
	v := c.CalculateVolume(3, 3, 1, units.Feet) // 9 ft³

	// 40 lb bag covers half of an 80 lb bag: 0.3 ft³ -> 30 bags.
	if bags := c.BagsNeeded(v, 40, units.Pounds); bags != 30 {
		t.Fatalf("40 lb bags = %d, want 30", bags)
	}
	// 25 kg bag covers half of a 50 kg bag: 0.25 ft³ -> 36 bags.
	if bags := c.BagsNeeded(v, 25, units.Kilograms); bags != 36 {
		t.Fatalf("25 kg bags = %d, want 36", bags)
	}
}
