// Package lumber computes board feet and cost for dimensional lumber. Sizes
// are quoted nominally (a "2x4") and converted to actual milled dimensions
// through a fixed lookup table before any volume math.
package lumber

import (
	"strings"

	"github.com/buildwise/buildwise/internal/units"
)

// Type is a lumber species.
type Type string

const (
	Pine    Type = "pine"
	Fir     Type = "fir"
	Cedar   Type = "cedar"
	Oak     Type = "oak"
	Maple   Type = "maple"
	Walnut  Type = "walnut"
	Redwood Type = "redwood"
	Spruce  Type = "spruce"
	Cypress Type = "cypress"
	Poplar  Type = "poplar"
)

// Grade is a lumber grade.
type Grade string

const (
	Select       Grade = "select"
	NumberOne    Grade = "no.1"
	NumberTwo    Grade = "no.2"
	NumberThree  Grade = "no.3"
	Construction Grade = "construction"
	Standard     Grade = "standard"
	Utility      Grade = "utility"
	Economy      Grade = "economy"
	Stud         Grade = "stud"
	Custom       Grade = "custom"
)

// defaultPricePerBoardFoot is used when a (type, grade) pair has no table
// entry.
const defaultPricePerBoardFoot = 3.0

// nominalToActual maps nominal inch sizes to actual milled dimensions. The
// values follow milling standards and are not derivable from a formula;
// nominal sizes not present pass through unchanged, treated as already
// actual.
var nominalToActual = map[float64]float64{
	2:  1.5,
	3:  2.5,
	4:  3.5,
	6:  5.5,
	8:  7.25,
	10: 9.25,
	12: 11.25,
}

// BoardFeetResult is the outcome of a single board-feet calculation.
type BoardFeetResult struct {
	BoardFeet       float64 `json:"board_feet"`
	ActualWidth     float64 `json:"actual_width"`
	ActualThickness float64 `json:"actual_thickness"`
	LengthFeet      float64 `json:"length_feet"`
	Quantity        int     `json:"quantity"`
	VolumeCubicFeet float64 `json:"volume_cubic_feet"`
}

// Piece describes one lumber line item in a project: nominal width and
// thickness in inches, a length in the project's length unit, and a count.
type Piece struct {
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
	Length    float64 `json:"length"`
	Quantity  int     `json:"quantity"`
}

// ProjectResult aggregates board feet across pieces with a waste allowance.
type ProjectResult struct {
	BoardFeet          float64           `json:"board_feet"`
	BoardFeetWithWaste float64           `json:"board_feet_with_waste"`
	WasteFactor        float64           `json:"waste_factor"`
	WasteBoardFeet     float64           `json:"waste_board_feet"`
	Cost               float64           `json:"cost"`
	LumberType         Type              `json:"lumber_type"`
	Grade              Grade             `json:"grade"`
	Pieces             []BoardFeetResult `json:"pieces"`
}

// Calculator computes lumber quantities and prices. The price table is built
// once at construction and never mutated, so a Calculator is safe for
// concurrent use.
type Calculator struct {
	prices map[Type]map[Grade]float64
}

// NewCalculator returns a lumber calculator with the default price table.
// Pine and fir carry explicit market prices; hardwoods run 2.5x pine,
// outdoor specialty woods 1.75x, remaining softwoods 1.1x.
func NewCalculator() *Calculator {
	pine := map[Grade]float64{
		Select:       4.50,
		NumberOne:    3.75,
		NumberTwo:    3.00,
		NumberThree:  2.25,
		Construction: 2.50,
		Standard:     2.00,
		Utility:      1.75,
		Economy:      1.50,
		Stud:         2.25,
		Custom:       5.00,
	}
	fir := map[Grade]float64{
		Select:       5.25,
		NumberOne:    4.50,
		NumberTwo:    3.75,
		NumberThree:  3.00,
		Construction: 3.50,
		Standard:     3.25,
		Utility:      2.75,
		Economy:      2.25,
		Stud:         3.50,
		Custom:       6.00,
	}

	prices := map[Type]map[Grade]float64{
		Pine: pine,
		Fir:  fir,
	}
	scaled := func(factor float64) map[Grade]float64 {
		m := make(map[Grade]float64, len(pine))
		for grade, price := range pine {
			m[grade] = price * factor
		}
		return m
	}
	for _, hardwood := range []Type{Oak, Maple, Walnut} {
		prices[hardwood] = scaled(2.5)
	}
	for _, outdoor := range []Type{Cedar, Redwood, Cypress} {
		prices[outdoor] = scaled(1.75)
	}
	for _, softwood := range []Type{Spruce, Poplar} {
		prices[softwood] = scaled(1.1)
	}

	return &Calculator{prices: prices}
}

// ActualDimension maps a nominal inch dimension to its milled size.
func ActualDimension(nominal float64) float64 {
	if actual, ok := nominalToActual[nominal]; ok {
		return actual
	}
	return nominal
}

// CalculateBoardFeet computes board feet for quantity pieces of lumber with
// the given nominal cross-section. Board feet = actual width (in) x actual
// thickness (in) x length (ft) / 12, per piece.
func (c *Calculator) CalculateBoardFeet(nominalWidth, nominalThickness, length float64, quantity int, lengthUnit units.LengthUnit) BoardFeetResult {
	actualWidth := ActualDimension(nominalWidth)
	actualThickness := ActualDimension(nominalThickness)
	lengthFeet := units.ToFeet(length, lengthUnit)

	boardFeet := actualWidth * actualThickness * lengthFeet / 12 * float64(quantity)
	volume := actualWidth / 12 * actualThickness / 12 * lengthFeet * float64(quantity)

	return BoardFeetResult{
		BoardFeet:       units.Round2(boardFeet),
		ActualWidth:     actualWidth,
		ActualThickness: actualThickness,
		LengthFeet:      lengthFeet,
		Quantity:        quantity,
		VolumeCubicFeet: volume,
	}
}

// CalculateCost prices board feet for a species and grade. A non-nil
// pricePerBoardFoot overrides the table entirely.
func (c *Calculator) CalculateCost(boardFeet float64, lumberType Type, grade Grade, pricePerBoardFoot *float64) float64 {
	price := defaultPricePerBoardFoot
	if pricePerBoardFoot != nil {
		price = *pricePerBoardFoot
	} else if grades, ok := c.prices[lumberType]; ok {
		if p, ok := grades[grade]; ok {
			price = p
		}
	}

	return units.Round2(boardFeet * price)
}

// CalculateProject totals board feet across all pieces, inflates the total by
// the waste factor and prices the inflated figure. Each piece's individual
// result is retained for breakdown reporting. A waste factor of zero is
// valid; negative values are carried through unvalidated.
func (c *Calculator) CalculateProject(pieces []Piece, lumberType Type, grade Grade, lengthUnit units.LengthUnit, pricePerBoardFoot *float64, wasteFactor float64) ProjectResult {
	results := make([]BoardFeetResult, 0, len(pieces))
	var total float64
	for _, p := range pieces {
		r := c.CalculateBoardFeet(p.Width, p.Thickness, p.Length, p.Quantity, lengthUnit)
		results = append(results, r)
		total += r.BoardFeet
	}

	withWaste := total * (1 + wasteFactor)

	return ProjectResult{
		BoardFeet:          units.Round2(total),
		BoardFeetWithWaste: units.Round2(withWaste),
		WasteFactor:        wasteFactor,
		WasteBoardFeet:     units.Round2(withWaste - total),
		Cost:               c.CalculateCost(withWaste, lumberType, grade, pricePerBoardFoot),
		LumberType:         lumberType,
		Grade:              grade,
		Pieces:             results,
	}
}

// ParseType normalizes a species string, degrading to pine when the value is
// unrecognized. Estimates should keep working on sloppy input.
func ParseType(s string) Type {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Pine, Fir, Cedar, Oak, Maple, Walnut, Redwood, Spruce, Cypress, Poplar:
		return t
	}
	return Pine
}

// ParseGrade normalizes a grade string, degrading to no.2 when the value is
// unrecognized.
func ParseGrade(s string) Grade {
	switch g := Grade(strings.ToLower(strings.TrimSpace(s))); g {
	case Select, NumberOne, NumberTwo, NumberThree, Construction, Standard, Utility, Economy, Stud, Custom:
		return g
	}
	return NumberTwo
}
