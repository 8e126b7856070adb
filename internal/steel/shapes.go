package steel

import (
	"math"
	"strings"

	"github.com/buildwise/buildwise/internal/units"
)

// Shape is a steel cross-section. The variant set is closed: every shape the
// calculator understands is one of the structs below, and area dispatch is a
// single type switch in crossSection. Dimensions are magnitudes in the
// caller's dimension unit.
type Shape interface {
	isShape()
}

// Rebar is reinforcing bar identified by its standard bar number.
type Rebar struct {
	BarNumber int
}

// RoundBar is a solid round bar, or a round tube/pipe when WallThickness is
// set.
type RoundBar struct {
	Diameter      float64
	WallThickness float64 // zero means solid
}

// RectBar is a solid square/rectangular bar, or an HSS tube when
// WallThickness is set.
type RectBar struct {
	Width         float64
	Height        float64
	WallThickness float64 // zero means solid
}

// Angle is an L-shaped section.
type Angle struct {
	Width     float64
	Height    float64
	Thickness float64
}

// Channel is a C-shaped section.
type Channel struct {
	Width     float64
	Height    float64
	Thickness float64
}

// IBeam is an I- or wide-flange section.
type IBeam struct {
	FlangeWidth     float64
	WebHeight       float64
	FlangeThickness float64
	WebThickness    float64
}

// FlatBar is flat bar, plate or sheet; length is handled as the independent
// multiplier.
type FlatBar struct {
	Width     float64
	Thickness float64
}

// Generic carries a direct area or weight-per-foot override for shapes the
// catalog does not model. It never fails; a zero value degrades to a
// 1 lb/ft section.
type Generic struct {
	AreaSqInches  float64
	WeightPerFoot float64
}

func (Rebar) isShape()    {}
func (RoundBar) isShape() {}
func (RectBar) isShape()  {}
func (Angle) isShape()    {}
func (Channel) isShape()  {}
func (IBeam) isShape()    {}
func (FlatBar) isShape()  {}
func (Generic) isShape()  {}

// section is a resolved cross-section: area in square inches and weight per
// foot in pounds.
type section struct {
	areaSqInches  float64
	weightPerFoot float64
}

// fromArea derives weight per foot from a cross-sectional area in square
// inches using the steel density constant.
func fromArea(area float64) section {
	return section{
		areaSqInches:  area,
		weightPerFoot: area * DensityPoundsPerCubicFoot / 144,
	}
}

// fromWeight derives an approximate area from a tabulated weight per foot.
func fromWeight(weightPerFoot float64) section {
	return section{
		areaSqInches:  weightPerFoot * 144 / DensityPoundsPerCubicFoot,
		weightPerFoot: weightPerFoot,
	}
}

// crossSection resolves a shape to its cross-section, normalizing all
// dimensions to inches first.
func crossSection(shape Shape, dimensionUnit units.LengthUnit) section {
	in := func(v float64) float64 { return units.ToInches(v, dimensionUnit) }

	switch s := shape.(type) {
	case Rebar:
		props := RebarProperties(s.BarNumber)
		return section{areaSqInches: props.AreaSqInches, weightPerFoot: props.WeightPerFoot}

	case RoundBar:
		d := in(s.Diameter)
		if s.WallThickness > 0 {
			ro := d / 2
			ri := ro - in(s.WallThickness)
			return fromArea(math.Pi * (ro*ro - ri*ri))
		}
		r := d / 2
		return fromArea(math.Pi * r * r)

	case RectBar:
		w, h := in(s.Width), in(s.Height)
		if s.WallThickness > 0 {
			t := in(s.WallThickness)
			return fromArea(w*h - (w-2*t)*(h-2*t))
		}
		return fromArea(w * h)

	case Angle:
		w, h, t := in(s.Width), in(s.Height), in(s.Thickness)
		if lbPerFoot, ok := standardAngleWeight(w, h, t); ok {
			return fromWeight(lbPerFoot)
		}
		// Two legs sharing a corner; the t² term removes the overlap.
		return fromArea(w*t + h*t - t*t)

	case Channel:
		w, h, t := in(s.Width), in(s.Height), in(s.Thickness)
		// Web plus two flanges.
		return fromArea(w*t + 2*(h-t)*t)

	case IBeam:
		fw, wh := in(s.FlangeWidth), in(s.WebHeight)
		ft, wt := in(s.FlangeThickness), in(s.WebThickness)
		// Two flanges plus the web between them.
		return fromArea(2*fw*ft + (wh-2*ft)*wt)

	case FlatBar:
		return fromArea(in(s.Width) * in(s.Thickness))

	case Generic:
		if s.WeightPerFoot > 0 {
			return fromWeight(s.WeightPerFoot)
		}
		if s.AreaSqInches > 0 {
			return fromArea(s.AreaSqInches)
		}
		return fromWeight(1.0)
	}

	// Unreachable for the closed variant set; degrade like Generic.
	return fromWeight(1.0)
}

// ShapeFromDimensions builds the shape variant for a steel type from a loose
// dimension map, the form the HTTP API accepts. Missing fields take the
// catalog defaults; an unknown type with area or weight overrides becomes a
// Generic section. It never fails.
func ShapeFromDimensions(steelType Type, dims map[string]float64) Shape {
	get := func(key string, fallback float64) float64 {
		if v, ok := dims[key]; ok {
			return v
		}
		return fallback
	}

	switch steelType {
	case TypeRebar:
		return Rebar{BarNumber: int(get("bar_number", 4))}
	case TypeRoundBar, TypeHSSRound, TypePipe, TypeTubing:
		return RoundBar{
			Diameter:      get("diameter", 1.0),
			WallThickness: get("wall_thickness", 0),
		}
	case TypeSquareBar, TypeHSSSquare, TypeHSSRectangular:
		width := get("width", 1.0)
		return RectBar{
			Width:         width,
			Height:        get("height", width),
			WallThickness: get("wall_thickness", 0),
		}
	case TypeAngle:
		return Angle{
			Width:     get("width", 3.0),
			Height:    get("height", 3.0),
			Thickness: get("thickness", 0.25),
		}
	case TypeChannel:
		return Channel{
			Width:     get("width", 3.0),
			Height:    get("height", 5.0),
			Thickness: get("thickness", 0.25),
		}
	case TypeIBeam, TypeWideFlange:
		return IBeam{
			FlangeWidth:     get("flange_width", 4.0),
			WebHeight:       get("web_height", 8.0),
			FlangeThickness: get("flange_thickness", 0.5),
			WebThickness:    get("web_thickness", 0.25),
		}
	case TypeFlatBar, TypePlate, TypeSheet:
		return FlatBar{
			Width:     get("width", 12.0),
			Thickness: get("thickness", 0.25),
		}
	}

	return Generic{
		AreaSqInches:  get("area_sq_inches", 0),
		WeightPerFoot: get("weight_per_foot", 0),
	}
}

// ParseType normalizes a steel type string. Exact matches win; otherwise a
// substring match against the known types, then keyword heuristics, and
// finally plate — estimates degrade rather than fail on sloppy input.
func ParseType(s string) Type {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")

	for _, t := range AllTypes {
		if normalized == string(t) {
			return t
		}
	}
	for _, t := range AllTypes {
		if strings.Contains(string(t), normalized) && normalized != "" {
			return t
		}
	}

	switch {
	case strings.Contains(normalized, "bar"):
		switch {
		case strings.Contains(normalized, "round"):
			return TypeRoundBar
		case strings.Contains(normalized, "square"):
			return TypeSquareBar
		default:
			return TypeFlatBar
		}
	case strings.Contains(normalized, "beam"):
		return TypeIBeam
	case strings.Contains(normalized, "pipe"), strings.Contains(normalized, "tube"):
		return TypeHSSRound
	}
	return TypePlate
}

// ParseGrade normalizes a steel grade string; empty or unknown strings return
// the zero Grade so CalculateCost can apply its per-type default.
func ParseGrade(s string) Grade {
	normalized := Grade(strings.ToLower(strings.TrimSpace(s)))
	for _, g := range AllGrades {
		if normalized == g {
			return g
		}
	}
	return ""
}
