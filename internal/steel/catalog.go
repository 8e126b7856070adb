package steel

import (
	"fmt"
	"math"
)

// standardAngleWeights tabulates published lb/ft for common equal-leg angle
// sizes, keyed by "WxHxT" with the thickness as a fraction. A tabulated
// value, when present, is preferred over the area formula.
var standardAngleWeights = map[string]float64{
	"2x2x1/4": 3.19,
	"3x3x1/4": 7.2,
	"4x4x1/4": 9.8,
	"3x3x3/8": 10.6,
	"4x4x3/8": 14.3,
	"6x6x3/8": 22.2,
}

// standardAngleWeight looks up the tabulated lb/ft for an angle whose rounded
// leg sizes and thickness match a catalog entry.
func standardAngleWeight(widthIn, heightIn, thicknessIn float64) (float64, bool) {
	key := fmt.Sprintf("%dx%dx%s",
		int(math.Round(widthIn)), int(math.Round(heightIn)), fractionLabel(thicknessIn))
	w, ok := standardAngleWeights[key]
	return w, ok
}

// fractionLabel renders common fractional thicknesses the way catalogs print
// them.
func fractionLabel(t float64) string {
	switch t {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.375:
		return "3/8"
	case 0.5:
		return "1/2"
	}
	return fmt.Sprintf("%g", t)
}

// ShapeSpec describes one standard catalog entry. Only the fields relevant
// to the shape family are set.
type ShapeSpec struct {
	BarNumber       int     `json:"bar_number,omitempty"`
	Diameter        float64 `json:"diameter,omitempty"`
	WallThickness   float64 `json:"wall_thickness,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
	Thickness       float64 `json:"thickness,omitempty"`
	FlangeWidth     float64 `json:"flange_width,omitempty"`
	WebHeight       float64 `json:"web_height,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty"`
	Description     string  `json:"description"`
}

// standardShapes is the catalog of common stock sections by type.
var standardShapes = map[Type][]ShapeSpec{
	TypeRebar: {
		{BarNumber: 3, Diameter: 0.375, Description: `#3 (3/8")`},
		{BarNumber: 4, Diameter: 0.500, Description: `#4 (1/2")`},
		{BarNumber: 5, Diameter: 0.625, Description: `#5 (5/8")`},
		{BarNumber: 6, Diameter: 0.750, Description: `#6 (3/4")`},
		{BarNumber: 7, Diameter: 0.875, Description: `#7 (7/8")`},
		{BarNumber: 8, Diameter: 1.000, Description: `#8 (1")`},
		{BarNumber: 9, Diameter: 1.128, Description: `#9 (1-1/8")`},
		{BarNumber: 10, Diameter: 1.270, Description: `#10 (1-1/4")`},
		{BarNumber: 11, Diameter: 1.410, Description: `#11 (1-3/8")`},
	},
	TypeAngle: {
		{Width: 2, Height: 2, Thickness: 0.25, Description: "L2×2×1/4"},
		{Width: 3, Height: 3, Thickness: 0.25, Description: "L3×3×1/4"},
		{Width: 4, Height: 4, Thickness: 0.25, Description: "L4×4×1/4"},
		{Width: 4, Height: 4, Thickness: 0.375, Description: "L4×4×3/8"},
		{Width: 6, Height: 6, Thickness: 0.375, Description: "L6×6×3/8"},
	},
	TypeChannel: {
		{Width: 3, Height: 5, Thickness: 0.314, Description: "C3×5"},
		{Width: 4, Height: 7.25, Thickness: 0.448, Description: "C4×7.25"},
		{Width: 5, Height: 9, Thickness: 0.325, Description: "C5×9"},
		{Width: 6, Height: 10.5, Thickness: 0.314, Description: "C6×10.5"},
		{Width: 8, Height: 11.5, Thickness: 0.303, Description: "C8×11.5"},
	},
	TypeWideFlange: {
		{FlangeWidth: 4, WebHeight: 4, FlangeThickness: 0.28, WebThickness: 0.17, Description: "W4×13"},
		{FlangeWidth: 6, WebHeight: 6, FlangeThickness: 0.355, WebThickness: 0.23, Description: "W6×15"},
		{FlangeWidth: 8, WebHeight: 8, FlangeThickness: 0.4, WebThickness: 0.25, Description: "W8×31"},
		{FlangeWidth: 10, WebHeight: 10, FlangeThickness: 0.5, WebThickness: 0.3, Description: "W10×45"},
		{FlangeWidth: 12, WebHeight: 12, FlangeThickness: 0.64, WebThickness: 0.39, Description: "W12×65"},
	},
	TypeHSSRound: {
		{Diameter: 2, WallThickness: 0.125, Description: "HSS2.000×0.125"},
		{Diameter: 3, WallThickness: 0.125, Description: "HSS3.000×0.125"},
		{Diameter: 4, WallThickness: 0.125, Description: "HSS4.000×0.125"},
		{Diameter: 5, WallThickness: 0.188, Description: "HSS5.000×0.188"},
		{Diameter: 6, WallThickness: 0.188, Description: "HSS6.000×0.188"},
	},
}

// StandardShapes returns the catalog. With a non-empty type it returns just
// that type's entries; the map is always non-nil.
func StandardShapes(steelType Type) map[Type][]ShapeSpec {
	if steelType != "" {
		return map[Type][]ShapeSpec{steelType: standardShapes[steelType]}
	}
	out := make(map[Type][]ShapeSpec, len(standardShapes))
	for t, specs := range standardShapes {
		out[t] = specs
	}
	return out
}
