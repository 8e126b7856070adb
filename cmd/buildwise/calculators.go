package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildwise/buildwise/internal/concrete"
	"github.com/buildwise/buildwise/internal/lumber"
	"github.com/buildwise/buildwise/internal/steel"
	"github.com/buildwise/buildwise/internal/units"
)

func concreteCmd() *cobra.Command {
	var (
		length, width, depth float64
		unit                 string
		pricePerUnit         float64
		pricingUnit          string
		bagSize              float64
		bagUnit              string
		output               string
		detail               bool
	)

	cmd := &cobra.Command{
		Use:   "concrete",
		Short: "Calculate concrete volume, cost and bag count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lengthUnit, err := units.ParseLengthUnit(unit)
			if err != nil {
				return err
			}

			calc := concrete.NewCalculator()
			volume := calc.CalculateVolume(length, width, depth, lengthUnit)

			rows := []kv{
				kvFloat("Cubic yards", volume.CubicYards),
				kvFloat("Cubic meters", volume.CubicMeters),
			}
			if detail {
				rows = append(rows, kvFloat("Raw cubic feet", volume.RawCubicFeet))
			}

			if cmd.Flags().Changed("price-per-unit") {
				cost, err := calc.CalculateCost(volume, pricePerUnit, concrete.PricingUnit(pricingUnit))
				if err != nil {
					return err
				}
				rows = append(rows, kvMoney("Cost", cost))
			}
			if cmd.Flags().Changed("bag-size") {
				parsedBagUnit, err := units.ParseWeightUnit(bagUnit)
				if err != nil {
					return err
				}
				rows = append(rows, kvInt("Bags needed", calc.BagsNeeded(volume, bagSize, parsedBagUnit)))
			}

			return printResults(rows, output)
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "slab length")
	cmd.Flags().Float64VarP(&width, "width", "w", 0, "slab width")
	cmd.Flags().Float64VarP(&depth, "depth", "d", 0, "slab depth")
	cmd.Flags().StringVarP(&unit, "unit", "u", "feet", "dimension unit (feet, meters, inches, millimeters)")
	cmd.Flags().Float64Var(&pricePerUnit, "price-per-unit", 0, "price per pricing unit")
	cmd.Flags().StringVar(&pricingUnit, "pricing-unit", "cubic_yard", "pricing unit (cubic_yard or cubic_meter)")
	cmd.Flags().Float64Var(&bagSize, "bag-size", 0, "bag size for bag count")
	cmd.Flags().StringVar(&bagUnit, "bag-unit", "lb", "bag size unit (lb or kg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a CSV file")
	cmd.Flags().BoolVar(&detail, "detail", false, "include intermediate values")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("depth")

	return cmd
}

func lumberCmd() *cobra.Command {
	var (
		width, thickness, length float64
		quantity                 int
		lengthUnit               string
		lumberType, grade        string
		price                    float64
		output                   string
		detail                   bool
	)

	cmd := &cobra.Command{
		Use:   "lumber",
		Short: "Calculate board feet and lumber cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedUnit, err := units.ParseLengthUnit(lengthUnit)
			if err != nil {
				return err
			}

			calc := lumber.NewCalculator()
			result := calc.CalculateBoardFeet(width, thickness, length, quantity, parsedUnit)

			var pricePtr *float64
			if cmd.Flags().Changed("price") {
				pricePtr = &price
			}
			cost := calc.CalculateCost(result.BoardFeet, lumber.ParseType(lumberType), lumber.ParseGrade(grade), pricePtr)

			rows := []kv{
				kvFloat("Board feet", result.BoardFeet),
				kvMoney("Cost", cost),
			}
			if detail {
				rows = append(rows,
					kvFloat("Actual width (in)", result.ActualWidth),
					kvFloat("Actual thickness (in)", result.ActualThickness),
					kvFloat("Length (ft)", result.LengthFeet),
					kvFloat("Volume (ft3)", result.VolumeCubicFeet),
				)
			}

			return printResults(rows, output)
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 0, "nominal width in inches")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", 0, "nominal thickness in inches")
	cmd.Flags().Float64VarP(&length, "length", "l", 0, "piece length")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of pieces")
	cmd.Flags().StringVar(&lengthUnit, "length-unit", "feet", "length unit")
	cmd.Flags().StringVar(&lumberType, "lumber-type", "pine", "lumber species")
	cmd.Flags().StringVar(&grade, "grade", "no.2", "lumber grade")
	cmd.Flags().Float64Var(&price, "price", 0, "price per board foot override")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a CSV file")
	cmd.Flags().BoolVar(&detail, "detail", false, "include intermediate values")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("thickness")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func lumberProjectCmd() *cobra.Command {
	var (
		pieces            []string
		lumberType, grade string
		lengthUnit        string
		wasteFactor       float64
		price             float64
		output            string
	)

	cmd := &cobra.Command{
		Use:   "lumber-project",
		Short: "Aggregate board feet across lumber pieces with a waste factor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(pieces) == 0 {
				return fmt.Errorf("at least one --piece is required")
			}
			parsedUnit, err := units.ParseLengthUnit(lengthUnit)
			if err != nil {
				return err
			}
			parsed, err := parsePieces(pieces)
			if err != nil {
				return err
			}

			var pricePtr *float64
			if cmd.Flags().Changed("price") {
				pricePtr = &price
			}

			calc := lumber.NewCalculator()
			result := calc.CalculateProject(parsed, lumber.ParseType(lumberType), lumber.ParseGrade(grade), parsedUnit, pricePtr, wasteFactor)

			rows := []kv{
				kvFloat("Board feet", result.BoardFeet),
				kvFloat("Waste factor", result.WasteFactor),
				kvFloat("Waste board feet", result.WasteBoardFeet),
				kvFloat("Board feet with waste", result.BoardFeetWithWaste),
				kvMoney("Cost", result.Cost),
			}
			return printResults(rows, output)
		},
	}

	cmd.Flags().StringArrayVar(&pieces, "piece", nil, "piece as WIDTHxTHICKNESSxLENGTHxQUANTITY (e.g. 4x2x8x10)")
	cmd.Flags().StringVar(&lumberType, "lumber-type", "pine", "lumber species")
	cmd.Flags().StringVar(&grade, "grade", "no.2", "lumber grade")
	cmd.Flags().StringVar(&lengthUnit, "length-unit", "feet", "length unit for all pieces")
	cmd.Flags().Float64Var(&wasteFactor, "waste-factor", 0.1, "waste allowance fraction")
	cmd.Flags().Float64Var(&price, "price", 0, "price per board foot override")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a CSV file")

	return cmd
}

// parsePieces converts WxTxLxQ strings into lumber pieces. Quantity is
// optional and defaults to 1.
func parsePieces(specs []string) ([]lumber.Piece, error) {
	pieces := make([]lumber.Piece, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(strings.ToLower(spec), "x")
		if len(parts) != 3 && len(parts) != 4 {
			return nil, fmt.Errorf("invalid piece %q: want WIDTHxTHICKNESSxLENGTH[xQUANTITY]", spec)
		}

		values := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid piece %q: %w", spec, err)
			}
			values[i] = v
		}

		quantity := 1
		if len(parts) == 4 {
			q, err := strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil {
				return nil, fmt.Errorf("invalid piece %q: %w", spec, err)
			}
			quantity = q
		}

		pieces = append(pieces, lumber.Piece{
			Width:     values[0],
			Thickness: values[1],
			Length:    values[2],
			Quantity:  quantity,
		})
	}
	return pieces, nil
}

func steelCmd() *cobra.Command {
	var (
		steelType, grade          string
		length                    float64
		lengthUnit, dimensionUnit string
		weightUnit                string
		quantity                  int
		pricePerPound             float64
		output                    string
		detail                    bool

		barNumber                     int
		diameter, wallThickness       float64
		width, height, thickness      float64
		flangeWidth, webHeight        float64
		flangeThickness, webThickness float64
		areaSqInches, weightPerFoot   float64
	)

	cmd := &cobra.Command{
		Use:   "steel",
		Short: "Calculate steel weight and cost from cross-section dimensions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedLengthUnit, err := units.ParseLengthUnit(lengthUnit)
			if err != nil {
				return err
			}
			parsedDimensionUnit, err := units.ParseLengthUnit(dimensionUnit)
			if err != nil {
				return err
			}
			parsedWeightUnit, err := units.ParseWeightUnit(weightUnit)
			if err != nil {
				return err
			}

			dims := map[string]float64{}
			setDim := func(flag, key string, value float64) {
				if cmd.Flags().Changed(flag) {
					dims[key] = value
				}
			}
			setDim("bar-number", "bar_number", float64(barNumber))
			setDim("diameter", "diameter", diameter)
			setDim("wall-thickness", "wall_thickness", wallThickness)
			setDim("width", "width", width)
			setDim("height", "height", height)
			setDim("thickness", "thickness", thickness)
			setDim("flange-width", "flange_width", flangeWidth)
			setDim("web-height", "web_height", webHeight)
			setDim("flange-thickness", "flange_thickness", flangeThickness)
			setDim("web-thickness", "web_thickness", webThickness)
			setDim("area", "area_sq_inches", areaSqInches)
			setDim("weight-per-foot", "weight_per_foot", weightPerFoot)

			parsedType := steel.ParseType(steelType)
			parsedGrade := steel.ParseGrade(grade)

			calc := steel.NewCalculator()
			weight := calc.CalculateWeight(steel.WeightParams{
				Type:          parsedType,
				Shape:         steel.ShapeFromDimensions(parsedType, dims),
				Length:        length,
				Quantity:      quantity,
				LengthUnit:    parsedLengthUnit,
				DimensionUnit: parsedDimensionUnit,
				WeightUnit:    parsedWeightUnit,
			})

			var pricePtr *float64
			if cmd.Flags().Changed("price-per-pound") {
				pricePtr = &pricePerPound
			}
			cost := calc.CalculateCost(weight.WeightPounds, parsedType, parsedGrade, pricePtr)

			rows := []kv{
				kvString("Steel type", string(parsedType)),
				kvFloat(fmt.Sprintf("Weight (%s)", weight.WeightUnit), weight.Weight),
				kvMoney("Cost", cost),
			}
			if detail {
				rows = append(rows,
					kvFloat("Weight per foot (lb)", weight.WeightPerFoot),
					kvFloat("Weight (lb)", weight.WeightPounds),
					kvFloat("Area (in2)", weight.AreaSqInches),
					kvInt("Quantity", weight.Quantity),
				)
			}

			return printResults(rows, output)
		},
	}

	cmd.Flags().StringVar(&steelType, "steel-type", "rebar", "steel product type")
	cmd.Flags().StringVar(&grade, "grade", "", "steel grade (defaults per type)")
	cmd.Flags().Float64VarP(&length, "length", "l", 0, "piece length")
	cmd.Flags().StringVar(&lengthUnit, "length-unit", "feet", "length unit")
	cmd.Flags().StringVar(&dimensionUnit, "dimension-unit", "inches", "cross-section dimension unit")
	cmd.Flags().StringVar(&weightUnit, "weight-unit", "lb", "reported weight unit (lb or kg)")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of pieces")
	cmd.Flags().Float64Var(&pricePerPound, "price-per-pound", 0, "price per pound override")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a CSV file")
	cmd.Flags().BoolVar(&detail, "detail", false, "include intermediate values")

	cmd.Flags().IntVar(&barNumber, "bar-number", 4, "rebar bar number")
	cmd.Flags().Float64Var(&diameter, "diameter", 0, "round bar/tube outer diameter")
	cmd.Flags().Float64Var(&wallThickness, "wall-thickness", 0, "tube wall thickness (0 = solid)")
	cmd.Flags().Float64Var(&width, "width", 0, "section width")
	cmd.Flags().Float64Var(&height, "height", 0, "section height")
	cmd.Flags().Float64Var(&thickness, "thickness", 0, "leg/web thickness")
	cmd.Flags().Float64Var(&flangeWidth, "flange-width", 0, "beam flange width")
	cmd.Flags().Float64Var(&webHeight, "web-height", 0, "beam web height")
	cmd.Flags().Float64Var(&flangeThickness, "flange-thickness", 0, "beam flange thickness")
	cmd.Flags().Float64Var(&webThickness, "web-thickness", 0, "beam web thickness")
	cmd.Flags().Float64Var(&areaSqInches, "area", 0, "direct cross-section area override (in2)")
	cmd.Flags().Float64Var(&weightPerFoot, "weight-per-foot", 0, "direct weight-per-foot override (lb/ft)")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
