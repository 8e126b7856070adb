package server

import (
	"net/http"

	"github.com/buildwise/buildwise/internal/concrete"
	"github.com/buildwise/buildwise/internal/estimate"
	"github.com/buildwise/buildwise/internal/lumber"
	"github.com/buildwise/buildwise/internal/steel"
	"github.com/buildwise/buildwise/internal/units"
)

type concreteRequest struct {
	Length       float64  `json:"length"`
	Width        float64  `json:"width"`
	Depth        float64  `json:"depth"`
	Unit         string   `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	PricingUnit  string   `json:"pricing_unit"`
	BagSize      *float64 `json:"bag_size"`
	BagUnit      string   `json:"bag_unit"`
}

type concreteResponse struct {
	Volume concrete.VolumeResult `json:"volume"`
	Cost   *float64              `json:"cost,omitempty"`
	Bags   *int                  `json:"bags,omitempty"`
}

func (s *Server) handleConcrete(w http.ResponseWriter, r *http.Request) {
	var req concreteRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	unit, ok := s.parseLengthUnit(w, req.Unit, units.Feet)
	if !ok {
		return
	}

	resp := concreteResponse{Volume: s.concrete.CalculateVolume(req.Length, req.Width, req.Depth, unit)}

	if req.PricePerUnit != nil {
		pricingUnit := concrete.PricingUnit(req.PricingUnit)
		if req.PricingUnit == "" {
			pricingUnit = concrete.PerCubicYard
		}
		cost, err := s.concrete.CalculateCost(resp.Volume, *req.PricePerUnit, pricingUnit)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Cost = &cost
	}

	if req.BagSize != nil {
		bagUnit := units.Pounds
		if req.BagUnit != "" {
			parsed, err := units.ParseWeightUnit(req.BagUnit)
			if err != nil {
				s.respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			bagUnit = parsed
		}
		bags := s.concrete.BagsNeeded(resp.Volume, *req.BagSize, bagUnit)
		resp.Bags = &bags
	}

	s.metrics.calculations.WithLabelValues("concrete").Inc()
	s.respondJSON(w, http.StatusOK, resp)
}

type lumberRequest struct {
	Width             float64        `json:"width"`
	Thickness         float64        `json:"thickness"`
	Length            float64        `json:"length"`
	Quantity          int            `json:"quantity"`
	LengthUnit        string         `json:"length_unit"`
	LumberType        string         `json:"lumber_type"`
	Grade             string         `json:"grade"`
	PricePerBoardFoot *float64       `json:"price_per_board_foot"`
	Pieces            []lumber.Piece `json:"pieces"`
	WasteFactor       float64        `json:"waste_factor"`
}

type lumberResponse struct {
	lumber.BoardFeetResult
	Cost       float64      `json:"cost"`
	LumberType lumber.Type  `json:"lumber_type"`
	Grade      lumber.Grade `json:"grade"`
}

// handleLumber computes board feet and cost. A request with a pieces array
// is treated as a project calculation with the waste factor applied.
func (s *Server) handleLumber(w http.ResponseWriter, r *http.Request) {
	var req lumberRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	lengthUnit, ok := s.parseLengthUnit(w, req.LengthUnit, units.Feet)
	if !ok {
		return
	}
	lumberType := lumber.ParseType(req.LumberType)
	grade := lumber.ParseGrade(req.Grade)

	if len(req.Pieces) > 0 {
		result := s.lumber.CalculateProject(req.Pieces, lumberType, grade, lengthUnit, req.PricePerBoardFoot, req.WasteFactor)
		s.metrics.calculations.WithLabelValues("lumber").Inc()
		s.respondJSON(w, http.StatusOK, result)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	boardFeet := s.lumber.CalculateBoardFeet(req.Width, req.Thickness, req.Length, req.Quantity, lengthUnit)
	cost := s.lumber.CalculateCost(boardFeet.BoardFeet, lumberType, grade, req.PricePerBoardFoot)

	s.metrics.calculations.WithLabelValues("lumber").Inc()
	s.respondJSON(w, http.StatusOK, lumberResponse{
		BoardFeetResult: boardFeet,
		Cost:            cost,
		LumberType:      lumberType,
		Grade:           grade,
	})
}

type steelRequest struct {
	SteelType     string             `json:"steel_type"`
	Grade         string             `json:"grade"`
	Dimensions    map[string]float64 `json:"dimensions"`
	Length        float64            `json:"length"`
	LengthUnit    string             `json:"length_unit"`
	DimensionUnit string             `json:"dimension_unit"`
	WeightUnit    string             `json:"weight_unit"`
	Quantity      int                `json:"quantity"`
	PricePerPound *float64           `json:"price_per_pound"`
}

type steelResponse struct {
	steel.WeightResult
	Cost  float64     `json:"cost"`
	Grade steel.Grade `json:"grade"`
}

func (s *Server) handleSteel(w http.ResponseWriter, r *http.Request) {
	var req steelRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	lengthUnit, ok := s.parseLengthUnit(w, req.LengthUnit, units.Feet)
	if !ok {
		return
	}
	dimensionUnit, ok := s.parseLengthUnit(w, req.DimensionUnit, units.Inches)
	if !ok {
		return
	}
	weightUnit := units.Pounds
	if req.WeightUnit != "" {
		parsed, err := units.ParseWeightUnit(req.WeightUnit)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		weightUnit = parsed
	}

	steelType := steel.ParseType(req.SteelType)
	grade := steel.ParseGrade(req.Grade)
	shape := steel.ShapeFromDimensions(steelType, req.Dimensions)

	weight := s.steel.CalculateWeight(steel.WeightParams{
		Type:          steelType,
		Shape:         shape,
		Length:        req.Length,
		Quantity:      req.Quantity,
		LengthUnit:    lengthUnit,
		DimensionUnit: dimensionUnit,
		WeightUnit:    weightUnit,
	})
	cost := s.steel.CalculateCost(weight.WeightPounds, steelType, grade, req.PricePerPound)

	s.metrics.calculations.WithLabelValues("steel").Inc()
	s.respondJSON(w, http.StatusOK, steelResponse{
		WeightResult: weight,
		Cost:         cost,
		Grade:        grade,
	})
}

func (s *Server) handleMaterialCostEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimate.Request
	if !s.decodeJSON(w, r, &req) {
		return
	}

	result := s.estimator.Estimate(r.Context(), req)

	s.metrics.estimations.Inc()
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleLumberSizes(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, lumber.GetStandardSizes())
}

// handleSteelShapes serves the stock-section catalog, filtered by the
// optional type query parameter.
func (s *Server) handleSteelShapes(w http.ResponseWriter, r *http.Request) {
	var steelType steel.Type
	if raw := r.URL.Query().Get("type"); raw != "" {
		steelType = steel.ParseType(raw)
	}
	s.respondJSON(w, http.StatusOK, steel.StandardShapes(steelType))
}

// parseLengthUnit resolves an optional unit string, writing the 400 response
// on unknown units. An empty string takes the fallback.
func (s *Server) parseLengthUnit(w http.ResponseWriter, raw string, fallback units.LengthUnit) (units.LengthUnit, bool) {
	if raw == "" {
		return fallback, true
	}
	unit, err := units.ParseLengthUnit(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return unit, true
}
