package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buildwise/buildwise/internal/concrete"
	"github.com/buildwise/buildwise/internal/estimate"
	"github.com/buildwise/buildwise/internal/lumber"
	"github.com/buildwise/buildwise/internal/project"
	"github.com/buildwise/buildwise/internal/steel"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	storage, err := project.NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	return New(
		concrete.NewCalculator(),
		lumber.NewCalculator(),
		steel.NewCalculator(),
		estimate.NewEstimator(nil, nil),
		storage,
		nil,
	)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(t).Router(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestConcreteCalculator(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/concrete", map[string]any{
		"length": 10.0, "width": 10.0, "depth": 0.5,
		"price_per_unit": 150.0,
		"bag_size":       80.0,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Volume concrete.VolumeResult `json:"volume"`
		Cost   *float64              `json:"cost"`
		Bags   *int                  `json:"bags"`
	}
	decodeBody(t, rec, &resp)

	if math.Abs(resp.Volume.CubicYards-1.85) > 0.001 {
		t.Fatalf("cubic yards = %v", resp.Volume.CubicYards)
	}
	if resp.Cost == nil || math.Abs(*resp.Cost-277.78) > 0.001 {
		t.Fatalf("cost = %v", resp.Cost)
	}
	if resp.Bags == nil || *resp.Bags != 84 {
		t.Fatalf("bags = %v", resp.Bags)
	}
}

func TestConcreteCalculatorMalformedJSON(t *testing.T) {
	router := newTestServer(t).Router()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculators/concrete", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestConcreteCalculatorUnknownUnit(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/concrete", map[string]any{
		"length": 1.0, "width": 1.0, "depth": 1.0, "unit": "furlongs",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestConcreteCalculatorUnsupportedPricingUnit(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/concrete", map[string]any{
		"length": 10.0, "width": 10.0, "depth": 0.5,
		"price_per_unit": 150.0, "pricing_unit": "cubic_furlong",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLumberCalculator(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/lumber", map[string]any{
		"width": 4.0, "thickness": 2.0, "length": 8.0, "quantity": 1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		BoardFeet float64 `json:"board_feet"`
		Cost      float64 `json:"cost"`
	}
	decodeBody(t, rec, &resp)

	// A 2x4 mills to 1.5x3.5; 8 ft gives 3.5 board feet at pine no.2.
	if math.Abs(resp.BoardFeet-3.5) > 0.001 {
		t.Fatalf("board feet = %v", resp.BoardFeet)
	}
	if math.Abs(resp.Cost-10.5) > 0.001 {
		t.Fatalf("cost = %v", resp.Cost)
	}
}

func TestLumberCalculatorProjectMode(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/lumber", map[string]any{
		"pieces": []map[string]any{
			{"width": 4, "thickness": 2, "length": 8, "quantity": 10},
		},
		"waste_factor": 0.1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp lumber.ProjectResult
	decodeBody(t, rec, &resp)
	if math.Abs(resp.BoardFeet-35) > 0.001 {
		t.Fatalf("board feet = %v", resp.BoardFeet)
	}
	if math.Abs(resp.BoardFeetWithWaste-38.5) > 0.001 {
		t.Fatalf("board feet with waste = %v", resp.BoardFeetWithWaste)
	}
}

func TestSteelCalculator(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/calculators/steel", map[string]any{
		"steel_type": "rebar",
		"dimensions": map[string]any{"bar_number": 4},
		"length":     20.0,
		"quantity":   10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		WeightPounds float64 `json:"weight_pounds"`
		Cost         float64 `json:"cost"`
	}
	decodeBody(t, rec, &resp)

	if math.Abs(resp.WeightPounds-133.6) > 0.01 {
		t.Fatalf("weight = %v", resp.WeightPounds)
	}
	// Rebar defaults to grade 60 at 0.75 $/lb.
	if math.Abs(resp.Cost-100.2) > 0.01 {
		t.Fatalf("cost = %v", resp.Cost)
	}
}

func TestMaterialCostEstimate(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/estimations/material-cost", map[string]any{
		"material_type": "concrete",
		"quantity":      10.0,
		"unit":          "cubic_yard",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp estimate.Result
	decodeBody(t, rec, &resp)
	if math.Abs(resp.EstimatedCost-1500) > 0.001 {
		t.Fatalf("estimated = %v", resp.EstimatedCost)
	}
	if resp.Source != estimate.SourceFallback {
		t.Fatalf("source = %q", resp.Source)
	}
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestServer(t).Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{
		"name": "Back Deck", "location": "Texas",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/projects/Back%20Deck/materials", map[string]any{
		"type": "concrete", "name": "slab concrete",
		"quantity": 1.85, "unit": "cubic_yard", "cost": 277.78,
		// Details take arbitrary JSON values, not just numbers.
		"details": map[string]any{"depth": 0.5, "grade": "no.2"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add material status = %d: %s", rec.Code, rec.Body.String())
	}
	var added project.Material
	decodeBody(t, rec, &added)
	if added.ID == "" {
		t.Fatal("material ID not assigned")
	}
	if added.Details["grade"] != "no.2" {
		t.Fatalf("grade detail = %v, want no.2", added.Details["grade"])
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/Back%20Deck", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var view struct {
		Name      string             `json:"name"`
		Materials []project.Material `json:"materials"`
		TotalCost float64            `json:"total_cost"`
	}
	decodeBody(t, rec, &view)
	if view.Name != "Back Deck" || len(view.Materials) != 1 {
		t.Fatalf("view = %+v", view)
	}
	if math.Abs(view.TotalCost-277.78) > 0.001 {
		t.Fatalf("total = %v", view.TotalCost)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var summaries []projectSummary
	decodeBody(t, rec, &summaries)
	if len(summaries) != 1 || summaries[0].MaterialCount != 1 {
		t.Fatalf("summaries = %+v", summaries)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/projects/Back%20Deck", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/Back%20Deck", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rec.Code)
	}
}

func TestProjectNotFound(t *testing.T) {
	router := newTestServer(t).Router()
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/projects/ghost"},
		{http.MethodDelete, "/api/v1/projects/ghost"},
		{http.MethodGet, "/api/v1/projects/ghost/export"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s status = %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestProjectCreateRequiresName(t *testing.T) {
	router := newTestServer(t).Router()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{"name": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestProjectExport(t *testing.T) {
	router := newTestServer(t).Router()
	doJSON(t, router, http.MethodPost, "/api/v1/projects", map[string]any{"name": "deck"})
	doJSON(t, router, http.MethodPost, "/api/v1/projects/deck/materials", map[string]any{
		"name": "concrete", "type": "concrete", "quantity": 1.85, "unit": "cubic_yard",
	})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/projects/deck/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("csv status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("csv content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "concrete") {
		t.Fatalf("csv body missing material: %q", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/deck/export?format=xlsx", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("xlsx content type = %q", ct)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/projects/deck/export?format=pdf", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad format status = %d", rec.Code)
	}
}

func TestCatalogs(t *testing.T) {
	router := newTestServer(t).Router()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/catalogs/lumber-sizes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("lumber sizes status = %d", rec.Code)
	}
	var sizes lumber.StandardSizes
	decodeBody(t, rec, &sizes)
	if len(sizes.DimensionalLumber) == 0 || len(sizes.Plywood) == 0 {
		t.Fatalf("sizes = %+v", sizes)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/catalogs/steel-shapes?type=rebar", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("steel shapes status = %d", rec.Code)
	}
	var shapes map[steel.Type][]steel.ShapeSpec
	decodeBody(t, rec, &shapes)
	if len(shapes) != 1 || len(shapes[steel.TypeRebar]) == 0 {
		t.Fatalf("shapes = %+v", shapes)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t).Router()
	doJSON(t, router, http.MethodPost, "/api/v1/calculators/concrete", map[string]any{
		"length": 1.0, "width": 1.0, "depth": 1.0,
	})

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := fmt.Sprintf("%s{calculator=%q} 1", "buildwise_calculations_total", "concrete")
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("metrics body missing %q", want)
	}
}
