package project

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func costPtr(v float64) *float64 { return &v }

func TestTotalCost(t *testing.T) {
	p := New("deck", "", "")
	p.AddMaterial(Material{Name: "concrete", Cost: costPtr(277.78)})
	p.AddMaterial(Material{Name: "rebar", Cost: costPtr(93.52)})
	p.AddMaterial(Material{Name: "gravel"}) // no cost yet

	if got, want := p.TotalCost(), 371.30; math.Abs(got-want) > 0.001 {
		t.Fatalf("total = %v, want %v", got, want)
	}
}

func TestAddMaterialAssignsIDAndTimestamp(t *testing.T) {
	p := New("deck", "", "")
	m := p.AddMaterial(Material{Name: "lumber"})

	if m.ID == "" {
		t.Fatal("material ID not assigned")
	}
	if m.CreatedAt.IsZero() {
		t.Fatal("material timestamp not assigned")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		t.Fatal("project updated time not touched")
	}
}

func TestStorageRoundTrip(t *testing.T) {
	s, err := NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}

	p := New("Back Deck", "ground level deck", "Texas")
	p.AddMaterial(Material{
		Name: "lumber", Type: "lumber", Quantity: 48, Unit: "board_feet",
		Details: map[string]any{"length": 10.0, "width": 10.0, "depth": 0.5, "grade": "no.2"},
		Cost:    costPtr(277.78),
	})
	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load("Back Deck")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != p.Name || got.Location != p.Location {
		t.Fatalf("loaded %q/%q, want %q/%q", got.Name, got.Location, p.Name, p.Location)
	}
	if len(got.Materials) != 1 {
		t.Fatalf("materials = %d, want 1", len(got.Materials))
	}
	m := got.Materials[0]
	if m.Cost == nil || math.Abs(*m.Cost-277.78) > 0.001 {
		t.Fatalf("material cost = %v", m.Cost)
	}
	// Details are free-form: numbers come back as float64, strings as strings.
	if depth, ok := m.Details["depth"].(float64); !ok || math.Abs(depth-0.5) > 1e-9 {
		t.Fatalf("details = %v", m.Details)
	}
	if m.Details["grade"] != "no.2" {
		t.Fatalf("grade detail = %v, want no.2", m.Details["grade"])
	}
}

func TestStorageFileNameSanitization(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}

	if err := s.Save(New("Back Deck 2026", "", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Back_Deck_2026.json")); err != nil {
		t.Fatalf("expected sanitized file name: %v", err)
	}

	// Path separators must not escape the directory.
	if err := s.Save(New("../evil", "", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "..evil.json")); err != nil {
		t.Fatalf("expected separator-stripped file name: %v", err)
	}
}

func TestStorageLoadMissing(t *testing.T) {
	s, err := NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}

	if _, err := s.Load("nope"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if _, err := s.Load("nope"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestStorageCorruptedFileTreatedAsMissing(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir, nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Load("bad"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	// List skips it rather than failing.
	if err := s.Save(New("good", "", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	projects, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "good" {
		t.Fatalf("projects = %v", projects)
	}
}

func TestStorageDelete(t *testing.T) {
	s, err := NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}

	if err := s.Save(New("gone soon", "", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("gone soon"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("gone soon"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestStorageListSorted(t *testing.T) {
	s, err := NewStorage(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Save(New(name, "", "")); err != nil {
			t.Fatalf("Save %q: %v", name, err)
		}
	}

	projects, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, p := range projects {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "alpha,mid,zeta" {
		t.Fatalf("order = %v", names)
	}
}

func TestExportCSV(t *testing.T) {
	p := New("deck", "backyard deck", "Texas")
	p.AddMaterial(Material{
		Name: "concrete", Type: "concrete", Quantity: 1.85,
		Unit: "cubic_yard", Cost: costPtr(277.78),
	})

	var buf bytes.Buffer
	if err := ExportCSV(&buf, p); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	r := csv.NewReader(strings.NewReader(buf.String()))
	r.FieldsPerRecord = -1 // header block and material rows differ in width
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if rows[0][0] != "Project" || rows[0][1] != "deck" {
		t.Fatalf("header row = %v", rows[0])
	}
	if rows[4][0] != "Total Cost" || rows[4][1] != "277.78" {
		t.Fatalf("total row = %v", rows[4])
	}
	last := rows[len(rows)-1]
	if last[0] != "concrete" || last[4] != "277.78" {
		t.Fatalf("material row = %v", last)
	}
}

func TestExportXLSX(t *testing.T) {
	p := New("deck", "", "")
	p.AddMaterial(Material{Name: "rebar", Type: "steel", Quantity: 20, Unit: "pieces"})

	var buf bytes.Buffer
	if err := ExportXLSX(&buf, p); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Project", "B1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "deck" {
		t.Fatalf("B1 = %q, want project name", name)
	}
	material, err := f.GetCellValue("Project", "A8")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if material != "rebar" {
		t.Fatalf("A8 = %q, want first material", material)
	}
}
