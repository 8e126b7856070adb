// Package project models saved estimation projects and their material line
// items, persisted as one JSON document per project.
package project

import (
	"time"

	"github.com/google/uuid"
)

// Material is one line item in a project. Cost is optional; a nil cost
// counts as zero toward the project total.
type Material struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Quantity  float64        `json:"quantity"`
	Unit      string         `json:"unit"`
	Details   map[string]any `json:"details,omitempty"`
	Cost      *float64       `json:"cost,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Project is a named collection of materials. Materials keep insertion
// order.
type Project struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Materials   []Material `json:"materials"`
}

// New creates a project stamped with the current time.
func New(name, description, location string) *Project {
	now := time.Now().UTC()
	return &Project{
		Name:        name,
		Description: description,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
		Materials:   []Material{},
	}
}

// AddMaterial appends a material, assigning it an ID and timestamp, and
// touches the project's updated time. It returns the stored material.
func (p *Project) AddMaterial(m Material) Material {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	p.Materials = append(p.Materials, m)
	p.UpdatedAt = time.Now().UTC()
	return m
}

// TotalCost sums the material costs. Materials without a cost contribute
// nothing.
func (p *Project) TotalCost() float64 {
	var total float64
	for _, m := range p.Materials {
		if m.Cost != nil {
			total += *m.Cost
		}
	}
	return total
}
