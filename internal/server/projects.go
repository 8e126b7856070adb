package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/buildwise/buildwise/internal/project"
)

// projectName resolves the {name} route parameter. chi hands back the
// escaped path segment, so spaces arrive as %20.
func projectName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

type projectSummary struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Location      string  `json:"location,omitempty"`
	MaterialCount int     `json:"material_count"`
	TotalCost     float64 `json:"total_cost"`
}

type projectView struct {
	*project.Project
	TotalCost float64 `json:"total_cost"`
}

func (s *Server) handleProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.storage.List()
	if err != nil {
		s.logger.Error("list projects", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, projectSummary{
			Name:          p.Name,
			Description:   p.Description,
			Location:      p.Location,
			MaterialCount: len(p.Materials),
			TotalCost:     p.TotalCost(),
		})
	}

	s.metrics.projectOps.WithLabelValues("list").Inc()
	s.respondJSON(w, http.StatusOK, summaries)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	p := project.New(req.Name, req.Description, req.Location)
	if err := s.storage.Save(p); err != nil {
		s.logger.Error("save project", zap.String("name", req.Name), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to save project")
		return
	}

	s.metrics.projectOps.WithLabelValues("create").Inc()
	s.respondJSON(w, http.StatusCreated, projectView{Project: p, TotalCost: 0})
}

func (s *Server) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	s.metrics.projectOps.WithLabelValues("get").Inc()
	s.respondJSON(w, http.StatusOK, projectView{Project: p, TotalCost: p.TotalCost()})
}

func (s *Server) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	name := projectName(r)
	if err := s.storage.Delete(name); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			s.respondError(w, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("delete project", zap.String("name", name), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	s.metrics.projectOps.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

type addMaterialRequest struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Quantity float64        `json:"quantity"`
	Unit     string         `json:"unit"`
	Details  map[string]any `json:"details"`
	Cost     *float64       `json:"cost"`
	Notes    string         `json:"notes"`
}

func (s *Server) handleMaterialAdd(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	var req addMaterialRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "material name is required")
		return
	}

	m := p.AddMaterial(project.Material{
		Type:     req.Type,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Details:  req.Details,
		Cost:     req.Cost,
		Notes:    req.Notes,
	})
	if err := s.storage.Save(p); err != nil {
		s.logger.Error("save project", zap.String("name", p.Name), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to save project")
		return
	}

	s.metrics.projectOps.WithLabelValues("add_material").Inc()
	s.respondJSON(w, http.StatusCreated, m)
}

func (s *Server) handleProjectExport(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadProject(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	base := strings.ReplaceAll(p.Name, " ", "_")
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".csv"))
		if err := project.ExportCSV(w, p); err != nil {
			s.logger.Error("export project", zap.String("name", p.Name), zap.Error(err))
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".xlsx"))
		if err := project.ExportXLSX(w, p); err != nil {
			s.logger.Error("export project", zap.String("name", p.Name), zap.Error(err))
		}
	default:
		s.respondError(w, http.StatusBadRequest, "unsupported export format")
		return
	}

	s.metrics.projectOps.WithLabelValues("export").Inc()
}

// loadProject resolves the {name} route parameter, writing the 404 or 500
// response itself when loading fails.
func (s *Server) loadProject(w http.ResponseWriter, r *http.Request) (*project.Project, bool) {
	name := projectName(r)
	p, err := s.storage.Load(name)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			s.respondError(w, http.StatusNotFound, "project not found")
			return nil, false
		}
		s.logger.Error("load project", zap.String("name", name), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load project")
		return nil, false
	}
	return p, true
}
