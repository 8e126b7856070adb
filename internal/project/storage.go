package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrProjectNotFound reports a project name with no stored file.
var ErrProjectNotFound = errors.New("project not found")

// Storage persists projects as JSON files, one per project, under a single
// directory. Writes are last-writer-wins; the tool is single-user.
type Storage struct {
	dir    string
	logger *zap.Logger
}

// NewStorage creates the project directory if needed. A nil logger is
// replaced with a no-op logger.
func NewStorage(dir string, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	return &Storage{dir: dir, logger: logger}, nil
}

// fileName maps a project name to its storage file. Spaces become
// underscores and path separators are stripped, so the mapping is
// deterministic and loads by name work.
func fileName(name string) string {
	s := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return -1
		}
		return r
	}, s)
	return s + ".json"
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, fileName(name))
}

// Save writes the project to disk.
func (s *Storage) Save(p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project %q: %w", p.Name, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, 0o644); err != nil {
		return fmt.Errorf("write project %q: %w", p.Name, err)
	}
	s.logger.Debug("project saved", zap.String("name", p.Name))
	return nil
}

// Load reads a project by name. A missing or unreadable file yields
// ErrProjectNotFound; corrupted JSON is logged and also treated as not
// found.
func (s *Storage) Load(name string) (*Project, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", name, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("read project %q: %w", name, err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("skipping corrupted project file",
			zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("%q: %w", name, ErrProjectNotFound)
	}
	return &p, nil
}

// Delete removes a project by name.
func (s *Storage) Delete(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%q: %w", name, ErrProjectNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete project %q: %w", name, err)
	}
	s.logger.Debug("project deleted", zap.String("name", name))
	return nil
}

// List loads every readable project in the directory, sorted by name.
// Corrupted files are logged and skipped.
func (s *Storage) List() ([]*Project, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var projects []*Project
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable project file",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		var p Project
		if err := json.Unmarshal(data, &p); err != nil {
			s.logger.Warn("skipping corrupted project file",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		projects = append(projects, &p)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}
