package persistence

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/erp/labeler/internal/domain/labeling"
)

// WorkstationStore implements WorkstationRepository on a JSON file
type WorkstationStore struct {
	path string
	mu   sync.RWMutex
}

// NewWorkstationStore creates a store under dataDir
func NewWorkstationStore(dataDir string) *WorkstationStore {
	return &WorkstationStore{path: filepath.Join(dataDir, WorkstationsFile)}
}

// Save merges workstations into the stored set. An incoming workstation
// replaces the stored one with the same name in place; new names are appended.
func (s *WorkstationStore) Save(ctx context.Context, workstations []labeling.Workstation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, ws := range workstations {
		if err := ws.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return err
	}

	index := make(map[string]int, len(stored))
	for i, ws := range stored {
		index[ws.Name] = i
	}
	for _, ws := range workstations {
		ws.Name = strings.TrimSpace(ws.Name)
		ws.Labels = ws.UniqueLabels()
		if i, ok := index[ws.Name]; ok {
			stored[i] = ws
			continue
		}
		index[ws.Name] = len(stored)
		stored = append(stored, ws)
	}

	return writeJSON(s.path, stored)
}

// Load returns every stored workstation
func (s *WorkstationStore) Load(ctx context.Context) ([]labeling.Workstation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// LoadByProductLine returns workstations of one product line
func (s *WorkstationStore) LoadByProductLine(ctx context.Context, productLine string) ([]labeling.Workstation, error) {
	all, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]labeling.Workstation, 0, len(all))
	for _, ws := range all {
		if ws.ProductLine == productLine {
			out = append(out, ws)
		}
	}
	return out, nil
}

func (s *WorkstationStore) load() ([]labeling.Workstation, error) {
	stored := []labeling.Workstation{}
	if _, err := readJSON(s.path, &stored); err != nil {
		return nil, err
	}
	if stored == nil {
		stored = []labeling.Workstation{}
	}
	return stored, nil
}

// Ensure WorkstationStore implements WorkstationRepository
var _ labeling.WorkstationRepository = (*WorkstationStore)(nil)
