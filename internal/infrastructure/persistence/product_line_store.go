package persistence

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/erp/labeler/internal/domain/labeling"
)

// ProductLineStore implements ProductLineRepository on a JSON file
type ProductLineStore struct {
	path string
	mu   sync.RWMutex
}

// NewProductLineStore creates a store under dataDir
func NewProductLineStore(dataDir string) *ProductLineStore {
	return &ProductLineStore{path: filepath.Join(dataDir, ProductLinesFile)}
}

// Save replaces the stored list
func (s *ProductLineStore) Save(ctx context.Context, lines []labeling.ProductLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, dedupProductLines(lines))
}

// Load returns the stored list
func (s *ProductLineStore) Load(ctx context.Context) ([]labeling.ProductLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := []labeling.ProductLine{}
	if _, err := readJSON(s.path, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []labeling.ProductLine{}
	}
	return lines, nil
}

// dedupProductLines keeps the first position of each name and the last value
func dedupProductLines(lines []labeling.ProductLine) []labeling.ProductLine {
	index := make(map[string]int, len(lines))
	out := make([]labeling.ProductLine, 0, len(lines))
	for _, l := range lines {
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			continue
		}
		if i, ok := index[l.Name]; ok {
			out[i] = l
			continue
		}
		index[l.Name] = len(out)
		out = append(out, l)
	}
	return out
}

// Ensure ProductLineStore implements ProductLineRepository
var _ labeling.ProductLineRepository = (*ProductLineStore)(nil)
