package levels

import (
	"io/fs"
	"sync"
)

// Registry caches parsed levels by path.
type Registry struct {
	mu     sync.Mutex
	fsys   fs.FS
	levels map[string]*Level
}

// NewRegistry reads from fsys, or from the working tree and embedded levels
// when fsys is nil.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{fsys: fsys, levels: make(map[string]*Level)}
}

// Get returns the cached level, loading it on first use.
func (r *Registry) Get(path string) (*Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lvl, ok := r.levels[path]; ok {
		return lvl, nil
	}
	lvl, err := r.load(path)
	if err != nil {
		return nil, err
	}
	r.levels[path] = lvl
	return lvl, nil
}

// Reload drops the cached copy and loads the level again. The old copy is
// kept when loading fails.
func (r *Registry) Reload(path string) (*Level, error) {
	lvl, err := r.load(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.levels[path] = lvl
	r.mu.Unlock()
	return lvl, nil
}

func (r *Registry) Cached(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.levels[path]
	return ok
}

func (r *Registry) load(path string) (*Level, error) {
	if r.fsys == nil {
		return LoadFromFS(path)
	}
	return Load(r.fsys, path)
}
