package shading

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"Gleam3D/internal/logger"

	"go.uber.org/zap"
)

// TextureStats provides debugging and profiling information
type TextureStats struct {
	TotalLoads  int
	CacheHits   int
	CacheMisses int
	Resident    int
}

// TextureManager caches decoded textures by path so repeated binds of the
// same asset share one pixel buffer. Textures are garbage collected with the
// manager, there is no explicit free.
type TextureManager struct {
	mu    sync.RWMutex
	cache map[string]*Texture
	stats TextureStats
}

func NewTextureManager() *TextureManager {
	return &TextureManager{cache: make(map[string]*Texture)}
}

// Load decodes a png or jpeg file into a texture, or returns the cached one.
// The wrap mode of the first load wins for a given path.
func (tm *TextureManager) Load(path string, wrap WrapMode) (*Texture, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tex, ok := tm.cache[path]; ok {
		tm.stats.CacheHits++
		logger.Log.Debug("Texture cache hit", zap.String("path", path))
		return tex, nil
	}
	tm.stats.CacheMisses++

	imgFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, err
	}

	tex, err := NewTextureFromImage(img, wrap)
	if err != nil {
		return nil, err
	}

	tm.cache[path] = tex
	tm.stats.TotalLoads++

	logger.Log.Info("Texture loaded and cached",
		zap.String("path", path),
		zap.Int("width", tex.Width()),
		zap.Int("height", tex.Height()))
	return tex, nil
}

// Add registers a texture built in memory under a name, for procedural or
// embedded assets that bypass the filesystem.
func (tm *TextureManager) Add(name string, tex *Texture) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.cache[name] = tex
}

// Lookup returns a cached texture without loading.
func (tm *TextureManager) Lookup(name string) (*Texture, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	tex, ok := tm.cache[name]
	return tex, ok
}

func (tm *TextureManager) Stats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	stats := tm.stats
	stats.Resident = len(tm.cache)
	return stats
}

// Clear drops every cached texture.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.cache = make(map[string]*Texture)
	tm.stats.Resident = 0
	logger.Log.Info("Texture manager cleared")
}
