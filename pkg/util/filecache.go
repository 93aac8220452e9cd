// FileCache provides memory-mapped access to token source files.
//
// Token files are read repeatedly by the importer, the watcher and the MCP
// server. Entries are keyed by path and revalidated against the file's size
// and modification time on every access, so an edited file is remapped
// transparently.
package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/edsrzf/mmap-go"
)

// FileCache is safe for concurrent use.
type FileCache struct {
	mu      sync.Mutex
	entries map[string]*mappedFile
	logger  *slog.Logger
	stats   FileCacheStats
}

// mappedFile is one cached file. Data is nil for empty files and for
// files that fell back to os.ReadFile (Fallback holds the bytes then).
type mappedFile struct {
	data     mmap.MMap
	file     *os.File
	fallback []byte
	size     int64
	modTime  time.Time
}

// FileCacheStats tracks cache behaviour.
type FileCacheStats struct {
	Hits         int64
	Misses       int64
	Remaps       int64
	MmapFailures int64
	Cached       int
}

// NewFileCache creates an empty cache. A nil logger uses slog.Default().
func NewFileCache(logger *slog.Logger) *FileCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileCache{
		entries: make(map[string]*mappedFile),
		logger:  logger,
	}
}

// ReadFile returns a copy of the file's current contents.
func (fc *FileCache) ReadFile(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %q: %w", path, err)
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if mf, ok := fc.entries[path]; ok {
		if mf.size == stat.Size() && mf.modTime.Equal(stat.ModTime()) {
			fc.stats.Hits++
			return mf.bytes(), nil
		}
		fc.stats.Remaps++
		if err := mf.close(); err != nil {
			fc.logger.Warn("failed to unmap stale file", "file", path, "error", err)
		}
		delete(fc.entries, path)
	}

	fc.stats.Misses++
	mf, err := fc.load(path)
	if err != nil {
		return nil, err
	}
	fc.entries[path] = mf
	return mf.bytes(), nil
}

// load opens and maps a file, falling back to os.ReadFile if mmap fails.
// Must be called while holding mu.
func (fc *FileCache) load(path string) (*mappedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file %q: %w", path, err)
	}

	mf := &mappedFile{size: stat.Size(), modTime: stat.ModTime()}

	// Can't mmap zero bytes.
	if stat.Size() == 0 {
		file.Close()
		return mf, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		fc.stats.MmapFailures++
		fc.logger.Warn("mmap failed, using fallback", "file", path, "size", stat.Size(), "error", err)
		file.Close()
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("mmap failed and fallback failed for %q: mmap error: %v, read error: %w", path, err, readErr)
		}
		mf.fallback = raw
		return mf, nil
	}

	mf.data = data
	mf.file = file
	return mf, nil
}

func (mf *mappedFile) bytes() []byte {
	switch {
	case mf.data != nil:
		out := make([]byte, len(mf.data))
		copy(out, mf.data)
		return out
	case mf.fallback != nil:
		out := make([]byte, len(mf.fallback))
		copy(out, mf.fallback)
		return out
	default:
		return []byte{}
	}
}

func (mf *mappedFile) close() error {
	var err error
	if mf.data != nil {
		err = mf.data.Unmap()
		mf.data = nil
	}
	if mf.file != nil {
		if cerr := mf.file.Close(); err == nil {
			err = cerr
		}
		mf.file = nil
	}
	return err
}

// Invalidate drops a cached entry, unmapping it.
func (fc *FileCache) Invalidate(path string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if mf, ok := fc.entries[path]; ok {
		if err := mf.close(); err != nil {
			fc.logger.Warn("failed to unmap file", "file", path, "error", err)
		}
		delete(fc.entries, path)
	}
}

// Stats returns a snapshot of the cache counters.
func (fc *FileCache) Stats() FileCacheStats {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	s := fc.stats
	s.Cached = len(fc.entries)
	return s
}

// Close unmaps every cached file.
func (fc *FileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var firstErr error
	for path, mf := range fc.entries {
		if err := mf.close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to unmap %q: %w", path, err)
		}
	}
	fc.entries = make(map[string]*mappedFile)
	return firstErr
}
