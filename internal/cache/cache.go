// Package cache provides an mtime-gated, file-backed in-memory cache.
// Each cache wraps one table file and one loader: repeated reads are served
// from memory until the file's modification timestamp changes, at which
// point the loader runs again and the cached value is swapped atomically.
package cache

import (
	"os"
	"sync"
	"time"
)

// LoadFunc parses the backing file into a value of type T.
type LoadFunc[T any] func(path string) (T, error)

// File is a thread-safe cache over a single table file. The zero value is
// not usable; construct with NewFile.
type File[T any] struct {
	path string
	load LoadFunc[T]

	mu     sync.Mutex
	loaded bool
	mtime  time.Time
	value  T
}

// NewFile creates an empty cache for path. Nothing is read until Get.
func NewFile[T any](path string, load LoadFunc[T]) *File[T] {
	return &File[T]{path: path, load: load}
}

// Get returns the current snapshot of the table. The file is re-read only
// when its mtime differs from the one recorded at last load. A missing file
// yields the zero value without touching the cached state, so a transient
// deletion does not poison later successful loads. A failed load likewise
// leaves the cache untouched.
//
// The lock covers only the check-reload-swap sequence; callers aggregate
// over the returned snapshot without holding any lock.
func (c *File[T]) Get() T {
	info, err := os.Stat(c.path)
	if err != nil {
		var zero T
		return zero
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && info.ModTime().Equal(c.mtime) {
		return c.value
	}

	v, err := c.load(c.path)
	if err != nil {
		var zero T
		return zero
	}

	c.value = v
	c.mtime = info.ModTime()
	c.loaded = true
	return c.value
}

// Path returns the backing file path.
func (c *File[T]) Path() string {
	return c.path
}

// Info reports whether a snapshot is held and the mtime it was loaded at.
func (c *File[T]) Info() (loaded bool, mtime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded, c.mtime
}
