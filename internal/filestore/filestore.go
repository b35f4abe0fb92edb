package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection manages one JSON document on disk. All access goes through
// a per-collection mutex, so concurrent readers and writers within a
// single process never observe a torn document. Writes go to a temp file
// in the same directory followed by a rename, so a crash mid-write
// leaves the previous document intact.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
	init func() T
}

// NewCollection returns a collection backed by dir/name.json. The init
// function produces the default document used when the file does not
// exist yet; the default is persisted on first write, not on first read.
func NewCollection[T any](dir, name string, init func() T) *Collection[T] {
	return &Collection[T]{
		path: filepath.Join(dir, name+".json"),
		init: init,
	}
}

// Path returns the location of the backing file.
func (c *Collection[T]) Path() string {
	return c.path
}

// Read returns the current document, or the default when the file is
// missing.
func (c *Collection[T]) Read() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Update applies fn to the document under the collection lock and writes
// the result back atomically. If fn returns an error nothing is written
// and the error is returned unchanged, so services can abort a mutation
// with their own sentinel errors.
func (c *Collection[T]) Update(fn func(doc *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.load()
	if err != nil {
		var zero T
		return zero, err
	}

	if err := fn(&doc); err != nil {
		var zero T
		return zero, err
	}

	if err := c.write(doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

func (c *Collection[T]) load() (T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return c.init(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("filestore: read %s: %w", c.path, err)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("filestore: parse %s: %w", c.path, err)
	}
	return doc, nil
}

func (c *Collection[T]) write(doc T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("filestore: mkdir for %s: %w", c.path, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: marshal %s: %w", c.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("filestore: temp file for %s: %w", c.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("filestore: write %s: %w", c.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("filestore: sync %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: close %s: %w", c.path, err)
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("filestore: rename %s: %w", c.path, err)
	}
	return nil
}
