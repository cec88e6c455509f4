package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/sdlcforge/makefwd/internal/target"
)

// entry is the on-disk record for one makefile: the content fingerprint it
// was discovered under, and the resulting targets.
type entry struct {
	Fingerprint uint64          `json:"fingerprint"`
	Targets     []target.Target `json:"targets"`
}

// document is the full on-disk cache file: one entry per makefile's
// absolute path.
type document struct {
	Entries map[string]entry `json:"entries"`
}

// Cache is a JSON-on-disk store of target listings keyed by makefile path
// and content fingerprint. It is not safe for concurrent use by multiple
// processes; makefwd runs it from a single invocation.
type Cache struct {
	path string
	doc  document
}

// Open loads the cache file at path, or starts an empty cache if path does
// not yet exist.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, doc: document{Entries: map[string]entry{}}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.doc); err != nil {
		return nil, err
	}
	if c.doc.Entries == nil {
		c.doc.Entries = map[string]entry{}
	}
	return c, nil
}

// Fingerprint computes the cache's fingerprint for makefile content.
func Fingerprint(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// Lookup returns the cached targets for mf if its fingerprint in the cache
// matches content's fingerprint, reporting whether a usable hit was found.
func (c *Cache) Lookup(mfPath string, content []byte) ([]target.Target, bool) {
	e, ok := c.doc.Entries[mfPath]
	if !ok {
		return nil, false
	}
	if e.Fingerprint != Fingerprint(content) {
		return nil, false
	}
	return e.Targets, true
}

// Store records targets for mfPath under content's current fingerprint,
// replacing any prior entry.
func (c *Cache) Store(mfPath string, content []byte, targets []target.Target) {
	c.doc.Entries[mfPath] = entry{
		Fingerprint: Fingerprint(content),
		Targets:     targets,
	}
}

// Save writes the cache back to its path, creating parent directories as
// needed.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
