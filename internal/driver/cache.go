package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lintscan/internal/config"
	"lintscan/internal/diag"
	"lintscan/internal/script"
	"lintscan/internal/source"
)

// bump when cachePayload changes
const cacheSchemaVersion uint16 = 1

// ResultCache stores filtered per-file results on disk keyed by CacheKey.
// Safe for concurrent use.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema      uint16             `msgpack:"schema"`
	Path        string             `msgpack:"path"`
	Dropped     int                `msgpack:"dropped"`
	Diagnostics []cachedDiagnostic `msgpack:"diagnostics"`
}

// cachedDiagnostic keeps only the rendering of the triggering expression.
type cachedDiagnostic struct {
	Code     string `msgpack:"code"`
	Subject  string `msgpack:"subject,omitempty"`
	File     string `msgpack:"file"`
	Line     uint32 `msgpack:"line"`
	Column   uint32 `msgpack:"column"`
	Offset   uint32 `msgpack:"offset"`
	Rule     string `msgpack:"rule,omitempty"`
	Expr     string `msgpack:"expr,omitempty"`
	Severity uint8  `msgpack:"severity"`
}

// DefaultCacheDir is $XDG_CACHE_HOME/lintscan or ~/.cache/lintscan.
func DefaultCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "lintscan"), nil
}

// OpenCache opens (creating if needed) a cache rooted at dir; "" uses
// DefaultCacheDir.
func OpenCache(dir string) (*ResultCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *ResultCache) Dir() string { return c.dir }

// CacheKey identifies a result by file content, path, effective config and
// the rule set.
func CacheKey(file *source.File, cfg *config.Config, rules []Rule) string {
	if cfg == nil {
		cfg = config.Default()
	}
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name())
	}
	slices.Sort(names)

	h := sha256.New()
	h.Write(file.Hash[:])
	fmt.Fprintf(h, "\x00%s\x00%s\x00", file.Path, cfg.Fingerprint())
	for _, n := range names {
		fmt.Fprintf(h, "%s,", n)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ResultCache) pathFor(key string) string {
	return filepath.Join(c.dir, "results", key+".mp")
}

// Put writes bag under key, replacing any previous entry atomically.
func (c *ResultCache) Put(key, path string, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	payload := cachePayload{Schema: cacheSchemaVersion, Path: path, Dropped: bag.Dropped()}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, cachedDiagnostic{
			Code:     string(d.Code),
			Subject:  d.Subject,
			File:     d.File,
			Line:     d.Pos.Line,
			Column:   d.Pos.Column,
			Offset:   d.Pos.Offset,
			Rule:     d.Rule,
			Expr:     d.ExprText(),
			Severity: uint8(d.Severity),
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the entry for key. A missing entry or an entry written by an
// older schema is a miss, not an error.
func (c *ResultCache) Get(key string) (*diag.Bag, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}

	bag := diag.NewBag(0)
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Code:     diag.Code(cd.Code),
			Subject:  cd.Subject,
			File:     cd.File,
			Pos:      diag.Pos{Line: cd.Line, Column: cd.Column, Offset: cd.Offset},
			Rule:     cd.Rule,
			Severity: diag.Severity(cd.Severity),
		}
		if cd.Expr != "" {
			d.Expr = &script.Literal{Text: cd.Expr}
		}
		bag.Add(d)
	}
	bag.AddDropped(payload.Dropped)
	return bag, true, nil
}

// Clean removes every entry.
func (c *ResultCache) Clean() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
