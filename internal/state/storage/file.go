package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/SarthakJariwala/panqake/internal/must"
	"github.com/SarthakJariwala/panqake/internal/osutil"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/tidwall/gjson"
)

const (
	// HomeEnv names the environment variable
	// that overrides the directory holding the store.
	HomeEnv = "PANQAKE_HOME"

	_fileName = "stacks.json"
	_dirName  = ".panqake"
)

// DefaultFilePath reports where the store lives by default:
// $PANQAKE_HOME/stacks.json if set, ~/.panqake/stacks.json otherwise.
func DefaultFilePath() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Join(dir, _fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, _dirName, _fileName), nil
}

// CorruptError indicates that the store file exists
// but does not hold a JSON object.
type CorruptError struct {
	Path   string
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store %v: %v", e.Path, e.Reason)
}

// FileBackend stores all keys in a single JSON object in a file.
//
// Writes replace the file atomically.
// Writers in other processes are not coordinated with:
// the last write wins.
type FileBackend struct {
	path string
	log  *silog.Logger
	mu   sync.RWMutex
}

var _ Backend = (*FileBackend)(nil)

// FileConfig configures a [FileBackend].
type FileConfig struct {
	Path string // required

	Log *silog.Logger
}

// NewFileBackend builds a [FileBackend].
// The file does not need to exist.
func NewFileBackend(cfg FileConfig) *FileBackend {
	must.NotBeBlankf(cfg.Path, "store path must be set")
	if cfg.Log == nil {
		cfg.Log = silog.Nop()
	}

	return &FileBackend{
		path: cfg.Path,
		log:  cfg.Log,
	}
}

// Path reports the path to the store file.
func (f *FileBackend) Path() string { return f.path }

// Get retrieves a value from the store and decodes it into dst.
func (f *FileBackend) Get(_ context.Context, key string, dst any) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	doc, err := f.read()
	if err != nil {
		return err
	}

	raw, ok := doc[key]
	if !ok {
		return ErrNotExist
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// Keys lists the top-level keys in the file.
func (f *FileBackend) Keys(context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	doc, err := f.read()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// Update reads the file, applies the batch, and atomically replaces it.
// If the file is corrupt, nothing is written.
func (f *FileBackend) Update(_ context.Context, req UpdateRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}

	for i, set := range req.Sets {
		must.NotBeBlankf(set.Key, "key must not be blank")

		v, err := json.Marshal(set.Value)
		if err != nil {
			return fmt.Errorf("marshal [%d]: %w", i, err)
		}
		doc[set.Key] = v
	}
	for _, key := range req.Deletes {
		delete(doc, key)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	data = append(data, '\n')

	if err := osutil.WriteFileAtomic(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	f.log.Debug("Updated store",
		"path", f.path,
		"sets", len(req.Sets),
		"deletes", len(req.Deletes),
		"message", req.Message,
	)
	return nil
}

// read loads the top-level object from the file.
// A missing or empty file is an empty store.
func (f *FileBackend) read() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, &CorruptError{Path: f.path, Reason: "not valid JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &CorruptError{
			Path:   f.path,
			Reason: fmt.Sprintf("top level is %v, not an object", describe(root)),
		}
	}

	root.ForEach(func(key, value gjson.Result) bool {
		doc[key.String()] = json.RawMessage(value.Raw)
		return true
	})
	return doc, nil
}

func describe(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "an array"
	case r.Type == gjson.String:
		return "a string"
	case r.Type == gjson.Number:
		return "a number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "a boolean"
	default:
		return "null"
	}
}
