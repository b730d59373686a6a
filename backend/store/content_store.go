package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portfolio-cms/backend/common"
	cmserrors "portfolio-cms/backend/common/errors"
)

const contentFile = "content.json"

// Document is the whole content document: section name to section value.
// Section shapes are owned by their editors; the store treats values as
// opaque JSON.
type Document map[string]json.RawMessage

// ContentStore persists the content document as a single JSON file. All
// mutations go through a process-wide mutex so the read-modify-write of
// WriteSection can never lose a concurrent writer's section.
type ContentStore struct {
	mu   sync.Mutex
	path string
}

func NewContentStore(dataDir string) *ContentStore {
	return &ContentStore{path: filepath.Join(dataDir, contentFile)}
}

// Initialize writes the default document if none exists yet. Idempotent.
func (s *ContentStore) Initialize() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat content store %s: %w", s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(defaultContentJSON), 0o644); err != nil {
		return fmt.Errorf("write default content: %w", err)
	}
	common.SysLog("Default content document created at " + s.path)
	return nil
}

// ReadAll returns the full document. A missing or unparseable file degrades
// to an empty document: the public site keeps rendering (with nothing to
// show) rather than erroring, and the problem is logged instead.
func (s *ContentStore) ReadAll() Document {
	doc, err := s.load()
	if err != nil {
		common.SysError("reading content document: " + err.Error())
		return Document{}
	}
	return doc
}

// ReadSection returns one section's value or ErrSectionNotFound.
func (s *ContentStore) ReadSection(name string) (json.RawMessage, error) {
	doc := s.ReadAll()
	value, ok := doc[name]
	if !ok {
		return nil, cmserrors.ErrSectionNotFound
	}
	return value, nil
}

// WriteSection replaces the value stored at name (no merge) and persists the
// whole document synchronously. The document-level lock serializes all
// writers regardless of which section they target.
func (s *ContentStore) WriteSection(name string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		common.SysError("reading content document: " + err.Error())
		doc = Document{}
	}
	doc[name] = value
	return s.persist(doc)
}

func (s *ContentStore) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// persist writes through a temp file and renames it into place so a failed
// write never leaves a truncated document behind.
func (s *ContentStore) persist(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content document: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
