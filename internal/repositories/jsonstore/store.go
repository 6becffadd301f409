package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/google/uuid"
)

// Store owns the aggregate document and its file. All access goes through
// the mutex so that every mutation is persisted before the call returns;
// handlers therefore never observe a document ahead of its file.
type Store struct {
	mu     sync.Mutex
	path   string
	doc    *domain.Document
	logger *slog.Logger
}

// Open loads the document at path, installing the seed document when the
// file is missing or fails to decode. A decode failure silently discards
// the stored data; it is logged but not surfaced further.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, logger: logger}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read store file: %w", err)
		}
		s.logger.Info("Store file missing, installing seed document", slog.String("path", s.path))
		s.doc = domain.SeedDocument()
		return s.save()
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		// Destructive recovery: a corrupt document is replaced by the seed
		// document and prior data is lost.
		s.logger.Error("Failed to decode store file, resetting to seed document",
			slog.String("path", s.path), slog.String("error", err.Error()))
		s.doc = domain.SeedDocument()
		return s.save()
	}

	// Collections absent from older documents default to empty.
	if doc.Accounts == nil {
		doc.Accounts = []domain.Account{}
	}
	if doc.Departments == nil {
		doc.Departments = []domain.Department{}
	}
	if doc.Employees == nil {
		doc.Employees = []domain.Employee{}
	}
	if doc.Requests == nil {
		doc.Requests = []domain.Request{}
	}

	// Requests persisted before the requestID field get IDs backfilled.
	backfilled := false
	for i := range doc.Requests {
		if doc.Requests[i].RequestID == "" {
			doc.Requests[i].RequestID = uuid.NewString()
			backfilled = true
		}
	}

	s.doc = doc
	if backfilled {
		return s.save()
	}
	return nil
}

// save writes the whole document atomically: marshal, write to a temp file
// in the same directory, rename over the target. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// view runs fn with read access to the document.
func (s *Store) view(fn func(doc *domain.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// update runs fn with write access to the document and persists the result
// when fn reports a mutation. An error from fn skips the save.
func (s *Store) update(fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.save()
}

// Snapshot returns a deep copy of the current document. Used by tests to
// assert on store state without racing the repositories.
func (s *Store) Snapshot() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := &domain.Document{
		Accounts:    append([]domain.Account{}, s.doc.Accounts...),
		Departments: append([]domain.Department{}, s.doc.Departments...),
		Employees:   append([]domain.Employee{}, s.doc.Employees...),
		Requests:    make([]domain.Request, len(s.doc.Requests)),
	}
	for i, r := range s.doc.Requests {
		r.Items = append([]domain.RequestItem{}, r.Items...)
		cp.Requests[i] = r
	}
	return cp
}
