package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/nexus/internal/source"
)

// ErrDuplicateID is returned when an item reuses an ID already in its collection.
var ErrDuplicateID = errors.New("duplicate id")

// Snapshot represents the data-source collections available to the UI.
type Snapshot struct {
	Files       []source.UploadedFile
	Connections []source.DatabaseConnection
	LastUpdated time.Time
	LastError   error
}

// Store coordinates updates to the data-source collections.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore creates a store holding the given collections. Files are expected
// newest first.
func NewStore(files []source.UploadedFile, conns []source.DatabaseConnection) *Store {
	return &Store{snapshot: Snapshot{
		Files:       cloneFiles(files),
		Connections: cloneConnections(conns),
		LastUpdated: time.Now(),
	}}
}

// PrependFile adds f to the front of the file list.
func (s *Store) PrependFile(f source.UploadedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.snapshot.Files {
		if existing.ID == f.ID {
			return fmt.Errorf("file %d: %w", f.ID, ErrDuplicateID)
		}
	}

	files := make([]source.UploadedFile, 0, len(s.snapshot.Files)+1)
	files = append(files, f)
	files = append(files, s.snapshot.Files...)
	s.snapshot.Files = files
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	return nil
}

// RecordError keeps err for display without touching the collections.
func (s *Store) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Files = cloneFiles(s.snapshot.Files)
	snap.Connections = cloneConnections(s.snapshot.Connections)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// MaxFileID returns the largest file ID held, or zero.
func (s *Store) MaxFileID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max int64
	for _, f := range s.snapshot.Files {
		if f.ID > max {
			max = f.ID
		}
	}
	return max
}

func cloneFiles(items []source.UploadedFile) []source.UploadedFile {
	if len(items) == 0 {
		return nil
	}
	dup := make([]source.UploadedFile, len(items))
	copy(dup, items)
	return dup
}

func cloneConnections(items []source.DatabaseConnection) []source.DatabaseConnection {
	if len(items) == 0 {
		return nil
	}
	dup := make([]source.DatabaseConnection, len(items))
	copy(dup, items)
	return dup
}
