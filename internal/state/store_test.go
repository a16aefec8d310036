package state

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/nexus/internal/source"
)

func seededStore(now time.Time) *Store {
	return NewStore(source.SeedFiles(now), source.SeedConnections())
}

func TestStore_SnapshotClones(t *testing.T) {
	s := seededStore(time.Now())

	snap := s.Snapshot()
	if len(snap.Files) != 3 || len(snap.Connections) != 2 {
		t.Fatalf("snapshot sizes = %d files/%d connections, want 3/2", len(snap.Files), len(snap.Connections))
	}

	snap.Files[0].Name = "mutated"
	snap.Connections[0].Host = "mutated"
	again := s.Snapshot()
	if again.Files[0].Name != "sales_q1_2024.csv" {
		t.Fatalf("Snapshot should clone files; got %q", again.Files[0].Name)
	}
	if again.Connections[0].Host != "db.prod.nexus.com" {
		t.Fatalf("Snapshot should clone connections; got %q", again.Connections[0].Host)
	}
}

func TestStore_PrependFileNewestFirst(t *testing.T) {
	now := time.Now()
	s := seededStore(now)
	uploader := source.NewMockUploader(source.NewIDSequence(nil, s.MaxFileID()), nil, 7)

	const uploads = 5
	var ids []int64
	for i := 0; i < uploads; i++ {
		f, err := uploader.Upload(context.Background(), source.Upload{})
		if err != nil {
			t.Fatalf("Upload returned error: %v", err)
		}
		if err := s.PrependFile(f); err != nil {
			t.Fatalf("PrependFile returned error: %v", err)
		}
		ids = append(ids, f.ID)
	}

	snap := s.Snapshot()
	if len(snap.Files) != 3+uploads {
		t.Fatalf("len(Files) = %d, want %d", len(snap.Files), 3+uploads)
	}
	for i := 0; i < uploads; i++ {
		want := ids[uploads-1-i]
		if snap.Files[i].ID != want {
			t.Fatalf("Files[%d].ID = %d, want %d (newest first)", i, snap.Files[i].ID, want)
		}
		if snap.Files[i].Status != source.StatusProcessing {
			t.Fatalf("Files[%d].Status = %q, want processing", i, snap.Files[i].Status)
		}
	}

	seen := map[int64]bool{}
	for _, f := range snap.Files {
		if seen[f.ID] {
			t.Fatalf("duplicate id %d in %v", f.ID, snap.Files)
		}
		seen[f.ID] = true
	}
}

func TestStore_PrependFileRejectsDuplicateID(t *testing.T) {
	s := seededStore(time.Now())
	err := s.PrependFile(source.UploadedFile{ID: 2, Name: "dup.csv"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
	if got := len(s.Snapshot().Files); got != 3 {
		t.Fatalf("len(Files) = %d after rejected prepend, want 3", got)
	}
}

func TestStore_RecordErrorKeepsCollections(t *testing.T) {
	s := seededStore(time.Now())
	prev := s.Snapshot()

	origErr := errors.New("disk full")
	s.RecordError(origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Files, prev.Files) {
		t.Fatalf("files changed on error")
	}
	if snap.LastError == nil || snap.LastError.Error() != "disk full" {
		t.Fatalf("LastError = %v, want disk full", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	if err := s.PrependFile(source.UploadedFile{ID: 99}); err != nil {
		t.Fatalf("PrependFile returned error: %v", err)
	}
	if s.Snapshot().LastError != nil {
		t.Fatalf("LastError should clear after a successful prepend")
	}
}

func TestStore_MaxFileID(t *testing.T) {
	var empty Store
	if got := empty.MaxFileID(); got != 0 {
		t.Fatalf("MaxFileID on empty store = %d, want 0", got)
	}
	if got := seededStore(time.Now()).MaxFileID(); got != 3 {
		t.Fatalf("MaxFileID = %d, want 3", got)
	}
}
