// Package state holds the data-source collections shared by the Nexus UI.
//
// # Overview
//
// The Store owns the uploaded-file list and the database-connection list for
// the lifetime of the process. Nothing is persisted: every run starts from the
// seed collections handed to NewStore.
//
// # Concurrency Model
//
// Only the Bubble Tea update loop mutates the store, but snapshots are read
// from command goroutines (uploads, connection tests), so access goes through
// a sync.RWMutex:
//
//   - PrependFile / RecordError: write lock
//   - Snapshot / MaxFileID: read lock
//
// Snapshot returns copies of both slices, so callers may modify what they get
// back without affecting the store.
//
// # Update Semantics
//
//	store.PrependFile(f)
//	→ rejects f when its ID is already present (ErrDuplicateID)
//	→ snapshot.Files = [f, ...previous]
//	→ snapshot.LastError = nil
//
//	store.RecordError(err)
//	→ collections untouched
//	→ snapshot.LastError = err
//
// There is deliberately no operation that appends a database connection: the
// new-connection form closes without changing the list.
package state
