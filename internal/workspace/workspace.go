package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".subgen.lock"

// Workspace owns the scratch directory used for chunk files. Concurrent runs
// hold the lock shared; cleanup requires it exclusively.
type Workspace struct {
	dir  string
	lock *flock.Flock
}

// New creates a workspace rooted at dir.
func New(dir string) *Workspace {
	return &Workspace{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFileName)),
	}
}

// Dir returns the scratch directory path.
func (w *Workspace) Dir() string {
	return w.dir
}

// AcquireShared takes the workspace lock in shared mode for the duration of a
// run. The returned release function must be called when the run finishes.
func (w *Workspace) AcquireShared() (func(), error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure work directory: %w", err)
	}
	ok, err := w.lock.TryRLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return nil, errors.New("workspace is locked for cleanup")
	}
	return func() { _ = w.lock.Unlock() }, nil
}

// Clean removes stale chunk files left behind by crashed runs. It requires
// the exclusive lock, so it refuses to run while any transcription is active.
// Returns the number of files removed.
func (w *Workspace) Clean() (int, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return 0, fmt.Errorf("ensure work directory: %w", err)
	}
	ok, err := w.lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return 0, errors.New("a transcription run is in progress")
	}
	defer func() { _ = w.lock.Unlock() }()

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return 0, fmt.Errorf("read work directory: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == lockFileName {
			continue
		}
		if err := os.Remove(filepath.Join(w.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
