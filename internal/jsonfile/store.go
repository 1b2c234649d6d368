// Package jsonfile stores the task collection as a single JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rpggio/taskbook/internal/domain/task"
	"github.com/rpggio/taskbook/internal/repository"
)

// TaskStore implements task.Store using a JSON file for persistence.
type TaskStore struct {
	path string
	mu   sync.RWMutex
}

// NewTaskStore creates a new JSON file task store at the given path.
func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

// Path returns the backing file location.
func (s *TaskStore) Path() string {
	return s.path
}

// Load reads the whole collection.
// Returns repository.ErrNotFound if the file is missing or empty.
func (s *TaskStore) Load(ctx context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, repository.ErrNotFound
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", repository.ErrCorrupt, s.path, err)
	}
	if tasks == nil {
		// a literal "null" is not a collection
		return nil, fmt.Errorf("%w: %s does not hold a JSON array", repository.ErrCorrupt, s.path)
	}

	return tasks, nil
}

// Save replaces the whole collection on disk atomically.
func (s *TaskStore) Save(ctx context.Context, tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory, syncs
// it, renames it over path, and syncs the directory.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	// Some platforms reject fsync on directories; the rename already happened.
	_ = f.Sync()
	return nil
}
