// Package store is the persistent side of the save system: whole-file reads
// and writes of serialized payloads. Failures are advisory; a missing save
// file is a legitimate, common outcome.
package store

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/pkg/encoding"
)

// FileStore reads and writes save files through an afero filesystem, so tests
// and sandboxed hosts can swap the backing store.
type FileStore struct {
	fs  afero.Fs
	log log.Log
}

func New(fs afero.Fs, logger log.Log) *FileStore {
	return &FileStore{
		fs:  fs,
		log: logger,
	}
}

// Write replaces the file at path with data. An existing file is deleted
// first so the write is a full overwrite, never a partial one. The result is
// a bool, not an error; the cause of a failure is logged.
func (s *FileStore) Write(path, data string) bool {
	if s.Exists(path) {
		if err := s.fs.Remove(path); err != nil {
			s.log.Error("could not replace save file", log.String("path", path), log.Error(err))
			return false
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			s.log.Error("could not create save directory", log.String("path", dir), log.Error(err))
			return false
		}
	}

	f, err := s.fs.Create(path)
	if err != nil {
		s.log.Error("could not create save file", log.String("path", path), log.Error(err))
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(data); err != nil {
		s.log.Error("could not write save file", log.String("path", path), log.Error(err))
		return false
	}
	return true
}

// Read returns the whole file at path, or "" when it does not exist. "" is
// not an error; first-ever loads see it on every file.
func (s *FileStore) Read(path string) string {
	if !s.Exists(path) {
		return ""
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.log.Error("could not read save file", log.String("path", path), log.Error(err))
		return ""
	}
	return string(data)
}

// Exists reports whether a regular file is present at path.
func (s *FileStore) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		s.log.Error("could not stat save file", log.String("path", path), log.Error(err))
		return false
	}
	return ok
}

// Delete removes the file at path. Deleting a missing file succeeds.
func (s *FileStore) Delete(path string) bool {
	if !s.Exists(path) {
		return true
	}
	if err := s.fs.Remove(path); err != nil {
		s.log.Error("could not delete save file", log.String("path", path), log.Error(err))
		return false
	}
	return true
}

// WriteRecord persists a record that owns its wire form.
func (s *FileStore) WriteRecord(path string, rec encoding.Serializable) bool {
	data, err := rec.Serialize()
	if err != nil {
		s.log.Error("record could not be serialized", log.String("path", path), log.Error(err))
		return false
	}
	return s.Write(path, string(data))
}

// ReadRecord loads a record that owns its wire form. A missing file leaves
// the record untouched and reports false.
func (s *FileStore) ReadRecord(path string, rec encoding.Serializable) bool {
	data := s.Read(path)
	if data == "" {
		return false
	}
	if err := rec.Deserialize([]byte(data)); err != nil {
		s.log.Warn("record does not decode", log.String("path", path), log.Error(err))
		return false
	}
	return true
}
