package iofs

import (
	"os"
	"path/filepath"
)

// TempFile is written next to its destination and replaces the
// destination only on Commit. Readers never see a partially written file.
type TempFile struct {
	*os.File
	path string
	done bool
}

// CreateTemp opens a temporary file in the directory of path.
func CreateTemp(path string) (*TempFile, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, WriteFileError(path, err)
	}
	return &TempFile{File: f, path: path}, nil
}

// Path returns the destination of the file.
func (t *TempFile) Path() string {
	return t.path
}

// Commit flushes the temporary file and renames it to its destination.
func (t *TempFile) Commit() error {
	if t.done {
		return nil
	}
	tmp := t.Name()
	err := t.Sync()
	if err == nil {
		err = t.Close()
	} else {
		t.Close()
	}
	if err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err == nil {
		err = os.Rename(tmp, t.path)
	}
	if err != nil {
		os.Remove(tmp)
		return WriteFileError(t.path, err)
	}
	t.done = true
	return nil
}

// Discard removes the temporary file. It is a no-op after Commit, so it
// can be deferred.
func (t *TempFile) Discard() {
	if t.done {
		return
	}
	t.done = true
	t.Close()
	os.Remove(t.Name())
}

// WriteFileAtomic replaces path with data.
func WriteFileAtomic(path string, data []byte) error {
	f, err := CreateTemp(path)
	if err != nil {
		return err
	}
	defer f.Discard()

	if _, err = f.Write(data); err != nil {
		return WriteFileError(path, err)
	}
	return f.Commit()
}
