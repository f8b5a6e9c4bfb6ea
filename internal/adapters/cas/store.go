// Package cas implements the install record store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstallRecordStore = (*Store)(nil)

// Store implements ports.InstallRecordStore using a file-per-record strategy under
// <root>/.vcbuild/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for the given name.
func (s *Store) Get(root, name string) (*domain.InstallRecord, error) {
	filename := s.filename(root, name)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.Fault(domain.ErrStoreReadFailed, zerr.With(err, "path", filename))
	}

	var rec domain.InstallRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, domain.Fault(domain.ErrStoreUnmarshalFailed, zerr.With(err, "path", filename))
	}

	return &rec, nil
}

// Put stores the record, replacing any previous record of the same name.
func (s *Store) Put(root string, rec domain.InstallRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return domain.Fault(domain.ErrStoreMarshalFailed, err)
	}

	filename := s.filename(root, rec.Name)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return domain.Fault(domain.ErrStoreCreateFailed, err)
	}

	// Readers never observe a partially written record.
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return domain.Fault(domain.ErrStoreWriteFailed, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return domain.Fault(domain.ErrStoreWriteFailed, err)
	}

	return nil
}

// Delete removes the record for the given name.
func (s *Store) Delete(root, name string) error {
	if err := os.Remove(s.filename(root, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.Fault(domain.ErrStoreWriteFailed, err)
	}
	return nil
}

func (s *Store) filename(root, name string) string {
	hash := sha256.Sum256([]byte(name))
	return filepath.Join(domain.NewLayout(root).StoreDir(), hex.EncodeToString(hash[:])+".json")
}
