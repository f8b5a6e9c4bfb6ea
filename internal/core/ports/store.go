package ports

import "go.trai.ch/vcbuild/internal/core/domain"

// InstallRecordStore defines the interface for persisting prerequisite install fingerprints.
// Records live under the script root passed to every call.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InstallRecordStore interface {
	// Get retrieves the record for the given name.
	// Returns nil, nil if not found.
	Get(root, name string) (*domain.InstallRecord, error)

	// Put stores the record.
	Put(root string, rec domain.InstallRecord) error

	// Delete removes the record for the given name. Deleting a missing record is not an error.
	Delete(root, name string) error
}
