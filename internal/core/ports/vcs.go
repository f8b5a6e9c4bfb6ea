package ports

import "context"

// VCS defines the interface for the version control operations performed on upstream trees.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Checkout switches the working tree at dir to ref.
	Checkout(ctx context.Context, dir, ref string) error

	// Clone performs a shallow clone of ref from remote into dir.
	Clone(ctx context.Context, remote, ref, dir string) error

	// Head returns the commit currently checked out at dir.
	Head(ctx context.Context, dir string) (string, error)
}
