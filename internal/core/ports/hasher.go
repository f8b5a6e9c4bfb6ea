package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashTree fingerprints the relative paths, modes and contents of every file under dir.
	HashTree(dir string) (string, error)

	// HashStrings fingerprints an ordered list of strings, such as an argument vector.
	HashStrings(values ...string) string
}
