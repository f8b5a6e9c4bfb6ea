package ports

import "go.trai.ch/vcbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the tool settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the settings for the given script root, defaults merged with the optional
	// settings file.
	Load(root string) (domain.Settings, error)
}
