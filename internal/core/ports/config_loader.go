package ports

import "go.trai.ch/glaze/internal/core/domain"

// ConfigLoader defines the interface for loading the pipeline configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the config file by walking up from cwd and returns the pipeline.
	// When no config file exists, the default pipeline rooted at cwd is returned.
	Load(cwd string) (*domain.Pipeline, error)

	// LoadFile reads the pipeline from an explicit config file path.
	LoadFile(path string) (*domain.Pipeline, error)
}
