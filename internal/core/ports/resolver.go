// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/glaze/internal/core/domain"

// InputResolver resolves pattern sets against the file system.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// Resolve returns the files selected by patterns, relative patterns being
	// anchored at root. Each file appears once, sorted by path.
	Resolve(patterns domain.PatternSet, root string) ([]domain.Match, error)

	// Matches reports whether path would be selected by patterns.
	Matches(patterns domain.PatternSet, root, path string) bool

	// WatchRoots returns the directories that must be watched to observe
	// every file patterns can select.
	WatchRoots(patterns domain.PatternSet, root string) []string
}
