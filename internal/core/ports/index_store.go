// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/orbis/internal/core/domain"

// IndexStore persists and recalls sampling indexes, keyed by the exact Config
// that produced them.
//
//go:generate go run go.uber.org/mock/mockgen -source=index_store.go -destination=mocks/mock_index_store.go -package=mocks
type IndexStore interface {
	// Load returns the stored sampling index for cfg if present and
	// well-formed. A missing, truncated, or corrupt entry is a miss
	// (nil, false, nil), never an error: the caller rebuilds.
	Load(cfg domain.Config) (*domain.SamplingIndex, bool, error)

	// Persist writes the index under its Config-derived key. Writes are
	// atomic so a concurrent Load sees either nothing or a complete entry.
	Persist(idx *domain.SamplingIndex) error
}
