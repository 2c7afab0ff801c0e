package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/afero"
)

// Index is the interface implemented by every local package index.
type Index interface {
	// Ecosystem returns the PURL type for this index (e.g., "cargo").
	Ecosystem() string

	// Locate finds the metadata file for an exact package name.
	// A missing package yields a *NotFoundError.
	Locate(name string) (*PackageLocation, error)

	// Search returns every package whose name starts with prefix,
	// treating '-' and '_' as interchangeable.
	Search(prefix string) ([]PackageLocation, error)

	// Releases loads the release records of a located package in file order.
	Releases(loc PackageLocation) ([]ReleaseRecord, error)

	// URLs returns the URL builder for this ecosystem.
	URLs() URLBuilder
}

// Factory creates an index rooted at root on fs.
type Factory func(root string, fs afero.Fs) Index

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an index factory for an ecosystem.
// ecosystem is the PURL type (e.g., "cargo").
func Register(ecosystem string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[ecosystem] = factory
}

// New creates an index for the given ecosystem rooted at root.
// If fs is nil, the host filesystem is used read-only.
func New(ecosystem string, root string, fs afero.Fs) (Index, error) {
	mu.RLock()
	factory, ok := factories[ecosystem]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown ecosystem: %s", ecosystem)
	}

	if fs == nil {
		fs = afero.NewReadOnlyFs(afero.NewOsFs())
	}

	return factory(root, fs), nil
}

// SupportedEcosystems returns all registered ecosystem types, sorted.
func SupportedEcosystems() []string {
	mu.RLock()
	defer mu.RUnlock()

	ecosystems := make([]string, 0, len(factories))
	for eco := range factories {
		ecosystems = append(ecosystems, eco)
	}
	sort.Strings(ecosystems)
	return ecosystems
}
