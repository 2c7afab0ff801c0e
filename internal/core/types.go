// Package core provides shared types and the index system.
package core

// PackageLocation identifies a package metadata file inside an index.
type PackageLocation struct {
	Name string
	Path string
}

// ReleaseRecord is one line of a package metadata file.
//
// Records are kept in file order. Index files are append-only, so file
// order is assumed to be publication order; nothing here verifies it.
type ReleaseRecord struct {
	Name        string
	Version     string
	Features    map[string][]string
	Yanked      bool
	Checksum    string // sha256 hex of the .crate archive
	RustVersion string
}

// FeatureNames returns the keys of the record's feature table.
func (r ReleaseRecord) FeatureNames() []string {
	names := make([]string, 0, len(r.Features))
	for name := range r.Features {
		names = append(names, name)
	}
	return names
}
