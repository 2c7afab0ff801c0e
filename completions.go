// Package completions resolves partial shell input into completion
// candidates from a local package index.
//
// The package reads the on-disk index maintained by a package manager
// (for Cargo, the crates.io index under $CARGO_HOME/registry/index) and
// never touches the network.
//
// Basic usage:
//
//	import (
//		"github.com/git-pkgs/completions"
//		_ "github.com/git-pkgs/completions/internal/cargo"
//	)
//
//	idx, err := completions.New("cargo", "/home/me/.cargo/registry/index/github.com-1ecc6299db9ec823", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	names, err := completions.CompletePackage(idx, "tokio-")
//	// ["tokio-macros", "tokio-stream", "tokio-util", ...]
//
//	versions, err := completions.CompletePackage(idx, "serde@1.0.1")
//	// ["serde@1.0.197", "serde@1.0.196", ...]
//
// To register every supported ecosystem, import the all subpackage:
//
//	import (
//		"github.com/git-pkgs/completions"
//		_ "github.com/git-pkgs/completions/all"
//	)
package completions

import (
	"github.com/git-pkgs/completions/internal/complete"
	"github.com/git-pkgs/completions/internal/core"
	"github.com/git-pkgs/purl"
	"github.com/spf13/afero"
)

// Re-export types from internal/core
type (
	// Index is the interface implemented by all ecosystem indexes.
	Index = core.Index

	// PackageLocation identifies a package metadata file.
	PackageLocation = core.PackageLocation

	// ReleaseRecord is one published version of a package.
	ReleaseRecord = core.ReleaseRecord

	// URLBuilder constructs URLs for a package.
	URLBuilder = core.URLBuilder

	// Query is a package name with an optional version, as typed at a shell.
	Query = core.Query

	// Info describes the latest release of a package.
	Info = complete.Info
)

// Re-export errors
var (
	ErrNotFound = core.ErrNotFound
	ErrDecode   = core.ErrDecode
)

// Error types
type (
	IOError       = core.IOError
	NotFoundError = core.NotFoundError
	DecodeError   = core.DecodeError
)

// New creates an index for the given ecosystem rooted at root.
// If fs is nil, the host filesystem is used read-only.
//
// Supported ecosystems: "cargo"
func New(ecosystem string, root string, fs afero.Fs) (Index, error) {
	return core.New(ecosystem, root, fs)
}

// SupportedEcosystems returns all registered ecosystem types.
// Note: ecosystems must be imported to be registered.
func SupportedEcosystems() []string {
	return core.SupportedEcosystems()
}

// CompletePackage completes a partial package name, or a "name@version"
// input to full "name@version" candidates, most recent first.
func CompletePackage(idx Index, partial string) ([]string, error) {
	return complete.Package(idx, partial)
}

// CompleteVersion returns the suffixes that extend partial to a
// non-yanked release of name.
func CompleteVersion(idx Index, name, partial string) ([]string, error) {
	return complete.Versions(idx, name, partial)
}

// CompleteFeature lists the features of the last release of name whose
// version starts with version.
func CompleteFeature(idx Index, name, version string) ([]string, error) {
	return complete.Feature(idx, name, version)
}

// LatestRelease returns the non-yanked release of name with the highest version.
func LatestRelease(idx Index, name string) (*ReleaseRecord, error) {
	return complete.LatestRelease(idx, name)
}

// PackageInfo returns the latest release of name with its features and URLs.
func PackageInfo(idx Index, name string) (*Info, error) {
	return complete.PackageInfo(idx, name)
}

// ParseQuery splits "name", "name@version" or a PURL into its parts.
func ParseQuery(input string) (Query, error) {
	return core.ParseQuery(input)
}

// BuildURLs returns a map of all non-empty URLs for a package.
// Keys are "registry", "download", "docs", and "purl".
func BuildURLs(urls URLBuilder, name, version string) map[string]string {
	return core.BuildURLs(urls, name, version)
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:cargo/serde) and version PURLs (pkg:cargo/serde@1.0.0).
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}
