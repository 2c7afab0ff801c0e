package core

import (
	"strings"

	"github.com/spf13/afero"

	packageurl "github.com/package-url/packageurl-go"
)

const purlScheme = "pkg:"

// PURL wraps packageurl.PackageURL with index-specific helpers.
type PURL struct {
	packageurl.PackageURL
}

// FullName returns the package name as the index stores it, with any
// namespace joined by '/'.
func (p PURL) FullName() string {
	if p.Namespace == "" {
		return p.Name
	}
	return p.Namespace + "/" + p.Name
}

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:cargo/serde) and version PURLs (pkg:cargo/serde@1.0.0).
func ParsePURL(purl string) (*PURL, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	return &PURL{p}, nil
}

// IsPURL reports whether input looks like a package URL rather than a bare name.
func IsPURL(input string) bool {
	return strings.HasPrefix(input, purlScheme)
}

// Query is a package name with an optional version part, as typed at a shell.
type Query struct {
	Ecosystem string // empty unless the input was a PURL
	Name      string
	Version   string
}

// ParseQuery splits "name", "name@version" or a PURL into its parts.
// The split happens at the first '@'.
func ParseQuery(input string) (Query, error) {
	if IsPURL(input) {
		p, err := ParsePURL(input)
		if err != nil {
			return Query{}, err
		}
		return Query{Ecosystem: p.Type, Name: p.FullName(), Version: p.Version}, nil
	}

	name, version, _ := strings.Cut(input, "@")
	return Query{Name: name, Version: version}, nil
}

// NewFromPURL creates an index for the PURL's ecosystem and returns the parsed components.
// Returns the index, full package name, and version (empty if not in PURL).
func NewFromPURL(purl string, root string, fs afero.Fs) (Index, string, string, error) {
	p, err := ParsePURL(purl)
	if err != nil {
		return nil, "", "", err
	}

	idx, err := New(p.Type, root, fs)
	if err != nil {
		return nil, "", "", err
	}

	return idx, p.FullName(), p.Version, nil
}
