package complete

import (
	"github.com/git-pkgs/completions/internal/core"
	"github.com/git-pkgs/completions/internal/versions"
)

// LatestRelease returns the non-yanked release of name with the highest version.
// Returns a *core.NotFoundError if no valid release exists.
func LatestRelease(idx core.Index, name string) (*core.ReleaseRecord, error) {
	_, records, err := releases(idx, name)
	if err != nil {
		return nil, err
	}

	latest := versions.Latest(records)
	if latest == nil {
		return nil, &core.NotFoundError{Ecosystem: idx.Ecosystem(), Name: name}
	}
	return latest, nil
}

// Info describes the latest release of a package and where to find it.
type Info struct {
	Release  core.ReleaseRecord
	Features []string
	URLs     map[string]string
}

// PackageInfo gathers Info for the latest release of name.
func PackageInfo(idx core.Index, name string) (*Info, error) {
	latest, err := LatestRelease(idx, name)
	if err != nil {
		return nil, err
	}

	features, err := versions.Features([]core.ReleaseRecord{*latest}, latest.Version)
	if err != nil {
		return nil, err
	}

	return &Info{
		Release:  *latest,
		Features: features,
		URLs:     core.BuildURLs(idx.URLs(), name, latest.Version),
	}, nil
}
