// Package complete answers shell completion queries against an index.
package complete

import (
	"errors"
	"strings"

	"github.com/git-pkgs/completions/internal/core"
	"github.com/git-pkgs/completions/internal/versions"
)

// Names returns the full names of every package starting with partial.
func Names(idx core.Index, partial string) ([]string, error) {
	locs, err := idx.Search(partial)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(locs))
	for _, loc := range locs {
		names = append(names, loc.Name)
	}
	return names, nil
}

// Versions returns suffixes completing partial to a release of name.
func Versions(idx core.Index, name, partial string) ([]string, error) {
	loc, records, err := releases(idx, name)
	if err != nil {
		return nil, err
	}

	suffixes, err := versions.Complete(records, partial)
	if err != nil {
		var decodeErr *core.DecodeError
		if errors.As(err, &decodeErr) && decodeErr.Path == "" {
			decodeErr.Path = loc.Path
		}
		return nil, err
	}
	return suffixes, nil
}

// Package completes "name" to package names, or "name@req[,req...]" to the
// full input extended by each version completion of the last requirement.
func Package(idx core.Index, partial string) ([]string, error) {
	name, reqs, ok := strings.Cut(partial, "@")
	if !ok {
		return Names(idx, partial)
	}

	last := reqs
	if i := strings.LastIndex(reqs, ","); i >= 0 {
		last = reqs[i+1:]
	}

	suffixes, err := Versions(idx, name, last)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = partial + s
	}
	return out, nil
}

// Feature returns the feature names of the release of name closest to the
// version prefix.
func Feature(idx core.Index, name, version string) ([]string, error) {
	_, records, err := releases(idx, name)
	if err != nil {
		return nil, err
	}

	features, err := versions.Features(records, version)
	if err != nil {
		var notFound *core.NotFoundError
		if errors.As(err, &notFound) {
			notFound.Ecosystem = idx.Ecosystem()
			notFound.Name = name
		}
		return nil, err
	}
	return features, nil
}

func releases(idx core.Index, name string) (*core.PackageLocation, []core.ReleaseRecord, error) {
	loc, err := idx.Locate(name)
	if err != nil {
		return nil, nil, err
	}
	records, err := idx.Releases(*loc)
	if err != nil {
		return nil, nil, err
	}
	return loc, records, nil
}
