// Package cargo reads a local crates.io index checkout.
package cargo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/git-pkgs/completions/internal/core"
	"github.com/git-pkgs/completions/internal/shard"
	"github.com/spf13/afero"
)

const (
	DefaultURL = "https://crates.io"
	ecosystem  = "cargo"
)

func init() {
	core.Register(ecosystem, func(root string, fs afero.Fs) core.Index {
		return New(root, fs)
	})
}

// Index is a crates.io index laid out as 1/<name>, 2/<name>,
// 3/<c>/<name> and <c1c2>/<c3c4>/<name>.
type Index struct {
	fs   afero.Fs
	tree *shard.Traverser
	urls *core.BaseURLs
}

func New(root string, fs afero.Fs) *Index {
	return &Index{
		fs:   fs,
		tree: shard.New(fs, root),
		urls: NewURLs(DefaultURL),
	}
}

func (i *Index) Ecosystem() string {
	return ecosystem
}

func (i *Index) URLs() core.URLBuilder {
	return i.urls
}

// Path returns where name lives in the canonical cargo layout, relative to
// the index root.
func Path(name string) string {
	switch len(name) {
	case 0:
		return ""
	case 1:
		return filepath.Join("1", name)
	case 2:
		return filepath.Join("2", name)
	case 3:
		return filepath.Join("3", name[:1], name)
	default:
		return filepath.Join(name[:2], name[2:4], name)
	}
}

// Locate probes the canonical path first and falls back to walking the tree
// by name segments.
func (i *Index) Locate(name string) (*core.PackageLocation, error) {
	if rel := Path(name); rel != "" && !strings.ContainsAny(name, `/\`) {
		path := filepath.Join(i.tree.Root(), rel)
		info, err := i.fs.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return &core.PackageLocation{Name: name, Path: path}, nil
		case err != nil && !os.IsNotExist(err):
			return nil, &core.IOError{Op: "stat", Path: path, Err: err}
		}
	}

	loc, found, err := i.tree.Locate(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &core.NotFoundError{Ecosystem: ecosystem, Name: name}
	}
	return &loc, nil
}

// Search walks the tree for prefix and adds the short-name buckets, which
// are named by length rather than by leading characters.
func (i *Index) Search(prefix string) ([]core.PackageLocation, error) {
	found, err := i.tree.Search(prefix)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		return found, nil
	}

	for _, bucket := range shortBuckets(prefix) {
		more, err := i.tree.Scan(bucket, prefix)
		if err != nil {
			return nil, err
		}
		found = append(found, more...)
	}

	return dedupe(found), nil
}

// shortBuckets lists the directories that can hold names of at most three
// characters starting with prefix.
func shortBuckets(prefix string) []string {
	var buckets []string
	if len(prefix) <= 1 {
		buckets = append(buckets, "1")
	}
	if len(prefix) <= 2 {
		buckets = append(buckets, "2")
	}
	if len(prefix) <= 3 {
		for _, head := range shard.Expand(prefix[:1]) {
			if head == "." || head == "/" || head == `\` {
				continue
			}
			buckets = append(buckets, filepath.Join("3", head))
		}
	}
	return buckets
}

func dedupe(locs []core.PackageLocation) []core.PackageLocation {
	seen := make(map[string]bool, len(locs))
	out := locs[:0]
	for _, loc := range locs {
		if seen[loc.Path] {
			continue
		}
		seen[loc.Path] = true
		out = append(out, loc)
	}
	shard.SortLocations(out)
	return out
}

func (i *Index) Releases(loc core.PackageLocation) ([]core.ReleaseRecord, error) {
	return LoadReleases(i.fs, loc)
}

// NewURLs returns the crates.io URL builder for a registry at baseURL.
func NewURLs(baseURL string) *core.BaseURLs {
	return &core.BaseURLs{
		Ecosystem: ecosystem,
		RegistryFn: func(name, version string) string {
			if version != "" {
				return fmt.Sprintf("%s/crates/%s/%s", baseURL, name, version)
			}
			return fmt.Sprintf("%s/crates/%s", baseURL, name)
		},
		DownloadFn: func(name, version string) string {
			if version == "" {
				return ""
			}
			return fmt.Sprintf("https://static.crates.io/crates/%s/%s-%s.crate", name, name, version)
		},
		DocumentationFn: func(name, version string) string {
			if version != "" {
				return fmt.Sprintf("https://docs.rs/%s/%s", name, version)
			}
			return fmt.Sprintf("https://docs.rs/%s", name)
		},
	}
}
