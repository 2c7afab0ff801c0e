package shard

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/git-pkgs/completions/internal/core"
	"github.com/spf13/afero"
)

// Traverser looks packages up in a sharded tree rooted at a directory.
type Traverser struct {
	fs   afero.Fs
	root string
}

// New returns a Traverser over the tree at root on fs.
func New(fs afero.Fs, root string) *Traverser {
	return &Traverser{fs: fs, root: root}
}

// Root returns the tree's root directory.
func (t *Traverser) Root() string {
	return t.root
}

// readDir lists dir. ok is false when dir does not exist or is not a
// directory, which callers treat as an empty subtree.
func (t *Traverser) readDir(dir string) (entries []os.FileInfo, ok bool, err error) {
	info, err := t.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &core.IOError{Op: "stat", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, false, nil
	}

	entries, err = afero.ReadDir(t.fs, dir)
	if err != nil {
		return nil, false, &core.IOError{Op: "readdir", Path: dir, Err: err}
	}
	return entries, true, nil
}

// Locate finds the file named exactly name. Directory segments are taken
// from the name itself, one character first and then two. found is false
// when the name is exhausted without a match.
func (t *Traverser) Locate(name string) (loc core.PackageLocation, found bool, err error) {
	if name == "" {
		return core.PackageLocation{}, false, nil
	}
	return t.locate(t.root, name, name)
}

func (t *Traverser) locate(dir, name, remaining string) (core.PackageLocation, bool, error) {
	entries, ok, err := t.readDir(dir)
	if err != nil || !ok {
		return core.PackageLocation{}, false, err
	}

	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == name {
			return core.PackageLocation{Name: name, Path: filepath.Join(dir, name)}, true, nil
		}
	}

	if len(remaining) < 2 {
		return core.PackageLocation{}, false, nil
	}

	if validSegment(remaining[:1]) {
		loc, found, err := t.locate(filepath.Join(dir, remaining[:1]), name, remaining[1:])
		if err != nil || found {
			return loc, found, err
		}
	}
	if !validSegment(remaining[:2]) {
		return core.PackageLocation{}, false, nil
	}
	return t.locate(filepath.Join(dir, remaining[:2]), name, remaining[2:])
}

// validSegment rejects name fragments that would leave the current directory.
func validSegment(seg string) bool {
	return seg != "." && seg != ".." && !strings.ContainsAny(seg, `/\`)
}

// searchState is one pending directory visit: the directory and the part
// of the prefix not yet consumed by directory names on the way down.
type searchState struct {
	dir       string
	remaining string
}

// Search returns every file below the root whose name matches prefix under
// MatchPrefix. Directories are entered only while their names agree with
// the prefix, so the work grows with the number of separators typed rather
// than the size of the tree. Results are sorted by name, then path.
func (t *Traverser) Search(prefix string) ([]core.PackageLocation, error) {
	return t.search(searchState{dir: t.root, remaining: prefix}, prefix)
}

// Scan returns every file in the subtree at rel (relative to the root)
// whose name matches prefix. It does not prune by directory name.
func (t *Traverser) Scan(rel string, prefix string) ([]core.PackageLocation, error) {
	return t.search(searchState{dir: filepath.Join(t.root, rel)}, prefix)
}

func (t *Traverser) search(start searchState, prefix string) ([]core.PackageLocation, error) {
	var found []core.PackageLocation
	seen := make(map[string]bool)

	stack := []searchState{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, ok, err := t.readDir(s.dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !MatchPrefix(prefix, entry.Name()) {
				continue
			}
			path := filepath.Join(s.dir, entry.Name())
			if seen[path] {
				continue
			}
			seen[path] = true
			found = append(found, core.PackageLocation{Name: entry.Name(), Path: path})
		}

		stack = append(stack, successors(s, entries)...)
	}

	SortLocations(found)
	return found, nil
}

// successors returns the states reachable from s. With two or more prefix
// characters left, the next directory may be named by one or two of them,
// so both are tried.
func successors(s searchState, entries []os.FileInfo) []searchState {
	var next []searchState

	switch len(s.remaining) {
	case 0:
		for _, entry := range entries {
			if entry.IsDir() {
				next = append(next, searchState{dir: filepath.Join(s.dir, entry.Name())})
			}
		}
	case 1:
		variants := Expand(s.remaining)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			for _, v := range variants {
				if strings.HasPrefix(entry.Name(), v) {
					next = append(next, searchState{dir: filepath.Join(s.dir, entry.Name())})
					break
				}
			}
		}
	default:
		for _, n := range [2]int{1, 2} {
			head, tail := s.remaining[:n], s.remaining[n:]
			if !validSegment(head) {
				continue
			}
			for _, v := range Expand(head) {
				next = append(next, searchState{dir: filepath.Join(s.dir, v), remaining: tail})
			}
		}
	}

	return next
}

// SortLocations orders locations by name, then path.
func SortLocations(locs []core.PackageLocation) {
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Name != locs[j].Name {
			return locs[i].Name < locs[j].Name
		}
		return locs[i].Path < locs[j].Path
	})
}
