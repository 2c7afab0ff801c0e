package versions

import (
	"strings"

	"github.com/git-pkgs/completions/internal/core"
)

// operators may lead a version requirement.
const operators = "><=~^"

// StripOperators trims whitespace and any leading comparison operators,
// leaving the bare version prefix.
func StripOperators(req string) string {
	return strings.TrimLeft(strings.TrimSpace(req), operators)
}

// Satisfied returns the versions of the non-yanked records whose text starts
// with prefix, newest first. "Newest" is the reverse of file order, which is
// only right while the index stays append-ordered.
func Satisfied(records []core.ReleaseRecord, prefix string) ([]Version, error) {
	var out []Version
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.Yanked || !strings.HasPrefix(r.Version, prefix) {
			continue
		}
		v, err := Parse(r.Version)
		if err != nil {
			return nil, &core.DecodeError{Name: r.Name, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Complete returns the text that extends partial to each satisfied version.
// Operators in partial narrow the candidates but stay part of what the shell
// has already typed, so a candidate that does not literally start with
// partial yields nothing.
func Complete(records []core.ReleaseRecord, partial string) ([]string, error) {
	candidates, err := Satisfied(records, StripOperators(partial))
	if err != nil {
		return nil, err
	}

	var suffixes []string
	for _, v := range candidates {
		if rest, ok := strings.CutPrefix(v.String(), partial); ok {
			suffixes = append(suffixes, rest)
		}
	}
	return suffixes, nil
}
