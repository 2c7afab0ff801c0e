// Package versions turns release records into version completions and
// feature lists.
package versions

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a parsed semantic version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
	Build string
}

// Parse parses a full MAJOR.MINOR.PATCH[-PRE][+BUILD] version.
// Shorthands such as "1.2" are rejected.
func Parse(s string) (Version, error) {
	if !semver.IsValid("v" + s) {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}

	rest, build, _ := strings.Cut(s, "+")
	core, pre, _ := strings.Cut(rest, "-")

	fields := strings.Split(core, ".")
	if len(fields) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want MAJOR.MINOR.PATCH", s)
	}

	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre, Build: build}, nil
}

// String renders the version back to its canonical text.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare returns -1, 0 or +1 by semantic version precedence.
// Build metadata is ignored.
func Compare(a, b Version) int {
	return semver.Compare("v"+a.String(), "v"+b.String())
}
