package versions

import (
	"sort"
	"strings"

	"github.com/git-pkgs/completions/internal/core"
)

// Features returns the sorted feature names of the last record, in file
// order, whose version starts with prefix. Yanked records count. The last
// match is taken as the closest release, which is not necessarily the
// highest version.
func Features(records []core.ReleaseRecord, prefix string) ([]string, error) {
	for i := len(records) - 1; i >= 0; i-- {
		if !strings.HasPrefix(records[i].Version, prefix) {
			continue
		}
		names := records[i].FeatureNames()
		sort.Strings(names)
		return names, nil
	}

	notFound := &core.NotFoundError{Version: prefix}
	if len(records) > 0 {
		notFound.Name = records[0].Name
	}
	if notFound.Version == "" {
		notFound.Version = "*"
	}
	return nil, notFound
}

// Latest returns the non-yanked record with the highest version, or nil
// when there is none. Records whose version does not parse are skipped.
func Latest(records []core.ReleaseRecord) *core.ReleaseRecord {
	var (
		best    *core.ReleaseRecord
		bestVer Version
	)
	for i := range records {
		if records[i].Yanked {
			continue
		}
		v, err := Parse(records[i].Version)
		if err != nil {
			continue
		}
		if best == nil || Compare(v, bestVer) > 0 {
			best, bestVer = &records[i], v
		}
	}
	return best
}
