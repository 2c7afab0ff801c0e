package cargo

import (
	"errors"
	"strings"

	"github.com/git-pkgs/completions/internal/core"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errMissingField = errors.New("missing one of name, vers, features or yanked")

// indexLine is one release as stored in the crates.io index.
type indexLine struct {
	Name        string              `json:"name"`
	Vers        string              `json:"vers"`
	Cksum       string              `json:"cksum"`
	Features    map[string][]string `json:"features"`
	Features2   map[string][]string `json:"features2"`
	Yanked      *bool               `json:"yanked"`
	RustVersion string              `json:"rust_version"`
}

// LoadReleases reads every release of the package at loc, in file order.
// A single undecodable line fails the whole load.
func LoadReleases(fs afero.Fs, loc core.PackageLocation) ([]core.ReleaseRecord, error) {
	data, err := afero.ReadFile(fs, loc.Path)
	if err != nil {
		return nil, &core.IOError{Op: "read", Path: loc.Path, Err: err}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	records := make([]core.ReleaseRecord, 0, len(lines))
	for n, line := range lines {
		rec, err := decodeLine([]byte(strings.TrimSuffix(line, "\r")))
		if err != nil {
			return nil, &core.DecodeError{Path: loc.Path, Line: n + 1, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeLine decodes one index line. name, vers, features and yanked are
// required. Features declared in the v2 "features2" table are merged into
// Features.
func decodeLine(line []byte) (core.ReleaseRecord, error) {
	var l indexLine
	if err := json.Unmarshal(line, &l); err != nil {
		return core.ReleaseRecord{}, err
	}
	if l.Name == "" || l.Vers == "" || l.Features == nil || l.Yanked == nil {
		return core.ReleaseRecord{}, errMissingField
	}

	features := l.Features
	if len(l.Features2) > 0 {
		features = make(map[string][]string, len(l.Features)+len(l.Features2))
		for k, v := range l.Features {
			features[k] = v
		}
		for k, v := range l.Features2 {
			features[k] = v
		}
	}

	return core.ReleaseRecord{
		Name:        l.Name,
		Version:     l.Vers,
		Features:    features,
		Yanked:      *l.Yanked,
		Checksum:    l.Cksum,
		RustVersion: l.RustVersion,
	}, nil
}
