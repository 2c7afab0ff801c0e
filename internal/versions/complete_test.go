package versions

import (
	"errors"
	"reflect"
	"testing"

	"github.com/git-pkgs/completions/internal/core"
)

func records(versions ...string) []core.ReleaseRecord {
	out := make([]core.ReleaseRecord, len(versions))
	for i, v := range versions {
		out[i] = core.ReleaseRecord{Name: "demo", Version: v, Features: map[string][]string{}}
	}
	return out
}

func strs(vs []Version) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func TestSatisfied(t *testing.T) {
	recs := records("1.0.0", "1.1.0", "1.1.1", "2.0.0-beta")

	got, err := Satisfied(recs, "1")
	if err != nil {
		t.Fatalf("Satisfied error = %v", err)
	}
	want := []string{"1.1.1", "1.1.0", "1.0.0"}
	if !reflect.DeepEqual(strs(got), want) {
		t.Errorf("Satisfied(1) = %v, want %v", strs(got), want)
	}

	recs[2].Yanked = true
	got, err = Satisfied(recs, "1")
	if err != nil {
		t.Fatalf("Satisfied error = %v", err)
	}
	want = []string{"1.1.0", "1.0.0"}
	if !reflect.DeepEqual(strs(got), want) {
		t.Errorf("Satisfied(1) with 1.1.1 yanked = %v, want %v", strs(got), want)
	}
}

func TestSatisfiedIsTextPrefix(t *testing.T) {
	recs := records("1.2.0", "1.20.0", "10.0.0")

	got, err := Satisfied(recs, "1.2")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1.20.0", "1.2.0"}
	if !reflect.DeepEqual(strs(got), want) {
		t.Errorf("Satisfied(1.2) = %v, want %v", strs(got), want)
	}
}

func TestSatisfiedKeepsFileOrder(t *testing.T) {
	// A backport published after a newer release stays in publication order.
	recs := records("1.0.0", "2.0.0", "1.0.1")

	got, err := Satisfied(recs, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1.0.1", "2.0.0", "1.0.0"}
	if !reflect.DeepEqual(strs(got), want) {
		t.Errorf("Satisfied() = %v, want %v", strs(got), want)
	}
}

func TestSatisfiedInvalidVersion(t *testing.T) {
	recs := records("1.0.0", "1.0")

	_, err := Satisfied(recs, "1")
	if !errors.Is(err, core.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	var decodeErr *core.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if decodeErr.Name != "demo" || decodeErr.Path != "" {
		t.Errorf("DecodeError should name the package and leave Path unset, got %+v", decodeErr)
	}

	// Records outside the prefix are never parsed.
	if _, err := Satisfied(records("1.0.0", "bogus"), "1"); err != nil {
		t.Errorf("unexpected error = %v", err)
	}
}

func TestStripOperators(t *testing.T) {
	tests := map[string]string{
		"1.2":     "1.2",
		"^1.2":    "1.2",
		">=1":     "1",
		"<=2.0":   "2.0",
		"~0.3":    "0.3",
		"=1.0.0":  "1.0.0",
		" >= 1.0": " 1.0",
		"  ^3 ":   "3",
		"":        "",
	}

	for in, want := range tests {
		if got := StripOperators(in); got != want {
			t.Errorf("StripOperators(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComplete(t *testing.T) {
	recs := records("1.0.0", "1.1.0", "1.1.1", "2.0.0-beta")

	tests := []struct {
		partial string
		want    []string
	}{
		{"1.", []string{"1.1", "1.0", "0.0"}},
		{"1.1", []string{".1", ".0"}},
		{"2", []string{".0.0-beta"}},
		{"", []string{"2.0.0-beta", "1.1.1", "1.1.0", "1.0.0"}},
		{"3", nil},
		// Operators pick candidates, but the typed text is kept, so
		// nothing extends it literally.
		{"^1", nil},
		{">=1.1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.partial, func(t *testing.T) {
			got, err := Complete(recs, tt.partial)
			if err != nil {
				t.Fatalf("Complete(%q) error = %v", tt.partial, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %q, want %q", tt.partial, got, tt.want)
			}
		})
	}
}

func TestCompleteReproducesReleases(t *testing.T) {
	recs := records("1.0.0", "1.1.0", "1.1.1", "2.0.0-beta")
	recs[1].Yanked = true

	live := make(map[string]bool)
	for _, r := range recs {
		if !r.Yanked {
			live[r.Version] = true
		}
	}

	suffixes, err := Complete(recs, "1.")
	if err != nil {
		t.Fatal(err)
	}
	if len(suffixes) != 2 {
		t.Fatalf("expected 2 completions, got %q", suffixes)
	}
	for _, s := range suffixes {
		if !live["1."+s] {
			t.Errorf("completion %q does not form a live release", "1."+s)
		}
	}
}
