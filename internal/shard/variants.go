// Package shard navigates sharded package-index directory trees.
//
// An index stores one metadata file per package, nested under directories
// named after leading characters of the package name. Lookups never assume a
// fixed depth: at every level a segment of one or two characters is tried.
package shard

// separators are interchangeable in package names.
var separators = [2]byte{'-', '_'}

func isSeparator(c byte) bool {
	return c == '-' || c == '_'
}

// Expand returns every spelling of fragment obtained by choosing '-' or '_'
// independently at each position that already holds one of them. A fragment
// with k separators yields 2^k strings; '-' sorts first and the leftmost
// separator varies slowest.
func Expand(fragment string) []string {
	variants := []string{""}
	for i := 0; i < len(fragment); i++ {
		c := fragment[i]
		if !isSeparator(c) {
			for j := range variants {
				variants[j] += string(c)
			}
			continue
		}
		next := make([]string, 0, len(variants)*2)
		for _, v := range variants {
			for _, sep := range separators {
				next = append(next, v+string(sep))
			}
		}
		variants = next
	}
	return variants
}
