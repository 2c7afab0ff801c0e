package shard

// MatchPrefix reports whether candidate starts with query when every '-' or
// '_' in query may stand for either separator. All other bytes compare
// exactly and none of them may be skipped.
func MatchPrefix(query, candidate string) bool {
	if len(candidate) < len(query) {
		return false
	}
	for i := 0; i < len(query); i++ {
		q, c := query[i], candidate[i]
		if isSeparator(q) {
			if !isSeparator(c) {
				return false
			}
			continue
		}
		if q != c {
			return false
		}
	}
	return true
}
