package dialect

// Distance returns the number of positional mismatches over the shorter
// string plus the difference in length. Characters are compared as runes and
// the comparison is case-sensitive.
//
// This is not edit distance: an insertion near the start shifts every later
// position and counts as a mismatch at each of them.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	n := min(len(ra), len(rb))
	dist := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			dist++
		}
	}

	if len(ra) > len(rb) {
		return dist + len(ra) - len(rb)
	}
	return dist + len(rb) - len(ra)
}
