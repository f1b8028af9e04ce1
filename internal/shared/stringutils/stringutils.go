package stringutils

// Truncate shortens a string to at most n characters, adding "..." if it was truncated.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Preview returns the first n characters of s with "..." appended
// unconditionally. Unlike Truncate, the ellipsis marks the text as an
// excerpt even when nothing was cut.
func Preview(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return s + "..."
}
