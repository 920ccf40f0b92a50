package router

import "strings"

// Matches reports whether a route pattern matches a concrete request path.
//
// An exact string match always succeeds. A pattern whose final segment is a
// parameter placeholder (":name") matches any path that strictly extends the
// pattern's fixed prefix, so "/api/users/:id" matches "/api/users/42" and,
// deliberately, "/api/users/42/extra" as well. It does not match
// "/api/users" or "/api/users/". Multiple parameters, non-trailing
// parameters, wildcards and regexes are not supported.
func Matches(pattern, path string) bool {
	if pattern == path {
		return true
	}
	prefix, ok := paramPrefix(pattern)
	if !ok {
		return false
	}
	return len(path) > len(prefix) && strings.HasPrefix(path, prefix)
}

// ExtractParam returns the value captured by the pattern's trailing
// parameter placeholder. The second return value is false when the pattern
// has no placeholder or the path does not match.
func ExtractParam(pattern, path string) (string, bool) {
	prefix, ok := paramPrefix(pattern)
	if !ok {
		return "", false
	}
	if len(path) <= len(prefix) || !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return path[len(prefix):], true
}

// paramPrefix splits a pattern at its trailing parameter placeholder and
// returns the fixed prefix including the separating slash. ok is false for
// literal patterns.
func paramPrefix(pattern string) (prefix string, ok bool) {
	i := strings.LastIndexByte(pattern, '/')
	if i < 0 || i+1 >= len(pattern) || pattern[i+1] != ':' {
		return "", false
	}
	return pattern[:i+1], true
}
