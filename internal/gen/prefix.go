package gen

import "strings"

// CommonPrefix returns the longest string that is a literal, character-based
// prefix of every path in the list. A single-element list returns its element
// unchanged. For multi-element lists, a prefix that consumes one of the paths
// whole is backed off to the last separator so every path keeps a non-empty
// relative remainder, and at most one trailing "/" is stripped. The shrink is
// character-based, not segment-aware, so the prefix can land mid-segment
// (e.g. ["/apples", "/applied"] yields "/appl").
func CommonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := paths[0]
	if len(paths) == 1 {
		return prefix
	}
	for _, p := range paths[1:] {
		for !strings.HasPrefix(p, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	for _, p := range paths {
		if p == prefix {
			if i := strings.LastIndex(prefix, "/"); i >= 0 {
				prefix = prefix[:i]
			}
			break
		}
	}
	return strings.TrimSuffix(prefix, "/")
}
