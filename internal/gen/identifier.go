package gen

import "strings"

// PathIdentifier maps a relative endpoint path (common prefix already
// removed) to a PascalCase identifier fragment: "/users/{id}" → "UsersId".
// Parameter braces are dropped so placeholder segments contribute their bare
// name; fragments are split on runs of non-alphanumerics. Distinct paths can
// collide ("/foo_bar" and "/foo-bar" both yield "FooBar"); collisions are not
// deduplicated and a later function with the same name shadows an earlier one
// in the emitted source.
func PathIdentifier(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.ReplaceAll(rel, "{", "")
	rel = strings.ReplaceAll(rel, "}", "")
	fragments := strings.FieldsFunc(rel, func(r rune) bool {
		return !isAlnum(r)
	})
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(strings.ToUpper(f[:1]))
		b.WriteString(f[1:])
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
