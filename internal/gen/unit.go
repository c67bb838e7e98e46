package gen

import "strings"

// GeneratedUnit is an ordered, append-only sequence of generated source
// lines. One unit is produced per generation run and never mutated after the
// driver finishes.
type GeneratedUnit struct {
	lines []string
}

// Append adds lines at the end of the unit.
func (u *GeneratedUnit) Append(lines ...string) {
	u.lines = append(u.lines, lines...)
}

// Lines returns the accumulated lines in append order.
func (u *GeneratedUnit) Lines() []string {
	return u.lines
}

// String renders the unit as source text with a trailing newline.
func (u *GeneratedUnit) String() string {
	return strings.Join(u.lines, "\n") + "\n"
}
