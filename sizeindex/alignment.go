package sizeindex

import "strings"

// Alignment says where a target item should land in the viewport when
// scrolling to it.
type Alignment string

const (
	// AlignAuto scrolls only as far as needed to show the whole item. It is
	// also what the zero value and any unrecognized alignment do.
	AlignAuto   Alignment = "auto"
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
)

// ParseAlignment maps text to an Alignment, falling back to AlignAuto.
func ParseAlignment(s string) Alignment {
	switch a := Alignment(strings.ToLower(strings.TrimSpace(s))); a {
	case AlignStart, AlignCenter, AlignEnd:
		return a
	default:
		return AlignAuto
	}
}
