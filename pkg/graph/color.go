package graph

import "strings"

// palette holds visually distinct hues; the order is fixed so type-to-color
// assignment is stable across runs and sessions.
var palette = [20]string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ac",
	"#1f77b4",
	"#d62728",
	"#2ca02c",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
	"#aec7e8",
}

// ColorForType maps a type label to a palette color. The mapping is pure: a
// rolling hash over the lowercased label indexes the fixed palette, so
// identical labels always get the same color with no shared registry. The
// empty string hashes like any other value.
func ColorForType(t string) string {
	var h uint32
	for _, b := range []byte(strings.ToLower(t)) {
		h = h*31 + uint32(b)
	}
	return palette[h%uint32(len(palette))]
}
