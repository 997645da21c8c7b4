package rcol

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// CSI: ESC [ parameters, one final letter. OSC: ESC ] payload terminated
// by BEL or ESC-backslash.
var escapePattern = regexp.MustCompile(`(\x1b\[[0-9;?]*[a-zA-Z])|(\x1b\].*?(\x07|\x1b\\))`)

// stripEscape removes terminal escape sequences from s.
func stripEscape(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the terminal cell width of s: escape sequences
// contribute nothing, combining marks are zero wide, CJK glyphs are two
// cells. Every width and alignment computation goes through here; raw
// string length would misalign colored or wide content.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(stripEscape(s))
}
