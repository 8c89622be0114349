// Package fonts provides glyph metrics for the builtin fonts used by icon
// labels. Labels are always set in Helvetica-Bold, one of the standard 14
// fonts a viewer must supply, so widths come from the Adobe AFM tables and
// no font binary is embedded.
package fonts

// HelveticaBold is the resource base font name for all icon text.
const HelveticaBold = "Helvetica-Bold"

// Width of a glyph absent from the table, in 1/1000 em.
const fallbackWidth = 556

// Helvetica-Bold advance widths in 1/1000 em units, from the Adobe AFM.
var helveticaBoldWidths = map[rune]int{
	' ': 278, '!': 333, '"': 474, '#': 556, '$': 556, '%': 889, '&': 722,
	'\'': 238, '(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333,
	'.': 278, '/': 278, '0': 556, '1': 556, '2': 556, '3': 556, '4': 556,
	'5': 556, '6': 556, '7': 556, '8': 556, '9': 556, ':': 333, ';': 333,
	'<': 584, '=': 584, '>': 584, '?': 611, '@': 975, 'A': 722, 'B': 722,
	'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778, 'H': 722, 'I': 278,
	'J': 556, 'K': 722, 'L': 611, 'M': 833, 'N': 722, 'O': 778, 'P': 667,
	'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722, 'V': 667, 'W': 944,
	'X': 667, 'Y': 667, 'Z': 611, '[': 333, '\\': 278, ']': 333, '^': 584,
	'_': 556, '`': 333, 'a': 556, 'b': 611, 'c': 556, 'd': 611, 'e': 556,
	'f': 333, 'g': 611, 'h': 611, 'i': 278, 'j': 278, 'k': 556, 'l': 278,
	'm': 889, 'n': 611, 'o': 611, 'p': 611, 'q': 611, 'r': 389, 's': 556,
	't': 333, 'u': 611, 'v': 556, 'w': 778, 'x': 556, 'y': 556, 'z': 500,
	'{': 389, '|': 280, '}': 389, '~': 584,
}

// MeasureString returns the width of s in text-space units at the given
// font size.
func MeasureString(s string, size float64) float64 {
	units := 0
	for _, r := range s {
		w, ok := helveticaBoldWidths[r]
		if !ok {
			w = fallbackWidth
		}
		units += w
	}
	return float64(units) * size / 1000
}
