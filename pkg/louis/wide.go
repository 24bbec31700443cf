package louis

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeWide converts s into engine code units of the given width in bytes:
// UTF-16 (with surrogate pairs) for 2, one unit per code point for 4. Invalid
// UTF-8 is rejected rather than replaced.
func EncodeWide(s string, width int) ([]uint32, error) {
	if width != 2 && width != 4 {
		return nil, &EncodingError{Reason: fmt.Sprintf("unsupported widechar width %d", width)}
	}

	units := make([]uint32, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &EncodingError{Offset: i, Reason: "invalid UTF-8"}
		}
		if width == 2 && r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			units = append(units, uint32(r1), uint32(r2))
		} else {
			units = append(units, uint32(r))
		}
		i += size
	}
	return units, nil
}

// DecodeWide converts engine code units back into a string. Unpaired
// surrogates and values outside the Unicode range are rejected.
func DecodeWide(units []uint32, width int) (string, error) {
	if width != 2 && width != 4 {
		return "", &EncodingError{Reason: fmt.Sprintf("unsupported widechar width %d", width)}
	}

	var b strings.Builder
	b.Grow(len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case width == 2 && u > 0xFFFF:
			return "", &EncodingError{Offset: i, Reason: fmt.Sprintf("code unit %#x wider than 16 bits", u)}
		case u > utf8.MaxRune:
			return "", &EncodingError{Offset: i, Reason: fmt.Sprintf("code point %#x out of range", u)}
		case width == 2 && isHighSurrogate(u):
			if i+1 >= len(units) || !isLowSurrogate(units[i+1]) {
				return "", &EncodingError{Offset: i, Reason: "unpaired high surrogate"}
			}
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case isHighSurrogate(u) || isLowSurrogate(u):
			return "", &EncodingError{Offset: i, Reason: fmt.Sprintf("unpaired surrogate %#x", u)}
		default:
			b.WriteRune(rune(u))
		}
	}
	return b.String(), nil
}

// OutputCapacity returns the number of code units to allocate for the output
// of translating n input units. The factor 4+2*width covers the engine's
// worst-case per-character expansion. The result is never below 1.
func OutputCapacity(n, width int) int {
	if n <= 0 {
		return 1
	}
	return n * (4 + 2*width)
}

func isHighSurrogate(u uint32) bool { return u >= 0xD800 && u <= 0xDBFF }

func isLowSurrogate(u uint32) bool { return u >= 0xDC00 && u <= 0xDFFF }
