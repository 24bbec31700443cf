package louis

import (
	"strconv"
	"strings"

	"github.com/brailleworks/louis-go/internal/bindings"
)

// Mode is a bitmask of translation mode flags. Flags combine with |; the zero
// value requests standard, contraction-aware translation.
type Mode int

const (
	// DotsUnicode outputs Braille dots as Unicode Braille patterns (U+2800
	// block).
	DotsUnicode Mode = bindings.ModeDotsIO | bindings.ModeUCBrl

	// DotsLouis outputs Braille dots using liblouis' own dot encoding.
	DotsLouis Mode = bindings.ModeDotsIO

	// NoContractions disables all contractions.
	NoContractions Mode = bindings.ModeNoContractions

	// PartialTrans hints that back-translation input may end in a partial
	// word.
	PartialTrans Mode = bindings.ModePartialTrans
)

var modeNames = []struct {
	mode Mode
	name string
}{
	{DotsUnicode, "DotsUnicode"},
	{DotsLouis, "DotsLouis"},
	{NoContractions, "NoContractions"},
	{PartialTrans, "PartialTrans"},
}

// Has reports whether every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

func (m Mode) String() string {
	if m == 0 {
		return "Standard"
	}
	var parts []string
	rest := m
	for _, n := range modeNames {
		if rest&n.mode == n.mode {
			parts = append(parts, n.name)
			rest &^= n.mode
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatInt(int64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Direction selects the engine entry point for a translation.
type Direction int

const (
	// Forward translates text to Braille.
	Forward Direction = iota
	// Backward translates Braille to text.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Tables joins table names into the comma-separated list the engine expects.
// Order is preserved; how later tables override earlier ones is up to the
// engine.
func Tables(names ...string) string {
	return strings.Join(names, ",")
}
