package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned for color names outside the hub's fixed palette.
var ErrUnknownColor = errors.New("protocol: unknown color")

const (
	colorOff   byte = 0
	colorWhite byte = 10
)

// colors is the hub's fixed LED palette; a color's wire value is its index.
var colors = []string{
	"off", "pink", "purple", "blue", "lightblue", "cyan",
	"green", "yellow", "orange", "red", "white",
}

// ResolveColor maps a color name to its palette index.
// Matching is case-insensitive.
func ResolveColor(name string) (byte, error) {
	lower := strings.ToLower(name)
	for i, c := range colors {
		if c == lower {
			return byte(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, name)
}

// Colors returns the hub's LED palette in index order.
func Colors() []string {
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}
