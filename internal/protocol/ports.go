package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPort is returned for port symbols outside A, B, AB, C, D.
var ErrUnknownPort = errors.New("protocol: unknown port")

// portCodes maps symbolic port names to the hub's numeric port codes.
// A and B are the built-in tacho motors, AB drives both together, C and D
// are the external connectors.
var portCodes = map[string]byte{
	"A":  0x37,
	"B":  0x38,
	"AB": 0x39,
	"C":  0x01,
	"D":  0x02,
}

// ResolvePort maps a symbolic port name to its protocol code.
// Matching is case-insensitive.
func ResolvePort(name string) (byte, error) {
	code, ok := portCodes[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownPort, name)
	}
	return code, nil
}
