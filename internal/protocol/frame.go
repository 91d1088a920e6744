// Package protocol encodes Move Hub commands into the fixed binary frames the
// hub firmware expects on its control characteristic. Encoding is pure and
// stateless; callers resolve symbolic ports and colors first (ports.go,
// colors.go) and validate duty cycles with ValidateDutyCycle.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrDutyCycleRange is returned for duty cycles outside [-100, 100].
var ErrDutyCycleRange = errors.New("protocol: duty cycle out of range [-100, 100]")

// ValidateDutyCycle checks that duty is a valid motor power percentage.
func ValidateDutyCycle(duty int) error {
	if duty < -100 || duty > 100 {
		return fmt.Errorf("%w: %d", ErrDutyCycleRange, duty)
	}
	return nil
}

// dutyCycleByte maps a duty cycle to its wire byte. Non-negative values encode
// as themselves; negative values map into the high range via 0xFF + duty
// (not two's complement: -10 encodes as 0xF5 = 245, not 246).
func dutyCycleByte(duty int) byte {
	if duty < 0 {
		return byte(0xFF + duty)
	}
	return byte(duty)
}

// EncodeMotorTime builds the 12-byte run-motor-for-duration frame. The
// duration in milliseconds is scaled by 1000 and truncated to 16 bits
// little-endian; durations whose scaled value exceeds 65535 wrap silently.
func EncodeMotorTime(port byte, ms int, duty int) []byte {
	frame := []byte{0x0c, 0x00, 0x81, port, 0x11, 0x09, 0x00, 0x00, dutyCycleByte(duty), 0x64, 0x7f, 0x03}
	binary.LittleEndian.PutUint16(frame[6:8], uint16(ms*1000))
	return frame
}

// EncodeMotorAngle builds the 14-byte run-motor-to-angle frame. The angle is
// encoded little-endian across two bytes; values beyond 65535 wrap silently.
func EncodeMotorAngle(port byte, angle int, duty int) []byte {
	frame := []byte{0x0e, 0x00, 0x81, port, 0x11, 0x0b, 0x00, 0x00, 0x00, 0x00, dutyCycleByte(duty), 0x64, 0x7f, 0x03}
	binary.LittleEndian.PutUint16(frame[6:8], uint16(angle))
	return frame
}

// EncodeLED builds the 8-byte set-LED frame for a named color.
func EncodeLED(color string) ([]byte, error) {
	index, err := ResolveColor(color)
	if err != nil {
		return nil, err
	}
	return encodeLEDIndex(index), nil
}

// EncodeLEDState builds the set-LED frame for a boolean state:
// true is white, false is off.
func EncodeLEDState(on bool) []byte {
	if on {
		return encodeLEDIndex(colorWhite)
	}
	return encodeLEDIndex(colorOff)
}

func encodeLEDIndex(index byte) []byte {
	return []byte{0x08, 0x00, 0x81, 0x32, 0x11, 0x51, 0x00, index}
}
