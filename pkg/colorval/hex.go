package colorval

import (
	"fmt"
	"strconv"
	"strings"
)

var channelNames = [4]string{"red", "green", "blue", "alpha"}

// parseHex parses "#RRGGBB" or "#RRGGBBAA". Shorthand forms are rejected.
func parseHex(s string) (Entry, error) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q does not start with '#'", ErrInvalidHex, s)
	}
	if len(digits) != 6 && len(digits) != 8 {
		return Entry{}, fmt.Errorf("%w: %q has %d digits, want 6 or 8", ErrInvalidHex, s, len(digits))
	}

	ch := [4]uint8{3: 255}
	for i := 0; i < len(digits)/2; i++ {
		v, err := parseHexByte(digits[2*i : 2*i+2])
		if err != nil {
			return Entry{}, fmt.Errorf("%w: invalid %s component in %q", ErrInvalidHex, channelNames[i], s)
		}
		ch[i] = v
	}
	return entryFrom8(ch[0], ch[1], ch[2], ch[3]), nil
}

// parseHexByte parses a two-character hex string to a byte.
func parseHexByte(s string) (uint8, error) {
	val, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(val), nil
}
