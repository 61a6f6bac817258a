package colorval

import (
	"errors"
	"fmt"
)

var (
	// ErrValue is the parent of every error caused by a malformed color value.
	ErrValue = errors.New("invalid color value")

	// ErrInvalidHex is returned for hex strings that are not '#' followed by
	// exactly 6 or 8 hexadecimal digits.
	ErrInvalidHex = fmt.Errorf("%w: malformed hex color", ErrValue)

	// ErrUnknownName is returned when a color name is not in the name table.
	ErrUnknownName = fmt.Errorf("%w: unknown color name", ErrValue)

	// ErrChannelCount is returned when a channel tuple does not hold 3 or 4 values.
	ErrChannelCount = fmt.Errorf("%w: color must have 3 or 4 channels", ErrValue)

	// ErrEmpty is returned for a collection with no elements.
	ErrEmpty = fmt.Errorf("%w: empty color collection", ErrValue)

	// ErrShape is returned when a setter receives a row count that is neither
	// 1 nor the number of entries.
	ErrShape = fmt.Errorf("%w: row count does not match color count", ErrValue)

	// ErrNested is returned when a collection element is itself a collection
	// or a multi-entry color.
	ErrNested = errors.New("can't nest multi-color values in a collection")
)
