// Package colorval parses heterogeneous color inputs into a normalized,
// possibly multi-entry color value and exposes read/write channel accessors.
//
// # Basic Usage
//
// Build a color from a name, a hex string or a channel tuple:
//
//	red, err := colorval.New(colorval.Name("red"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(red.RGBA8()) // [[255 0 0 255]]
//
// Strings can be classified automatically with [Str]:
//
//	c, _ := colorval.New(colorval.Str("#ff000080"))
//
// # Collections
//
// A [Collection] resolves every element independently and stacks the
// results in order:
//
//	rgb, _ := colorval.New(colorval.Collection{
//		colorval.Name("r"),
//		colorval.Channels{0, 1, 0},
//		colorval.Hex("#0000ff"),
//	})
//
// Collections cannot be nested; a collection element holding more than one
// color fails with [ErrNested].
//
// # Diagnostics
//
// Channel values outside [0, 1] are clamped and reported at warning level
// through the [Logger] passed with [WithLogger]. A [Recorder] captures those
// warnings, which is how tests observe clamping:
//
//	rec := colorval.NewRecorder(slog.LevelWarn)
//	c, _ := colorval.New(colorval.Channels{2, 0, 0}, colorval.WithLogger(rec))
//	fmt.Println(rec.Len()) // 1
//
// # Errors
//
// Malformed hex strings, unknown names and bad tuple lengths all satisfy
// errors.Is(err, [ErrValue]). Nested collections fail with [ErrNested],
// which is a shape error and not a value error.
package colorval
