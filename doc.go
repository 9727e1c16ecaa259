// Package inspect renders arbitrary Go values as human-readable text for
// debugging and logging.
//
// The central entry point is [Inspect], which accepts any value and a set of
// options. [Write], [WriteIter] and [WriteChan] write inspections to an
// [io.Writer], and [Diff] compares two of them line by line.
//
//	fmt.Println(inspect.Inspect(map[string]int{"a": 1}))
//	// Map(1) { 'a' => 1 }
//
// # Layout
//
// A value is first converted to a document tree, then laid out. A collection
// stays on one line while it fits the break length (default 80); otherwise
// each item goes on its own line, indented by two spaces per level. Numeric
// and byte collections are laid out as a grid of right-aligned columns.
//
//	[
//	   0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
//	  20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
//	  ... 8 more
//	]
//
// # Values
//
// Structs show their fields, unexported ones included, under their type name.
// Maps show their entries in sorted key order and map[K]struct{} values are
// shown as sets. Byte slices are shown as buffers, fixed-size numeric arrays
// as typed arrays, and errors with the chain of errors they wrap. A [Record]
// is an object with ordered keys that are only known at run time.
//
// Struct tags refine the display of a field:
//
//   - inspect:"name" renames the field
//   - inspect:"-" hides it
//   - inspect:",items" makes a slice or array field the items of the struct,
//     which is then shown as a collection with the other fields as named
//     properties
//
// # References
//
// Values reached again while they are still being displayed are replaced by
// a [circular *N] marker, and the value they refer to is prefixed with
// <ref *N>. Values that are merely shared are shown in full every time.
//
//	<ref *1> { bar: { foo: [circular *1] } }
//
// # Limits
//
// [WithDepth] bounds how many levels are expanded (default 2); deeper values
// collapse to their type name, as in [Object]. [WithMaxArrayLength] and its
// per-kind variants bound how many items a collection shows; the rest are
// summarized as "... K more".
//
// # Custom display
//
// Implement [Inspector] to control how a value is displayed. Values that
// implement [log/slog.LogValuer] are displayed as the value they log.
// [Promise] exposes the state of values that settle later.
//
// # Styles
//
// Every fragment carries a [Style]. [WithColors] decorates fragments with
// terminal colors; [WithStylize] installs any other [StylizeFunc].
package inspect
