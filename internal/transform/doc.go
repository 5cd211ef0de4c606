// Package transform post-processes rendered posts.
//
// Two passes run in order on each rendered post:
//
//   - StripCheckboxes turns task-list items ("- [x] done") into plain list
//     items ("- done").
//   - LinkReferences, when enabled, rewrites every "#<digits>" token as a
//     markdown reference link and appends the link definitions.
//
// For example, with linking enabled and base https://github.com/o/r:
//
//	- [x] Fixed #12 and #7, see #12
//
// becomes
//
//	- Fixed [12][0] and [7][1], see [12][2]
//	[0]: https://github.com/o/r/pull/12
//	[1]: https://github.com/o/r/pull/7
//	[2]: https://github.com/o/r/pull/12
//
// Tokens are matched without a word boundary, so "v1.0#123abc" also links
// #123. Every call builds its own counters; nothing is shared between posts.
package transform
