// Package rat displays text the way cat does.
//
// Resolve turns the raw command-line flags into an OptionSet. Transform applies the
// display stages selected by an OptionSet to the text of one input, in this order:
//
//  1. tabs: every TAB becomes ^I (-T).
//  2. number: lines are prefixed with their ordinal, right-justified on six columns and
//     followed by a TAB (-n). With -b, empty lines are left alone but still count.
//  3. ends: every line ends with $ (-E).
//
// A Dispatcher walks the requested inputs in order, writes the transformed text of each
// one as soon as it is ready, and stops at the first input that cannot be displayed.
package rat
