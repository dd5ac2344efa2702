// Package looptrace discovers the closed pipe loop that runs through the
// start tile of a pipegrid.Grid and infers the pipe shape hidden under 'S'.
//
// Trace inspects the four neighbors of the start, keeps those whose pipe
// points back at it, resolves the start shape from the two directions found,
// and walks the loop one tile at a time until it returns to the start.
//
// Complexity:
//
//   - Trace:        O(L) time, O(W×H) memory for the membership bitmap
//     (L = loop length).
//   - ResolveStart: O(1).
//
// Errors:
//
//   - ErrGridNil:             nil grid.
//   - ErrAmbiguousStartShape: the start does not have exactly two pipe-connected neighbors.
//   - ErrBrokenLoop:          the walk dead-ends or exceeds the step cap.
//   - ErrDirectionMismatch:   WithVerify found the two walks disagree.
//   - ErrOptionViolation:     an invalid Option was supplied.
package looptrace
