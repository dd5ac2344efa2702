// Package interior counts the grid cells enclosed by a pipe loop.
//
// Each row is scanned left to right by a small finite-state machine that
// tracks whether the scan is inside the loop. Only loop cells drive it:
//
//   - '|' is a full vertical crossing and toggles.
//   - 'L' or 'F' opens a horizontal run, remembering whether the run left
//     upward (L) or downward (F).
//   - 'J' or '7' closes the run. L…7 and F…J cross the loop (toggle);
//     L…J and F…7 turn back to the same side (no toggle).
//   - '-' continues a run.
//
// A non-loop cell is enclosed when the machine is inside after it.
// The grid must already carry the resolved start shape in place of 'S'.
//
// Complexity: O(W×H) time; Count allocates nothing, Classify O(W×H) memory.
package interior
