// Package terminal owns the screen for the dashboard: raw mode, the alternate
// screen buffer, cell output and keyboard input.
//
// Two implementations satisfy Terminal:
//   - New: direct ANSI output with cell-level diffing and raw stdin decoding,
//     built on golang.org/x/term and golang.org/x/sys. No terminfo lookup.
//   - NewTcell: an adapter over any tcell.Screen, including the simulation
//     screen used in tests.
//
// Both hide the cursor on Init and restore the terminal on Fini. EmergencyReset
// is the last resort from a panic handler when Fini cannot run.
package terminal
