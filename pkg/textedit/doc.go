// Package textedit implements the single-line text editing core used by
// input widgets: a fixed-capacity byte buffer with cursor and selection,
// plus key handling, character insertion, and pixel-to-index cursor
// placement.
//
// The buffer operates on printable ASCII (0x20-0x7E) only. All mutation
// happens in place over caller-owned storage; the package never
// allocates or retains the storage beyond a single call. Callers are
// responsible for serializing access (one edit per input event on the
// UI thread).
package textedit
