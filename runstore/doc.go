// Package runstore archives traversal runs in a SQLite database.
//
// The schema is created and upgraded by golang-migrate from SQL files
// embedded in the binary, so a fresh file and an old archive are both
// brought to the latest version by Open. Each run keeps its scenario
// (label, start, goal, obstacles), its outcome flags and step count, and the
// path and lattice history as JSON.
package runstore
