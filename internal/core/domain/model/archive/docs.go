// Package archive holds deletion snapshots. Before any aggregate is removed
// from its live table, its full state is captured into a Record; the archive
// write and the live-row delete commit together in one unit of work, so a
// deleted aggregate is always recoverable from the archive.
package archive
