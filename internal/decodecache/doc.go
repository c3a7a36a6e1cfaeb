// Package decodecache persists decoded matches in SQLite so repeat scans of an
// unchanged corpus skip the external decoder.
//
// Entries are keyed by absolute path and validated against the file's size
// and modification time; any change makes the entry stale and the file is
// decoded again. Decode failures are never cached. A single process owns the
// cache at a time, enforced with an advisory file lock next to the database.
package decodecache
