// Package filesystem abstracts the handful of file operations the lockfile
// loader and writer need, so tests can run against an in-memory filesystem.
package filesystem
