// Package lockfile loads and saves resolved dependency graphs as Cargo.lock
// files.
//
// Loading tolerates a missing file and reports every other failure as a
// coded error carrying the file path. Saving goes through a canonical
// emitter instead of the codec's generic formatting, so that the output
// is byte-stable: rewriting an unchanged graph produces identical bytes and
// a small graph change touches only the lines of the affected packages.
//
// The layout is
//
//	[root]
//	name = "foo"
//	version = "0.1.0"
//	dependencies = [
//	 "bar 0.2.0 (registry+https://example.com)",
//	]
//
//	[[package]]
//	name = "bar"
//	version = "0.2.0"
//	source = "registry+https://example.com"
//
//	[metadata]
//	...
package lockfile
