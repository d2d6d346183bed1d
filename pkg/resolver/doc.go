// Package resolver holds the resolver's native dependency graph and the
// intermediate form it is persisted through.
//
// A Resolve is a set of exact package identities (name, version, source)
// with directed dependency edges and one distinguished root package.
// EncodableResolve is the flat, string-keyed shape of the same graph as it
// appears in a lockfile: one root entry, one entry per other package, and
// dependency references rendered as "name version" or
// "name version (source)".
//
// Encode and EncodableResolve.ToResolve convert between the two. The
// conversion never infers the project's own source from file content; the
// caller supplies it.
package resolver
