package resolver

import (
	"sort"
)

// Resolve is a resolved dependency graph with a single root package.
type Resolve struct {
	root     PackageID
	graph    map[PackageID]map[PackageID]struct{}
	metadata map[string]string
}

// NewResolve returns a graph containing only root.
func NewResolve(root PackageID) *Resolve {
	r := &Resolve{
		root:  root,
		graph: make(map[PackageID]map[PackageID]struct{}),
	}
	r.AddPackage(root)
	return r
}

// Root returns the root package.
func (r *Resolve) Root() PackageID {
	return r.root
}

// AddPackage adds id with no edges. Adding a known package is a no-op.
func (r *Resolve) AddPackage(id PackageID) {
	if _, ok := r.graph[id]; !ok {
		r.graph[id] = make(map[PackageID]struct{})
	}
}

// AddDependency records that from depends on to, adding either package if
// it is not yet known.
func (r *Resolve) AddDependency(from, to PackageID) {
	r.AddPackage(from)
	r.AddPackage(to)
	r.graph[from][to] = struct{}{}
}

// Contains reports whether id is part of the graph.
func (r *Resolve) Contains(id PackageID) bool {
	_, ok := r.graph[id]
	return ok
}

// Packages returns every package, the root included, in PackageID order.
func (r *Resolve) Packages() []PackageID {
	out := make([]PackageID, 0, len(r.graph))
	for id := range r.graph {
		out = append(out, id)
	}
	sortIDs(out)
	return out
}

// Dependencies returns the direct dependencies of id in PackageID order.
func (r *Resolve) Dependencies(id PackageID) []PackageID {
	deps := r.graph[id]
	out := make([]PackageID, 0, len(deps))
	for dep := range deps {
		out = append(out, dep)
	}
	sortIDs(out)
	return out
}

// Metadata returns a copy of the resolver bookkeeping table, or nil.
func (r *Resolve) Metadata() map[string]string {
	if len(r.metadata) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.metadata))
	for k, v := range r.metadata {
		out[k] = v
	}
	return out
}

// SetMetadata replaces the bookkeeping table. An empty map clears it.
func (r *Resolve) SetMetadata(m map[string]string) {
	if len(m) == 0 {
		r.metadata = nil
		return
	}
	r.metadata = make(map[string]string, len(m))
	for k, v := range m {
		r.metadata[k] = v
	}
}

// Equal reports whether both graphs have the same root, packages, edges
// and metadata.
func (r *Resolve) Equal(other *Resolve) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.root != other.root || len(r.graph) != len(other.graph) {
		return false
	}
	for id, deps := range r.graph {
		otherDeps, ok := other.graph[id]
		if !ok || len(deps) != len(otherDeps) {
			return false
		}
		for dep := range deps {
			if _, ok := otherDeps[dep]; !ok {
				return false
			}
		}
	}
	if len(r.metadata) != len(other.metadata) {
		return false
	}
	for k, v := range r.metadata {
		if ov, ok := other.metadata[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func sortIDs(ids []PackageID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Less(ids[j])
	})
}
