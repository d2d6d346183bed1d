package resolver

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cargolock/pkg/errors"
)

// EncodableDependency is one package entry of a lockfile.
type EncodableDependency struct {
	Name         string   `toml:"name" yaml:"name"`
	Version      string   `toml:"version" yaml:"version"`
	Source       string   `toml:"source,omitempty" yaml:"source,omitempty"`
	Dependencies []string `toml:"dependencies" yaml:"dependencies,omitempty"`
}

// EncodableResolve is the lockfile shape of a Resolve.
type EncodableResolve struct {
	Root     EncodableDependency   `toml:"root" yaml:"root"`
	Package  []EncodableDependency `toml:"package" yaml:"package"`
	Metadata map[string]string     `toml:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Encode converts r to its lockfile shape. The root comes first and every
// other package follows in PackageID order. Sources and dependency
// references drop the source part when it equals the root's source.
// Slices are never nil so that every key is present after encoding.
func Encode(r *Resolve) *EncodableResolve {
	root := r.Root()
	enc := &EncodableResolve{
		Root:    encodeDependency(r, root, root.Source),
		Package: make([]EncodableDependency, 0, len(r.graph)),
	}
	for _, id := range r.Packages() {
		if id == root {
			continue
		}
		enc.Package = append(enc.Package, encodeDependency(r, id, root.Source))
	}
	enc.Metadata = r.Metadata()
	return enc
}

func encodeDependency(r *Resolve, id PackageID, rootSource SourceID) EncodableDependency {
	dep := EncodableDependency{
		Name:         id.Name,
		Version:      id.Version,
		Dependencies: make([]string, 0),
	}
	if id.Source != rootSource {
		dep.Source = id.Source.String()
	}
	for _, child := range r.Dependencies(id) {
		dep.Dependencies = append(dep.Dependencies, encodeReference(child, rootSource))
	}
	return dep
}

func encodeReference(id PackageID, rootSource SourceID) string {
	if id.Source == rootSource {
		return fmt.Sprintf("%s %s", id.Name, id.Version)
	}
	return fmt.Sprintf("%s %s (%s)", id.Name, id.Version, id.Source)
}

// ToResolve rebuilds the graph. Entries without a source belong to the root's
// source, and the root itself defaults to sid. Every dependency reference
// must name a package listed in the same lockfile.
func (e *EncodableResolve) ToResolve(sid SourceID) (*Resolve, error) {
	rootID, err := e.Root.packageID(sid)
	if err != nil {
		return nil, err
	}
	r := NewResolve(rootID)

	entries := make([]EncodableDependency, 0, len(e.Package)+1)
	entries = append(entries, e.Root)
	entries = append(entries, e.Package...)

	ids := make([]PackageID, len(entries))
	ids[0] = rootID
	for i := 1; i < len(entries); i++ {
		id, err := entries[i].packageID(rootID.Source)
		if err != nil {
			return nil, err
		}
		if r.Contains(id) {
			return nil, errors.Newf(errors.ErrLockfileCorrupt, "package %s is listed twice", id).
				WithDetail("package", id.Name)
		}
		r.AddPackage(id)
		ids[i] = id
	}

	for i, entry := range entries {
		for _, ref := range entry.Dependencies {
			dep, err := parseReference(ref, rootID.Source)
			if err != nil {
				return nil, err
			}
			if !r.Contains(dep) {
				return nil, errors.Newf(errors.ErrSourceResolve, "%s depends on %q which is not in the lockfile", ids[i].Name, ref).
					WithDetail("package", ids[i].Name).
					WithDetail("reference", ref)
			}
			r.AddDependency(ids[i], dep)
		}
	}

	r.SetMetadata(e.Metadata)
	return r, nil
}

func (d EncodableDependency) packageID(defaultSource SourceID) (PackageID, error) {
	if d.Name == "" || d.Version == "" {
		return PackageID{}, errors.New(errors.ErrLockfileCorrupt, "package entry is missing name or version").
			WithDetail("name", d.Name).
			WithDetail("version", d.Version)
	}

	source := defaultSource
	if d.Source != "" {
		parsed, err := ParseSourceID(d.Source)
		if err != nil {
			return PackageID{}, err
		}
		source = parsed
	}

	id, err := NewPackageID(d.Name, d.Version, source)
	if err != nil {
		return PackageID{}, errors.Wrapf(err, errors.ErrSourceResolve, "invalid package entry %s", d.Name).
			WithDetail("package", d.Name)
	}
	return id, nil
}

// parseReference reads "name version" or "name version (source)".
func parseReference(ref string, rootSource SourceID) (PackageID, error) {
	malformed := func() error {
		return errors.Newf(errors.ErrSourceResolve, "malformed dependency reference %q", ref).
			WithDetail("reference", ref)
	}

	name, rest, ok := strings.Cut(ref, " ")
	if !ok || name == "" {
		return PackageID{}, malformed()
	}
	version, sourcePart, hasSource := strings.Cut(rest, " ")
	if version == "" {
		return PackageID{}, malformed()
	}

	source := rootSource
	if hasSource {
		if !strings.HasPrefix(sourcePart, "(") || !strings.HasSuffix(sourcePart, ")") {
			return PackageID{}, malformed()
		}
		parsed, err := ParseSourceID(strings.TrimSuffix(strings.TrimPrefix(sourcePart, "("), ")"))
		if err != nil {
			return PackageID{}, err
		}
		source = parsed
	}

	return PackageID{Name: name, Version: version, Source: source}, nil
}
