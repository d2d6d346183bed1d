package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/cargolock/pkg/errors"
)

// PackageID is the exact identity of a resolved package.
type PackageID struct {
	Name    string
	Version string
	Source  SourceID
}

// NewPackageID validates the name and the semantic version and returns the id.
func NewPackageID(name, version string, source SourceID) (PackageID, error) {
	if name == "" {
		return PackageID{}, errors.New(errors.ErrInvalidInput, "package name is empty")
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return PackageID{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid version %q for %s", version, name).
			WithDetail("package", name).
			WithDetail("version", version)
	}
	return PackageID{Name: name, Version: version, Source: source}, nil
}

// MustPackageID is NewPackageID for literals known to be valid.
func MustPackageID(name, version string, source SourceID) PackageID {
	id, err := NewPackageID(name, version, source)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders "name version (source)".
func (id PackageID) String() string {
	return fmt.Sprintf("%s %s (%s)", id.Name, id.Version, id.Source)
}

// Less orders ids by name, then semantic version, then source.
func (id PackageID) Less(other PackageID) bool {
	if id.Name != other.Name {
		return id.Name < other.Name
	}
	if id.Version != other.Version {
		a, errA := semver.NewVersion(id.Version)
		b, errB := semver.NewVersion(other.Version)
		if errA == nil && errB == nil && !a.Equal(b) {
			return a.LessThan(b)
		}
		return id.Version < other.Version
	}
	return id.Source.String() < other.Source.String()
}

// Package describes a package whose manifest sits on disk. It is what the
// path-inferring lockfile helpers key off.
type Package struct {
	ManifestPath string
	ID           PackageID
}

// Root returns the directory holding the manifest.
func (p Package) Root() string {
	return filepath.Dir(p.ManifestPath)
}
