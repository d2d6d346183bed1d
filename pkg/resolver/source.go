package resolver

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cargolock/pkg/errors"
)

// SourceKind is the kind of place a package comes from.
type SourceKind string

const (
	KindPath     SourceKind = "path"
	KindRegistry SourceKind = "registry"
	KindGit      SourceKind = "git"
)

// SourceID identifies where a package originates.
type SourceID struct {
	Kind SourceKind
	URL  string
}

// NewPathSource returns the source id of a local directory.
func NewPathSource(dir string) SourceID {
	return SourceID{Kind: KindPath, URL: "file://" + filepath.ToSlash(dir)}
}

// NewRegistrySource returns the source id of a package registry.
func NewRegistrySource(url string) SourceID {
	return SourceID{Kind: KindRegistry, URL: url}
}

// NewGitSource returns the source id of a git repository.
func NewGitSource(url string) SourceID {
	return SourceID{Kind: KindGit, URL: url}
}

// String renders the id as "<kind>+<url>".
func (s SourceID) String() string {
	return string(s.Kind) + "+" + s.URL
}

// IsZero reports whether s is the zero value.
func (s SourceID) IsZero() bool {
	return s.Kind == "" && s.URL == ""
}

// ParseSourceID parses "<kind>+<url>".
func ParseSourceID(s string) (SourceID, error) {
	kind, url, ok := strings.Cut(s, "+")
	if !ok || url == "" {
		return SourceID{}, errors.Newf(errors.ErrSourceResolve, "malformed source %q", s).
			WithDetail("source", s)
	}

	switch SourceKind(kind) {
	case KindPath, KindRegistry, KindGit:
		return SourceID{Kind: SourceKind(kind), URL: url}, nil
	default:
		return SourceID{}, errors.Newf(errors.ErrSourceResolve, "unsupported source kind %q", kind).
			WithDetail("source", s)
	}
}
