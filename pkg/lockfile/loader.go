package lockfile

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/logging"
	"github.com/arthur-debert/cargolock/pkg/resolver"
)

// Loader reads lockfiles. It holds no mutable state.
type Loader struct {
	opts options
}

// NewLoader returns a Loader configured by opts.
func NewLoader(opts ...Option) *Loader {
	return &Loader{opts: newOptions(opts)}
}

// Load reads the lockfile at path and rebuilds the graph, anchoring entries
// without an explicit source to sid. A missing file yields (nil, nil); sid
// must not be the zero SourceID.
func (l *Loader) Load(path string, sid resolver.SourceID) (*resolver.Resolve, error) {
	logger := logging.GetLogger("lockfile.loader")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	if sid.IsZero() {
		return nil, errors.New(errors.ErrInvalidInput, "a source id is required to load a lockfile").
			WithDetail("path", path)
	}

	info, err := l.opts.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no lockfile")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileAccess, "%s is a directory", path).
			WithDetail("path", path)
	}

	data, err := l.opts.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}

	doc, err := l.opts.codec.Parse(data, path)
	if err != nil {
		return nil, errors.WithPath(err, errors.ErrLockfileParse, path)
	}

	var enc resolver.EncodableResolve
	if err := l.opts.codec.Decode(doc, &enc); err != nil {
		return nil, errors.WithPath(err, errors.ErrLockfileCorrupt, path)
	}

	r, err := enc.ToResolve(sid)
	if err != nil {
		return nil, errors.WithPath(err, errors.ErrLockfileCorrupt, path)
	}

	logger.Debug().
		Str("path", path).
		Int("packages", len(enc.Package)+1).
		Msg("loaded lockfile")
	return r, nil
}

// LoadForPackage loads the lockfile next to pkg's manifest, anchored to
// pkg's own source.
func (l *Loader) LoadForPackage(pkg resolver.Package) (*resolver.Resolve, error) {
	path := filepath.Join(filepath.Dir(pkg.ManifestPath), l.opts.fileName)
	return l.Load(path, pkg.ID.Source)
}

var defaultLoader = NewLoader()

// Load reads path from the OS filesystem with the TOML codec.
func Load(path string, sid resolver.SourceID) (*resolver.Resolve, error) {
	return defaultLoader.Load(path, sid)
}

// LoadForPackage loads <manifest dir>/Cargo.lock from the OS filesystem.
func LoadForPackage(pkg resolver.Package) (*resolver.Resolve, error) {
	return defaultLoader.LoadForPackage(pkg)
}
