package lockfile

import (
	"path/filepath"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/logging"
	"github.com/arthur-debert/cargolock/pkg/resolver"
)

// Writer saves lockfiles. It holds no mutable state.
type Writer struct {
	opts options
}

// NewWriter returns a Writer configured by opts.
func NewWriter(opts ...Option) *Writer {
	return &Writer{opts: newOptions(opts)}
}

// Render returns the canonical lockfile text for r without writing it.
func (w *Writer) Render(r *resolver.Resolve) (string, error) {
	doc, err := w.opts.codec.Encode(resolver.Encode(r))
	if err != nil {
		return "", err
	}
	return Render(doc, w.opts.codec)
}

// Save writes the canonical lockfile for r to path, replacing any existing
// content.
func (w *Writer) Save(path string, r *resolver.Resolve) error {
	logger := logging.GetLogger("lockfile.writer")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	out, err := w.Render(r)
	if err != nil {
		return errors.WithPath(err, errors.ErrGraphEncode, path)
	}

	if err := w.opts.fs.WriteFile(path, []byte(out), w.opts.mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("packages", len(r.Packages())).
		Int("bytes", len(out)).
		Msg("saved lockfile")
	return nil
}

// SaveForPackage writes the lockfile into pkg's root directory.
func (w *Writer) SaveForPackage(pkg resolver.Package, r *resolver.Resolve) error {
	return w.Save(filepath.Join(pkg.Root(), w.opts.fileName), r)
}

var defaultWriter = NewWriter()

// Save writes path on the OS filesystem with the TOML codec.
func Save(path string, r *resolver.Resolve) error {
	return defaultWriter.Save(path, r)
}

// SaveForPackage writes <pkg root>/Cargo.lock on the OS filesystem.
func SaveForPackage(pkg resolver.Package, r *resolver.Resolve) error {
	return defaultWriter.SaveForPackage(pkg, r)
}
