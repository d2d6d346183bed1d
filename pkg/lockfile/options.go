package lockfile

import (
	"io/fs"

	"github.com/arthur-debert/cargolock/pkg/document"
	"github.com/arthur-debert/cargolock/pkg/filesystem"
)

// FileName is the lockfile name next to a package manifest.
const FileName = "Cargo.lock"

// DefaultFileMode is the permission used for newly written lockfiles.
const DefaultFileMode fs.FileMode = 0644

type options struct {
	fs       filesystem.FS
	codec    document.Codec
	fileName string
	mode     fs.FileMode
}

// Option configures a Loader or a Writer.
type Option func(*options)

// WithFS sets the filesystem. Defaults to the OS filesystem.
func WithFS(fsys filesystem.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithCodec sets the document codec. Defaults to document.NewTOMLCodec.
func WithCodec(codec document.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithFileName changes the name used by the package-relative helpers.
func WithFileName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fileName = name
		}
	}
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *options) {
		if mode != 0 {
			o.mode = mode
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		fs:       filesystem.NewOS(),
		codec:    document.NewTOMLCodec(),
		fileName: FileName,
		mode:     DefaultFileMode,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
