package filesystem

import "io/fs"

// FS is the filesystem surface used by cargolock.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
