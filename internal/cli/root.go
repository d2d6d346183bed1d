package cli

import (
	"path/filepath"

	"github.com/arthur-debert/cargolock/internal/version"
	"github.com/arthur-debert/cargolock/pkg/config"
	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/filesystem"
	"github.com/arthur-debert/cargolock/pkg/lockfile"
	"github.com/arthur-debert/cargolock/pkg/logging"
	"github.com/arthur-debert/cargolock/pkg/resolver"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// project is the state shared by every subcommand once flags and
// configuration are resolved.
type project struct {
	fs     filesystem.FS
	dir    string
	source resolver.SourceID
	cfg    *config.Config
}

func (p *project) lockfilePath() string {
	return filepath.Join(p.dir, p.cfg.Lockfile.Name)
}

func (p *project) loader() *lockfile.Loader {
	return lockfile.NewLoader(
		lockfile.WithFS(p.fs),
		lockfile.WithFileName(p.cfg.Lockfile.Name),
	)
}

func (p *project) writer() (*lockfile.Writer, error) {
	mode, err := p.cfg.Lockfile.FileMode()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid lockfile mode")
	}
	return lockfile.NewWriter(
		lockfile.WithFS(p.fs),
		lockfile.WithFileName(p.cfg.Lockfile.Name),
		lockfile.WithFileMode(mode),
	), nil
}

// load reads the project lockfile, which must exist.
func (p *project) load() (*resolver.Resolve, error) {
	path := p.lockfilePath()
	r, err := p.loader().Load(path, p.source)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Newf(errors.ErrNotFound, "no lockfile at %s", path).
			WithDetail("path", path)
	}
	return r, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

// newRootCmd builds the command tree on top of fsys. Lockfiles are read and
// written through fsys; the project config is always read from disk.
func newRootCmd(fsys filesystem.FS) *cobra.Command {
	var (
		verbosity int
		dir       string
		source    string
	)
	p := &project{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "cargolock",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", dir)
			}
			p.dir = abs

			cfg, err := config.Load(abs)
			if err != nil {
				return err
			}
			p.cfg = cfg

			logging.SetupLogger(verbosity + cfg.Log.Verbosity)
			log.Debug().Str("command", cmd.Name()).Str("dir", abs).Msg("Command started")

			if source == "" {
				p.source = resolver.NewPathSource(abs)
				return nil
			}
			p.source, err = resolver.ParseSourceID(source)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&source, "source", "", MsgFlagSource)

	rootCmd.AddCommand(newFmtCmd(p))
	rootCmd.AddCommand(newCheckCmd(p))
	rootCmd.AddCommand(newShowCmd(p))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
