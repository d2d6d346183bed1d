package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/lockfile"
	"github.com/arthur-debert/cargolock/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newCheckCmd(p *project) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := p.load()
			if err != nil {
				return err
			}
			w, err := p.writer()
			if err != nil {
				return err
			}

			path := p.lockfilePath()
			canonical, err := w.Render(r)
			if err != nil {
				return errors.WithPath(err, errors.ErrGraphEncode, path)
			}
			current, err := p.fs.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
					WithDetail("path", path)
			}

			lines := lockfile.Diff(string(current), canonical)
			out := cmd.OutOrStdout()
			if !lockfile.Changed(lines) {
				fmt.Fprintf(out, MsgCanonical, path)
				return nil
			}

			printDiff(out, lines, isTerminal(out))
			return errors.Newf(errors.ErrNotCanonical, "%s is not canonical, run cargolock fmt", path).
				WithDetail("path", path)
		},
	}
}

// printDiff writes changed lines with a +/- prefix and unchanged lines
// indented by one space.
func printDiff(w io.Writer, lines []lockfile.Line, color bool) {
	for _, l := range lines {
		switch l.Op {
		case lockfile.LineInsert:
			fmt.Fprintln(w, style.Render(style.InsertStyle, "+"+l.Text, color))
		case lockfile.LineDelete:
			fmt.Fprintln(w, style.Render(style.DeleteStyle, "-"+l.Text, color))
		default:
			fmt.Fprintln(w, style.Render(style.MutedStyle, " "+l.Text, color))
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
