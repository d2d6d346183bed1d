package cli

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/spf13/cobra"
)

func newFmtCmd(p *project) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: MsgFmtShort,
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
			if bytes.Equal(current, []byte(canonical)) {
				fmt.Fprintf(cmd.OutOrStdout(), MsgAlreadyFormatted, path)
				return nil
			}

			if err := w.Save(path, r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgFormatted, path)
			return nil
		},
	}
}
