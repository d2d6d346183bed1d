package cli

import (
	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/resolver"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newShowCmd(p *project) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := p.load()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(resolver.Encode(r)); err != nil {
				return errors.Wrap(err, errors.ErrGraphEncode, "failed to print graph")
			}
			return enc.Close()
		},
	}
}
