package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/complexkit/foundation/utils/complexx"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show A",
		Short: "Shows the parts, hash and canonical form of a complex number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := complexx.Parse(args[0])
			if err != nil {
				return err
			}
			a.renderer(cmd).number(c)
			return nil
		},
	}
}
