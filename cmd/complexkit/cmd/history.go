package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/complexkit/internal/calc"
	"github.com/msto63/complexkit/internal/history/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		opName string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.history()
			if err != nil {
				return err
			}

			filter := store.Filter{Limit: a.cfg.History.DefaultLimit}
			if cmd.Flags().Changed("limit") {
				filter.Limit = limit
			}
			if opName != "" {
				if filter.Op, err = calc.ParseOp(opName); err != nil {
					return err
				}
			}

			list, err := s.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			a.renderer(cmd).history(list)
			return nil
		},
	}

	cmd.Flags().StringVar(&opName, "op", "", "only show this operation (plus, minus, times, div)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries, 0 for all (default from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Shows a single recorded calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.history()
			if err != nil {
				return err
			}
			c, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.renderer(cmd).calculation(c)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Deletes all recorded calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.history()
			if err != nil {
				return err
			}
			n, err := s.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d calculation(s) deleted\n", n)
			return nil
		},
	})

	return cmd
}
