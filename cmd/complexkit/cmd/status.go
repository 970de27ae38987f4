package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/complexkit/foundation/utils/complexx"
	"github.com/msto63/complexkit/pkg/core/health"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Checks configuration, history database and arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := health.NewRegistry()
			registry.RegisterFunc("config", a.checkConfig)
			registry.RegisterFunc("history", a.checkHistory)
			registry.RegisterFunc("arithmetic", checkArithmetic)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			report := registry.Check(ctx)

			out := cmd.OutOrStdout()
			for _, c := range report.Checks {
				icon := "[+]"
				switch c.Status {
				case health.StatusUnhealthy:
					icon = "[-]"
				case health.StatusSkipped, health.StatusDegraded:
					icon = "[ ]"
				}
				fmt.Fprintf(out, "  %s %-12s %s\n", icon, c.Name, c.Message)
			}

			if report.Status == health.StatusUnhealthy {
				return errors.New("some checks failed")
			}
			return nil
		},
	}
}

func (a *app) checkConfig(ctx context.Context) health.CheckResult {
	if src := a.cfg.Source(); src != "" {
		return health.Healthy(src)
	}
	return health.Healthy("built-in defaults")
}

func (a *app) checkHistory(ctx context.Context) health.CheckResult {
	if !a.cfg.History.Enabled {
		return health.Skipped("disabled")
	}
	s, err := a.history()
	if err != nil {
		return health.Unhealthy(err)
	}
	n, err := s.Count(ctx)
	if err != nil {
		return health.Unhealthy(err)
	}
	return health.Healthy(fmt.Sprintf("%d calculation(s) in %s", n, a.cfg.History.Path))
}

// checkArithmetic verifies identities the rest of the tool relies on
func checkArithmetic(ctx context.Context) health.CheckResult {
	i := complexx.I()
	a := complexx.New(3, 4)
	b := complexx.New(1, -2)

	switch {
	case !i.Times(i).Equal(complexx.New(-1, 0)):
		return health.Unhealthy(errors.New("i*i != -1"))
	case !a.DividedBy(b).Times(b).ApproxEqual(a, 1e-12):
		return health.Unhealthy(errors.New("(a/b)*b != a"))
	case !complexx.MustParse(a.String()).Equal(a):
		return health.Unhealthy(errors.New("parse(string(a)) != a"))
	}
	return health.Healthy("identities hold")
}
