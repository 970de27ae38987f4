package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	mdwlog "github.com/msto63/complexkit/foundation/core/log"
	"github.com/msto63/complexkit/internal/calc"
	"github.com/msto63/complexkit/internal/history/store"
	"github.com/msto63/complexkit/pkg/core/config"
	"github.com/msto63/complexkit/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool
	style   string

	cfg    *config.Config
	logger *mdwlog.Logger

	openStore func(config.HistoryConfig) (store.Store, error)
	store     store.Store
}

func openSQLiteStore(cfg config.HistoryConfig) (store.Store, error) {
	return store.NewSQLiteStore(store.Config{Path: cfg.Path})
}

// Execute runs the command tree against os.Args
func Execute() error {
	a := &app{openStore: openSQLiteStore}
	root := newRootCmd(a)
	// PersistentPostRunE is skipped when a command fails
	defer a.teardown()

	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "complexkit",
		Short: "complexkit - Complex number toolkit",
		Long: `complexkit evaluates arithmetic on complex numbers and keeps a history
of every calculation.

Operands are written as "(re + imi)" or "re,im", e.g. "(3.0 + 4.0i)" or 3,4.
Put operands that start with a minus sign after "--":

  complexkit times -- -1,2 3,4`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+" or ./complexkit.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.style, "style", "", "output style: plain or styled (overrides config)")

	for _, op := range calc.Ops() {
		root.AddCommand(newCalcCmd(a, op))
	}
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the configuration and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.style != "" {
		a.cfg.Output.Style = a.style
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}

	lc := logging.FromAppConfig(a.cfg.General.Name, a.cfg)
	lc.Output = cmd.ErrOrStderr()
	if a.verbose {
		lc.Level = "debug"
	}
	a.logger = logging.NewLogger(lc)

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"source":  a.cfg.Source(),
		"history": a.cfg.History.Enabled,
		"style":   a.cfg.Output.Style,
	})
	return nil
}

func (a *app) teardown() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// history opens the store on first use
func (a *app) history() (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if !a.cfg.History.Enabled {
		return nil, mdwerror.New("history is disabled").
			WithCode(mdwerror.CodeInvalidOperation).
			WithSeverity(mdwerror.SeverityLow).
			WithOperation("cli.history")
	}

	s, err := a.openStore(a.cfg.History)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("history opened", mdwlog.Field("path", a.cfg.History.Path))
	a.store = s
	return s, nil
}

func (a *app) renderer(cmd *cobra.Command) renderer {
	return newRenderer(cmd.OutOrStdout(), a.cfg.Output.Style == config.StyleStyled)
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
