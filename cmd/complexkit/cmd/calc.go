package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	"github.com/msto63/complexkit/foundation/utils/complexx"
	"github.com/msto63/complexkit/internal/calc"
)

var calcUsage = map[calc.Op]struct {
	use     string
	short   string
	aliases []string
}{
	calc.OpPlus:      {"plus A B", "Adds two complex numbers", []string{"add"}},
	calc.OpMinus:     {"minus A B", "Subtracts B from A", []string{"sub"}},
	calc.OpTimes:     {"times A B", "Multiplies two complex numbers", []string{"mul"}},
	calc.OpDividedBy: {"div A B", "Divides A by B (a zero divisor yields NaN or Infinity)", []string{"dividedBy", "divided-by"}},
}

func newCalcCmd(a *app, op calc.Op) *cobra.Command {
	usage := calcUsage[op]
	var noHistory bool

	cmd := &cobra.Command{
		Use:     usage.use,
		Short:   usage.short,
		Aliases: usage.aliases,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, right, err := parseOperands(args)
			if err != nil {
				return err
			}

			cc := calc.Config{Logger: a.logger}
			if !noHistory && a.cfg.History.Enabled {
				s, err := a.history()
				if err != nil {
					return err
				}
				cc.Recorder = s
			}

			result, err := calc.New(cc).Evaluate(cmd.Context(), op, left, right)
			if err != nil && result.ID == "" {
				return err
			}

			a.renderer(cmd).calculation(result)

			// the result was computed, only persisting it failed
			if err != nil {
				a.logger.WarnWithErr("calculation not saved", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this calculation")
	return cmd
}

func parseOperands(args []string) (complexx.Complex, complexx.Complex, error) {
	left, err := complexx.Parse(args[0])
	if err != nil {
		return complexx.Complex{}, complexx.Complex{}, mdwerror.Wrap(err, "invalid left operand")
	}
	right, err := complexx.Parse(args[1])
	if err != nil {
		return complexx.Complex{}, complexx.Complex{}, mdwerror.Wrap(err, "invalid right operand")
	}
	return left, right, nil
}
