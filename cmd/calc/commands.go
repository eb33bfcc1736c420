package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mathengine/calc/internal/calculation"
	"github.com/mathengine/calc/internal/config"
	"github.com/mathengine/calc/internal/output"
	"github.com/mathengine/calc/pkg/logging"
)

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.NewParser().LoadFromFile(path)
}

// newLogger builds the diagnostic logger for one command invocation.
// Diagnostics always go to stderr; results go to stdout.
func newLogger(cfg *config.AppConfig) calculation.Logger {
	var lg *logging.Logger
	switch cfg.Color {
	case config.ColorAlways:
		lg = logging.NewWithWriter(os.Stderr, true)
	case config.ColorNever:
		lg = logging.NewWithWriter(os.Stderr, false)
	default:
		lg = logging.New()
	}
	if cfg.Verbose {
		return lg
	}
	return quietDebug{lg}
}

// quietDebug drops debug records. The logger itself never filters;
// verbosity is a display decision owned by the CLI.
type quietDebug struct {
	*logging.Logger
}

func (quietDebug) Debugf(format string, args ...any) {}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return v, nil
}

func newBinaryOpCmd(configPath *string, use, short string, op func(*calculation.Calculator, float64, float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			calc := calculation.New(newLogger(cfg))
			result, err := op(calc, a, b)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.FormatNumber(result, cfg.Precision))
			return nil
		},
	}
}

func newAddCmd(configPath *string) *cobra.Command {
	return newBinaryOpCmd(configPath, "add", "Add two numbers",
		func(c *calculation.Calculator, a, b float64) (float64, error) {
			return c.Add(a, b), nil
		})
}

func newSubtractCmd(configPath *string) *cobra.Command {
	return newBinaryOpCmd(configPath, "subtract", "Subtract B from A",
		func(c *calculation.Calculator, a, b float64) (float64, error) {
			return c.Subtract(a, b), nil
		})
}

func newMultiplyCmd(configPath *string) *cobra.Command {
	return newBinaryOpCmd(configPath, "multiply", "Multiply two numbers",
		func(c *calculation.Calculator, a, b float64) (float64, error) {
			return c.Multiply(a, b), nil
		})
}

func newDivideCmd(configPath *string) *cobra.Command {
	return newBinaryOpCmd(configPath, "divide", "Divide A by B",
		func(c *calculation.Calculator, a, b float64) (float64, error) {
			return c.Divide(a, b)
		})
}

func newPowerCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "power BASE EXP",
		Short: "Raise BASE to an integer exponent (may be negative)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			base, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			exp, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}

			calc := calculation.New(newLogger(cfg))
			result := calc.Power(base, int32(exp))

			fmt.Fprintln(cmd.OutOrStdout(), output.FormatNumber(result, cfg.Precision))
			return nil
		},
	}
}

func newDemoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short tour of every operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}
}

func runDemo(cmd *cobra.Command, cfg *config.AppConfig) error {
	out := cmd.OutOrStdout()
	calc := calculation.New(newLogger(cfg))
	p := cfg.Precision

	fmt.Fprintln(out, "--- Basic Operations ---")
	sum := calc.Add(10, 5)
	fmt.Fprintf(out, "10.0 + 5.0 = %s\n", output.FormatNumber(sum, p))

	diff := calc.Subtract(10, 3)
	fmt.Fprintf(out, "10.0 - 3.0 = %s\n", output.FormatNumber(diff, p))

	product := calc.Multiply(4, 7)
	fmt.Fprintf(out, "4.0 * 7.0 = %s\n", output.FormatNumber(product, p))

	quotient, err := calc.Divide(20, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "20.0 / 4.0 = %s\n", output.FormatNumber(quotient, p))

	fmt.Fprintln(out, "--- Power Operation ---")
	power := calc.Power(2, 10)
	fmt.Fprintf(out, "2.0^10 = %s\n", output.FormatNumber(power, p))

	fmt.Fprintln(out, "--- Last Result ---")
	fmt.Fprintf(out, "Last result: %s\n", output.FormatNumber(calc.LastResult(), p))

	fmt.Fprintln(out, "--- Error Handling ---")
	if _, err := calc.Divide(10, 0); err != nil {
		fmt.Fprintf(out, "Caught error: %v\n", err)
	}
	return nil
}
