package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/convert"
	"github.com/dmitrymomot/ophite/pkg/mathx"
)

// parseArgs parses every argument as T, naming the position on failure.
func parseArgs[T convert.Number](args []string) ([]T, error) {
	out := make([]T, len(args))
	for i, s := range args {
		v, err := convert.Parse[T](s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// unaryCmd builds a command that takes one number parsed as T.
func unaryCmd[T convert.Number](use, short string, run func(n T) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <n>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs[T](args)
			if err != nil {
				return err
			}
			out, err := run(v[0])
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newMathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "math",
		Short: "Integer and geometry routines",
	}

	fib := unaryCmd("fib", "Fibonacci number F(n), saturating at 2^64-1", func(n uint) (string, error) {
		return strconv.FormatUint(mathx.Fibonacci(n), 10), nil
	})
	fact := unaryCmd("fact", "Factorial n! for n <= 20", func(n uint) (string, error) {
		v, err := mathx.Factorial(n)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	})
	prime := unaryCmd("prime", "Report whether n is prime", func(n uint64) (string, error) {
		return strconv.FormatBool(mathx.IsPrime(n)), nil
	})
	perfect := unaryCmd("perfect", "Report whether n is a perfect number", func(n uint64) (string, error) {
		return strconv.FormatBool(mathx.IsPerfect(n)), nil
	})
	factor := unaryCmd("factor", "Prime factors of n", func(n uint64) (string, error) {
		fs := mathx.Factorize(n)
		parts := make([]string, len(fs))
		for i, f := range fs {
			parts[i] = strconv.FormatUint(f, 10)
		}
		return strings.Join(parts, " "), nil
	})

	pair := func(use, short string, fn func(a, b int64) int64) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseArgs[int64](args)
				if err != nil {
					return err
				}
				writeln(cmd.OutOrStdout(), fn(v[0], v[1]))
				return nil
			},
		}
	}

	quad := &cobra.Command{
		Use:     "quad <a> <b> <c>",
		Short:   "Real roots of a·x² + b·x + c = 0",
		Example: "  ophite math quad 5 8 -- -2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs[float64](args)
			if err != nil {
				return err
			}
			roots := mathx.QuadraticRoots(v[0], v[1], v[2])
			if len(roots) == 0 {
				writeln(cmd.OutOrStdout(), "no real roots")
				return nil
			}
			for _, r := range roots {
				writeln(cmd.OutOrStdout(), strconv.FormatFloat(r, 'f', 4, 64))
			}
			return nil
		},
	}

	var unit string
	gps := &cobra.Command{
		Use:     "gps <lat1> <lon1> <lat2> <lon2>",
		Short:   "Great-circle distance between two coordinates",
		Example: "  ophite math gps 50.0755 14.4378 48.8566 2.3522 --unit km",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := mathx.ParseUnit(unit)
			if err != nil {
				return err
			}
			v, err := parseArgs[float64](args)
			if err != nil {
				return err
			}
			d := mathx.GPSDistance(v[0], v[1], v[2], v[3], u)
			writeln(cmd.OutOrStdout(), fmt.Sprintf("%.2f %s", d, u))
			return nil
		},
	}
	gps.Flags().StringVar(&unit, "unit", "km", "Result unit: km, nmi or mi")

	cmd.AddCommand(
		fib, fact, prime, perfect, factor,
		pair("gcd", "Greatest common divisor", mathx.GCD),
		pair("lcm", "Least common multiple", mathx.LCM),
		quad, gps,
	)
	return cmd
}
