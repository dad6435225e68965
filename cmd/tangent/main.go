// Package main provides the Tangent command line interface.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangent-ml/tangent/arith"
	"github.com/tangent-ml/tangent/deriv"
)

const version = "v0.1.0-dev"

// builtins maps CLI function names to differentiable implementations.
var builtins = map[string]deriv.Fn{
	"sin":    func(args ...any) any { return arith.Sin(args[0]) },
	"cos":    func(args ...any) any { return arith.Cos(args[0]) },
	"tan":    func(args ...any) any { return arith.Tan(args[0]) },
	"exp":    func(args ...any) any { return arith.Exp(args[0]) },
	"log":    func(args ...any) any { return arith.Log(args[0]) },
	"sqrt":   func(args ...any) any { return arith.Sqrt(args[0]) },
	"square": func(args ...any) any { return arith.Square(args[0]) },
	"cube":   func(args ...any) any { return arith.Cube(args[0]) },
	"sinh":   func(args ...any) any { return arith.Sinh(args[0]) },
	"cosh":   func(args ...any) any { return arith.Cosh(args[0]) },
	"tanh":   func(args ...any) any { return arith.Tanh(args[0]) },
	"atan":   func(args ...any) any { return arith.Atan(args[0]) },
}

func builtinNames() string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookup(name string) (deriv.Fn, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q (available: %s)", name, builtinNames())
	}
	return fn, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tangent",
		Short: "Forward-mode automatic differentiation",
		Long: `Tangent differentiates functions exactly via a tag-scoped
dual-number algebra. No finite differences, no symbolic expression trees.`,
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd(), newDerivCmd(), newTaylorCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tangent %s\n", version)
		},
	}
}

func newDerivCmd() *cobra.Command {
	var (
		fnName string
		at     float64
		order  int
	)
	cmd := &cobra.Command{
		Use:   "deriv",
		Short: "Evaluate the n-th derivative of a builtin function at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(fnName)
			if err != nil {
				return err
			}
			if order < 0 {
				return fmt.Errorf("order must be non-negative, got %d", order)
			}
			result := deriv.Nth(order, fn)(at)
			fmt.Printf("d^%d/dx^%d %s(%v) = %v\n", order, order, fnName, at, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&fnName, "fn", "sin", "builtin function to differentiate")
	cmd.Flags().Float64Var(&at, "at", 0, "point of evaluation")
	cmd.Flags().IntVar(&order, "order", 1, "derivative order")
	return cmd
}

func newTaylorCmd() *cobra.Command {
	var (
		fnName string
		at     float64
		eps    float64
		order  int
	)
	cmd := &cobra.Command{
		Use:   "taylor",
		Short: "Evaluate the truncated Taylor shift exp(eps*D) of a builtin function",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(fnName)
			if err != nil {
				return err
			}
			if order < 0 {
				return fmt.Errorf("order must be non-negative, got %d", order)
			}
			shift := deriv.ExpOp(deriv.DOp(), eps, order)
			result := shift.Apply(fn)(at)
			fmt.Printf("exp(%v*D) %s(%v) ~= %v (order %d)\n", eps, fnName, at, result, order)
			return nil
		},
	}
	cmd.Flags().StringVar(&fnName, "fn", "exp", "builtin function to shift")
	cmd.Flags().Float64Var(&at, "at", 0, "point of evaluation")
	cmd.Flags().Float64Var(&eps, "eps", 0.1, "shift size")
	cmd.Flags().IntVar(&order, "order", 4, "series truncation order")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
