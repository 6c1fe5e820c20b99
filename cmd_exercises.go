package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kellegous/labkit/armstrong"
	"github.com/kellegous/labkit/factorial"
	"github.com/kellegous/labkit/prime"
	"github.com/spf13/cobra"
)

func parseInts(args []string) ([]int, error) {
	ns := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", arg)
		}
		ns = append(ns, n)
	}
	return ns, nil
}

func newPrimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prime n...",
		Short: "Check numbers for primality with three methods",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseInts(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Number | Trial     | Sqrt      | 6k±1")
			fmt.Fprintln(a.out, strings.Repeat("-", 42))
			for _, n := range ns {
				fmt.Fprintf(a.out, "%-6d | %-9s | %-9s | %s\n",
					n,
					prime.Label(prime.TrialDivision(n)),
					prime.Label(prime.SquareRoot(n)),
					prime.Label(prime.SixK(n)))
			}
			return nil
		},
	}
}

func printArmstrong(a *app, n uint64) {
	r := armstrong.Check(n)
	if r.IsArmstrong {
		fmt.Fprintf(a.out, "%d is an Armstrong number!\n", n)
	} else {
		fmt.Fprintf(a.out, "%d is NOT an Armstrong number.\n", n)
	}
	fmt.Fprintf(a.out, "Explanation: %s\n", r.Explain())
}

func newArmstrongCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "armstrong [n...]",
		Short: "Check for Armstrong numbers, interactively when no number is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := armstrong.Parse(arg)
				if err != nil {
					return err
				}
				printArmstrong(a, n)
			}

			if len(args) > 0 {
				return nil
			}

			for {
				s, err := a.prompt.Line("Enter a number to check (or 'exit' to quit): ")
				if err == io.EOF || strings.EqualFold(s, "exit") {
					fmt.Fprintln(a.out, "Program ended.")
					return nil
				} else if err != nil {
					return err
				}

				n, err := armstrong.Parse(s)
				if err != nil {
					fmt.Fprintln(a.out, "Please enter a valid number!")
					continue
				}
				printArmstrong(a, n)
			}
		},
	}
}

func newFactorialCmd(a *app) *cobra.Command {
	var showMemo bool

	cmd := &cobra.Command{
		Use:   "factorial n",
		Short: "Compute n! with a memoized computation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an integer", args[0])
			}

			var m factorial.Memo
			v, err := m.Of(n)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Factorial of %d is %s\n", n, v)

			if showMemo {
				for _, k := range m.Cached() {
					kv, _ := m.Lookup(k)
					fmt.Fprintf(a.out, "%d! = %s\n", k, kv)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMemo, "memo", false, "print every memoized value")

	return cmd
}
