package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/kellegous/labkit/sorting"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseValue reads a token as an integer, then a float, and otherwise keeps it
// as a string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

func formatValues(vs []any) string {
	return "[" + strings.Join(lo.Map(vs, func(v any, _ int) string {
		return fmt.Sprint(v)
	}), ", ") + "]"
}

func newSortCmd(a *app) *cobra.Command {
	var (
		alg     string
		seed    uint64
		stats   bool
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort numbers or words with quicksort or bubble sort",
		Long: `Sorts the given values, or whitespace separated values read from stdin
when none are given. Integers and floats sort numerically, words sort
lexically, and mixing numbers with words is an error.

With --compare the input is sorted by both algorithms.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				s := bufio.NewScanner(a.in)
				s.Split(bufio.ScanWords)
				for s.Scan() {
					args = append(args, s.Text())
				}
				if err := s.Err(); err != nil {
					return err
				}
			}

			vs := lo.Map(args, func(s string, _ int) any {
				return parseValue(s)
			})

			var opts []sorting.Option
			if seed != 0 {
				opts = append(opts, sorting.WithSeed(seed))
			}

			if compare {
				return compareSorts(a, vs, opts)
			}

			algorithm := a.ctx.Algorithm()
			if cmd.Flags().Changed("alg") {
				var err error
				if algorithm, err = sorting.ParseAlgorithm(alg); err != nil {
					return err
				}
			}

			var st sorting.Stats
			if err := sorting.Values(algorithm, vs, append(opts, sorting.WithStats(&st))...); err != nil {
				return err
			}

			zap.L().Debug("sorted",
				zap.Stringer("algorithm", algorithm),
				zap.Int("n", len(vs)),
				zap.Int("comparisons", st.Comparisons),
				zap.Int("swaps", st.Swaps))

			fmt.Fprintln(a.out, formatValues(vs))
			if stats {
				fmt.Fprintf(a.out, "passes=%d comparisons=%d swaps=%d\n",
					st.Passes, st.Comparisons, st.Swaps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&alg, "alg", "quick", "algorithm: quick or bubble")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for quicksort pivots (0 picks one at random)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print comparison and swap counts")
	cmd.Flags().BoolVar(&compare, "compare", false, "sort with both algorithms")

	return cmd
}

func compareSorts(a *app, vs []any, opts []sorting.Option) error {
	fmt.Fprintf(a.out, "Original : %s\n", formatValues(vs))

	for _, alg := range []sorting.Algorithm{sorting.Quicksort, sorting.BubbleSort} {
		cp := append([]any(nil), vs...)

		var st sorting.Stats
		if err := sorting.Values(alg, cp, append(opts, sorting.WithStats(&st))...); err != nil {
			return err
		}

		fmt.Fprintf(a.out, "%-9s: %s (comparisons=%d swaps=%d)\n",
			alg, formatValues(cp), st.Comparisons, st.Swaps)
	}

	return nil
}
