package main

import (
	"fmt"
	"strings"

	"github.com/kellegous/labkit/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCmd(a *app) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "recommend product",
		Short: "Recommend products similar to the given one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.ctx.Catalog()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("top") {
				top = a.ctx.Recommend.TopN
			}

			name := strings.Join(args, " ")
			recs, err := recommend.New(products).Recommend(name, top)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Because you viewed %s, we recommend:\n", name)
			for _, rec := range recs {
				fmt.Fprintf(a.out, "- %s (Similarity: %.2f)\n", rec.Product.Name, rec.Similarity)
				fmt.Fprintf(a.out, "  Reasons: %s\n", strings.Join(rec.Reasons, ", "))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 3, "number of recommendations")

	return cmd
}
