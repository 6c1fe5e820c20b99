package main

import (
	"github.com/kellegous/labkit/billing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Compute itemized bills",
	}

	cmd.AddCommand(newLPGBillCmd(a), newSIMBillCmd(a))
	return cmd
}

func newLPGBillCmd(a *app) *cobra.Command {
	var o billing.LPGOrder

	cmd := &cobra.Command{
		Use:   "lpg",
		Short: "Bill an LPG cylinder booking",
		Long: `Bills a booking of LPG cylinders. Cylinder types are
Domestic 14.2kg, Domestic 5kg, Commercial 19kg and Commercial 47.5kg.
Subsidies only apply to domestic cylinders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := billing.NewLPGBill(o)
			if err != nil {
				return err
			}

			zap.L().Debug("lpg bill",
				zap.String("type", b.Cylinder.Name),
				zap.Float64("total", b.Total))

			_, err = b.WriteTo(a.out)
			return err
		},
	}

	cmd.Flags().StringVar(&o.Type, "type", "", "cylinder type")
	cmd.Flags().IntVar(&o.Quantity, "qty", 1, "number of cylinders")
	cmd.Flags().Float64Var(&o.Delivery, "delivery", billing.MinDelivery, "delivery charge (10 to 50)")
	cmd.Flags().Float64Var(&o.Subsidy, "subsidy", 0, "subsidy amount (domestic only)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newSIMBillCmd(a *app) *cobra.Command {
	var (
		data     float64
		plan     string
		services string
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Bill a month of mobile data and value-added services",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := billing.ParsePlan(plan)
			if err != nil {
				return err
			}

			b, err := billing.NewSIMBill(billing.SIMUsage{
				DataGB:   data,
				Plan:     p,
				Services: billing.ParseServices(services),
			})
			if err != nil {
				return err
			}

			_, err = b.WriteTo(a.out)
			return err
		},
	}

	cmd.Flags().Float64Var(&data, "data", 0, "data consumed in GB")
	cmd.Flags().StringVar(&plan, "plan", string(billing.PrePaid), "plan type: pre-paid or post-paid")
	cmd.Flags().StringVar(&services, "services", "", "comma separated value-added services")

	return cmd
}
