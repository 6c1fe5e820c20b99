package billing

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// GSTRate is the tax applied to the subtotal of a SIM bill.
const GSTRate = 0.18

// Plan is a mobile plan type.
type Plan string

const (
	PrePaid  Plan = "pre-paid"
	PostPaid Plan = "post-paid"
)

// Rate is the charge per GB of data for the plan.
func (p Plan) Rate() float64 {
	if p == PrePaid {
		return 10
	}
	return 8
}

// ParsePlan accepts "pre-paid" or "post-paid", with or without the hyphen and
// in any case.
func ParsePlan(s string) (Plan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre-paid", "prepaid":
		return PrePaid, nil
	case "post-paid", "postpaid":
		return PostPaid, nil
	}
	return "", fmt.Errorf("unknown plan type %q", s)
}

// ServiceRates are the monthly charges of the value-added services. Services
// not listed are free.
var ServiceRates = map[string]float64{
	"caller tune":           30,
	"ott subscription":      100,
	"international roaming": 200,
}

// ParseServices splits a comma separated list of services, trimming each
// entry and dropping empty ones.
func ParseServices(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

// SIMUsage is a month of usage on a plan.
type SIMUsage struct {
	DataGB   float64
	Plan     Plan
	Services []string
}

// SIMBill is the itemized bill for a SIMUsage.
type SIMBill struct {
	Usage       SIMUsage
	DataCharges float64
	ValueAdded  float64
	Subtotal    float64
	Tax         float64
	Total       float64
}

// NewSIMBill computes the bill for u.
func NewSIMBill(u SIMUsage) (*SIMBill, error) {
	if u.DataGB < 0 {
		return nil, fmt.Errorf("data usage cannot be negative, got %g", u.DataGB)
	}

	if u.Plan != PrePaid && u.Plan != PostPaid {
		return nil, fmt.Errorf("unknown plan type %q", u.Plan)
	}

	dc := u.DataGB * u.Plan.Rate()
	vc := lo.SumBy(u.Services, func(s string) float64 {
		return ServiceRates[strings.ToLower(s)]
	})

	sub := dc + vc
	tax := sub * GSTRate
	return &SIMBill{
		Usage:       u,
		DataCharges: dc,
		ValueAdded:  vc,
		Subtotal:    sub,
		Tax:         tax,
		Total:       sub + tax,
	}, nil
}

// WriteTo writes the itemized bill to w.
func (b *SIMBill) WriteTo(w io.Writer) (int64, error) {
	services := "None"
	if len(b.Usage.Services) > 0 {
		services = strings.Join(b.Usage.Services, ", ")
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "--- Itemized Bill ---")
	fmt.Fprintf(&buf, "Plan Type: %s\n", b.Usage.Plan)
	fmt.Fprintf(&buf, "Data Usage: %g GB\n", b.Usage.DataGB)
	fmt.Fprintf(&buf, "Data Charges (DC): Rs. %.2f\n", b.DataCharges)
	fmt.Fprintf(&buf, "Value-added Services: %s\n", services)
	fmt.Fprintf(&buf, "Value-added Charges (VC): Rs. %.2f\n", b.ValueAdded)
	fmt.Fprintf(&buf, "Tax (18%% GST): Rs. %.2f\n", b.Tax)
	fmt.Fprintf(&buf, "Total Bill Amount: Rs. %.2f\n", b.Total)
	return buf.WriteTo(w)
}
