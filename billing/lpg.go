// Package billing computes itemized bills for LPG cylinder bookings and mobile
// data plans.
package billing

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	// MinDelivery and MaxDelivery bound the delivery charge of a booking.
	MinDelivery = 10.0
	MaxDelivery = 50.0
)

var (
	// ErrUnknownCylinder is returned for a cylinder type not in Cylinders.
	ErrUnknownCylinder = errors.New("unknown cylinder type")

	// ErrSubsidyNotApplicable is returned when a subsidy is requested for a
	// commercial cylinder.
	ErrSubsidyNotApplicable = errors.New("subsidy applies only to domestic cylinders")
)

// Cylinder is a bookable cylinder type.
type Cylinder struct {
	Name     string
	Price    float64
	Domestic bool
}

// Cylinders is the price list.
var Cylinders = []Cylinder{
	{Name: "Domestic 14.2kg", Price: 905.00, Domestic: true},
	{Name: "Domestic 5kg", Price: 335.50, Domestic: true},
	{Name: "Commercial 19kg", Price: 1886.50},
	{Name: "Commercial 47.5kg", Price: 4712.00},
}

// LookupCylinder finds a cylinder by name, ignoring case and surrounding space.
func LookupCylinder(name string) (Cylinder, error) {
	n := strings.TrimSpace(name)
	for _, c := range Cylinders {
		if strings.EqualFold(c.Name, n) {
			return c, nil
		}
	}
	return Cylinder{}, errors.Wrapf(ErrUnknownCylinder, "%q", name)
}

// LPGOrder is a cylinder booking as entered by a customer.
type LPGOrder struct {
	Type     string
	Quantity int
	Delivery float64
	Subsidy  float64
}

// LPGBill is the itemized bill for an LPGOrder.
type LPGBill struct {
	Cylinder Cylinder
	Quantity int
	Base     float64
	Subsidy  float64
	Delivery float64
	Total    float64
}

// NewLPGBill validates o and computes its bill. Every problem with the order is
// reported in the returned error. The subsidy is listed as its own line and
// added to the total along with the delivery charge.
func NewLPGBill(o LPGOrder) (*LPGBill, error) {
	var err error

	c, cerr := LookupCylinder(o.Type)
	err = multierr.Append(err, cerr)

	if o.Quantity < 1 {
		err = multierr.Append(err,
			fmt.Errorf("quantity must be at least 1, got %d", o.Quantity))
	}

	if o.Delivery < MinDelivery || o.Delivery > MaxDelivery {
		err = multierr.Append(err,
			fmt.Errorf("delivery charge must be between %.0f and %.0f, got %.2f",
				MinDelivery, MaxDelivery, o.Delivery))
	}

	if o.Subsidy < 0 {
		err = multierr.Append(err,
			fmt.Errorf("subsidy cannot be negative, got %.2f", o.Subsidy))
	} else if o.Subsidy > 0 && cerr == nil && !c.Domestic {
		err = multierr.Append(err, ErrSubsidyNotApplicable)
	}

	if err != nil {
		return nil, err
	}

	base := c.Price * float64(o.Quantity)
	return &LPGBill{
		Cylinder: c,
		Quantity: o.Quantity,
		Base:     base,
		Subsidy:  o.Subsidy,
		Delivery: o.Delivery,
		Total:    base + o.Subsidy + o.Delivery,
	}, nil
}

// WriteTo writes the itemized bill to w.
func (b *LPGBill) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "--- LPG Itemized Bill ---")
	fmt.Fprintf(&buf, "Cylinder Type      : %s\n", b.Cylinder.Name)
	fmt.Fprintf(&buf, "Number of Cylinders: %d\n", b.Quantity)
	fmt.Fprintf(&buf, "Base Amount        : Rs. %.2f\n", b.Base)
	fmt.Fprintf(&buf, "Subsidy            : Rs. %.2f\n", b.Subsidy)
	fmt.Fprintf(&buf, "Delivery Charges   : Rs. %.2f\n", b.Delivery)
	fmt.Fprintf(&buf, "Total Bill Amount  : Rs. %.2f\n", b.Total)
	return buf.WriteTo(w)
}
