package coupon

import (
	"fmt"
	"time"
)

// DefaultValidity is how long a win-back coupon stays usable after it is issued.
const DefaultValidity = 24 * time.Hour

type Coupon struct {
	code      Code
	discount  Discount
	title     string
	validFrom time.Time
	validTo   time.Time
}

// Issue creates a coupon valid from now for DefaultValidity.
func Issue(code Code, percentOff int, customerName string, now time.Time) (*Coupon, error) {
	discount, err := NewPercentageDiscount(percentOff)
	if err != nil {
		return nil, err
	}
	return &Coupon{
		code:      code,
		discount:  discount,
		title:     fmt.Sprintf("Desconto de %d%% para %s", percentOff, customerName),
		validFrom: now,
		validTo:   now.Add(DefaultValidity),
	}, nil
}

func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) Title() string        { return c.title }
func (c *Coupon) ValidFrom() time.Time { return c.validFrom }
func (c *Coupon) ValidTo() time.Time   { return c.validTo }
