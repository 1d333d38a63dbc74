package coupon

import (
	"errors"
	"fmt"
)

var ErrInvalidDiscountPercent = errors.New("percentage discount must be between 1 and 100")

type Code string

func (c Code) String() string {
	return string(c)
}

// Discount is a whole-number percentage off the order.
type Discount struct {
	percentOff int
}

func NewPercentageDiscount(percentOff int) (Discount, error) {
	if percentOff < 1 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) PercentOff() int {
	return d.percentOff
}

// RuleValue renders the discount the way the shop expects a percentage price rule value.
func (d Discount) RuleValue() string {
	return fmt.Sprintf("-%d.0", d.percentOff)
}
