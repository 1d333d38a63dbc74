package coupon

import (
	"strconv"
	"strings"
)

const (
	prefixLength = 3
	suffixLength = 5
	codeInfix    = "OFF"
)

type tier struct {
	maxDays    int
	percentOff int
}

// Inclusive upper bounds on the lookback day count; anything above the last bound gets
// finalPercentOff.
var tiers = []tier{
	{maxDays: 30, percentOff: 10},
	{maxDays: 60, percentOff: 12},
	{maxDays: 90, percentOff: 14},
	{maxDays: 180, percentOff: 17},
}

const finalPercentOff = 20

// DiscountForDays maps a lookback window to its discount tier.
func DiscountForDays(days int) int {
	for _, t := range tiers {
		if days <= t.maxDays {
			return t.percentOff
		}
	}
	return finalPercentOff
}

// Derive builds the coupon code and discount for a customer. It is deterministic:
// the same name, phone and days always produce the same code. Codes are not
// guaranteed to be unique across customers.
func Derive(name, phone string, days int) (Code, int) {
	percentOff := DiscountForDays(days)
	code := namePrefix(name) + phoneSuffix(phone) + codeInfix + strconv.Itoa(percentOff)
	return Code(code), percentOff
}

func namePrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if b.Len() == prefixLength {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// phoneSuffix is only zero-padded for phones shorter than five characters, which in
// practice means the empty phone ("00000").
func phoneSuffix(phone string) string {
	if len(phone) >= suffixLength {
		return phone[len(phone)-suffixLength:]
	}
	return strings.Repeat("0", suffixLength-len(phone)) + phone
}
