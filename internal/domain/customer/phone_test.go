//go:build unit

package customer_test

import (
	"strings"
	"testing"

	"shop-winback/internal/domain/customer"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "formatted number with country code", raw: "+55 (51) 99876-5432", want: "5551998765432"},
		{name: "national number gets country code prepended", raw: "(51) 99876-5432", want: "5551998765432"},
		{name: "twelve digits kept as is", raw: "51 3333-4444", want: "555133334444"},
		{name: "too short after prefixing", raw: "9876-5432", want: ""},
		{name: "empty input", raw: "", want: ""},
		{name: "no digits at all", raw: "n/a", want: ""},
		{name: "long number is truncated to 13 digits", raw: "+55 51 99876-54321 ramal 9", want: "5551998765432"},
		{name: "area code 55 is mistaken for country code", raw: "(55) 99123-4567", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, customer.NormalizePhone(tc.raw))
		})
	}
}

func TestPhoneNormalizer_LengthInvariant(t *testing.T) {
	normalizer := customer.NewPhoneNormalizer("55")

	for n := 0; n <= 16; n++ {
		raw := strings.Repeat("7", n)
		got := normalizer.Normalize(raw)
		prefixed := n + 2

		switch {
		case n == 0 || prefixed < 12:
			assert.Empty(t, got, "digits=%d", n)
		default:
			assert.True(t, strings.HasPrefix(got, "55"), "digits=%d got=%s", n, got)
			assert.LessOrEqual(t, len(got), 13)
			if prefixed >= 13 {
				assert.Len(t, got, 13, "digits=%d", n)
			}
		}
	}
}

func TestPhoneNormalizer_CustomCountryCode(t *testing.T) {
	normalizer := customer.NewPhoneNormalizer("351")
	assert.Equal(t, "351912345678", normalizer.Normalize("912 345 678"))
}
