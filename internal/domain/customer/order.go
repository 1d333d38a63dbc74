package customer

import (
	"encoding/json"
	"strings"
	"time"

	"shop-winback/internal/pkg/errs"
)

// ErrMalformedOrder marks records that are not order objects. It is attached with
// errs.Mark, so check it with errs.Is; the stdlib errors.Is does not see it.
var ErrMalformedOrder = errs.ErrMalformedOrder

// Order is the subset of a shop order the campaign reads.
type Order struct {
	Identity      Identity
	ShippingName  string
	ShippingPhone string
	CreatedAt     time.Time
	RawCreatedAt  string
}

// ParseOrder decodes one raw order from the shop. Anything that is not a JSON object
// is reported as ErrMalformedOrder. Unknown or mistyped optional fields are tolerated.
func ParseOrder(raw json.RawMessage) (Order, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return Order{}, errs.Mark(errs.Newf("order record is not an object: %.40s", trimmed), ErrMalformedOrder)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Order{}, errs.Mark(errs.Wrap(err, "decode order record"), ErrMalformedOrder)
	}

	order := Order{
		Identity: IdentityFromEmail(stringField(fields, "email")),
	}

	order.RawCreatedAt = stringField(fields, "created_at")
	if order.RawCreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, order.RawCreatedAt); err == nil {
			order.CreatedAt = t
		}
	}

	if rawShipping, ok := fields["shipping_address"]; ok {
		var shipping map[string]json.RawMessage
		if err := json.Unmarshal(rawShipping, &shipping); err == nil {
			order.ShippingName = stringField(shipping, "name")
			order.ShippingPhone = stringField(shipping, "phone")
		}
	}

	return order, nil
}

// stringField returns "" for missing, null or non-string values.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
