//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"
)

type OrderBuilder struct {
	Email       *string
	Name        *string
	Phone       *string
	NoShipping  bool
	CreatedAt   time.Time
	ExtraFields map[string]any
}

func NewOrderBuilder() *OrderBuilder {
	email := "joao.silva@example.com"
	name := "João Silva"
	phone := "+55 (51) 99876-5432"
	return &OrderBuilder{
		Email:     &email,
		Name:      &name,
		Phone:     &phone,
		CreatedAt: time.Date(2026, 9, 16, 14, 30, 0, 0, time.UTC),
	}
}

// Build methods
func (o *OrderBuilder) BuildMap() map[string]any {
	m := map[string]any{
		"id":         4501234567890,
		"created_at": o.CreatedAt.Format(time.RFC3339),
	}
	if o.Email != nil {
		m["email"] = *o.Email
	}
	if !o.NoShipping {
		shipping := map[string]any{"city": "Porto Alegre"}
		if o.Name != nil {
			shipping["name"] = *o.Name
		}
		if o.Phone != nil {
			shipping["phone"] = *o.Phone
		}
		m["shipping_address"] = shipping
	}
	for k, v := range o.ExtraFields {
		m[k] = v
	}
	return m
}

func (o *OrderBuilder) BuildRaw() json.RawMessage {
	b, err := json.Marshal(o.BuildMap())
	if err != nil {
		panic(err)
	}
	return b
}

// Fluent builder methods
func (o *OrderBuilder) WithEmail(email string) *OrderBuilder {
	o.Email = &email
	return o
}

func (o *OrderBuilder) WithoutEmail() *OrderBuilder {
	o.Email = nil
	return o
}

func (o *OrderBuilder) WithName(name string) *OrderBuilder {
	o.Name = &name
	return o
}

func (o *OrderBuilder) WithPhone(phone string) *OrderBuilder {
	o.Phone = &phone
	return o
}

func (o *OrderBuilder) WithoutShipping() *OrderBuilder {
	o.NoShipping = true
	return o
}

func (o *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	o.CreatedAt = t
	return o
}

func (o *OrderBuilder) WithField(key string, value any) *OrderBuilder {
	if o.ExtraFields == nil {
		o.ExtraFields = map[string]any{}
	}
	o.ExtraFields[key] = value
	return o
}

// MalformedOrder is a record the shop may return that is not an order object.
func MalformedOrder() json.RawMessage {
	return json.RawMessage(`"not-an-order"`)
}
