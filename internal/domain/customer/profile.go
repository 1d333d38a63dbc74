package customer

import (
	"strings"
	"time"
)

const (
	UnavailableName = "Nome não disponível"

	fallbackFirstName = "cliente"
)

// Profile is one customer as seen in a single lookback window.
type Profile struct {
	identity    Identity
	name        string
	phone       string
	lastOrderAt time.Time
	rawOrderAt  string
}

func NewProfile(identity Identity, name, phone string, lastOrderAt time.Time) *Profile {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnavailableName
	}
	return &Profile{
		identity:    identity,
		name:        name,
		phone:       phone,
		lastOrderAt: lastOrderAt,
	}
}

// NewProfileFromOrder builds the profile for the first order seen for an identity.
func NewProfileFromOrder(order Order, normalizer PhoneNormalizer) *Profile {
	p := NewProfile(order.Identity, order.ShippingName, normalizer.Normalize(order.ShippingPhone), order.CreatedAt)
	p.rawOrderAt = order.RawCreatedAt
	return p
}

// FirstName is the first word of the display name.
func (p *Profile) FirstName() string {
	parts := strings.Fields(p.name)
	if len(parts) == 0 {
		return fallbackFirstName
	}
	return parts[0]
}

// LastOrderDate renders the order date as YYYY-MM-DD, falling back to the raw value.
func (p *Profile) LastOrderDate() string {
	if !p.lastOrderAt.IsZero() {
		return p.lastOrderAt.Format(time.DateOnly)
	}
	if len(p.rawOrderAt) >= 10 {
		return p.rawOrderAt[:10]
	}
	if p.rawOrderAt != "" {
		return p.rawOrderAt
	}
	return "unavailable"
}

func (p *Profile) Identity() Identity     { return p.identity }
func (p *Profile) Email() string          { return p.identity.Email() }
func (p *Profile) Name() string           { return p.name }
func (p *Profile) Phone() string          { return p.phone }
func (p *Profile) LastOrderAt() time.Time { return p.lastOrderAt }
