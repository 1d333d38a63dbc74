package customer

import "strings"

// UnavailableEmail is how an Unknown identity renders wherever an email is displayed.
const UnavailableEmail = "Email não disponível"

// Identity keys a customer within one lookback window.
// Every order without an email maps to the same Unknown identity, so such orders
// collapse into a single synthetic profile.
type Identity struct {
	email string
	known bool
}

func Known(email string) Identity {
	return Identity{email: email, known: true}
}

func Unknown() Identity {
	return Identity{}
}

// IdentityFromEmail treats a blank email as Unknown.
func IdentityFromEmail(email string) Identity {
	email = strings.TrimSpace(email)
	if email == "" {
		return Unknown()
	}
	return Known(email)
}

func (i Identity) IsKnown() bool { return i.known }

// Email returns the identity email, or UnavailableEmail for Unknown.
func (i Identity) Email() string {
	if !i.known {
		return UnavailableEmail
	}
	return i.email
}

func (i Identity) String() string {
	return i.Email()
}
