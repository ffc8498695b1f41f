package shipment

import (
	"regexp"

	"courierhub/internal/pkg/errs"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// Party is the sender or receiver of a shipment: a contact plus a
// serviceable address. It is an immutable value object; both parties are
// validated identically at construction.
type Party struct {
	name    string
	phone   string
	address string
	pincode string
	city    string
	state   string
}

// NewParty creates a validated party. Phone must be exactly 10 digits,
// pincode exactly 6 digits; name and address must be non-empty. City and
// state are informational and may be empty.
func NewParty(name, phone, address, pincode, city, state string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}
	if !phonePattern.MatchString(phone) {
		return Party{}, errs.NewValueIsInvalidError("phone must be exactly 10 digits")
	}
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("address")
	}
	if !pincodePattern.MatchString(pincode) {
		return Party{}, errs.NewValueIsInvalidError("pincode must be exactly 6 digits")
	}

	return Party{
		name:    name,
		phone:   phone,
		address: address,
		pincode: pincode,
		city:    city,
		state:   state,
	}, nil
}

// Name returns the contact name.
func (p Party) Name() string { return p.name }

// Phone returns the 10-digit contact phone number.
func (p Party) Phone() string { return p.phone }

// Address returns the street address.
func (p Party) Address() string { return p.address }

// Pincode returns the 6-digit postal code.
func (p Party) Pincode() string { return p.pincode }

// City returns the city, possibly empty.
func (p Party) City() string { return p.city }

// State returns the state, possibly empty.
func (p Party) State() string { return p.state }

// Validate rejects zero-value parties that bypassed NewParty.
func (p Party) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("party must be created via NewParty")
	}
	return nil
}
