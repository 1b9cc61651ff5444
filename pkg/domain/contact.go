package domain

import "regexp"

// Constraint messages shown to users when contact details are rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	EmailConstraints   = "Emails should be of the format local-part@domain. The local-part should only contain " +
		"alphanumeric characters and the special characters +_.- and may not start or end with a special character. " +
		"The domain is made up of labels separated by periods; each label starts and ends with an alphanumeric " +
		"character, may contain hyphens in between, and the last label is at least 2 characters long"
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex   = regexp.MustCompile(`^\d{3,}$`)
	addressRegex = regexp.MustCompile(`^\S.*$`)
	emailRegex   = regexp.MustCompile(
		`^[\p{L}\p{N}](?:[\p{L}\p{N}+_.-]*[\p{L}\p{N}])?@` +
			`(?:[\p{L}\p{N}](?:[\p{L}\p{N}-]*[\p{L}\p{N}])?\.)*` +
			`[\p{L}\p{N}](?:[\p{L}\p{N}-]*[\p{L}\p{N}])$`)
)

// Name is a customer's name.
type Name struct{ value string }

// NewName validates raw and returns a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, invalid("name", raw, NameConstraints)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether s is an acceptable name.
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string { return n.value }

// IsZero reports whether the name was never set.
func (n Name) IsZero() bool { return n.value == "" }

func (n Name) MarshalText() ([]byte, error) { return []byte(n.value), nil }

func (n *Name) UnmarshalText(b []byte) error { return parseInto(n, b, NewName) }

// Phone is a customer's contact number.
type Phone struct{ value string }

// NewPhone validates raw and returns a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, invalid("phone", raw, PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

func (p Phone) String() string { return p.value }

// IsZero reports whether the phone was never set.
func (p Phone) IsZero() bool { return p.value == "" }

func (p Phone) MarshalText() ([]byte, error) { return []byte(p.value), nil }

func (p *Phone) UnmarshalText(b []byte) error { return parseInto(p, b, NewPhone) }

// Email is a customer's email address.
type Email struct{ value string }

// NewEmail validates raw and returns an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, invalid("email", raw, EmailConstraints)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool { return emailRegex.MatchString(s) }

func (e Email) String() string { return e.value }

// IsZero reports whether the email was never set.
func (e Email) IsZero() bool { return e.value == "" }

func (e Email) MarshalText() ([]byte, error) { return []byte(e.value), nil }

func (e *Email) UnmarshalText(b []byte) error { return parseInto(e, b, NewEmail) }

// Address is the delivery address for an order.
type Address struct{ value string }

// NewAddress validates raw and returns an Address.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, invalid("address", raw, AddressConstraints)
	}
	return Address{value: raw}, nil
}

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool { return addressRegex.MatchString(s) }

func (a Address) String() string { return a.value }

// IsZero reports whether the address was never set.
func (a Address) IsZero() bool { return a.value == "" }

func (a Address) MarshalText() ([]byte, error) { return []byte(a.value), nil }

func (a *Address) UnmarshalText(b []byte) error { return parseInto(a, b, NewAddress) }

// parseInto runs a validating constructor for text unmarshalling so decoded
// values go through the same rule as user input.
func parseInto[T any](dst *T, raw []byte, ctor func(string) (T, error)) error {
	v, err := ctor(string(raw))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
