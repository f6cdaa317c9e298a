// Package book holds the contact data model: validated value types,
// the Record aggregate, and the in-memory AddressBook container.
package book

import (
	"regexp"
	"time"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z]{1,20}$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// birthdayLayout is the accepted birthday input format, DD.MM.YYYY.
const birthdayLayout = "02.01.2006"

// Name is a validated contact name. The zero value is not valid;
// obtain instances through NewName.
type Name struct {
	value string
}

// NewName validates s as a contact name: 1-20 letters, nothing else.
func NewName(s string) (Name, error) {
	if !nameRe.MatchString(s) {
		return Name{}, &ValidationError{
			Kind:   InvalidName,
			Reason: "Name must contain only letters and be 1-20 symbols long",
		}
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number: exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates s as a ten-digit phone number.
func NewPhone(s string) (Phone, error) {
	if !phoneRe.MatchString(s) {
		return Phone{}, &ValidationError{
			Kind:   InvalidPhone,
			Reason: "Phone must contain only digits and be 10 symbols long",
		}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a validated calendar date, stored as the parsed date
// rather than the input string.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s as DD.MM.YYYY. Impossible calendar dates
// (day 32, month 13, 29.02 in a non-leap year) are rejected.
func NewBirthday(s string) (Birthday, error) {
	d, err := time.Parse(birthdayLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{
			Kind:   InvalidBirthday,
			Reason: "Birthday must contain date in format DD.MM.YYYY!",
		}
	}
	return Birthday{date: d}, nil
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the date in ISO form, e.g. "2000-01-31".
func (b Birthday) String() string {
	return b.date.Format("2006-01-02")
}
