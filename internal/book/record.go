package book

import (
	"strings"
	"time"
)

// Record aggregates one contact: a name, an ordered set of unique
// phones, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with its own phone slice. Duplicate
// phones among the arguments are dropped, keeping the first.
func NewRecord(name Name, phones ...Phone) *Record {
	r := &Record{name: name, phones: make([]Phone, 0, len(phones))}
	for _, p := range phones {
		r.AddPhone(p)
	}
	return r
}

// Name returns the record's identity key.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phones in insertion order.
func (r *Record) Phones() []Phone {
	return r.phones
}

// AddPhone inserts p unless a phone with the same digits is already
// present. Reports whether p was inserted.
func (r *Record) AddPhone(p Phone) bool {
	for _, have := range r.phones {
		if have == p {
			return false
		}
	}
	r.phones = append(r.phones, p)
	return true
}

// RemovePhone removes the phone with p's digits if present.
// Reports whether anything was removed.
func (r *Record) RemovePhone(p Phone) bool {
	for i, have := range r.phones {
		if have == p {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// ChangePhone replaces old with new. It succeeds only when old is
// present; if new duplicates another existing phone it is not
// re-added. Reports whether the replacement happened.
func (r *Record) ChangePhone(old, new Phone) bool {
	if !r.RemovePhone(old) {
		return false
	}
	r.AddPhone(new)
	return true
}

// AttachBirthday sets or overwrites the birthday. A nil argument is
// a no-op: it never clears an existing birthday.
func (r *Record) AttachBirthday(b *Birthday) {
	if b == nil {
		return
	}
	r.birthday = b
}

// Birthday returns the attached birthday, or nil when none is set.
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// DaysTo returns the number of days from today until the next
// occurrence of the birthday's month and day. The result is 0 when
// today is the birthday. Returns ErrNoBirthday when the record has
// no birthday attached.
func (r *Record) DaysTo(today time.Time) (int, error) {
	if r.birthday == nil {
		return 0, ErrNoBirthday
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	bd := r.birthday.date
	next := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today) / (24 * time.Hour)), nil
}

// Summary renders the record's phones comma-joined, plus the
// birthday when one is set.
func (r *Record) Summary() string {
	var sb strings.Builder
	for i, p := range r.phones {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	if r.birthday != nil {
		sb.WriteString(" Birthday: ")
		sb.WriteString(r.birthday.String())
	}
	return sb.String()
}
