package book

import (
	"strings"
)

// AddressBook maps a name string to exactly one record, preserving
// insertion order for listings. Not safe for concurrent use; the
// single input loop is the only accessor.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts r, keyed by its name. Returns ErrDuplicate when a
// record with the same name already exists; the existing record is
// never overwritten.
func (b *AddressBook) Add(r *Record) error {
	key := r.Name().String()
	if _, ok := b.records[key]; ok {
		return ErrDuplicate
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return nil
}

// Delete removes and returns the record for name, or ErrNotFound.
func (b *AddressBook) Delete(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, ErrNotFound
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return r, nil
}

// Get returns the record for name, or ErrNotFound.
func (b *AddressBook) Get(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// FirstN returns up to n records in insertion order. Asking for more
// than the book holds yields exactly the book's contents; n <= 0
// yields nothing.
func (b *AddressBook) FirstN(n int) []*Record {
	if n > len(b.order) {
		n = len(b.order)
	}
	if n <= 0 {
		return nil
	}
	out := make([]*Record, 0, n)
	for _, key := range b.order[:n] {
		out = append(out, b.records[key])
	}
	return out
}

// Records returns every record in insertion order.
func (b *AddressBook) Records() []*Record {
	return b.FirstN(len(b.order))
}

// RenderAll lists every record as a title-cased name header plus the
// record's summary, one per line, or an explicit empty notice.
func (b *AddressBook) RenderAll() string {
	if len(b.order) == 0 {
		return "Contacts are empty"
	}
	lines := make([]string, 0, len(b.order))
	for _, key := range b.order {
		lines = append(lines, Title(key)+": "+b.records[key].Summary())
	}
	return strings.Join(lines, "\n")
}

// Title uppercases the first letter and lowercases the rest, for
// listing headers. Names are ASCII letters only, so byte arithmetic
// is enough.
func Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
