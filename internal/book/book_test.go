package book

import (
	"errors"
	"strings"
	"testing"
)

func addRecord(t *testing.T, b *AddressBook, name, phone string) *Record {
	t.Helper()
	r := NewRecord(mustName(t, name), mustPhone(t, phone))
	if err := b.Add(r); err != nil {
		t.Fatalf("Add(%s) error = %v", name, err)
	}
	return r
}

func TestAddressBook_Add_Duplicate(t *testing.T) {
	b := NewAddressBook()
	first := addRecord(t, b, "Alice", "1111111111")

	dup := NewRecord(mustName(t, "Alice"), mustPhone(t, "2222222222"))
	if err := b.Add(dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add(duplicate) error = %v, want ErrDuplicate", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	got, err := b.Get("Alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != first {
		t.Error("duplicate add must not overwrite the existing record")
	}
}

func TestAddressBook_Get_CaseSensitive(t *testing.T) {
	b := NewAddressBook()
	addRecord(t, b, "Alice", "1111111111")

	if _, err := b.Get("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(lowercase) error = %v, want ErrNotFound", err)
	}
}

func TestAddressBook_Delete(t *testing.T) {
	b := NewAddressBook()
	r := addRecord(t, b, "Alice", "1111111111")

	got, err := b.Delete("Alice")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got != r {
		t.Error("Delete() should return the removed record")
	}
	if _, err := b.Get("Alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if _, err := b.Delete("Alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(absent) error = %v, want ErrNotFound", err)
	}
}

func TestAddressBook_FirstN_Truncates(t *testing.T) {
	b := NewAddressBook()
	addRecord(t, b, "Alice", "1111111111")
	addRecord(t, b, "Bob", "2222222222")
	addRecord(t, b, "Carol", "3333333333")

	got := b.FirstN(10)
	if len(got) != 3 {
		t.Fatalf("FirstN(10) on book of 3 returned %d records, want 3", len(got))
	}
	if got[0].Name().String() != "Alice" || got[2].Name().String() != "Carol" {
		t.Error("FirstN() should preserve insertion order")
	}

	if got := b.FirstN(2); len(got) != 2 {
		t.Errorf("FirstN(2) returned %d records, want 2", len(got))
	}
	if got := b.FirstN(0); got != nil {
		t.Errorf("FirstN(0) = %v, want nil", got)
	}
}

func TestAddressBook_FirstN_OrderSurvivesDelete(t *testing.T) {
	b := NewAddressBook()
	addRecord(t, b, "Alice", "1111111111")
	addRecord(t, b, "Bob", "2222222222")
	addRecord(t, b, "Carol", "3333333333")

	if _, err := b.Delete("Bob"); err != nil {
		t.Fatal(err)
	}
	got := b.Records()
	if len(got) != 2 {
		t.Fatalf("Records() returned %d, want 2", len(got))
	}
	if got[0].Name().String() != "Alice" || got[1].Name().String() != "Carol" {
		t.Errorf("order after delete = [%s %s], want [Alice Carol]",
			got[0].Name(), got[1].Name())
	}
}

func TestAddressBook_RenderAll(t *testing.T) {
	b := NewAddressBook()
	if got := b.RenderAll(); got != "Contacts are empty" {
		t.Errorf("RenderAll(empty) = %q, want %q", got, "Contacts are empty")
	}

	addRecord(t, b, "alice", "1111111111")
	addRecord(t, b, "BOB", "2222222222")

	out := b.RenderAll()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderAll() produced %d lines, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "Alice: 1111111111" {
		t.Errorf("line 0 = %q, want %q", lines[0], "Alice: 1111111111")
	}
	if lines[1] != "Bob: 2222222222" {
		t.Errorf("line 1 = %q, want %q", lines[1], "Bob: 2222222222")
	}
}
