// Package command maps free-text input lines to operations on an
// address book. A static ordered alias table selects the handler;
// all error-to-message translation happens at the Dispatch boundary.
package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maracasabat/hw-11-assistant/internal/book"
)

// ErrUsage reports insufficient positional arguments for a handler.
var ErrUsage = errors.New("command: insufficient arguments")

// NotFoundError reports a name that is absent from the book.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command: contact %s not found", e.Name)
}

// DuplicateError reports an add for a name that is already present.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("command: contact %s already exists", e.Name)
}

// Result is the outcome of dispatching one input line. Quit is set
// only by the exit command; callers terminate their loop on it
// rather than comparing output text.
type Result struct {
	Text string
	Quit bool
}

// Handler implements one command against the address book.
type Handler func(bk *book.AddressBook, args []string) (string, error)

// entry pairs a handler with the alias prefixes that select it.
type entry struct {
	aliases []string
	handler Handler
	quit    bool
}

// Dispatcher matches input lines against its alias table and runs
// the selected handler. Stateless per call apart from the book.
type Dispatcher struct {
	book  *book.AddressBook
	now   func() time.Time
	table []entry
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithNow overrides the clock used for birthday distance. Tests use
// this to pin "today".
func WithNow(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New creates a Dispatcher over bk with the full command table.
// Table order is significant: "show all" must precede the bare
// "show" alias, which would otherwise swallow it.
func New(bk *book.AddressBook, opts ...Option) *Dispatcher {
	d := &Dispatcher{book: bk, now: time.Now}
	d.table = []entry{
		{aliases: []string{"hello", "hi"}, handler: greeting},
		{aliases: []string{"add", "new", "+"}, handler: addContact},
		{aliases: []string{"change"}, handler: changeNumber},
		{aliases: []string{"phone", "number"}, handler: printPhone},
		{aliases: []string{"show all", "show"}, handler: showAll},
		{aliases: []string{"good bye", "close", "exit", ".", "bye"}, handler: exit, quit: true},
		{aliases: []string{"delete", "del", "-"}, handler: delNumber},
		{aliases: []string{"remove"}, handler: delContact},
		{aliases: []string{"days", "birthday"}, handler: d.daysToBirthday},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch matches line against the alias table, runs the selected
// handler, and renders its outcome as user-facing text. Errors are
// translated here and never propagate.
func (d *Dispatcher) Dispatch(line string) Result {
	lower := strings.ToLower(line)
	for _, e := range d.table {
		for _, alias := range e.aliases {
			if !strings.HasPrefix(lower, alias) {
				continue
			}
			rest := strings.TrimSpace(line[len(alias):])
			text, err := e.handler(d.book, strings.Fields(rest))
			if err != nil {
				return Result{Text: renderError(err)}
			}
			return Result{Text: text, Quit: e.quit}
		}
	}
	return Result{Text: "Unknown command. Type a command like: add Name 0123456789"}
}

// renderError converts handler errors into user-facing messages.
func renderError(err error) string {
	var verr *book.ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("Contact, with name %s not in notebook.", nf.Name)
	}
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return fmt.Sprintf("Contact %s already exists.", dup.Name)
	}
	if errors.Is(err, book.ErrNoBirthday) {
		return "This contact has no birthday set."
	}
	if errors.Is(err, ErrUsage) {
		return "Please enter the contact like this:\nName: number"
	}
	return err.Error()
}

func greeting(_ *book.AddressBook, _ []string) (string, error) {
	return "How can I help you?", nil
}

func exit(_ *book.AddressBook, _ []string) (string, error) {
	return "Good bye", nil
}

func addContact(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrUsage
	}
	name, err := book.NewName(args[0])
	if err != nil {
		return "", err
	}
	phone, err := book.NewPhone(args[1])
	if err != nil {
		return "", err
	}
	rec := book.NewRecord(name, phone)
	if len(args) > 2 {
		bd, err := book.NewBirthday(args[2])
		if err != nil {
			return "", err
		}
		rec.AttachBirthday(&bd)
	}
	if err := bk.Add(rec); err != nil {
		return "", &DuplicateError{Name: name.String()}
	}
	return fmt.Sprintf("Contact %s has added successfully.", name), nil
}

func changeNumber(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrUsage
	}
	rec, err := bk.Get(args[0])
	if err != nil {
		return "", &NotFoundError{Name: args[0]}
	}
	oldPhone, err := book.NewPhone(args[1])
	if err != nil {
		return "", err
	}
	newPhone, err := book.NewPhone(args[2])
	if err != nil {
		return "", err
	}
	if !rec.ChangePhone(oldPhone, newPhone) {
		return fmt.Sprintf("Contact %s has no phone %s.", rec.Name(), oldPhone), nil
	}
	return fmt.Sprintf("Contact %s has changed successfully.", rec.Name()), nil
}

func delNumber(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrUsage
	}
	rec, err := bk.Get(args[0])
	if err != nil {
		return "", &NotFoundError{Name: args[0]}
	}
	phone, err := book.NewPhone(args[1])
	if err != nil {
		return "", err
	}
	if !rec.RemovePhone(phone) {
		return fmt.Sprintf("Contact %s has no phone %s.", rec.Name(), phone), nil
	}
	return fmt.Sprintf("Contact %s has deleted successfully from contact %s.", phone, rec.Name()), nil
}

func printPhone(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrUsage
	}
	rec, err := bk.Get(args[0])
	if err != nil {
		return "", &NotFoundError{Name: args[0]}
	}
	return rec.Summary(), nil
}

func delContact(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrUsage
	}
	rec, err := bk.Delete(args[0])
	if err != nil {
		return "", &NotFoundError{Name: args[0]}
	}
	return fmt.Sprintf("Contact %s has deleted successfully.", rec.Name()), nil
}

func showAll(bk *book.AddressBook, _ []string) (string, error) {
	return bk.RenderAll(), nil
}

func (d *Dispatcher) daysToBirthday(bk *book.AddressBook, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrUsage
	}
	rec, err := bk.Get(args[0])
	if err != nil {
		return "", &NotFoundError{Name: args[0]}
	}
	days, err := rec.DaysTo(d.now())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has %d days to birthday.", book.Title(rec.Name().String()), days), nil
}
