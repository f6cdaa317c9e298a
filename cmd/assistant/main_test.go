package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maracasabat/hw-11-assistant/internal/book"
	"github.com/maracasabat/hw-11-assistant/internal/command"
)

func TestRunPlain_Session(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"hello",
		"add Alice 1234567890",
		"phone Alice",
		"remove Alice",
		"phone Alice",
		"good bye",
	}, "\n"))
	var out bytes.Buffer

	disp := command.New(book.NewAddressBook())
	if err := runPlain(disp, ">>> ", in, &out); err != nil {
		t.Fatalf("runPlain() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"How can I help you?",
		"Contact Alice has added successfully.",
		"1234567890",
		"Contact Alice has deleted successfully.",
		"Contact, with name Alice not in notebook.",
		"Good bye",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunPlain_StopsAtExit(t *testing.T) {
	in := strings.NewReader("exit\nadd Alice 1234567890\n")
	var out bytes.Buffer

	disp := command.New(book.NewAddressBook())
	if err := runPlain(disp, "", in, &out); err != nil {
		t.Fatalf("runPlain() error = %v", err)
	}
	if strings.Contains(out.String(), "added successfully") {
		t.Errorf("loop should stop at the exit command, got:\n%s", out.String())
	}
}

func TestRunPlain_EOF(t *testing.T) {
	disp := command.New(book.NewAddressBook())
	var out bytes.Buffer
	if err := runPlain(disp, ">>> ", strings.NewReader(""), &out); err != nil {
		t.Errorf("runPlain(EOF) error = %v, want nil", err)
	}
}

func TestRunPlain_ErrorsDoNotStopLoop(t *testing.T) {
	in := strings.NewReader("add Alice\nadd Alice 1234567890\nclose\n")
	var out bytes.Buffer

	disp := command.New(book.NewAddressBook())
	if err := runPlain(disp, "", in, &out); err != nil {
		t.Fatalf("runPlain() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Please enter the contact") {
		t.Errorf("output missing usage hint:\n%s", got)
	}
	if !strings.Contains(got, "Contact Alice has added successfully.") {
		t.Errorf("loop should continue after a bad command:\n%s", got)
	}
}

// fakeRunner stubs the tea program for ReplCmd.run.
type fakeRunner struct {
	err    error
	called bool
}

func (f *fakeRunner) Run() (tea.Model, error) {
	f.called = true
	return nil, f.err
}

func TestReplCmd_Run_TeaError(t *testing.T) {
	cmd := &ReplCmd{}
	fr := &fakeRunner{err: errors.New("terminal exploded")}
	err := cmd.run(fr)
	if !fr.called {
		t.Fatal("run() should invoke the tea program")
	}
	if err == nil || !strings.Contains(err.Error(), "terminal exploded") {
		t.Errorf("run() error = %v, want wrapped tea error", err)
	}

	if err := cmd.run(&fakeRunner{}); err != nil {
		t.Errorf("run() error = %v, want nil", err)
	}
}
