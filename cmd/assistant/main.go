// Command assistant is an interactive console contact book.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/maracasabat/hw-11-assistant/internal/book"
	"github.com/maracasabat/hw-11-assistant/internal/command"
	"github.com/maracasabat/hw-11-assistant/internal/config"
	"github.com/maracasabat/hw-11-assistant/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for the assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Repl    ReplCmd          `cmd:"" default:"1" help:"Start the interactive contact book."`
	Exec    ExecCmd          `cmd:"" help:"Run a single command and exit."`
}

// ReplCmd starts the interactive loop: a Bubble Tea TUI on a
// terminal, a plain line loop otherwise.
type ReplCmd struct {
	Config string `help:"Path to config file." default:"assistant.yaml"`
	NoTUI  bool   `help:"Force plain line mode even if stdout is a TTY." default:"false"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run starts the REPL against a fresh in-memory book.
func (c *ReplCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}

	bk := book.NewAddressBook()
	disp := command.New(bk)

	if c.NoTUI || !stdoutIsTTY() {
		return runPlain(disp, cfg.Prompt, os.Stdin, os.Stdout)
	}

	m := tui.NewModel(disp, bk,
		tui.WithPrompt(cfg.Prompt),
		tui.WithPageSize(cfg.PageSize),
		tui.WithColor(cfg.Color),
	)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return c.run(prog)
}

// run executes the tea program, enabling testable wiring.
func (c *ReplCmd) run(prog teaRunner) error {
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}

// runPlain is the non-TTY loop: prompt, read a line, dispatch,
// print, until the exit command or EOF.
func runPlain(disp *command.Dispatcher, prompt string, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for {
		_, _ = fmt.Fprint(w, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("repl: reading input: %w", err)
			}
			return nil
		}
		res := disp.Dispatch(sc.Text())
		_, _ = fmt.Fprintln(w, res.Text)
		if res.Quit {
			return nil
		}
	}
}

// ExecCmd dispatches one command line against an empty book, for
// scripted smoke checks of the command surface.
type ExecCmd struct {
	Line []string `arg:"" help:"Command line to run, e.g. \"add Alice 0123456789\"."`
}

// Run dispatches the single command and prints its result.
func (c *ExecCmd) Run() error {
	disp := command.New(book.NewAddressBook())
	res := disp.Dispatch(strings.Join(c.Line, " "))
	_, _ = fmt.Fprintln(os.Stdout, res.Text)
	return nil
}

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
