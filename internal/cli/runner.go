package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/taskquare/internal/export"
	"github.com/idilsaglam/taskquare/internal/tasklist"
	"github.com/idilsaglam/taskquare/internal/tui"
	"github.com/idilsaglam/taskquare/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// Interactive runs the list view over tasks and returns once the user quits.
type Interactive func(ctx context.Context, tasks *tasklist.List) error

// Options tune output behavior from root flags.
type Options struct {
	Group      bool   // list grouped by pending/done
	ExportPath string // write a JSON snapshot when the session ends

	Stdout, Stderr io.Writer
	Logger         *zap.Logger
	Now            func() time.Time
	Interactive    Interactive
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = io.Discard
	}
	if o.Stderr == nil {
		o.Stderr = io.Discard
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Interactive == nil {
		o.Interactive = func(ctx context.Context, tasks *tasklist.List) error {
			_, err := tui.Run(ctx, tasks, tui.WithClock(o.Now), tui.WithLogger(o.Logger))
			return err
		}
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return ExitUsage
	}
	cmd, a := args[0], args[1:]
	opt.Logger.Debug("dispatch", zap.String("cmd", cmd), zap.Int("args", len(a)))

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return ExitOK

	case "version":
		fmt.Fprintf(opt.Stdout, "taskquare %s\n", Version)
		return ExitOK

	case "ls":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: taskquare ls <name>...")
			return ExitUsage
		}
		return doList(a, opt)

	case "tui":
		return doInteractive(ctx, a, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return ExitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `taskquare - a tiny task list

Usage:
  taskquare [flags] <subcommand> [args]

Subcommands:
  ls <name>...       Print a task panel for the given names
  tui [name...]      Open the interactive list, seeded with the names
  version            Print the version
  help               Show this help

Flags:
  -group             Group output by pending/done
  -theme NAME        classic, neon or mono
  -export FILE       Write the session as JSON when it ends
  -config FILE       Config file (default $XDG_CONFIG_HOME/taskquare/config.yaml)
  -log FILE          Write logs to FILE
  -debug             Debug logging

Tasks live for one session only.

Examples:
  taskquare ls "Buy milk" "Walk the dog"
  taskquare -export today.json tui "Buy milk"
`)
}

// -------------- subcommand impls ----------------

func doList(names []string, opt Options) int {
	tasks, err := tasklist.FromNames(names, tasklist.WithClock(opt.Now))
	if err != nil {
		ui.Fail(opt.Stderr, "ls: "+err.Error())
		return ExitUsage
	}
	if tasks.Len() == 0 {
		ui.Fail(opt.Stderr, "ls: all names are empty")
		return ExitUsage
	}
	ui.Panel(opt.Stdout, ui.Summary(tasks, opt.Now(), opt.Group))
	return finish(tasks, opt)
}

func doInteractive(ctx context.Context, names []string, opt Options) int {
	tasks, err := tasklist.FromNames(names, tasklist.WithClock(opt.Now))
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return ExitUsage
	}
	opt.Logger.Info("session started", zap.Int("items", tasks.Len()))

	if err := opt.Interactive(ctx, tasks); err != nil {
		opt.Logger.Error("interactive session failed", zap.Error(err))
		ui.Fail(opt.Stderr, err.Error())
		return ExitError
	}

	s := tasks.Stats()
	opt.Logger.Info("session ended", zap.Int("done", s.Done), zap.Int("pending", s.Pending))
	ui.Panel(opt.Stdout, ui.Summary(tasks, opt.Now(), opt.Group))
	return finish(tasks, opt)
}

func finish(tasks *tasklist.List, opt Options) int {
	if opt.ExportPath == "" {
		return ExitOK
	}
	if err := export.WriteFile(opt.ExportPath, tasks.Snapshots(), opt.Now()); err != nil {
		opt.Logger.Error("export failed", zap.String("path", opt.ExportPath), zap.Error(err))
		ui.Fail(opt.Stderr, "export: "+err.Error())
		return ExitError
	}
	opt.Logger.Info("exported", zap.String("path", opt.ExportPath), zap.Int("items", tasks.Len()))
	ui.OK(opt.Stdout, "exported to "+opt.ExportPath)
	return ExitOK
}
