package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/idilsaglam/taskquare/internal/cli"
	"github.com/idilsaglam/taskquare/internal/config"
	"github.com/idilsaglam/taskquare/internal/logging"
	"github.com/idilsaglam/taskquare/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", config.DefaultPath(), "config file")
	group := flag.Bool("group", false, "group output by pending/done")
	theme := flag.String("theme", "", "color theme: classic, neon, mono")
	exportPath := flag.String("export", "", "write the session as JSON when it ends")
	logFile := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitError)
	}

	// Flags win over config and env.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "group":
			cfg.Group = *group
		case "theme":
			cfg.Theme = *theme
		case "export":
			cfg.ExportPath = *exportPath
		case "log":
			cfg.LogFile = *logFile
		case "debug":
			if *debug {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitUsage)
	}
	ui.SetTheme(cfg.Theme)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, flag.Args(), cli.Options{
		Group:      cfg.Group,
		ExportPath: cfg.ExportPath,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     logger,
	})
	stop()
	_ = logger.Sync()
	if code != cli.ExitOK {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
