// Command modus is a modal text editor for the terminal.
//
//	modus [flags] <path>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/modus"
	"github.com/iw2rmb/modus/internal/config"
	"github.com/iw2rmb/modus/internal/fileio"
	"github.com/iw2rmb/modus/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configPath string
	ui         string
	logFile    string
	tabWidth   int
	noNumbers  bool
	version    bool
	path       string
}

var errUsage = errors.New("usage")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("modus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/modus/config.toml)")
	fs.StringVar(&o.ui, "ui", "", `front-end: "tea" or "tcell"`)
	fs.StringVar(&o.logFile, "log", "", "write logs to this file")
	fs.IntVar(&o.tabWidth, "tab-width", 0, "tab width in cells (1-16)")
	fs.BoolVar(&o.noNumbers, "no-numbers", false, "hide line numbers")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: modus [flags] <path>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, errUsage
	}
	if o.version {
		return o, nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, errUsage
	}
	o.path = fs.Arg(0)
	return o, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(o options) (config.Config, error) {
	path, explicit := o.configPath, o.configPath != ""
	if !explicit {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}
	if o.ui != "" {
		cfg.Frontend = o.ui
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.tabWidth != 0 {
		cfg.TabWidth = o.tabWidth
	}
	if o.noNumbers {
		cfg.LineNumbers = false
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}
	if o.version {
		fmt.Fprintln(stdout, modus.VersionLine())
		return exitOK
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintln(stderr, "modus:", err)
		return exitError
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "modus:", err)
		return exitError
	}
	defer closer.Close()

	doc, err := fileio.Load(o.path)
	if err != nil {
		logger.Error("load failed", "path", o.path, "err", err)
		fmt.Fprintln(stderr, "modus:", err)
		return exitError
	}
	logger.Info("loaded", "path", doc.Path, "bytes", len(doc.Text), "line_ending", doc.LineEnding)

	if !isTerminal() {
		fmt.Fprintln(stderr, "modus: stdin and stdout must be a terminal")
		return exitError
	}
	if !cfg.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runFrontend(ctx, cfg, doc, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("editor stopped", "err", err)
		fmt.Fprintln(stderr, "modus:", err)
		return exitError
	}
	return exitOK
}

func runFrontend(ctx context.Context, cfg config.Config, doc fileio.Document, logger *log.Logger) error {
	logger.Debug("starting front-end", "frontend", cfg.Frontend)
	switch cfg.Frontend {
	case config.FrontendTcell:
		return runTcell(ctx, cfg, doc, logger)
	default:
		return runTea(ctx, cfg, doc, logger)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
