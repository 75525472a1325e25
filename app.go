package main

import (
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termnav/internal/config"
	"termnav/internal/eventbus"
	"termnav/internal/input"
	"termnav/internal/input/modes"
	"termnav/internal/input/types"
	"termnav/internal/terminal"
	"termnav/internal/ui"
	"termnav/internal/ui/coordinator"
	"termnav/internal/ui/views"
)

// options holds the persistent command line flags
type options struct {
	configPath string
	keymap     string
	inputMode  string
	height     int
	pollMs     int
	logFile    string
	logLevel   string
}

// app is the wiring shared by every subcommand
type app struct {
	cfg      *config.Config
	baseDir  string
	log      *logrus.Logger
	closeLog func()
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, path, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"config": path,
		"keymap": cfg.Input.Keymap,
		"mode":   cfg.Input.Mode,
	}).Info("termnav starting")

	return &app{cfg: cfg, baseDir: filepath.Dir(path), log: log, closeLog: closeLog}, nil
}

// loadConfig reads an explicit --config file, which must exist, or the
// default file, which may be missing.
func loadConfig(opts *options) (*config.Config, string, error) {
	if opts.configPath != "" {
		svc := config.NewConfigServiceAt(opts.configPath)
		cfg, err := svc.LoadFromPath(svc.Path())
		return cfg, svc.Path(), err
	}
	svc := config.NewConfigService()
	cfg, err := svc.Load()
	return cfg, svc.Path(), err
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("keymap") {
		cfg.Input.Keymap = opts.keymap
	}
	if flags.Changed("input-mode") {
		cfg.Input.Mode = opts.inputMode
	}
	if flags.Changed("poll") {
		cfg.Input.PollIntervalMs = opts.pollMs
	}
	if flags.Changed("height") {
		cfg.UI.ViewportHeight = opts.height
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}

// setupLogging sends logs to the configured file. The terminal belongs to
// the UI, so an unusable log file discards logs instead of printing them.
func setupLogging(settings config.LogSettings) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log.level")
	}
	log.SetLevel(level)

	if settings.File == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}

// contentHeight is the number of content lines for a fixed viewport height,
// or what fits the terminal when none is set
func contentHeight(viewport, termHeight int) int {
	if viewport > 0 {
		return viewport
	}
	return views.ContentHeight(termHeight)
}

// session is one screen ready to run: the coordinator and its decoder
type session struct {
	*app
	title   string
	coord   *coordinator.Coordinator
	decoder *input.Decoder
	mode    types.Mode
}

// inputSettings resolves the key table and input mode for stdin
func (a *app) inputSettings() (*input.Table, types.Mode, error) {
	table, err := input.DetectTable(a.cfg.Input.Keymap, os.Stdin)
	if err != nil {
		return nil, types.ModeAuto, err
	}
	mode, err := types.ParseMode(a.cfg.Input.Mode)
	if err != nil {
		return nil, types.ModeAuto, err
	}
	return table, modes.Resolve(mode, os.Stdin), nil
}

func (a *app) openScreen(name string) (*session, error) {
	screen, err := a.cfg.Screen(name)
	if err != nil {
		return nil, err
	}

	table, mode, err := a.inputSettings()
	if err != nil {
		return nil, err
	}

	_, termHeight := terminal.Size(os.Stdout)

	bus := eventbus.New(a.log)
	coord, err := coordinator.NewCoordinator(screen.NavPages(), config.NewContent(screen, a.baseDir), contentHeight(a.cfg.UI.ViewportHeight, termHeight), bus)
	if err != nil {
		return nil, errors.Wrapf(err, "screen %s", name)
	}

	title := screen.Title
	if title == "" {
		title = a.cfg.UI.Title
	}

	a.log.WithFields(logrus.Fields{
		"screen": name,
		"table":  table.Name(),
		"mode":   mode.String(),
	}).Info("screen opened")

	return &session{app: a, title: title, coord: coord, decoder: input.NewDecoder(table), mode: mode}, nil
}

// runScreen drives a screen with the Runner loop. Raw mode is held for the
// whole loop and restored exactly once on every exit path.
func runScreen(cmd *cobra.Command, opts *options, name string) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.closeLog()

	s, err := a.openScreen(name)
	if err != nil {
		return err
	}
	defer s.coord.Close()

	src := modes.Open(s.mode, os.Stdin, s.decoder, a.cfg.PollInterval())
	runner := ui.NewRunner(src, s.coord, os.Stdout, a.log)
	runner.Title = s.title
	runner.FixedHeight = a.cfg.UI.ViewportHeight
	runner.Size = func() (int, int) { return terminal.Size(os.Stdout) }

	if s.mode == types.ModeCooked {
		return runner.Run(cmd.Context())
	}

	return terminal.WithRawMode(terminal.NewController(int(os.Stdin.Fd())), func(ts *terminal.Session) error {
		if terminal.IsTerminal(os.Stdout) {
			runner.Fullscreen = true
			runner.Pager = ui.NewPager(ts)
		}
		return runner.Run(cmd.Context())
	})
}

// runTea drives a screen with bubbletea, which manages the terminal itself
func runTea(cmd *cobra.Command, opts *options, name string) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.closeLog()

	s, err := a.openScreen(name)
	if err != nil {
		return err
	}
	defer s.coord.Close()

	ctx := cmd.Context()
	model := ui.NewModel(s.coord, s.title, a.cfg.UI.ViewportHeight, a.log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "run program")
	}
	return nil
}

// runKeys prints decoded events, which helps pick the right keymap
func runKeys(cmd *cobra.Command, opts *options) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.closeLog()

	table, mode, err := a.inputSettings()
	if err != nil {
		return err
	}

	header := table.Name() + " table, " + mode.String() + " mode\r\n"
	src := modes.Open(mode, os.Stdin, input.NewDecoder(table), a.cfg.PollInterval())

	if mode == types.ModeCooked {
		_, _ = os.Stdout.WriteString(header)
		return ui.RunKeys(cmd.Context(), src, os.Stdout, a.log)
	}
	return terminal.WithRawMode(terminal.NewController(int(os.Stdin.Fd())), func(*terminal.Session) error {
		_, _ = os.Stdout.WriteString(header)
		return ui.RunKeys(cmd.Context(), src, os.Stdout, a.log)
	})
}
