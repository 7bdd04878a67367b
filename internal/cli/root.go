// Package cli wires the command line, configuration and logging around the
// Emoji Menu UI.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"emojimenu/internal/clipboard"
	"emojimenu/internal/config"
	"emojimenu/internal/dataset"
	"emojimenu/internal/feedback"
	"emojimenu/internal/ui"
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what every command needs after flags are parsed
type app struct {
	v       *viper.Viper
	svc     config.ConfigService
	cfg     *config.Config
	logFile io.Closer
}

// NewRootCmd builds the command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "emojimenu",
		Short:         "Search emojis by name or category and copy them to the clipboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.closeLog()
			return a.runTUI()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(ConfigFlag, "c", config.DefaultPath(), "Path to the config file")
	flags.String(DatasetFlag, "", "Emoji-data JSON file to use instead of the bundled dataset")
	flags.String(LogFileFlag, "", "Log file path (- discards, default emojimenu.log in the config dir)")
	flags.String(LogLevelFlag, "info", "Log level (trace, debug, info, warn, error)")
	for _, name := range []string{ConfigFlag, DatasetFlag, LogFileFlag, LogLevelFlag} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	local := rootCmd.Flags()
	local.String(GestureFlag, "", "Key that opens the emoji menu (default ctrl+e)")
	local.Int(DebounceFlag, 0, "Milliseconds to wait after typing before searching (default 300)")
	local.String(ClipboardFlag, "", "Clipboard backend: auto, system or osc52")
	local.StringSlice(AnnounceFlag, nil, "Speech command for announcements, e.g. spd-say")
	local.Bool(OpenFlag, true, "Open the emoji menu on start")
	local.Bool(OnceFlag, false, "Exit when the emoji menu closes")
	for _, name := range []string{GestureFlag, DebounceFlag, ClipboardFlag, AnnounceFlag, OpenFlag, OnceFlag} {
		_ = a.v.BindPFlag(name, local.Lookup(name))
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newSearchCmd(a), newCategoriesCmd(a))
	return rootCmd
}

// setup starts logging and loads the config file, then applies flag and
// environment overrides
func (a *app) setup() error {
	logFile, err := initLog(a.v.GetString(LogLevelFlag), a.v.GetString(LogFileFlag))
	if err != nil {
		return err
	}
	a.logFile = logFile

	a.svc = config.NewConfigService(a.v.GetString(ConfigFlag))
	cfg, err := a.svc.Load()
	if err != nil {
		a.closeLog()
		return errors.Wrap(err, "failed to load config")
	}
	a.cfg = cfg
	applyOverrides(a.cfg, a.v)
	log.Debugf("Using config %s", a.svc.Path())
	return nil
}

// closeLog closes the log file. Commands defer it so it also runs when they
// fail.
func (a *app) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// applyOverrides copies explicitly set flags and EMOJIMENU_* variables over
// the file settings
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if v.IsSet(DatasetFlag) && v.GetString(DatasetFlag) != "" {
		cfg.Dataset = v.GetString(DatasetFlag)
	}
	if v.IsSet(GestureFlag) && v.GetString(GestureFlag) != "" {
		cfg.Gesture = v.GetString(GestureFlag)
	}
	if v.IsSet(DebounceFlag) && v.GetInt(DebounceFlag) > 0 {
		cfg.DebounceMS = v.GetInt(DebounceFlag)
	}
	if v.IsSet(ClipboardFlag) {
		switch c := v.GetString(ClipboardFlag); c {
		case config.ClipboardAuto, config.ClipboardSystem, config.ClipboardOSC52:
			cfg.Clipboard = c
		default:
			log.Warnf("Unknown clipboard backend %q, keeping %s", c, cfg.Clipboard)
		}
	}
	if v.IsSet(AnnounceFlag) {
		if argv := v.GetStringSlice(AnnounceFlag); len(argv) > 0 {
			cfg.Announce.Command = argv
		}
	}
	if v.IsSet(OpenFlag) {
		cfg.UISettings.OpenOnStart = v.GetBool(OpenFlag)
	}
	if v.IsSet(OnceFlag) {
		cfg.UISettings.ExitOnClose = v.GetBool(OnceFlag)
	}
}

// source returns the dataset source selected by the config
func (a *app) source() *dataset.Source {
	if a.cfg.Dataset != "" {
		return dataset.NewSource(dataset.FileLoader(a.cfg.Dataset))
	}
	return dataset.NewSource(dataset.LoadBundled)
}

func (a *app) runTUI() error {
	announcers := feedback.Multi{feedback.Logger{}}
	if speech := feedback.NewCommand(a.cfg.Announce.Command); speech != nil {
		defer speech.Close()
		announcers = append(announcers, speech)
	}

	model := ui.NewModel(ui.Deps{
		Config:    a.cfg,
		Store:     config.NewFileStore(a.svc, a.cfg),
		Source:    a.source(),
		Clipboard: clipboard.New(a.cfg.Clipboard, os.Stderr),
		Announcer: announcers,
		Beeper:    feedback.NewBell(os.Stderr),
	})

	log.Printf("Starting Emoji Menu (gesture %s, debounce %s)", a.cfg.Gesture,
		time.Duration(a.cfg.DebounceMS)*time.Millisecond)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "error running program")
	}
	return nil
}
