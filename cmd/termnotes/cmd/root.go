package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"termnotes/internal/adapters/clipboard"
	"termnotes/internal/adapters/editor"
	"termnotes/internal/adapters/tui"
	"termnotes/internal/application/commands"
	"termnotes/internal/config"
	"termnotes/internal/logging"
	"termnotes/internal/session"
)

var v = config.New()

var noCatalog bool

var rootCmd = &cobra.Command{
	Use:   "termnotes",
	Short: "Keyboard-driven notes and todos in the terminal",
	Long: `termnotes is a modal terminal manager for notes and todos.

Press : for commands (3nn creates three notes, save writes them, q quits),
? for help. Data lives in ~/.terminal_notes/data.json unless configured
otherwise through flags, TERMNOTES_* variables or config.yaml in the data
directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.String("data-dir", config.DefaultDataDir, "directory holding data.json, backups and the log")
	flags.String("export-dir", config.DefaultExportDir, "directory for export-md and export-csv output")
	flags.String("on-corrupt", string(config.CorruptAbort), "what to do with an unreadable data file: abort or empty")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&noCatalog, "no-catalog", false, "do not record backups in backups.db")

	for key, flag := range map[string]string{
		config.KeyDataDir:   "data-dir",
		config.KeyExportDir: "export-dir",
		config.KeyOnCorrupt: "on-corrupt",
		config.KeyLogLevel:  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	if noCatalog {
		v.Set(config.KeyCatalog, false)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Open(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	if cfg.File != "" {
		logger.Info("config loaded", "file", cfg.File)
	}

	res, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer res.Close()

	interp := commands.NewInterpreter(res.Store, clipboard.NewSystem(), logger)
	machine := session.NewMachine(res.Store, interp, session.WithLogger(logger))
	if res.Startup != nil {
		machine.SetStatus(*res.Startup)
	}

	app := tui.NewApp(cmd.Context(), machine, editor.NewOpener())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		logger.Error("terminal session failed", "error", err)
		return err
	}

	if res.Store.Dirty() {
		logger.Warn("exited with unsaved changes discarded")
	}
	logger.Info("session ended")
	return nil
}
