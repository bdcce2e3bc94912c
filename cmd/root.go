package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chris-regnier/notectl/internal/config"
	"github.com/chris-regnier/notectl/internal/editor"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	databaseURL    string
	debugLogging   bool
	appConfig      *config.Config
	store          storage.Storage
	storeLocation  string
	logger         = slog.New(slog.DiscardHandler)
	logCloser      io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "notectl",
	Short: "A terminal note manager",
	Long: `notectl keeps titled, tagged notes in a database and lets you browse,
filter, sort and search them in a list-and-preview TUI. Notes are edited in
your $EDITOR.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Flags override config
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}
		if databaseURL != "" {
			appConfig.DatabaseURL = databaseURL
		}

		logger, logCloser, err = setupLogger(appConfig, debugLogging)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}

		store, storeLocation, err = openStorage(appConfig, logger)
		if err != nil {
			return err
		}
		logger.Debug("storage opened", "backend", appConfig.Storage, "location", storeLocation)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the plain list
			return listRun(cmd.OutOrStdout(), listOptions{})
		}
		return ui.RunTUI(store, ui.TUIConfig{
			Editor:   editor.ResolveEditor(appConfig.Editor),
			MaxWidth: appConfig.MaxWidth,
			Location: storeLocation,
			Theme:    ui.ResolveTheme(appConfig.Theme),
		}, logger)
	},
}

// Execute runs the root command and releases the store and log file it
// opened, whether or not the command succeeded.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, closeResources())
}

func closeResources() error {
	var errs []error
	if store != nil {
		errs = append(errs, store.Close())
		store = nil
	}
	if logCloser != nil {
		errs = append(errs, logCloser.Close())
		logCloser = nil
	}
	logger = slog.New(slog.DiscardHandler)
	return errors.Join(errs...)
}

// ExitCode maps an error to the process exit status: 1 for user errors
// (missing note, duplicate title, bad input), 2 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrConflict),
		errors.Is(err, storage.ErrValidation):
		return 1
	default:
		return 2
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (libsql|sqlite|markdown)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (default $DATABASE_URL or a file in the data directory)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "write debug-level logs")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
