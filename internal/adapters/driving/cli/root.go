package cli

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fincal-labs/fincal-cli/internal/adapters/driven/config/file"
	"github.com/fincal-labs/fincal-cli/internal/adapters/driving/tui"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driven"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driving"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// Injected service implementations for CLI commands.
	calendarService driving.CalendarService
	clipboardWriter driven.Clipboard
	settings        file.Settings
)

// Services holds injected implementations for CLI commands.
type Services struct {
	Calendar  driving.CalendarService
	Clipboard driven.Clipboard
	Settings  file.Settings
}

// SetServices injects service implementations for CLI commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	calendarService = s.Calendar
	clipboardWriter = s.Clipboard
	settings = s.Settings
}

// rootCmd is the base command; running it opens the calendar.
var rootCmd = &cobra.Command{
	Use:   "fincal",
	Short: "Terminal calendar for scheduled financial events",
	Long: `Fincal shows the financial events scheduled for a chosen date, collected
from several source platforms, with platform and novelty filters and a
JSON clipboard export.`,
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func runTUI(_ *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}
	if clipboardWriter == nil {
		return errors.New("clipboard not configured")
	}

	model := tui.NewModel(
		calendarService,
		clipboardWriter,
		nil,
		time.Duration(settings.ExportRevertMS)*time.Millisecond,
	)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fincal version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")

	// Set verbose mode before any command executes.
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}
