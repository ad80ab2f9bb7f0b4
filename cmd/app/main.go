// Package main implements the simpletimer CLI: an interactive workout
// interval timer plus history and report subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tigrerol/SimpleTimerApp/internal/config"
	"github.com/tigrerol/SimpleTimerApp/internal/database"
	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/notify"
	"github.com/tigrerol/SimpleTimerApp/internal/report"
	"github.com/tigrerol/SimpleTimerApp/internal/timer"
	"github.com/tigrerol/SimpleTimerApp/internal/tui"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

var (
	dataDir string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simpletimer",
	Short: "Workout interval timer with set logging",
	RunE:  runTimer,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded workout sessions",
	RunE:  runHistory,
}

var reportCmd = &cobra.Command{
	Use:   "report [output.pdf]",
	Short: "Export workout history as a PDF report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data-dir", util.DataDir(config.AppName), "directory for the database, log, and config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
}

// setup prepares the data directory, logging, config, and database.
func setup(ctx context.Context) (*database.Database, config.File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, config.File{}, fmt.Errorf("create data dir: %w", err)
	}
	util.LogError("init logging", util.InitLogging(filepath.Join(dataDir, config.LogFileName)))
	if verbose {
		util.SetVerbose()
	}

	fileCfg, err := config.LoadFile(filepath.Join(dataDir, config.ConfigFileName))
	util.LogError("load config", err)

	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		return nil, fileCfg, err
	}
	return db, fileCfg, nil
}

func runTimer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, fileCfg, err := setup(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// Settings stored in the database win over the config file.
	theme := fileCfg.Theme
	if v, ok := db.GetSetting(ctx, config.SettingColorTheme); ok {
		theme = v
	}
	tui.SetTheme(theme)

	sound := models.ParseSound(fileCfg.Sound)
	if v, ok := db.GetSetting(ctx, config.SettingNotificationSound); ok {
		sound = models.ParseSound(v)
	}
	notifier := notify.NewTerminal(os.Stderr, sound)

	engine := timer.NewEngine(timer.Options{
		AutoAdvanceOnRestExpiry: fileCfg.AutoAdvanceOnRestExpiry,
		Notifier:                notifier,
		Store:                   db,
	})

	model := tui.NewMainModel(engine, db, notifier, fileCfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, _, err := setup(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.GetSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No workouts recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tEXERCISE\tSETS LOGGED\tDURATION")
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				s.Date.Format("2006-01-02 15:04"), ex.Name, len(ex.Sets), tui.FormatDuration(s.Duration))
		}
	}
	return w.Flush()
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, _, err := setup(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.GetSessions(ctx)
	if err != nil {
		return err
	}

	out := filepath.Join(util.ReportsDir(config.AppName), "workout-history.pdf")
	if len(args) == 1 {
		out = args[0]
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := report.GeneratePDF(sessions, out); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", out)
	return nil
}
