package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/patriknoomi/laddtider/app"
	"github.com/patriknoomi/laddtider/config"
	"github.com/patriknoomi/laddtider/core/schedule"
	"github.com/patriknoomi/laddtider/pkg/export"
)

var (
	cfgPath string
	dateArg string
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "laddtider",
	Short: "Plan home battery charge/discharge windows from day-ahead spot prices",
	RunE:  runPlan,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json); defaults apply when omitted")
	rootCmd.PersistentFlags().StringVarP(&dateArg, "date", "d", "", "day to plan, YYYY-MM-DD (default: tomorrow)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or csv")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	day, err := targetDay(cfg)
	if err != nil {
		return err
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	sched, err := svc.Run(ctx, day)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		for _, line := range schedule.Lines(sched) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), sched)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), sched)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// targetDay resolves the --date flag; without it the day-ahead market day
// (tomorrow) is planned.
func targetDay(cfg *config.Config) (time.Time, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return time.Time{}, err
	}
	if dateArg == "" {
		return time.Now().In(loc).AddDate(0, 0, 1), nil
	}
	day, err := time.ParseInLocation("2006-01-02", dateArg, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateArg, err)
	}
	return day, nil
}
