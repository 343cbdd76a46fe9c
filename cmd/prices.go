package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/patriknoomi/laddtider/config"
	"github.com/patriknoomi/laddtider/core/pricing"
	"github.com/patriknoomi/laddtider/infra/spot"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Fetch and print the normalized hourly cost table for a day",
	RunE:  runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
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

	records, err := spot.NewClient(cfg.Spot).FetchDay(ctx, day)
	if err != nil {
		return fmt.Errorf("acquire prices: %w", err)
	}
	prices, err := pricing.Normalize(records, cfg.Pricing)
	if err != nil {
		return err
	}
	for _, p := range prices {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %7.2f öre/kWh\n", p.Hour.Format("2006-01-02 15:04"), p.Cost)
	}
	return nil
}
