package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/swaslabs/ledgen/pkg/catalog"
	"github.com/swaslabs/ledgen/pkg/config"
	"github.com/swaslabs/ledgen/pkg/generator"
	"github.com/swaslabs/ledgen/pkg/models"
	"github.com/swaslabs/ledgen/pkg/revenue"
	"github.com/swaslabs/ledgen/pkg/validate"
)

var (
	cfgFile string

	cleanTransactions string
	cleanPayments     string
	cleanOut          string

	dailyCSV string
	dailyOut string
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledgen",
	})
}

var rootCmd = &cobra.Command{
	Use:   "ledgen",
	Short: "Back-office fixture and revenue tools for the branch network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a self-consistent set of synthetic ledger fixtures",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		cat := catalog.Default()
		if cfg.Catalog != "" {
			if cat, err = catalog.Load(cfg.Catalog); err != nil {
				return err
			}
		}

		gen, err := generator.New(cfg, cat, logger)
		if err != nil {
			return err
		}

		gen.Generate()
		if err := gen.Dataset().Write(cfg.OutDir); err != nil {
			return err
		}

		logger.Info("fixtures written", "dir", cfg.OutDir)
		return nil
	},
}

var cleanRevenueCmd = &cobra.Command{
	Use:   "clean-revenue",
	Short: "Build a cleaned revenue CSV from transaction and payment JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return revenue.Clean(cleanTransactions, cleanPayments, cleanOut, newLogger())
	},
}

var dailyRevenueCmd = &cobra.Command{
	Use:   "daily-revenue",
	Short: "Reshape a daily revenue CSV into a branch-keyed JSON summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return revenue.DailyToJSON(dailyCSV, dailyOut, newLogger())
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <output_dir>",
	Short: "Check a generated fixture set for cross-collection consistency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := models.Load(args[0])
		if err != nil {
			return err
		}

		report := validate.Check(ds)
		fmt.Print(report.Render())
		if !report.OK() {
			return fmt.Errorf("%d consistency violations", len(report.Violations))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ledgen.yaml)")

	generateCmd.Flags().Int("count", 1000, "Number of transaction attempts")
	generateCmd.Flags().String("out-dir", "./output", "Directory for the generated JSON files")
	generateCmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	generateCmd.Flags().String("end-date", "2025-09-23", "End date (YYYY-MM-DD); the window starts 90 days earlier")
	generateCmd.Flags().String("catalog", "", "Branch/service catalog YAML (built-in defaults when empty)")

	cleanRevenueCmd.Flags().StringVar(&cleanTransactions, "transactions", "", "Transactions JSON file")
	cleanRevenueCmd.Flags().StringVar(&cleanPayments, "payments", "", "Payments JSON file")
	cleanRevenueCmd.Flags().StringVar(&cleanOut, "out", "cleaned_transactions_revenue.csv", "Output CSV path")
	cleanRevenueCmd.MarkFlagRequired("transactions")
	cleanRevenueCmd.MarkFlagRequired("payments")

	dailyRevenueCmd.Flags().StringVar(&dailyCSV, "csv", "", "Daily revenue CSV file")
	dailyRevenueCmd.Flags().StringVar(&dailyOut, "out", "", "Output JSON path")
	dailyRevenueCmd.MarkFlagRequired("csv")
	dailyRevenueCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(cleanRevenueCmd)
	rootCmd.AddCommand(dailyRevenueCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
