package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/quantfold/gridsim/cmd/grid-backtest/cli"
	"github.com/quantfold/gridsim/internal/backtest"
	"github.com/quantfold/gridsim/internal/monitoring"
	"github.com/quantfold/gridsim/pkg/config"
	"github.com/quantfold/gridsim/pkg/data"
	"github.com/quantfold/gridsim/pkg/reporting"
	"github.com/quantfold/gridsim/pkg/types"
)

const (
	AppName    = "Grid Backtest"
	AppVersion = "1.0.0"

	TimeFormat = "2006-01-02"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	flags := cli.ParseFlags()
	formatter := cli.NewOutputFormatter()

	if *flags.Version {
		formatter.ShowVersion(AppName, AppVersion)
		return
	}

	if err := flags.Validate(); err != nil {
		fmt.Printf("❌ Error: %v\n\n", err)
		formatter.ShowUsage(AppName)
		os.Exit(1)
	}

	if err := runGridBacktest(flags, formatter); err != nil {
		log.Fatalf("❌ Backtest failed: %v", err)
	}
}

func runGridBacktest(flags *cli.Flags, formatter *cli.OutputFormatter) error {
	formatter.ShowHeader(AppName, AppVersion, *flags.ConfigFile)

	configLoader := cli.NewConfigLoader()
	cfg, err := configLoader.LoadConfig(*flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configLoader.ApplyOverrides(cfg, flags); err != nil {
		return err
	}

	formatter.ShowConfigSummary(cfg)

	instruments, err := loadInstruments(cfg, formatter)
	if err != nil {
		return fmt.Errorf("failed to load market data: %w", err)
	}

	if *flags.MetricsAddr != "" {
		monitoring.Serve(*flags.MetricsAddr)
		fmt.Printf("📡 Serving metrics on %s/metrics\n", *flags.MetricsAddr)
	}

	sim := backtest.NewSimulator(backtest.Config{
		GridSpacing:     cfg.GridSpacing,
		MaxGridOrders:   cfg.MaxGridOrders,
		ATRPeriod:       cfg.ATRPeriod,
		StartingCash:    cfg.InitialCash,
		RiskFreeRate:    cfg.RiskFreeRate,
		BenchmarkReturn: cfg.BenchmarkReturn,
		EnableMetrics:   *flags.MetricsAddr != "",
	})

	results, err := sim.Run(instruments)
	if err != nil {
		return fmt.Errorf("backtest execution failed: %w", err)
	}

	if err := reporting.NewConsoleReporter().Report(results); err != nil {
		return err
	}

	if *flags.Report {
		outputDir := *flags.OutputDir
		csvPath := filepath.Join(outputDir, "equity_curve.csv")
		if err := reporting.NewCSVReporter(csvPath).Report(results); err != nil {
			log.Printf("⚠️ Equity-curve CSV generation failed: %v", err)
		}
		excelPath := filepath.Join(outputDir, "grid_backtest_report.xlsx")
		if err := reporting.NewExcelReporter(excelPath).Report(results); err != nil {
			log.Printf("⚠️ Excel report generation failed: %v", err)
		} else {
			formatter.ShowCompletion(outputDir)
		}
	}

	return nil
}

// loadInstruments reads, validates and date-filters the bar stream for each
// configured symbol. One CSV per symbol lives under the data root.
func loadInstruments(cfg *config.Config, formatter *cli.OutputFormatter) ([]types.Instrument, error) {
	provider := data.NewCSVProvider()
	filter := data.NewDefaultFilter()

	start, end, err := cfg.DateRange()
	if err != nil {
		return nil, err
	}

	instruments := make([]types.Instrument, 0, len(cfg.Symbols))
	for _, symbol := range cfg.Symbols {
		file := filepath.Join(cfg.DataRoot, symbol+".csv")

		bars, err := provider.LoadBars(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", symbol, err)
		}
		if err := provider.ValidateBars(bars); err != nil {
			return nil, fmt.Errorf("%s: %w", symbol, err)
		}

		bars = filter.FilterByDateRange(bars, start, end)
		if len(bars) == 0 {
			return nil, fmt.Errorf("%s: no bars in the configured date range", symbol)
		}

		formatter.ShowDataInfo(symbol, file, len(bars),
			bars[0].Timestamp.Format(TimeFormat),
			bars[len(bars)-1].Timestamp.Format(TimeFormat))

		instruments = append(instruments, types.Instrument{Symbol: symbol, Bars: bars})
	}

	return instruments, nil
}
