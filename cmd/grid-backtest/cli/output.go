package cli

import (
	"fmt"

	"github.com/quantfold/gridsim/pkg/config"
)

// OutputFormatter handles console output around the run itself.
type OutputFormatter struct{}

// NewOutputFormatter creates a new output formatter.
func NewOutputFormatter() *OutputFormatter {
	return &OutputFormatter{}
}

// ShowVersion displays version information.
func (of *OutputFormatter) ShowVersion(appName, appVersion string) {
	fmt.Printf("%s v%s\n", appName, appVersion)
}

// ShowUsage displays usage information.
func (of *OutputFormatter) ShowUsage(appName string) {
	fmt.Printf("Usage: %s -config <config-file> [options]\n\n", appName)
	fmt.Printf("Required:\n")
	fmt.Printf("  -config <file>     Path to configuration file\n\n")
	fmt.Printf("Options:\n")
	fmt.Printf("  -data-root <dir>   Override data root directory\n")
	fmt.Printf("  -symbol <list>     Override symbol list (comma-separated)\n")
	fmt.Printf("  -from <date>       Override start date (YYYY-MM-DD)\n")
	fmt.Printf("  -to <date>         Override end date (YYYY-MM-DD)\n")
	fmt.Printf("  -output <dir>      Output directory for reports (default: results)\n")
	fmt.Printf("  -report            Write equity-curve CSV and Excel report (default: true)\n")
	fmt.Printf("  -metrics-addr <a>  Serve Prometheus metrics during the run\n")
	fmt.Printf("  -verbose           Verbose output\n")
	fmt.Printf("  -version           Show version and exit\n")
}

// ShowHeader displays the application header.
func (of *OutputFormatter) ShowHeader(appName, appVersion, configFile string) {
	fmt.Printf("🚀 %s v%s\n", appName, appVersion)
	fmt.Printf("📋 Loading configuration: %s\n", configFile)
}

// ShowConfigSummary displays the run configuration.
func (of *OutputFormatter) ShowConfigSummary(cfg *config.Config) {
	fmt.Printf("\n📊 Grid Strategy Configuration:\n")
	fmt.Printf("   Symbols: %v\n", cfg.Symbols)
	fmt.Printf("   Grid: %d rungs per side, %.2f spacing\n", cfg.MaxGridOrders, cfg.GridSpacing)
	fmt.Printf("   ATR period: %d\n", cfg.ATRPeriod)
	fmt.Printf("   Initial cash: $%.2f\n", cfg.InitialCash)
	if cfg.StartDate != "" || cfg.EndDate != "" {
		fmt.Printf("   Date range: %s .. %s\n", orOpen(cfg.StartDate), orOpen(cfg.EndDate))
	}
	fmt.Printf("   Accounting: %.2f%% risk-free, %.2f%% benchmark\n",
		cfg.RiskFreeRate*100, cfg.BenchmarkReturn*100)
}

// ShowDataInfo displays what was loaded for one symbol.
func (of *OutputFormatter) ShowDataInfo(symbol, file string, bars int, first, last string) {
	fmt.Printf("📈 %s: %d bars from %s (%s to %s)\n", symbol, bars, file, first, last)
}

// ShowCompletion points at the generated reports.
func (of *OutputFormatter) ShowCompletion(outputDir string) {
	fmt.Printf("✅ Reports written to %s\n", outputDir)
}

func orOpen(date string) string {
	if date == "" {
		return "open"
	}
	return date
}
