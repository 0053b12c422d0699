package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantfold/gridsim/internal/backtest"
)

// ConsoleReporter renders the run-end summary block to stdout.
type ConsoleReporter struct{}

// NewConsoleReporter creates a console reporter.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// Report prints trading totals and, when computable, the risk/return
// statistics. With zero trading days it prints an explicit message instead.
func (r *ConsoleReporter) Report(results *backtest.Results) error {
	stats := results.Stats

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("GRID BACKTEST SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Bars processed", results.BarsProcessed},
		{"Total commission", fmt.Sprintf("$%.2f", stats.TotalCommission)},
		{"Total buy volume", fmt.Sprintf("%d shares", stats.BuyVolume)},
		{"Total sell volume", fmt.Sprintf("%d shares", stats.SellVolume)},
		{"Final portfolio value", fmt.Sprintf("$%.2f", stats.FinalValue)},
	})

	if stats.Computable {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"Annualized return", fmt.Sprintf("%.2f%%", stats.AnnualizedReturn*100)},
			{"Annualized volatility", fmt.Sprintf("%.2f%%", stats.AnnualizedVolatility*100)},
			{"Sharpe ratio", fmt.Sprintf("%.2f", stats.SharpeRatio)},
			{"Max drawdown", fmt.Sprintf("%.2f%%", stats.MaxDrawdown*100)},
			{"Information ratio", fmt.Sprintf("%.2f", stats.InformationRatio)},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 22, Align: text.AlignLeft},
		{Number: 2, WidthMin: 18, Align: text.AlignRight},
	})

	t.Render()

	if !stats.Computable {
		fmt.Println("zero trading days; cannot compute performance statistics")
	}
	return nil
}
