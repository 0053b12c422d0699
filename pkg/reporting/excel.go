package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/quantfold/gridsim/internal/backtest"
)

// ExcelReporter writes the full run report as an Excel workbook with
// Summary, Equity Curve and Orders sheets.
type ExcelReporter struct {
	path string
}

// NewExcelReporter creates a reporter writing to the given path.
func NewExcelReporter(path string) *ExcelReporter {
	return &ExcelReporter{path: path}
}

// Report writes the workbook.
func (r *ExcelReporter) Report(results *backtest.Results) error {
	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const equitySheet = "Equity Curve"
	const ordersSheet = "Orders"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(equitySheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(ordersSheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummary(fx, summarySheet, headerStyle, results); err != nil {
		return err
	}
	if err := r.writeEquityCurve(fx, equitySheet, headerStyle, results); err != nil {
		return err
	}
	if err := r.writeOrders(fx, ordersSheet, headerStyle, results); err != nil {
		return err
	}

	return fx.SaveAs(r.path)
}

func (r *ExcelReporter) writeSummary(fx *excelize.File, sheet string, headerStyle int, results *backtest.Results) error {
	stats := results.Stats

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Bars processed", results.BarsProcessed},
		{"Trading days", stats.TradingDays},
		{"Starting value", stats.StartValue},
		{"Final value", stats.FinalValue},
		{"Total commission", stats.TotalCommission},
		{"Total buy volume", stats.BuyVolume},
		{"Total sell volume", stats.SellVolume},
	}
	if stats.Computable {
		rows = append(rows,
			[]interface{}{"Annualized return", stats.AnnualizedReturn},
			[]interface{}{"Annualized volatility", stats.AnnualizedVolatility},
			[]interface{}{"Sharpe ratio", stats.SharpeRatio},
			[]interface{}{"Max drawdown", stats.MaxDrawdown},
			[]interface{}{"Information ratio", stats.InformationRatio},
		)
	} else {
		rows = append(rows, []interface{}{"Statistics", "cannot compute (zero trading days)"})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return fx.SetCellStyle(sheet, "A1", "B1", headerStyle)
}

func (r *ExcelReporter) writeEquityCurve(fx *excelize.File, sheet string, headerStyle int, results *backtest.Results) error {
	header := []interface{}{"Bar", "Date", "Cash", "Value"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, snap := range results.Snapshots {
		row := []interface{}{snap.Bar, snap.Timestamp.Format("2006-01-02"), snap.Cash, snap.Value}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return fx.SetCellStyle(sheet, "A1", "D1", headerStyle)
}

func (r *ExcelReporter) writeOrders(fx *excelize.File, sheet string, headerStyle int, results *backtest.Results) error {
	header := []interface{}{"Order ID", "Symbol", "Side", "Limit", "Quantity", "Status", "Exec Price", "Exec Qty", "Commission"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range results.Orders {
		row := []interface{}{
			rec.ID,
			rec.Intent.Symbol,
			rec.Intent.Side.String(),
			rec.Intent.Limit,
			rec.Intent.Quantity,
			rec.Status.String(),
			rec.ExecPrice,
			rec.ExecQty,
			rec.Commission,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return fx.SetCellStyle(sheet, "A1", "I1", headerStyle)
}
