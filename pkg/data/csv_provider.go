package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/quantfold/gridsim/pkg/types"
)

// CSVProvider implements Provider for daily-bar CSV files.
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a CSV provider with the default column layout.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{format: DefaultCSVFormat}
}

// NewCSVProviderWithFormat creates a CSV provider with a custom column layout.
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{format: format}
}

// GetName returns the name of the data provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadBars loads historical bars from a CSV file. Rows with malformed or
// inconsistent values are skipped with a warning rather than failing the load.
func (p *CSVProvider) LoadBars(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var bars []types.OHLCV

	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %v", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("insufficient columns at line %d (expected %d, got %d), skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		timestamp, err := time.Parse(p.format.DateFormat, record[p.format.TimestampCol])
		if err != nil {
			log.Printf("invalid timestamp %q at line %d, skipping: %v", record[p.format.TimestampCol], lineNum, err)
			continue
		}

		open, err1 := strconv.ParseFloat(record[p.format.OpenCol], 64)
		high, err2 := strconv.ParseFloat(record[p.format.HighCol], 64)
		low, err3 := strconv.ParseFloat(record[p.format.LowCol], 64)
		closePx, err4 := strconv.ParseFloat(record[p.format.CloseCol], 64)
		volume, err5 := strconv.ParseFloat(record[p.format.VolumeCol], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			log.Printf("unparseable numeric field at line %d, skipping", lineNum)
			continue
		}

		if open <= 0 || high <= 0 || low <= 0 || closePx <= 0 {
			log.Printf("non-positive price at line %d, skipping", lineNum)
			continue
		}
		if high < open || high < closePx || high < low {
			log.Printf("high below other prices at line %d, skipping", lineNum)
			continue
		}
		if low > open || low > closePx {
			log.Printf("low above other prices at line %d, skipping", lineNum)
			continue
		}

		bars = append(bars, types.OHLCV{
			Timestamp: timestamp,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePx,
			Volume:    volume,
		})
	}

	return bars, nil
}

// ValidateBars validates the integrity of a loaded bar stream.
func (p *CSVProvider) ValidateBars(bars []types.OHLCV) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars provided")
	}

	for i, bar := range bars {
		if bar.Open <= 0 || bar.High <= 0 || bar.Low <= 0 || bar.Close <= 0 {
			return fmt.Errorf("invalid price data at index %d: prices must be positive", i)
		}
		if bar.High < bar.Low {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) cannot be less than low (%.4f)",
				i, bar.High, bar.Low)
		}
		if i > 0 && bar.Timestamp.Before(bars[i-1].Timestamp) {
			return fmt.Errorf("invalid timestamp sequence at index %d: bars must be in chronological order", i)
		}
	}

	return nil
}
