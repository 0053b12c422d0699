package data

import (
	"time"

	"github.com/quantfold/gridsim/pkg/types"
)

// Provider loads historical bars for one instrument from some source.
type Provider interface {
	// LoadBars loads the chronological bar stream from the given source.
	LoadBars(source string) ([]types.OHLCV, error)

	// ValidateBars checks the integrity of a loaded bar stream.
	ValidateBars(bars []types.OHLCV) error

	// GetName returns the name of the provider.
	GetName() string
}

// Filter narrows a bar stream before it reaches the simulator.
type Filter interface {
	// FilterByDateRange keeps bars with start <= timestamp <= end.
	FilterByDateRange(bars []types.OHLCV, start, end time.Time) []types.OHLCV

	// ValidateTimeSequence ensures bars are in chronological order.
	ValidateTimeSequence(bars []types.OHLCV) error
}

// CSVColumnMapping defines the column positions for a CSV bar file.
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// DefaultCSVFormat matches the layout written by most candle exporters:
// timestamp,open,high,low,close,volume with a header row.
var DefaultCSVFormat = CSVColumnMapping{
	TimestampCol: 0,
	OpenCol:      1,
	HighCol:      2,
	LowCol:       3,
	CloseCol:     4,
	VolumeCol:    5,
	MinColumns:   6,
	DateFormat:   "2006-01-02",
}
