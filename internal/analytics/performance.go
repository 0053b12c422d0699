package analytics

import (
	"math"
	"time"
)

// PeriodsPerYear is the annualization base for daily bars.
const PeriodsPerYear = 252

// Snapshot is one end-of-bar observation of the portfolio. The sequence is
// append-only; one snapshot is taken per processed bar.
type Snapshot struct {
	Bar       int
	Timestamp time.Time
	Cash      float64
	Value     float64
}

// Stats is the end-of-run summary. When Computable is false (no completed
// trading days) every ratio field is zero and must not be reported.
type Stats struct {
	Computable  bool
	TradingDays int

	StartValue float64
	FinalValue float64

	AnnualizedReturn     float64
	AnnualizedVolatility float64
	SharpeRatio          float64
	MaxDrawdown          float64
	InformationRatio     float64

	// Filled in by the simulator from the ledger.
	TotalCommission float64
	BuyVolume       int
	SellVolume      int
}

// Analyzer maintains the portfolio value series and derives the summary
// statistics at run end.
type Analyzer struct {
	startValue      float64
	riskFreeRate    float64
	benchmarkReturn float64

	snapshots   []Snapshot
	returns     []float64
	highWater   float64
	maxDrawdown float64
}

// New creates an analyzer. startValue is the portfolio value before the
// first bar; riskFreeRate and benchmarkReturn are annual rates.
func New(startValue, riskFreeRate, benchmarkReturn float64) *Analyzer {
	return &Analyzer{
		startValue:      startValue,
		riskFreeRate:    riskFreeRate,
		benchmarkReturn: benchmarkReturn,
		highWater:       startValue,
	}
}

// Observe appends the end-of-bar snapshot, extends the daily-return series
// once two snapshots exist, and advances the running high-water mark.
func (a *Analyzer) Observe(bar int, ts time.Time, cash, value float64) {
	if n := len(a.snapshots); n > 0 {
		prev := a.snapshots[n-1].Value
		if prev != 0 {
			a.returns = append(a.returns, (value-prev)/prev)
		} else {
			a.returns = append(a.returns, 0)
		}
	}
	a.snapshots = append(a.snapshots, Snapshot{Bar: bar, Timestamp: ts, Cash: cash, Value: value})

	if value > a.highWater {
		a.highWater = value
	}
	if a.highWater > 0 {
		if dd := value/a.highWater - 1; dd < a.maxDrawdown {
			a.maxDrawdown = dd
		}
	}
}

// Snapshots returns the append-only snapshot sequence.
func (a *Analyzer) Snapshots() []Snapshot { return a.snapshots }

// DailyReturns returns the simple-return series (len(snapshots) - 1 long).
func (a *Analyzer) DailyReturns() []float64 { return a.returns }

// HighWaterMark returns the running portfolio value peak.
func (a *Analyzer) HighWaterMark() float64 { return a.highWater }

// Compute derives the summary statistics. With zero trading days the result
// is explicitly marked non-computable instead of dividing by zero.
func (a *Analyzer) Compute() Stats {
	stats := Stats{
		StartValue:  a.startValue,
		TradingDays: len(a.returns),
	}
	if n := len(a.snapshots); n > 0 {
		stats.FinalValue = a.snapshots[n-1].Value
	} else {
		stats.FinalValue = a.startValue
	}

	if len(a.returns) == 0 {
		return stats
	}

	t := float64(len(a.returns))
	stats.Computable = true
	stats.AnnualizedReturn = math.Pow(stats.FinalValue/a.startValue, PeriodsPerYear/t) - 1
	stats.AnnualizedVolatility = stdevP(a.returns) * math.Sqrt(PeriodsPerYear)
	stats.MaxDrawdown = a.maxDrawdown

	if stats.AnnualizedVolatility > 0 {
		stats.SharpeRatio = (stats.AnnualizedReturn - a.riskFreeRate) / stats.AnnualizedVolatility
		stats.InformationRatio = (stats.AnnualizedReturn - a.benchmarkReturn) / stats.AnnualizedVolatility
	}

	return stats
}

// stdevP is the population standard deviation.
func stdevP(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}
