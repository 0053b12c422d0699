package backtest

import (
	"fmt"
	"log"
	"time"

	"github.com/quantfold/gridsim/internal/analytics"
	"github.com/quantfold/gridsim/internal/broker"
	"github.com/quantfold/gridsim/internal/grid"
	"github.com/quantfold/gridsim/internal/indicators"
	"github.com/quantfold/gridsim/internal/ledger"
	"github.com/quantfold/gridsim/internal/monitoring"
	"github.com/quantfold/gridsim/internal/strategy"
	"github.com/quantfold/gridsim/pkg/types"
)

// Config holds the strategy and accounting parameters for one run.
type Config struct {
	GridSpacing     float64 // price distance between adjacent rungs
	MaxGridOrders   int     // rungs per side
	ATRPeriod       int     // volatility gauge lookback
	StartingCash    float64
	RiskFreeRate    float64 // annual, for Sharpe
	BenchmarkReturn float64 // annual, for information ratio
	EnableMetrics   bool    // push Prometheus metrics during the run
}

// Results is everything a run produces: summary statistics, the equity
// curve and the full order history.
type Results struct {
	Stats         analytics.Stats
	Snapshots     []analytics.Snapshot
	Orders        []*ledger.Record
	BarsProcessed int
}

// Simulator drives the bar loop: broker fills first, then gauge updates,
// then grid decisions, then the portfolio snapshot. Execution is
// single-threaded and synchronous; all shared state is owned by the
// simulator for the run's lifetime.
type Simulator struct {
	cfg Config

	broker   *broker.Broker
	ledger   *ledger.Ledger
	engine   *strategy.DecisionEngine
	analyzer *analytics.Analyzer

	states map[string]*strategy.InstrumentState

	currentDate time.Time
}

// NewSimulator wires a fresh broker, ledger, decision engine and analyzer
// for one run.
func NewSimulator(cfg Config) *Simulator {
	sim := &Simulator{
		cfg:      cfg,
		broker:   broker.New(cfg.StartingCash, broker.NewFixedCommission()),
		ledger:   ledger.New(),
		engine:   strategy.NewDecisionEngine(strategy.NewSizer(cfg.MaxGridOrders)),
		analyzer: analytics.New(cfg.StartingCash, cfg.RiskFreeRate, cfg.BenchmarkReturn),
		states:   make(map[string]*strategy.InstrumentState),
	}

	sim.ledger.Logf = sim.logf
	sim.engine.Logf = sim.logf
	sim.broker.SetNotificationHandler(sim.onNotification)

	return sim
}

// Run executes the full backtest over the given instruments. No error
// inside the bar loop is fatal; the run always completes and reports.
func (s *Simulator) Run(instruments []types.Instrument) (*Results, error) {
	if len(instruments) == 0 {
		return nil, fmt.Errorf("no instruments provided")
	}

	bars := len(instruments[0].Bars)
	for _, inst := range instruments {
		if len(inst.Bars) == 0 {
			return nil, fmt.Errorf("instrument %s has no bars", inst.Symbol)
		}
		if len(inst.Bars) < bars {
			bars = len(inst.Bars)
		}
	}
	for _, inst := range instruments {
		if len(inst.Bars) > bars {
			log.Printf("warning: %s has %d bars, truncating to the common %d", inst.Symbol, len(inst.Bars), bars)
		}
	}

	s.initialize(instruments)

	for t := 0; t < bars; t++ {
		s.currentDate = instruments[0].Bars[t].Timestamp

		// Resting limit orders see the new bar before any new decisions.
		for _, inst := range instruments {
			s.broker.ProcessBar(inst.Symbol, inst.Bars[t])
		}

		for _, inst := range instruments {
			bar := inst.Bars[t]
			state := s.states[inst.Symbol]

			// The gauge is advanced every bar but the ladder stays fixed;
			// see the design notes on the fixed-grid behavior.
			atr := state.Gauge.Update(bar)
			if s.cfg.EnableMetrics {
				monitoring.RecordVolatility(inst.Symbol, atr)
			}

			for _, intent := range s.engine.Scan(state, bar.Close, s.broker) {
				id := s.broker.SubmitLimit(intent)
				s.ledger.Submit(id, intent)
				if s.cfg.EnableMetrics {
					monitoring.RecordOrder(intent.Symbol, intent.Side.String())
				}
			}
		}

		s.analyzer.Observe(t, s.currentDate, s.broker.Cash(), s.broker.Value())
		if s.cfg.EnableMetrics {
			monitoring.RecordPortfolioValue(s.broker.Value())
		}
	}

	stats := s.analyzer.Compute()
	stats.TotalCommission = s.ledger.TotalCommission()
	stats.BuyVolume = s.ledger.BuyVolume()
	stats.SellVolume = s.ledger.SellVolume()

	return &Results{
		Stats:         stats,
		Snapshots:     s.analyzer.Snapshots(),
		Orders:        s.ledger.Records(),
		BarsProcessed: bars,
	}, nil
}

// initialize builds the per-instrument state records exactly once, from
// each instrument's price at strategy start.
func (s *Simulator) initialize(instruments []types.Instrument) {
	table := grid.NewTable()
	for _, inst := range instruments {
		s.currentDate = inst.Bars[0].Timestamp
		entry := inst.Bars[0].Close

		levels := table.Install(inst.Symbol, entry, s.cfg.GridSpacing, s.cfg.MaxGridOrders)
		s.states[inst.Symbol] = &strategy.InstrumentState{
			Symbol: inst.Symbol,
			Levels: levels,
			Gauge:  indicators.NewATR(s.cfg.ATRPeriod),
		}

		s.logf("initial grid levels (%s): %s", inst.Symbol, grid.Describe(levels))
	}
}

// onNotification routes broker outcomes into the ledger. Ledger errors are
// logged, never fatal.
func (s *Simulator) onNotification(n ledger.Notification) {
	if err := s.ledger.Apply(n); err != nil {
		log.Printf("ledger: %v", err)
		return
	}
	if s.cfg.EnableMetrics {
		monitoring.RecordOutcome(n.Status.String(), n.Commission)
	}
}

// logf writes one strategy log line prefixed with the current bar date.
func (s *Simulator) logf(format string, args ...interface{}) {
	prefix := s.currentDate.Format("2006-01-02")
	log.Printf("%s: "+format, append([]interface{}{prefix}, args...)...)
}
