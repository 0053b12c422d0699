package reporting

import "github.com/quantfold/gridsim/internal/backtest"

// Reporter renders backtest results to some destination.
type Reporter interface {
	Report(results *backtest.Results) error
}
