package salesreport

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input data")
	ErrMissingOptions      = errors.New("missing options")
	ErrMissingStrategy     = errors.New("missing required strategy")
	ErrInvalidStrategyType = errors.New("strategy is not invocable")
	ErrUnknownSeller       = errors.New("purchase record references unknown seller")
	ErrUnknownProduct      = errors.New("line item references unknown product")
)
