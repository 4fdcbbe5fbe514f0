package salesreport

// Analyze computes the per-seller performance report for one input snapshot.
// Rows come back ordered by profit descending; the result always has one row
// per input seller. Analyze never mutates data and keeps no state between
// calls.
//
// It fails with ErrInvalidInput, ErrMissingOptions, ErrMissingStrategy, or
// ErrInvalidStrategyType before any aggregation runs, and with
// ErrUnknownSeller or ErrUnknownProduct during the fold when the matching
// policy is PolicyFail. On error no partial result is returned.
func Analyze(data *Data, opts *Options) ([]ReportRow, error) {
	if err := validateData(data); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	idx := buildIndexes(data)
	if err := aggregate(idx, data.PurchaseRecords, opts); err != nil {
		return nil, err
	}
	return buildReport(idx.stats, opts), nil
}
