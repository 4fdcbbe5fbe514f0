package salesreport

import "fmt"

// validateData checks the top-level input shape before any aggregation runs.
// Purchase records may be empty: the fold is well-defined and every seller
// reports zeros.
func validateData(data *Data) error {
	if data == nil {
		return fmt.Errorf("%w: data must be provided", ErrInvalidInput)
	}
	if len(data.Sellers) == 0 {
		return fmt.Errorf("%w: sellers must be a non-empty list", ErrInvalidInput)
	}
	return nil
}
