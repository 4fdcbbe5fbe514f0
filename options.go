package salesreport

import "fmt"

// MissingPolicy controls how the aggregator treats purchase records and line
// items that reference unknown sellers or products.
type MissingPolicy string

const (
	// PolicySkip silently drops the offending record or line item and keeps
	// processing. This is the default.
	PolicySkip MissingPolicy = "skip"
	// PolicyFail aborts the analysis on the first unresolved reference with
	// ErrUnknownSeller or ErrUnknownProduct.
	PolicyFail MissingPolicy = "fail"
)

// Options carries the caller-supplied strategies and policies for one call to
// Analyze. Revenue and Bonus are required; the policies default to PolicySkip.
type Options struct {
	Revenue RevenueStrategy
	Bonus   BonusStrategy

	// UnknownSellers applies when a purchase record's seller_id resolves to
	// no seller. Under PolicySkip the whole record is dropped, including its
	// sales count.
	UnknownSellers MissingPolicy

	// UnknownProducts applies when a line item's sku resolves to no product.
	// Under PolicySkip only the item is dropped; the record still counts as
	// one sale for its seller.
	UnknownProducts MissingPolicy
}

func (o *Options) validate() error {
	if o == nil {
		return fmt.Errorf("%w: options must be provided", ErrMissingOptions)
	}
	if o.Revenue == nil {
		return fmt.Errorf("%w: revenue calculation", ErrMissingStrategy)
	}
	if f, ok := o.Revenue.(RevenueFunc); ok && f == nil {
		return fmt.Errorf("%w: revenue calculation is a nil function", ErrInvalidStrategyType)
	}
	if o.Bonus == nil {
		return fmt.Errorf("%w: bonus calculation", ErrMissingStrategy)
	}
	if f, ok := o.Bonus.(BonusFunc); ok && f == nil {
		return fmt.Errorf("%w: bonus calculation is a nil function", ErrInvalidStrategyType)
	}
	return nil
}

func (o *Options) unknownSellers() MissingPolicy {
	if o.UnknownSellers == "" {
		return PolicySkip
	}
	return o.UnknownSellers
}

func (o *Options) unknownProducts() MissingPolicy {
	if o.UnknownProducts == "" {
		return PolicySkip
	}
	return o.UnknownProducts
}
