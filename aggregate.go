package salesreport

import "fmt"

// aggregate folds every purchase record into its seller's accumulator. A
// record counts as exactly one sale for its seller regardless of how many of
// its line items resolve; revenue and profit accumulate per resolved item
// through the injected revenue strategy. Input records are never mutated.
func aggregate(idx *indexes, records []PurchaseRecord, opts *Options) error {
	for _, record := range records {
		seller, ok := idx.bySellerID[record.SellerID]
		if !ok {
			if opts.unknownSellers() == PolicyFail {
				return fmt.Errorf("%w: %q", ErrUnknownSeller, record.SellerID)
			}
			continue
		}
		seller.SalesCount++

		for _, item := range record.Items {
			product, ok := idx.bySKU[item.SKU]
			if !ok {
				if opts.unknownProducts() == PolicyFail {
					return fmt.Errorf("%w: %q", ErrUnknownProduct, item.SKU)
				}
				continue
			}
			cost := product.PurchasePrice * float64(item.Quantity)
			revenue := opts.Revenue.Revenue(item, product)
			seller.Revenue += revenue
			seller.Profit += revenue - cost

			if _, seen := seller.ProductsSold[item.SKU]; !seen {
				seller.skuOrder = append(seller.skuOrder, item.SKU)
			}
			seller.ProductsSold[item.SKU] += item.Quantity
		}
	}
	return nil
}
