package salesreport

import (
	"sort"

	"github.com/shopspring/decimal"
)

// topProductLimit caps the number of products listed per report row.
const topProductLimit = 10

// buildReport ranks the accumulators by profit descending (stable, so equal
// profits keep input order), assigns bonuses through the injected strategy,
// and projects the rounded report rows. Bonuses are priced from the
// full-precision profit before rounding.
func buildReport(stats []*SellerStats, opts *Options) []ReportRow {
	ranked := make([]*SellerStats, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit > ranked[j].Profit
	})

	total := len(ranked)
	rows := make([]ReportRow, 0, total)
	for rank, seller := range ranked {
		rows = append(rows, ReportRow{
			SellerID:    seller.ID,
			Name:        seller.Name,
			Revenue:     round2(seller.Revenue),
			Profit:      round2(seller.Profit),
			SalesCount:  seller.SalesCount,
			TopProducts: topProducts(seller, topProductLimit),
			Bonus:       round2(opts.Bonus.Bonus(rank, total, seller)),
		})
	}
	return rows
}

// topProducts lists a seller's sold products by quantity descending, ties
// broken by first-sale order, truncated to limit entries.
func topProducts(seller *SellerStats, limit int) []ProductQuantity {
	entries := make([]ProductQuantity, 0, len(seller.skuOrder))
	for _, sku := range seller.skuOrder {
		entries = append(entries, ProductQuantity{SKU: sku, Quantity: seller.ProductsSold[sku]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// round2 rounds to two decimal places, half away from zero. Accumulation
// upstream keeps full float precision; rounding happens only here at the
// reporting boundary.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
