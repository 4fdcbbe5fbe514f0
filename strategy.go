package salesreport

// RevenueStrategy computes the revenue a single line item contributes to its
// seller. Implementations must be pure: the aggregator calls them once per
// resolved item and accumulates the results.
type RevenueStrategy interface {
	Revenue(item LineItem, product Product) float64
}

// RevenueFunc adapts an ordinary function to the RevenueStrategy interface.
type RevenueFunc func(item LineItem, product Product) float64

// Revenue calls f.
func (f RevenueFunc) Revenue(item LineItem, product Product) float64 {
	return f(item, product)
}

// BonusStrategy prices a seller's bonus from its position in the profit
// ranking. rank is zero-based, total is the number of ranked sellers, and
// seller carries the full-precision accumulated totals.
type BonusStrategy interface {
	Bonus(rank, total int, seller *SellerStats) float64
}

// BonusFunc adapts an ordinary function to the BonusStrategy interface.
type BonusFunc func(rank, total int, seller *SellerStats) float64

// Bonus calls f.
func (f BonusFunc) Bonus(rank, total int, seller *SellerStats) float64 {
	return f(rank, total, seller)
}
