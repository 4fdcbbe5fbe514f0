package salesreport

// SimpleRevenue is the default revenue strategy: sale price times quantity
// with the line item's percentage discount applied. The product argument is
// unused here but stays in the signature for strategies that price from the
// product catalog instead.
var SimpleRevenue RevenueStrategy = RevenueFunc(func(item LineItem, _ Product) float64 {
	discountCoeff := 1 - item.Discount/100
	return item.SalePrice * float64(item.Quantity) * discountCoeff
})

// BonusByProfitRank is the default bonus strategy: 15% of profit for the top
// seller, 10% for second and third place, nothing for last place, and 5% for
// everyone in between. Rules are checked in order, so with fewer than four
// sellers the last place still earns its positional percentage.
var BonusByProfitRank BonusStrategy = BonusFunc(func(rank, total int, seller *SellerStats) float64 {
	switch {
	case rank == 0:
		return seller.Profit * 0.15
	case rank == 1 || rank == 2:
		return seller.Profit * 0.10
	case rank == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
})
