package salesreport

// indexes holds the lookup tables for one analysis: the accumulator list in
// input order plus id and sku indexes for O(1) resolution during the fold.
type indexes struct {
	stats      []*SellerStats
	bySellerID map[string]*SellerStats
	bySKU      map[string]Product
}

func buildIndexes(data *Data) *indexes {
	idx := &indexes{
		stats:      make([]*SellerStats, 0, len(data.Sellers)),
		bySellerID: make(map[string]*SellerStats, len(data.Sellers)),
		bySKU:      make(map[string]Product, len(data.Products)),
	}
	for _, s := range data.Sellers {
		stats := newSellerStats(s)
		idx.stats = append(idx.stats, stats)
		idx.bySellerID[s.ID] = stats
	}
	for _, p := range data.Products {
		idx.bySKU[p.SKU] = p
	}
	return idx
}
