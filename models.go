package salesreport

// Seller identifies one salesperson in the input snapshot.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Product is one entry of the product catalog. PurchasePrice is the unit cost
// the seller's company paid for the product.
type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}

// LineItem is one product position within a purchase record. Discount is a
// percentage in [0, 100] applied to the sale price.
type LineItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

// PurchaseRecord is one customer purchase attributed to a seller.
type PurchaseRecord struct {
	SellerID      string     `json:"seller_id"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	TotalDiscount float64    `json:"total_discount"`
}

// Data is the complete input snapshot for one analysis.
type Data struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

// SellerStats is the running accumulator for one seller. It is created by the
// indexer, mutated only during the aggregation fold, and read-only once
// ranking starts. Bonus strategies receive it to price a seller's rank.
type SellerStats struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	SalesCount int     `json:"sales_count"`

	// ProductsSold maps sku to the total quantity this seller sold.
	ProductsSold map[string]int `json:"products_sold"`

	// skuOrder records the first-sale order of skus so the top-products
	// sort can break quantity ties deterministically.
	skuOrder []string
}

func newSellerStats(s Seller) *SellerStats {
	return &SellerStats{
		ID:           s.ID,
		Name:         s.FirstName + " " + s.LastName,
		ProductsSold: make(map[string]int),
	}
}

// ProductQuantity is one entry of a report row's top-products list.
type ProductQuantity struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReportRow is one seller's final report entry. Revenue, Profit, and Bonus are
// rounded to two decimal places; TopProducts holds at most ten entries sorted
// by quantity descending.
type ReportRow struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}
