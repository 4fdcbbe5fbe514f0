// Package salesreport computes per-seller sales performance reports from an
// in-memory snapshot of sellers, products, and purchase records.
//
// Analyze runs a single-pass pipeline: it validates the input shape and the
// caller-supplied strategies, indexes sellers and products for O(1) lookup,
// folds every purchase record into per-seller accumulators, then ranks sellers
// by profit and projects the final report rows with rank-based bonuses and
// each seller's top-sold products.
//
// Revenue and bonus formulas are injected through the Options struct; the
// package ships SimpleRevenue and BonusByProfitRank as defaults. A call never
// mutates its inputs and keeps no state between calls, so independent
// goroutines may run Analyze concurrently as long as the injected strategies
// are themselves side-effect-free.
package salesreport
