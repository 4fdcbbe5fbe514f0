package salesreport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesreport"
)

func TestAnalyze_OptionErrors(t *testing.T) {
	data := sampleData()

	t.Run("nil_options", func(t *testing.T) {
		rows, err := salesreport.Analyze(data, nil)
		require.ErrorIs(t, err, salesreport.ErrMissingOptions)
		assert.Nil(t, rows)
	})

	t.Run("missing_revenue_strategy", func(t *testing.T) {
		opts := &salesreport.Options{Bonus: salesreport.BonusByProfitRank}
		_, err := salesreport.Analyze(data, opts)
		assert.ErrorIs(t, err, salesreport.ErrMissingStrategy)
	})

	t.Run("missing_bonus_strategy", func(t *testing.T) {
		opts := &salesreport.Options{Revenue: salesreport.SimpleRevenue}
		_, err := salesreport.Analyze(data, opts)
		assert.ErrorIs(t, err, salesreport.ErrMissingStrategy)
	})

	t.Run("nil_revenue_func", func(t *testing.T) {
		opts := &salesreport.Options{
			Revenue: salesreport.RevenueFunc(nil),
			Bonus:   salesreport.BonusByProfitRank,
		}
		_, err := salesreport.Analyze(data, opts)
		assert.ErrorIs(t, err, salesreport.ErrInvalidStrategyType)
	})

	t.Run("nil_bonus_func", func(t *testing.T) {
		opts := &salesreport.Options{
			Revenue: salesreport.SimpleRevenue,
			Bonus:   salesreport.BonusFunc(nil),
		}
		_, err := salesreport.Analyze(data, opts)
		assert.ErrorIs(t, err, salesreport.ErrInvalidStrategyType)
	})
}

func TestAnalyze_InputErrors(t *testing.T) {
	t.Run("nil_data", func(t *testing.T) {
		rows, err := salesreport.Analyze(nil, defaultOptions())
		require.ErrorIs(t, err, salesreport.ErrInvalidInput)
		assert.Nil(t, rows)
	})

	t.Run("no_sellers", func(t *testing.T) {
		data := sampleData()
		data.Sellers = nil
		_, err := salesreport.Analyze(data, defaultOptions())
		assert.ErrorIs(t, err, salesreport.ErrInvalidInput)
	})

	t.Run("empty_purchase_records_is_valid", func(t *testing.T) {
		data := sampleData()
		data.PurchaseRecords = nil
		rows, err := salesreport.Analyze(data, defaultOptions())
		require.NoError(t, err)
		require.Len(t, rows, len(data.Sellers))
		for _, row := range rows {
			assert.Zero(t, row.Revenue)
			assert.Zero(t, row.Profit)
			assert.Zero(t, row.SalesCount)
			assert.Zero(t, row.Bonus)
			assert.Empty(t, row.TopProducts)
		}
	})
}
