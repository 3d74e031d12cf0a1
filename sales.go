package foldz

import "context"

// Sale is one line item in a sales log.
type Sale struct {
	Product  string
	Price    float64
	Quantity int
}

// SalesReport summarizes a sales log: total revenue and items moved, plus
// the average unit price across line items. Monetary figures are rounded
// to two decimal places.
type SalesReport struct {
	TotalRevenue float64
	TotalItems   int
	AvgPrice     float64
}

// AnalyzeSales computes a SalesReport in a single pass, feeding three
// independent Sum accumulators per line item. An empty log yields a zero
// report with AvgPrice 0.
func AnalyzeSales(ctx context.Context, sales []Sale) SalesReport {
	revenue := NewSum[float64]("sales.revenue")
	items := NewSum[int]("sales.items")
	prices := NewSum[float64]("sales.prices")

	for _, sale := range sales {
		revenue.Add(ctx, sale.Price*float64(sale.Quantity))
		items.Add(ctx, sale.Quantity)
		prices.Add(ctx, sale.Price)
	}

	report := SalesReport{
		TotalRevenue: round(revenue.Result(), 2),
		TotalItems:   items.Result(),
	}
	if len(sales) > 0 {
		report.AvgPrice = round(prices.Result()/float64(len(sales)), 2)
	}
	return report
}
