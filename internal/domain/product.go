package domain

import (
	"time"
)

// Product is a single sales record. Price, Quantity, and NetPrice are the
// only persisted numeric fields; everything derived from them is recomputed
// on demand so stored and derived values can never drift apart.
type Product struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Time        string    `json:"time"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	NetPrice    float64   `json:"netPrice"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profit is the per-unit margin.
func (p *Product) Profit() float64 {
	return p.Price - p.NetPrice
}

// TotalSales is the revenue contributed by this record.
func (p *Product) TotalSales() float64 {
	return p.Price * float64(p.Quantity)
}

// TotalProfit is the profit contributed by this record.
func (p *Product) TotalProfit() float64 {
	return p.Profit() * float64(p.Quantity)
}
