package domain

import "time"

// StockQuote is the latest market data for a ticker symbol
type StockQuote struct {
	ID            int64     `json:"id"`
	Symbol        string    `json:"symbol"`
	CompanyName   string    `json:"company_name"`
	CurrentPrice  float64   `json:"current_price"`
	PriceChange   float64   `json:"price_change"`
	PercentChange float64   `json:"percent_change"`
	Volume        int64     `json:"volume"`
	MarketCap     int64     `json:"market_cap"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockQuoteUpdate lists the mutable quote fields
type StockQuoteUpdate struct {
	CompanyName   *string  `json:"company_name"`
	CurrentPrice  *float64 `json:"current_price"`
	PriceChange   *float64 `json:"price_change"`
	PercentChange *float64 `json:"percent_change"`
	Volume        *int64   `json:"volume"`
	MarketCap     *int64   `json:"market_cap"`
}
