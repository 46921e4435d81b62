package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/domain"
)

const defaultTrendingStocks = 5

type stocksResponse struct {
	Stocks []domain.StockQuote `json:"stocks"`
	Count  int                 `json:"count"`
}

type trendingStocksResponse struct {
	Stocks []domain.StockQuote `json:"trending_stocks"`
	Count  int                 `json:"count"`
}

func (s *Server) listStocksHandler(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.stores.Stocks.List(r.Context(), listingLimit(r))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, stocksResponse{Stocks: nonNil(quotes), Count: len(quotes)})
}

// trendingStocksHandler returns quotes with the highest trading volume
func (s *Server) trendingStocksHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultTrendingStocks)
	if limit < 1 {
		limit = defaultTrendingStocks
	}
	quotes, err := s.stores.Stocks.Trending(r.Context(), min(limit, maxListingLimit))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, trendingStocksResponse{Stocks: nonNil(quotes), Count: len(quotes)})
}

func (s *Server) getStockHandler(w http.ResponseWriter, r *http.Request) {
	quote, err := s.stores.Stocks.Get(r.Context(), r.PathValue("symbol"))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, quote)
}

func (s *Server) createStockHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol        string  `json:"symbol"`
		CompanyName   string  `json:"company_name"`
		CurrentPrice  float64 `json:"current_price"`
		PriceChange   float64 `json:"price_change"`
		PercentChange float64 `json:"percent_change"`
		Volume        int64   `json:"volume"`
		MarketCap     int64   `json:"market_cap"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	created, err := s.stores.Stocks.Create(r.Context(), &domain.StockQuote{
		Symbol:        req.Symbol,
		CompanyName:   strings.TrimSpace(req.CompanyName),
		CurrentPrice:  req.CurrentPrice,
		PriceChange:   req.PriceChange,
		PercentChange: req.PercentChange,
		Volume:        req.Volume,
		MarketCap:     req.MarketCap,
	})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateStockHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.StockQuoteUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	updated, err := s.stores.Stocks.Update(r.Context(), r.PathValue("symbol"), upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteStockHandler(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.PathValue("symbol")))
	if err := s.stores.Stocks.Delete(r.Context(), symbol); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: fmt.Sprintf("Stock quote for %s deleted successfully", symbol)})
}
