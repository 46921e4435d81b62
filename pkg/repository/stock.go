package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// stock listing defaults
const (
	defaultStockLimit         = 10
	defaultTrendingStockLimit = 5
)

// StockRepository handles stock quote database operations. Symbols are stored upper-cased.
type StockRepository struct {
	db *sqlx.DB
}

type stockSQL struct {
	ID            int64     `db:"id"`
	Symbol        string    `db:"symbol"`
	CompanyName   string    `db:"company_name"`
	CurrentPrice  float64   `db:"current_price"`
	PriceChange   float64   `db:"price_change"`
	PercentChange float64   `db:"percent_change"`
	Volume        int64     `db:"volume"`
	MarketCap     int64     `db:"market_cap"`
	UpdatedAt     time.Time `db:"updated_at"`
}

const stockColumns = "id, symbol, company_name, current_price, price_change, percent_change, volume, market_cap, updated_at"

// NewStockRepository creates a new stock quote repository
func NewStockRepository(db *sqlx.DB) *StockRepository {
	return &StockRepository{db: db}
}

// List returns up to limit quotes ordered by symbol
func (r *StockRepository) List(ctx context.Context, limit int) ([]domain.StockQuote, error) {
	if limit < 1 {
		limit = defaultStockLimit
	}
	return r.selectQuotes(ctx, "list stocks", "SELECT "+stockColumns+" FROM stock_quotes ORDER BY symbol LIMIT ?", limit)
}

// Trending returns quotes with the highest trading volume
func (r *StockRepository) Trending(ctx context.Context, limit int) ([]domain.StockQuote, error) {
	if limit < 1 {
		limit = defaultTrendingStockLimit
	}
	return r.selectQuotes(ctx, "list trending stocks",
		"SELECT "+stockColumns+" FROM stock_quotes ORDER BY volume DESC, symbol LIMIT ?", limit)
}

// Get retrieves a quote by symbol, case-insensitive
func (r *StockRepository) Get(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	var row stockSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+stockColumns+" FROM stock_quotes WHERE symbol = ?", normSymbol(symbol))
	if err != nil {
		return nil, mapReadError("get stock", "Stock", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new quote
func (r *StockRepository) Create(ctx context.Context, q *domain.StockQuote) (*domain.StockQuote, error) {
	symbol := normSymbol(q.Symbol)
	if symbol == "" {
		return nil, domain.Invalid("symbol", "is required")
	}

	row := stockSQL{
		Symbol:        symbol,
		CompanyName:   q.CompanyName,
		CurrentPrice:  q.CurrentPrice,
		PriceChange:   q.PriceChange,
		PercentChange: q.PercentChange,
		Volume:        q.Volume,
		MarketCap:     q.MarketCap,
		UpdatedAt:     now(),
	}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO stock_quotes (symbol, company_name, current_price, price_change, percent_change, volume, market_cap, updated_at)
		VALUES (:symbol, :company_name, :current_price, :price_change, :percent_change, :volume, :market_cap, :updated_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create stock", "Stock", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	quote := row.toDomain()
	return &quote, nil
}

// Update changes the supplied quote fields
func (r *StockRepository) Update(ctx context.Context, symbol string, upd domain.StockQuoteUpdate) (*domain.StockQuote, error) {
	set := setClause{}
	if upd.CompanyName != nil {
		set.add("company_name", *upd.CompanyName)
	}
	if upd.CurrentPrice != nil {
		set.add("current_price", *upd.CurrentPrice)
	}
	if upd.PriceChange != nil {
		set.add("price_change", *upd.PriceChange)
	}
	if upd.PercentChange != nil {
		set.add("percent_change", *upd.PercentChange)
	}
	if upd.Volume != nil {
		set.add("volume", *upd.Volume)
	}
	if upd.MarketCap != nil {
		set.add("market_cap", *upd.MarketCap)
	}
	set.add("updated_at", now())

	res, err := r.db.ExecContext(ctx, "UPDATE stock_quotes SET "+set.String()+" WHERE symbol = ?",
		append(set.args, normSymbol(symbol))...)
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	if err = checkAffected("update stock", "Stock", res); err != nil {
		return nil, err
	}
	return r.Get(ctx, symbol)
}

// Delete removes a quote by symbol
func (r *StockRepository) Delete(ctx context.Context, symbol string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM stock_quotes WHERE symbol = ?", normSymbol(symbol))
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return checkAffected("delete stock", "Stock", res)
}

func (r *StockRepository) selectQuotes(ctx context.Context, op, query string, args ...any) ([]domain.StockQuote, error) {
	var rows []stockSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res := make([]domain.StockQuote, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

func normSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (s stockSQL) toDomain() domain.StockQuote {
	return domain.StockQuote{
		ID:            s.ID,
		Symbol:        s.Symbol,
		CompanyName:   s.CompanyName,
		CurrentPrice:  s.CurrentPrice,
		PriceChange:   s.PriceChange,
		PercentChange: s.PercentChange,
		Volume:        s.Volume,
		MarketCap:     s.MarketCap,
		UpdatedAt:     s.UpdatedAt,
	}
}
