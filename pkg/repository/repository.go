package repository

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// DefaultDSN is used when no DSN configured
const DefaultDSN = "file:newsdesk.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Article  *ArticleRepository
	Author   *AuthorRepository
	Category *CategoryRepository
	Tag      *TagRepository
	Setting  *SettingRepository
	Page     *PageRepository
	Menu     *MenuRepository
	Quiz     *QuizRepository
	Stock    *StockRepository
	User     *UserRepository
	Inspect  *InspectRepository
	DB       *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	// run migrations
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// create repositories
	repos := &Repositories{
		Article:  NewArticleRepository(db),
		Author:   NewAuthorRepository(db),
		Category: NewCategoryRepository(db),
		Tag:      NewTagRepository(db),
		Setting:  NewSettingRepository(db),
		Page:     NewPageRepository(db),
		Menu:     NewMenuRepository(db),
		Quiz:     NewQuizRepository(db),
		Stock:    NewStockRepository(db),
		User:     NewUserRepository(db),
		Inspect:  NewInspectRepository(db),
		DB:       db,
	}

	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}

// columnMigration adds a column missing in databases created by older versions
type columnMigration struct {
	table  string
	column string
	ddl    string
}

var columnMigrations = []columnMigration{
	{table: "articles", column: "reading_time", ddl: `ALTER TABLE articles ADD COLUMN reading_time INTEGER NOT NULL DEFAULT 0`},
	{table: "articles", column: "image_alt", ddl: `ALTER TABLE articles ADD COLUMN image_alt TEXT NOT NULL DEFAULT ''`},
}

// runMigrations runs database migrations to update schema
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	for _, m := range columnMigrations {
		var count int
		err := db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, m.table, m.column)
		if err != nil {
			return fmt.Errorf("check %s.%s column: %w", m.table, m.column, err)
		}
		if count > 0 {
			continue
		}
		if _, err := db.ExecContext(ctx, m.ddl); err != nil {
			return fmt.Errorf("add %s.%s column: %w", m.table, m.column, err)
		}
	}
	return nil
}
