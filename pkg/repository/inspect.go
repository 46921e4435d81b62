package repository

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// inspectPerPage is the default page size for raw table browsing
const inspectPerPage = 20

// redactedColumns are never shown by the inspector
var redactedColumns = map[string]bool{"password_hash": true}

// InspectRepository provides read-only access to raw tables for the admin inspector.
// Table names are checked against sqlite_master and quoted, never taken as SQL verbatim.
type InspectRepository struct {
	db *sqlx.DB
}

// NewInspectRepository creates a new inspect repository
func NewInspectRepository(db *sqlx.DB) *InspectRepository {
	return &InspectRepository{db: db}
}

// Tables returns user tables with row counts, ordered by name
func (r *InspectRepository) Tables(ctx context.Context) ([]domain.TableInfo, error) {
	names, err := r.tableNames(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.TableInfo, 0, len(names))
	for _, name := range names {
		var count int64
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+quoteIdent(name)); err != nil {
			return nil, fmt.Errorf("count rows in %s: %w", name, err)
		}
		res = append(res, domain.TableInfo{Name: name, Rows: count})
	}
	return res, nil
}

// Stats returns database size and per-table row counts, largest tables first
func (r *InspectRepository) Stats(ctx context.Context) (domain.DBStats, error) {
	var res domain.DBStats
	var pageCount, pageSize int64
	if err := r.db.GetContext(ctx, &pageCount, "PRAGMA page_count"); err != nil {
		return res, fmt.Errorf("get page count: %w", err)
	}
	if err := r.db.GetContext(ctx, &pageSize, "PRAGMA page_size"); err != nil {
		return res, fmt.Errorf("get page size: %w", err)
	}
	res.SizeBytes = pageCount * pageSize

	tables, err := r.Tables(ctx)
	if err != nil {
		return res, err
	}
	slices.SortStableFunc(tables, func(a, b domain.TableInfo) int {
		switch {
		case a.Rows > b.Rows:
			return -1
		case a.Rows < b.Rows:
			return 1
		}
		return 0
	})
	res.Tables = tables
	return res, nil
}

// Columns returns column definitions of a table
func (r *InspectRepository) Columns(ctx context.Context, table string) ([]domain.ColumnInfo, error) {
	if err := r.checkTable(ctx, table); err != nil {
		return nil, err
	}
	var rows []struct {
		CID     int            `db:"cid"`
		Name    string         `db:"name"`
		Type    string         `db:"type"`
		NotNull bool           `db:"notnull"`
		Default sql.NullString `db:"dflt_value"`
		PK      int            `db:"pk"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT cid, name, type, \"notnull\", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid", table); err != nil {
		return nil, fmt.Errorf("get columns of %s: %w", table, err)
	}
	res := make([]domain.ColumnInfo, len(rows))
	for i, row := range rows {
		res[i] = domain.ColumnInfo{Name: row.Name, Type: row.Type, NotNull: row.NotNull, PrimaryKey: row.PK > 0}
		if row.Default.Valid {
			d := row.Default.String
			res[i].Default = &d
		}
	}
	return res, nil
}

// Rows returns a page of raw rows, newest first when the table has an id column
func (r *InspectRepository) Rows(ctx context.Context, table string, page, perPage int) (*domain.TableData, error) {
	columns, err := r.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = inspectPerPage
	}
	perPage = min(perPage, domain.MaxPerPage)

	res := &domain.TableData{Table: table, Columns: columns, Rows: [][]any{}, Page: page, PerPage: perPage}
	if err = r.db.GetContext(ctx, &res.Total, "SELECT COUNT(*) FROM "+quoteIdent(table)); err != nil {
		return nil, fmt.Errorf("count rows in %s: %w", table, err)
	}
	res.TotalPages = domain.TotalPages(res.Total, perPage)

	order := "ORDER BY 1"
	if slices.ContainsFunc(columns, func(c domain.ColumnInfo) bool { return c.Name == "id" }) {
		order = "ORDER BY id DESC"
	}
	query := "SELECT * FROM " + quoteIdent(table) + " " + order + " LIMIT ? OFFSET ?"
	rows, err := r.db.QueryxContext(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("select rows from %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get result columns: %w", err)
	}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan row of %s: %w", table, err)
		}
		for i, v := range vals {
			if redactedColumns[names[i]] {
				vals[i] = "***"
				continue
			}
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, vals)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows of %s: %w", table, err)
	}
	return res, nil
}

func (r *InspectRepository) tableNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// checkTable returns not found for names missing from sqlite_master
func (r *InspectRepository) checkTable(ctx context.Context, table string) error {
	names, err := r.tableNames(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(names, table) {
		return fmt.Errorf("inspect table %q: %w", table, domain.NotFound("Table"))
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
