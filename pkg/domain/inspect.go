package domain

// TableInfo is a database table with its row count
type TableInfo struct {
	Name string `json:"name"`
	Rows int64  `json:"rows"`
}

// ColumnInfo describes a table column
type ColumnInfo struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    bool    `json:"not_null"`
	Default    *string `json:"default"`
	PrimaryKey bool    `json:"primary_key"`
}

// DBStats summarizes database size and tables
type DBStats struct {
	SizeBytes int64       `json:"size_bytes"`
	Tables    []TableInfo `json:"tables"`
}

// TableData is a page of raw table rows
type TableData struct {
	Table      string       `json:"table"`
	Columns    []ColumnInfo `json:"columns"`
	Rows       [][]any      `json:"rows"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"pages"`
}
