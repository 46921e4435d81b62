package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

// adminPageTmpl lists tables with row counts and the first rows of the selected one
var adminPageTmpl = template.Must(template.New("admin").Funcs(template.FuncMap{
	"cell": func(v any) string {
		if v == nil {
			return "NULL"
		}
		return fmt.Sprint(v)
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Database</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
td, th { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h1>Database</h1>
<p>Size: {{.Stats.SizeBytes}} bytes</p>
<table>
<tr><th>Table</th><th>Rows</th></tr>
{{range .Stats.Tables}}<tr><td><a href="?table={{.Name}}">{{.Name}}</a></td><td>{{.Rows}}</td></tr>
{{end}}</table>
{{with .Data}}
<h2>{{.Table}}</h2>
<p>{{.Total}} rows, page {{.Page}} of {{.TotalPages}}</p>
<table>
<tr>{{range .Columns}}<th>{{.Name}} <small>{{.Type}}</small></th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{cell .}}</td>{{end}}</tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

// adminStatsHandler returns database size and table row counts
func (s *Server) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stores.Inspector.Stats(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// adminTablesHandler lists database tables
func (s *Server) adminTablesHandler(w http.ResponseWriter, r *http.Request) {
	tables, err := s.stores.Inspector.Tables(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"tables": nonNil(tables)})
}

// adminTableHandler returns a page of raw rows of a table
func (s *Server) adminTableHandler(w http.ResponseWriter, r *http.Request) {
	data, err := s.stores.Inspector.Rows(r.Context(), r.PathValue("table"),
		queryInt(r, "page", 1), queryInt(r, "per_page", 0))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, data)
}

// adminPageHandler renders the database overview as html
func (s *Server) adminPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := s.stores.Inspector.Stats(ctx)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	page := map[string]any{"Stats": stats}
	if table := r.URL.Query().Get("table"); table != "" {
		data, err := s.stores.Inspector.Rows(ctx, table, queryInt(r, "page", 1), 0)
		if err != nil {
			renderErr(w, r, err)
			return
		}
		page["Data"] = data
	}

	var buf bytes.Buffer
	if err := adminPageTmpl.Execute(&buf, page); err != nil {
		log.Printf("[ERROR] failed to render admin page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[ERROR] failed to write admin page: %v", err)
	}
}
