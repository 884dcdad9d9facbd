package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/supabase-community/postgrest-go"
)

// fakePostgREST минимальный in-memory PostgREST: eq/neq/in фильтры, order, limit
type fakePostgREST struct {
	mu     sync.Mutex
	tables map[string][]map[string]interface{}
	seq    int
	fail   bool
}

func newFakeClient(t *testing.T) (*postgrest.Client, *fakePostgREST) {
	t.Helper()

	fake := &fakePostgREST{tables: map[string][]map[string]interface{}{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return postgrest.NewClient(srv.URL, "public", nil), fake
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "XX000", "message": "boom"})
		return
	}

	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	table := segments[len(segments)-1]
	query := r.URL.Query()

	switch r.Method {
	case http.MethodGet:
		rows := f.filter(table, query)
		writeJSON(w, http.StatusOK, f.orderAndLimit(rows, query))

	case http.MethodPost:
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "PGRST102", "message": err.Error()})
			return
		}
		if _, ok := body["created_at"]; !ok {
			f.seq++
			body["created_at"] = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).
				Add(time.Duration(f.seq) * time.Millisecond).Format(time.RFC3339Nano)
		}
		f.tables[table] = append(f.tables[table], body)
		writeJSON(w, http.StatusCreated, []map[string]interface{}{body})

	case http.MethodPatch:
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"code": "PGRST102", "message": err.Error()})
			return
		}
		rows := f.filter(table, query)
		for _, row := range rows {
			for k, v := range body {
				row[k] = v
			}
		}
		writeJSON(w, http.StatusOK, rows)

	case http.MethodDelete:
		deleted := f.filter(table, query)
		kept := make([]map[string]interface{}, 0)
		for _, row := range f.tables[table] {
			if !containsRow(deleted, row) {
				kept = append(kept, row)
			}
		}
		f.tables[table] = kept
		writeJSON(w, http.StatusOK, deleted)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakePostgREST) filter(table string, query map[string][]string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0)
	for _, row := range f.tables[table] {
		if matches(row, query) {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakePostgREST) orderAndLimit(rows []map[string]interface{}, query map[string][]string) []map[string]interface{} {
	if order := first(query["order"]); order != "" {
		terms := strings.Split(order, ",")
		sort.SliceStable(rows, func(i, j int) bool {
			for _, term := range terms {
				parts := strings.Split(term, ".")
				a, b := fmt.Sprint(rows[i][parts[0]]), fmt.Sprint(rows[j][parts[0]])
				if a == b {
					continue
				}
				if len(parts) > 1 && parts[1] == "desc" {
					return a > b
				}
				return a < b
			}
			return false
		})
	}
	if limit, err := strconv.Atoi(first(query["limit"])); err == nil && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

func matches(row map[string]interface{}, query map[string][]string) bool {
	for column, values := range query {
		switch column {
		case "select", "order", "limit", "offset":
			continue
		}
		for _, expr := range values {
			actual := fmt.Sprint(row[column])
			switch {
			case strings.HasPrefix(expr, "eq."):
				if actual != strings.TrimPrefix(expr, "eq.") {
					return false
				}
			case strings.HasPrefix(expr, "neq."):
				if actual == strings.TrimPrefix(expr, "neq.") {
					return false
				}
			case strings.HasPrefix(expr, "in."):
				list := strings.Trim(strings.TrimPrefix(expr, "in."), "()")
				found := false
				for _, v := range strings.Split(list, ",") {
					if strings.Trim(v, `"`) == actual {
						found = true
					}
				}
				if !found {
					return false
				}
			}
		}
	}
	return true
}

func containsRow(rows []map[string]interface{}, row map[string]interface{}) bool {
	for _, r := range rows {
		if r["id"] == row["id"] {
			return true
		}
	}
	return false
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
