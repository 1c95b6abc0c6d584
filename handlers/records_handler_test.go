package handlers_test

import (
	"net/http"
	"testing"
)

func TestRecordsDump(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")
	app.do(http.MethodPost, "/register", registrationBody("e@x.com"))

	rec := app.do(http.MethodGet, "/records/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body)
	}
	var d struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	decode(t, rec, &d)
	if len(d.Columns) != 10 || d.Columns[1] != "email" || d.Columns[9] != "dropout_students" {
		t.Fatalf("columns = %v", d.Columns)
	}
	if len(d.Rows) != 1 || d.Rows[0][1] != "e@x.com" {
		t.Fatalf("rows = %v", d.Rows)
	}

	expectError(t, app.do(http.MethodGet, "/records/secrets", nil), http.StatusNotFound, "UNKNOWN_TABLE")

	rec = app.do(http.MethodGet, "/records", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("tables: %d", rec.Code)
	}
}
