package handlers_test

import (
	"net/http"
	"testing"
)

func dashboardBody(email string) map[string]any {
	return map[string]any{
		"email":               email,
		"homework_assigned":   "12",
		"homework_submitted":  "10",
		"attendance_students": "95%",
		"attendance_tutor":    "100%",
		"registered_tutors":   "4",
		"registered_students": "30",
		"dropout_tutors":      "0",
		"dropout_students":    "",
	}
}

func TestDashboardDefaultsForUnknownEmail(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")

	rec := app.do(http.MethodGet, "/dashboard?email=nobody@example.com", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		Dashboard map[string]string `json:"dashboard"`
	}
	decode(t, rec, &out)
	if len(out.Dashboard) != 8 {
		t.Fatalf("dashboard = %v, want 8 fields", out.Dashboard)
	}
	for k, v := range out.Dashboard {
		if v != "" {
			t.Errorf("%s = %q, want empty", k, v)
		}
	}
}

func TestDashboardUpdate(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")
	if rec := app.do(http.MethodPost, "/register", registrationBody("e@x.com")); rec.Code != http.StatusCreated {
		t.Fatalf("register: %d", rec.Code)
	}

	rec := app.do(http.MethodPut, "/dashboard", dashboardBody("e@x.com"))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body)
	}

	rec = app.do(http.MethodGet, "/dashboard?email=e@x.com", nil)
	var out struct {
		Dashboard map[string]string `json:"dashboard"`
	}
	decode(t, rec, &out)
	if out.Dashboard["homework_assigned"] != "12" || out.Dashboard["attendance_students"] != "95%" {
		t.Fatalf("dashboard = %v", out.Dashboard)
	}
}

func TestDashboardPartialUpdateRejected(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")
	app.do(http.MethodPost, "/register", registrationBody("e@x.com"))

	body := dashboardBody("e@x.com")
	delete(body, "dropout_tutors")
	eb := expectError(t, app.do(http.MethodPut, "/dashboard", body), http.StatusBadRequest, "VALIDATION_ERROR")
	if eb.Fields["dropout_tutors"] != "required" {
		t.Fatalf("fields = %v", eb.Fields)
	}
}

func TestDashboardUpdateUnregistered(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")

	expectError(t, app.do(http.MethodPut, "/dashboard", dashboardBody("ghost@x.com")), http.StatusNotFound, "NOT_REGISTERED")
}
