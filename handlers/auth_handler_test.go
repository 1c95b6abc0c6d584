package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestCreateAccountValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing username", map[string]any{"password": "secret1", "confirm_password": "secret1"}, "username"},
		{"short password", map[string]any{"username": "a", "password": "abc", "confirm_password": "abc"}, "password"},
		{"long password", map[string]any{"username": "a", "password": strings.Repeat("x", 21), "confirm_password": strings.Repeat("x", 21)}, "password"},
		{"mismatch", map[string]any{"username": "a", "password": "secret1", "confirm_password": "secret2"}, "confirm_password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := expectError(t, app.do(http.MethodPost, "/account", tc.body), http.StatusBadRequest, "VALIDATION_ERROR")
			if _, ok := body.Fields[tc.field]; !ok {
				t.Fatalf("fields = %v, want %q", body.Fields, tc.field)
			}
		})
	}
}

func TestCreateAccountRejectsDuplicate(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")

	rec := app.do(http.MethodPost, "/account", map[string]any{
		"username": "alice", "password": "other12", "confirm_password": "other12",
	})
	expectError(t, rec, http.StatusConflict, "USERNAME_EXISTS")
}

func TestCreateAccountFromForm(t *testing.T) {
	app := newTestApp(t)
	rec := app.form("/account", url.Values{
		"username":         {"carol"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")

	rec := app.do(http.MethodPost, "/login", map[string]any{"username": "alice", "password": "nope123"})
	expectError(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestResetPassword(t *testing.T) {
	app := newTestApp(t)
	app.login("alice", "secret1")

	rec := app.do(http.MethodPost, "/password/reset", map[string]any{
		"username": "alice", "new_password": "newpass1", "confirm_password": "newpass1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: %d %s", rec.Code, rec.Body)
	}

	if rec := app.do(http.MethodPost, "/login", map[string]any{"username": "alice", "password": "secret1"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("old password still works: %d", rec.Code)
	}
	if rec := app.do(http.MethodPost, "/login", map[string]any{"username": "alice", "password": "newpass1"}); rec.Code != http.StatusOK {
		t.Fatalf("new password rejected: %d", rec.Code)
	}

	rec = app.do(http.MethodPost, "/password/reset", map[string]any{
		"username": "ghost", "new_password": "newpass1", "confirm_password": "newpass1",
	})
	expectError(t, rec, http.StatusNotFound, "USER_NOT_FOUND")

	rec = app.do(http.MethodPost, "/password/reset", map[string]any{
		"username": "alice", "new_password": "newpass1", "confirm_password": "different",
	})
	expectError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}
