package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/database"
	"github.com/patiponrmutl/TutorDesk/models"
)

func TestScheduleStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)

	got, err := s.Schedules.Get(ctx, "e@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if got != (models.ScheduleDays{}) {
		t.Fatalf("missing schedule not empty: %+v", got)
	}

	if n, err := s.Schedules.Update(ctx, "e@x.com", models.ScheduleDays{Monday: "Math"}); err != nil || n != 0 {
		t.Fatalf("update before registration = %d, %v", n, err)
	}

	if _, err := s.Registrations.Create(ctx, sampleRegistration("e@x.com")); err != nil {
		t.Fatal(err)
	}

	week := models.ScheduleDays{
		Monday:    "Math 16:00",
		Tuesday:   "",
		Wednesday: "English 17:00",
		Thursday:  "",
		Friday:    "Math 16:00",
		Saturday:  "Mock exam",
		Sunday:    "",
		Month:     "March",
		Week:      "2",
	}
	n, err := s.Schedules.Update(ctx, "e@x.com", week)
	if err != nil || n != 1 {
		t.Fatalf("Update = %d, %v", n, err)
	}

	got, err = s.Schedules.Get(ctx, "e@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if got != week {
		t.Fatalf("got %+v, want %+v", got, week)
	}
}

// weekly_schedule as created by older deployments: no month or week
func TestScheduleStore_TableWithoutMonthWeek(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "site.db"),
		LogLevel: "error",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.Exec(`CREATE TABLE weekly_schedule (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		monday TEXT, tuesday TEXT, wednesday TEXT, thursday TEXT,
		friday TEXT, saturday TEXT, sunday TEXT)`).Error; err != nil {
		t.Fatal(err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	s := New(db)

	if _, err := s.Registrations.Create(ctx, sampleRegistration("e@x.com")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Registrations.Create(ctx, sampleRegistration("e@x.com")); err != nil {
		t.Fatalf("register again: %v", err)
	}
	var rows int64
	if err := db.Raw("SELECT COUNT(*) FROM weekly_schedule WHERE email = ?", "e@x.com").Scan(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Fatalf("schedule rows = %d, want 1", rows)
	}

	n, err := s.Schedules.Update(ctx, "e@x.com", models.ScheduleDays{
		Monday: "Math 16:00", Sunday: "rest", Month: "March", Week: "2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if n != 1 {
		t.Fatalf("rows affected = %d, want 1", n)
	}

	got, err := s.Schedules.Get(ctx, "e@x.com")
	if err != nil {
		t.Fatal(err)
	}
	want := models.ScheduleDays{Monday: "Math 16:00", Sunday: "rest"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
