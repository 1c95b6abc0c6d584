// Package store maps the five tutoring entities to rows. Every method runs a
// single statement, or one short transaction, against the shared handle and
// reports failures as ErrStorage so callers can tell them apart from
// ErrNotFound.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/metrics"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrStorage      = errors.New("storage failure")
	ErrUnknownTable = errors.New("unknown table")
)

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// observe is deferred by every store method with a pointer to its named
// error result.
func observe(entity, op string, start time.Time, err *error) {
	outcome := "ok"
	switch {
	case *err == nil:
	case errors.Is(*err, ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.ObserveStoreOp(entity, op, outcome, time.Since(start))
}

// Stores bundles one of each record store over the same handle.
type Stores struct {
	db *gorm.DB

	Users         *UserStore
	Registrations *RegistrationStore
	Dashboards    *DashboardStore
	Schedules     *ScheduleStore
	Invoices      *InvoiceStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		db:            db,
		Users:         NewUserStore(db),
		Registrations: NewRegistrationStore(db),
		Dashboards:    NewDashboardStore(db),
		Schedules:     NewScheduleStore(db),
		Invoices:      NewInvoiceStore(db),
	}
}
