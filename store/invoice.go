package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/models"
)

type InvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore {
	return &InvoiceStore{db: db}
}

// Create flattens items into inv.Items and inserts the invoice. Nothing is
// validated here.
func (s *InvoiceStore) Create(ctx context.Context, inv models.Invoice, items []InvoiceItem) (id uint, err error) {
	defer observe("invoice", "create", time.Now(), &err)

	inv.ID = 0
	inv.Items = FormatItems(items)
	if err = s.db.WithContext(ctx).Create(&inv).Error; err != nil {
		err = storageErr("create invoice", err)
		return 0, err
	}
	return inv.ID, nil
}

func (s *InvoiceStore) List(ctx context.Context) (out []models.Invoice, err error) {
	defer observe("invoice", "list", time.Now(), &err)

	if err = s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		err = storageErr("list invoices", err)
		return nil, err
	}
	return out, nil
}
