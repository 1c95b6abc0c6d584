package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/middlewares"
	"github.com/patiponrmutl/TutorDesk/models"
	"github.com/patiponrmutl/TutorDesk/store"
)

type InvoiceHandler struct {
	invoices *store.InvoiceStore
}

func NewInvoiceHandler(s *store.Stores) *InvoiceHandler {
	return &InvoiceHandler{invoices: s.Invoices}
}

type invoiceItemReq struct {
	Description string `json:"description" validate:"required,excludes=0x2C,excludes=:"`
	Price       string `json:"price" validate:"required,money"`
}

// Items come either as a JSON array or, from an HTML form, as the parallel
// item_description / item_price lists.
type createInvoiceReq struct {
	InvoiceNo      string           `json:"invoice_no" form:"invoice_no" validate:"required"`
	DueDate        string           `json:"due_date" form:"due_date" validate:"required"`
	ClientName     string           `json:"client_name" form:"client_name" validate:"required"`
	ClientEmail    string           `json:"client_email" form:"client_email" validate:"required,email"`
	CompanyName    string           `json:"company_name" form:"company_name" validate:"required"`
	CompanyAddress string           `json:"company_address" form:"company_address" validate:"required"`
	Items          []invoiceItemReq `json:"items" validate:"required,min=1,dive"`
	Descriptions   []string         `json:"-" form:"item_description"`
	Prices         []string         `json:"-" form:"item_price"`
	Subtotal       string           `json:"subtotal" form:"subtotal" validate:"required,money"`
	Tax            string           `json:"tax" form:"tax" validate:"required,money"`
	Total          string           `json:"total" form:"total" validate:"required,money"`
	PaymentMethod  string           `json:"payment_method" form:"payment_method" validate:"required"`
	InvoiceDate    string           `json:"invoice_date" form:"invoice_date" validate:"required"`
}

type invoiceResponse struct {
	models.Invoice
	LineItems []store.InvoiceItem `json:"line_items"`
}

// POST /invoices
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if len(req.Items) == 0 && len(req.Descriptions) > 0 {
		if len(req.Descriptions) != len(req.Prices) {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
				"error":  "VALIDATION_ERROR",
				"fields": map[string]string{"items": "every item needs a description and a price"},
			})
		}
		for i := range req.Descriptions {
			req.Items = append(req.Items, invoiceItemReq{Description: req.Descriptions[i], Price: req.Prices[i]})
		}
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	items := make([]store.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, store.InvoiceItem{
			Description: strings.TrimSpace(it.Description),
			Price:       strings.TrimSpace(it.Price),
		})
	}
	inv := models.Invoice{
		InvoiceNo:      strings.TrimSpace(req.InvoiceNo),
		DueDate:        strings.TrimSpace(req.DueDate),
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientEmail:    normalizeEmail(req.ClientEmail),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		CompanyAddress: strings.TrimSpace(req.CompanyAddress),
		Subtotal:       strings.TrimSpace(req.Subtotal),
		Tax:            strings.TrimSpace(req.Tax),
		Total:          strings.TrimSpace(req.Total),
		PaymentMethod:  strings.TrimSpace(req.PaymentMethod),
		InvoiceDate:    strings.TrimSpace(req.InvoiceDate),
		Username:       middlewares.CurrentUser(c),
	}

	id, err := h.invoices.Create(c.Request().Context(), inv, items)
	if err != nil {
		return storageFailure(c, "create invoice", err)
	}
	inv.ID = id
	inv.Items = store.FormatItems(items)
	return c.JSON(http.StatusCreated, invoiceResponse{Invoice: inv, LineItems: items})
}

// GET /invoices
func (h *InvoiceHandler) List(c echo.Context) error {
	rows, err := h.invoices.List(c.Request().Context())
	if err != nil {
		return storageFailure(c, "list invoices", err)
	}
	out := make([]invoiceResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, invoiceResponse{Invoice: inv, LineItems: store.ParseItems(inv.Items)})
	}
	return c.JSON(http.StatusOK, out)
}
