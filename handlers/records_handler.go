package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/store"
)

// RecordsHandler is the "view all records" report: whole tables, positional.
type RecordsHandler struct {
	stores *store.Stores
}

func NewRecordsHandler(s *store.Stores) *RecordsHandler {
	return &RecordsHandler{stores: s}
}

// GET /records
func (h *RecordsHandler) Tables(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"tables": store.Tables})
}

// GET /records/:table
func (h *RecordsHandler) Dump(c echo.Context) error {
	d, err := h.stores.Dump(c.Request().Context(), c.Param("table"))
	if err != nil {
		if errors.Is(err, store.ErrUnknownTable) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "UNKNOWN_TABLE"})
		}
		return storageFailure(c, "dump table", err)
	}
	return c.JSON(http.StatusOK, d)
}
