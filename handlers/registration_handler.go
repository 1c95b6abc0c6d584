package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/store"
)

type RegistrationHandler struct {
	registrations *store.RegistrationStore
}

func NewRegistrationHandler(s *store.Stores) *RegistrationHandler {
	return &RegistrationHandler{registrations: s.Registrations}
}

// subjects/locations are stored comma-joined, so values may not contain one
type registerReq struct {
	Fullname  string   `json:"fullname" form:"fullname" validate:"required,max=120"`
	Email     string   `json:"email" form:"email" validate:"required,email"`
	DobDay    string   `json:"dob_day" form:"dob_day" validate:"omitempty,numeric,min=1,max=2"`
	DobMonth  string   `json:"dob_month" form:"dob_month" validate:"omitempty,numeric,min=1,max=2"`
	DobYear   string   `json:"dob_year" form:"dob_year" validate:"omitempty,numeric,len=4"`
	Gender    string   `json:"gender" form:"gender"`
	Role      string   `json:"role" form:"role" validate:"required"`
	Subjects  []string `json:"subjects" form:"subjects" validate:"dive,required,excludes=0x2C"`
	Locations []string `json:"locations" form:"locations" validate:"dive,required,excludes=0x2C"`
}

// POST /register
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r := store.Registration{
		Fullname:  strings.TrimSpace(req.Fullname),
		Email:     normalizeEmail(req.Email),
		DobDay:    req.DobDay,
		DobMonth:  req.DobMonth,
		DobYear:   req.DobYear,
		Gender:    strings.TrimSpace(req.Gender),
		Role:      strings.TrimSpace(req.Role),
		Subjects:  trimAll(req.Subjects),
		Locations: trimAll(req.Locations),
	}
	id, err := h.registrations.Create(c.Request().Context(), r)
	if err != nil {
		return storageFailure(c, "create registration", err)
	}
	r.ID = id
	return c.JSON(http.StatusCreated, r)
}

// GET /register?email=...
func (h *RegistrationHandler) Get(c echo.Context) error {
	var q emailQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	r, err := h.registrations.FindByEmail(c.Request().Context(), normalizeEmail(q.Email))
	if err != nil {
		if isNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_REGISTERED"})
		}
		return storageFailure(c, "find registration", err)
	}
	return c.JSON(http.StatusOK, r)
}

// GET /registrations
func (h *RegistrationHandler) List(c echo.Context) error {
	rows, err := h.registrations.List(c.Request().Context())
	if err != nil {
		return storageFailure(c, "list registrations", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
