package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/models"
	"github.com/patiponrmutl/TutorDesk/store"
)

type ScheduleHandler struct {
	schedules     *store.ScheduleStore
	registrations *store.RegistrationStore
}

func NewScheduleHandler(s *store.Stores) *ScheduleHandler {
	return &ScheduleHandler{schedules: s.Schedules, registrations: s.Registrations}
}

// JSON only. All seven days are required (send "" for a free day); month and week are
// optional labels and are cleared when left out.
type updateScheduleReq struct {
	Email     string  `json:"email" validate:"required,email"`
	Monday    *string `json:"monday" validate:"required"`
	Tuesday   *string `json:"tuesday" validate:"required"`
	Wednesday *string `json:"wednesday" validate:"required"`
	Thursday  *string `json:"thursday" validate:"required"`
	Friday    *string `json:"friday" validate:"required"`
	Saturday  *string `json:"saturday" validate:"required"`
	Sunday    *string `json:"sunday" validate:"required"`
	Month     string  `json:"month" validate:"max=20"`
	Week      string  `json:"week" validate:"omitempty,numeric,max=2"`
}

func (r updateScheduleReq) days() models.ScheduleDays {
	return models.ScheduleDays{
		Monday:    strings.TrimSpace(*r.Monday),
		Tuesday:   strings.TrimSpace(*r.Tuesday),
		Wednesday: strings.TrimSpace(*r.Wednesday),
		Thursday:  strings.TrimSpace(*r.Thursday),
		Friday:    strings.TrimSpace(*r.Friday),
		Saturday:  strings.TrimSpace(*r.Saturday),
		Sunday:    strings.TrimSpace(*r.Sunday),
		Month:     strings.TrimSpace(r.Month),
		Week:      strings.TrimSpace(r.Week),
	}
}

// GET /schedule?email=...
func (h *ScheduleHandler) Get(c echo.Context) error {
	var q emailQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	email := normalizeEmail(q.Email)

	days, err := h.schedules.Get(c.Request().Context(), email)
	if err != nil {
		return storageFailure(c, "get schedule", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"email": email, "schedule": days})
}

// PUT /schedule
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req updateScheduleReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	email := normalizeEmail(req.Email)
	ctx := c.Request().Context()

	ok, err := h.registrations.Exists(ctx, email)
	if err != nil {
		return storageFailure(c, "check registration", err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_REGISTERED"})
	}

	days := req.days()
	if _, err := h.schedules.Update(ctx, email, days); err != nil {
		return storageFailure(c, "update schedule", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"email": email, "schedule": days})
}
