package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/TutorDesk/models"
	"github.com/patiponrmutl/TutorDesk/store"
)

type DashboardHandler struct {
	dashboards    *store.DashboardStore
	registrations *store.RegistrationStore
}

func NewDashboardHandler(s *store.Stores) *DashboardHandler {
	return &DashboardHandler{dashboards: s.Dashboards, registrations: s.Registrations}
}

type emailQuery struct {
	Email string `json:"email" query:"email" validate:"required,email"`
}

// JSON only. Pointers so an omitted field can be told apart from an empty
// one: every counter must be sent, because the store overwrites the whole row.
type updateDashboardReq struct {
	Email              string  `json:"email" validate:"required,email"`
	HomeworkAssigned   *string `json:"homework_assigned" validate:"required"`
	HomeworkSubmitted  *string `json:"homework_submitted" validate:"required"`
	AttendanceStudents *string `json:"attendance_students" validate:"required"`
	AttendanceTutor    *string `json:"attendance_tutor" validate:"required"`
	RegisteredTutors   *string `json:"registered_tutors" validate:"required"`
	RegisteredStudents *string `json:"registered_students" validate:"required"`
	DropoutTutors      *string `json:"dropout_tutors" validate:"required"`
	DropoutStudents    *string `json:"dropout_students" validate:"required"`
}

func (r updateDashboardReq) counters() models.DashboardCounters {
	return models.DashboardCounters{
		HomeworkAssigned:   strings.TrimSpace(*r.HomeworkAssigned),
		HomeworkSubmitted:  strings.TrimSpace(*r.HomeworkSubmitted),
		AttendanceStudents: strings.TrimSpace(*r.AttendanceStudents),
		AttendanceTutor:    strings.TrimSpace(*r.AttendanceTutor),
		RegisteredTutors:   strings.TrimSpace(*r.RegisteredTutors),
		RegisteredStudents: strings.TrimSpace(*r.RegisteredStudents),
		DropoutTutors:      strings.TrimSpace(*r.DropoutTutors),
		DropoutStudents:    strings.TrimSpace(*r.DropoutStudents),
	}
}

// GET /dashboard?email=...
// An email with no dashboard yet gets empty counters.
func (h *DashboardHandler) Get(c echo.Context) error {
	var q emailQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	email := normalizeEmail(q.Email)

	counters, err := h.dashboards.Get(c.Request().Context(), email)
	if err != nil {
		return storageFailure(c, "get dashboard", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"email": email, "dashboard": counters})
}

// PUT /dashboard
func (h *DashboardHandler) Update(c echo.Context) error {
	var req updateDashboardReq
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

	counters := req.counters()
	if _, err := h.dashboards.Update(ctx, email, counters); err != nil {
		return storageFailure(c, "update dashboard", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"email": email, "dashboard": counters})
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
