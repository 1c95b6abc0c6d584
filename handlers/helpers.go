package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/patiponrmutl/TutorDesk/store"
)

// RequestValidator plugs go-playground/validator into echo's c.Validate.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// money: a decimal number >= 0
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil && n >= 0
	})

	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}

// bindAndValidate binds the request into req and runs its validate tags.
// Failures come back as ready-to-return 400 errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = ruleMessage(fe)
	}
	return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
}

// fieldPath drops the top-level struct name: "req.items[0].price" -> "items[0].price"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min", "max":
		if fe.Kind() == reflect.String {
			return "length must be " + fe.Tag() + " " + fe.Param()
		}
		return fe.Tag() + " " + fe.Param()
	case "eqfield":
		return "does not match " + strings.ToLower(fe.Param())
	case "email":
		return "invalid email"
	case "numeric", "money":
		return "must be a non-negative number"
	case "excludes":
		return "must not contain " + strconv.Quote(fe.Param())
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}

// storageFailure logs err and hides it behind a generic 500.
func storageFailure(c echo.Context, op string, err error) error {
	log.Error().Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("op", op).
		Msg("store call failed")
	return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "STORAGE_FAILURE"})
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
