// Package logging configures the process-wide zerolog logger and adapts it
// for gorm and echo.
package logging

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger fields
const (
	COMPONENT = "component"
	REQUESTID = "request_id"
)

// Setup sets the global level and output. pretty switches to the console
// writer, which is what we want in dev.
func Setup(level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// Component returns a child of the global logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return log.With().Str(COMPONENT, name).Logger()
}

// RequestLogger logs one event per HTTP request.
func RequestLogger() echo.MiddlewareFunc {
	logger := Component("http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logger.Info()
			if v.Error != nil {
				ev = logger.Warn().Err(v.Error)
			}
			ev.Str(REQUESTID, v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
