package echoapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core/schedule"
	"github.com/interlinkedhq/interlinked/core/webinar"
)

type webinarApi struct {
	svc      webinar.ServiceInterface
	validate *validator.Validate
}

func registerWebinarAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc webinar.ServiceInterface, validate *validator.Validate) {
	api := webinarApi{
		svc:      svc,
		validate: validate,
	}

	wg := g.Group("/webinar")
	wg.GET("/sessions", api.sessions)
	wg.GET("/countdown", api.countdown)
	wg.POST("/registrations", api.register)
	wg.GET("/registrations", api.query, jwt, adminMiddleware())
}

func (api *webinarApi) sessions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, schedule.UpcomingSessions(time.Now()))
}

// countdown streams one `countdown` SSE event per second until the client
// disconnects. The target session is fixed when the stream opens; once it
// passes, the count stays at zero until the client reconnects.
func (api *webinarApi) countdown(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	sessions := schedule.UpcomingSessions(time.Now())

	if err := writeCountdownEvent(res, sessions); err != nil {
		return errors.Wrap(err, "writing countdown event")
	}

	tick := schedule.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case <-tick.C:
			if err := writeCountdownEvent(res, sessions); err != nil {
				return errors.Wrap(err, "writing countdown event")
			}
		}
	}
}

func writeCountdownEvent(res *echo.Response, sessions []schedule.Session) error {
	seconds := schedule.CountdownSeconds(sessions, time.Now())
	if _, err := fmt.Fprintf(res, "event: countdown\ndata: {\"seconds\": %d}\n\n", seconds); err != nil {
		return err
	}
	res.Flush()
	return nil
}

func (api *webinarApi) register(ctx echo.Context) error {
	var data webinar.NewRegistration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRegistration")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	reg, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating webinar registration")
	}
	return ctx.JSON(http.StatusCreated, reg)
}

func (api *webinarApi) query(ctx echo.Context) error {
	regs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying webinar registrations")
	}
	if regs == nil {
		regs = []webinar.Registration{}
	}
	return ctx.JSON(http.StatusOK, regs)
}
