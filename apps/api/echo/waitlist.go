package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core/waitlist"
)

type waitlistApi struct {
	svc      waitlist.ServiceInterface
	validate *validator.Validate
}

func registerWaitlistAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc waitlist.ServiceInterface, validate *validator.Validate) {
	api := waitlistApi{
		svc:      svc,
		validate: validate,
	}

	wg := g.Group("/waitlist")
	wg.POST("", api.create)
	wg.GET("", api.query, jwt, adminMiddleware())
}

func (api *waitlistApi) create(ctx echo.Context) error {
	var data waitlist.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	entry, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating waitlist entry")
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *waitlistApi) query(ctx echo.Context) error {
	entries, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying waitlist entries")
	}
	if entries == nil {
		entries = []waitlist.Entry{}
	}
	return ctx.JSON(http.StatusOK, entries)
}
