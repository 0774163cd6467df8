package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/interlinkedhq/interlinked/core/demo"
)

type demoApi struct {
	svc      demo.ServiceInterface
	validate *validator.Validate
}

func registerDemoAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc demo.ServiceInterface, validate *validator.Validate) {
	api := demoApi{
		svc:      svc,
		validate: validate,
	}

	dg := g.Group("/demos")
	dg.POST("", api.create)
	dg.GET("", api.query, jwt, adminMiddleware())
}

func (api *demoApi) create(ctx echo.Context) error {
	var data demo.NewBooking
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBooking")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	booking, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating demo booking")
	}
	return ctx.JSON(http.StatusCreated, booking)
}

func (api *demoApi) query(ctx echo.Context) error {
	bookings, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying demo bookings")
	}
	if bookings == nil {
		bookings = []demo.Booking{}
	}
	return ctx.JSON(http.StatusOK, bookings)
}
