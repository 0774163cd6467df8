package demo

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("demo booking not found")

type (
	Repository interface {
		CreateBooking(ctx context.Context, booking Booking) (Booking, error)
		// QueryAllBookings returns bookings newest first.
		QueryAllBookings(ctx context.Context) ([]Booking, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, nb NewBooking) (Booking, error)
		QueryAll(ctx context.Context) ([]Booking, error)
	}

	service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*service)(nil)

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, nb NewBooking) (Booking, error) {
	booking := Booking{
		Name:         nb.Name,
		Phone:        nb.Phone,
		Email:        nb.Email,
		BusinessName: nb.BusinessName,
		Purpose:      nb.Purpose,
		Date:         nb.Date,
		Time:         nb.Time,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateBooking(ctx, booking)
}

func (svc *service) QueryAll(ctx context.Context) ([]Booking, error) {
	return svc.repo.QueryAllBookings(ctx)
}
