package demo

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/interlinkedhq/interlinked/core"
)

// Booking is a stored demo booking request.
type Booking struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	Purpose      string    `json:"purpose"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

// NewBooking contains information needed to book a demo.
type NewBooking struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	BusinessName string `json:"business_name" validate:"required"`
	Purpose      string `json:"purpose" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
}

func (nb *NewBooking) Validate(validate *validator.Validate) error {
	nb.Name = core.CleanString(nb.Name)
	nb.Phone = core.CleanString(nb.Phone)
	nb.Email = core.CleanString(nb.Email, true /* lower */)
	nb.BusinessName = core.CleanString(nb.BusinessName)
	nb.Purpose = core.CleanString(nb.Purpose)
	nb.Date = core.CleanString(nb.Date)
	nb.Time = core.CleanString(nb.Time)
	return validate.Struct(nb)
}
