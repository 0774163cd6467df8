package webinar

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/interlinkedhq/interlinked/core"
)

// Registration is a stored webinar registration.
// SessionDate and SessionTime are the selected session's date and time keys
// as computed by core/schedule.
type Registration struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	SessionDate string    `json:"session_date"`
	SessionTime string    `json:"session_time"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// NewRegistration contains information needed to register for a webinar session.
type NewRegistration struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	SessionDate string `json:"session_date" validate:"required"`
	SessionTime string `json:"session_time" validate:"required"`
}

func (nr *NewRegistration) Validate(validate *validator.Validate) error {
	nr.FirstName = core.CleanString(nr.FirstName)
	nr.LastName = core.CleanString(nr.LastName)
	nr.Email = core.CleanString(nr.Email, true /* lower */)
	nr.Phone = core.CleanString(nr.Phone)
	nr.SessionDate = core.CleanString(nr.SessionDate)
	nr.SessionTime = core.CleanString(nr.SessionTime)
	return validate.Struct(nr)
}
